package services

import (
	"context"
	"fmt"
	"time"

	"voxia/internal/domain"
	"voxia/internal/domain/models"
	"voxia/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TravelRequestStore is the slice of travel_requests access the workflow needs.
type TravelRequestStore interface {
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, now time.Time) (models.TravelRequest, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByOwner(ctx context.Context, email string) (int64, error)
	CountByOwnerAndStatus(ctx context.Context, email, status string) (int64, error)
	ListAll(ctx context.Context) ([]models.TravelRequest, error)
	ListByStatus(ctx context.Context, status string) ([]models.TravelRequest, error)
	ListByOwner(ctx context.Context, email string) ([]models.TravelRequest, error)
	LatestByOwner(ctx context.Context, email string) (*models.TravelRequest, error)
}

// EmployeeStore is the slice of users access the admin dashboard needs.
type EmployeeStore interface {
	CountByRole(ctx context.Context, role string) (int64, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
}

// WorkflowService owns the travel-request status lifecycle and the dashboard
// read queries over it.
type WorkflowService struct {
	Requests  TravelRequestStore
	Users     EmployeeStore
	RequestID string
	Now       func() time.Time
}

func (s WorkflowService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SetStatus moves a request to a new status. The only transitions the
// workflow defines are pending -> approved and pending -> rejected; updates
// are single atomic document writes, last write wins on a race.
func (s WorkflowService) SetStatus(ctx context.Context, rawID, rawStatus string) (models.TravelRequest, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return models.TravelRequest{}, domain.InvalidIDError{ID: rawID, Err: err}
	}
	status, err := domain.NormalizeStatus(rawStatus)
	if err != nil {
		return models.TravelRequest{}, err
	}

	tr, err := s.Requests.UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		return models.TravelRequest{}, err
	}
	utils.LogEvent(s.RequestID, "workflow", "set_status", fmt.Sprintf("request=%s status=%s", rawID, status))
	return tr, nil
}

func (s WorkflowService) TravelRequestCount(ctx context.Context) (int64, error) {
	return s.Requests.CountAll(ctx)
}

func (s WorkflowService) PendingTravelRequestCount(ctx context.Context) (int64, error) {
	return s.Requests.CountByStatus(ctx, domain.StatusPending)
}

func (s WorkflowService) AllTravelRequests(ctx context.Context) ([]models.TravelRequest, error) {
	return s.Requests.ListAll(ctx)
}

// AcceptedTravelRequests lists the approved requests. The route keeps its
// historical "accepted" name; the stored status is "approved".
func (s WorkflowService) AcceptedTravelRequests(ctx context.Context) ([]models.TravelRequest, error) {
	return s.Requests.ListByStatus(ctx, domain.StatusApproved)
}

func (s WorkflowService) TravelRequestsForOwner(ctx context.Context, email string) ([]models.TravelRequest, error) {
	return s.Requests.ListByOwner(ctx, email)
}

func (s WorkflowService) TravelRequestCountForOwner(ctx context.Context, email string) (int64, error) {
	return s.Requests.CountByOwner(ctx, email)
}

func (s WorkflowService) AcceptedTravelRequestCountForOwner(ctx context.Context, email string) (int64, error) {
	return s.Requests.CountByOwnerAndStatus(ctx, email, domain.StatusApproved)
}

// LatestStatusForOwner returns the status of the owner's most recent request,
// or nil when the owner has no requests at all.
func (s WorkflowService) LatestStatusForOwner(ctx context.Context, email string) (*string, error) {
	tr, err := s.Requests.LatestByOwner(ctx, email)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, nil
	}
	status, err := domain.NormalizeStatus(tr.Status)
	if err != nil {
		// legacy value outside the vocabulary; surface it as stored
		status = tr.Status
	}
	return &status, nil
}

func (s WorkflowService) EmployeeCount(ctx context.Context) (int64, error) {
	return s.Users.CountByRole(ctx, models.RoleEmployee)
}

func (s WorkflowService) Employees(ctx context.Context) ([]models.User, error) {
	return s.Users.ListByRole(ctx, models.RoleEmployee)
}
