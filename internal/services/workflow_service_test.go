package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"voxia/internal/domain"
	"voxia/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRequestStore struct {
	docs []models.TravelRequest
}

func (f *fakeRequestStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string, now time.Time) (models.TravelRequest, error) {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs[i].Status = status
			f.docs[i].Approval.Status = status
			f.docs[i].UpdatedAt = now
			return f.docs[i], nil
		}
	}
	return models.TravelRequest{}, domain.NotFoundError{Resource: "travel request"}
}

func (f *fakeRequestStore) CountAll(context.Context) (int64, error) {
	return int64(len(f.docs)), nil
}

func (f *fakeRequestStore) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, d := range f.docs {
		if strings.EqualFold(d.Status, status) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRequestStore) CountByOwner(_ context.Context, email string) (int64, error) {
	var n int64
	for _, d := range f.docs {
		if d.UserEmail == email {
			n++
		}
	}
	return n, nil
}

func (f *fakeRequestStore) CountByOwnerAndStatus(_ context.Context, email, status string) (int64, error) {
	var n int64
	for _, d := range f.docs {
		if d.UserEmail == email && strings.EqualFold(d.Status, status) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRequestStore) ListAll(context.Context) ([]models.TravelRequest, error) {
	return f.docs, nil
}

func (f *fakeRequestStore) ListByStatus(_ context.Context, status string) ([]models.TravelRequest, error) {
	out := []models.TravelRequest{}
	for _, d := range f.docs {
		if strings.EqualFold(d.Status, status) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRequestStore) ListByOwner(_ context.Context, email string) ([]models.TravelRequest, error) {
	out := []models.TravelRequest{}
	for _, d := range f.docs {
		if d.UserEmail == email {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRequestStore) LatestByOwner(_ context.Context, email string) (*models.TravelRequest, error) {
	var latest *models.TravelRequest
	for i := range f.docs {
		d := f.docs[i]
		if d.UserEmail != email {
			continue
		}
		if latest == nil || d.CreatedAt.After(latest.CreatedAt) {
			latest = &f.docs[i]
		}
	}
	return latest, nil
}

type fakeEmployeeStore struct {
	users []models.User
}

func (f *fakeEmployeeStore) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeEmployeeStore) ListByRole(_ context.Context, role string) ([]models.User, error) {
	out := []models.User{}
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func seedRequest(email, status string, createdAt time.Time) models.TravelRequest {
	return models.TravelRequest{
		ID:            primitive.NewObjectID(),
		RequestNumber: "TR-" + primitive.NewObjectID().Hex(),
		UserEmail:     email,
		Status:        status,
		Type:          "business",
		TotalCost:     1200,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestSetStatusPersistsCanonicalValue(t *testing.T) {
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	now := created.Add(48 * time.Hour)
	store := &fakeRequestStore{docs: []models.TravelRequest{seedRequest("alice@example.com", "pending", created)}}
	svc := WorkflowService{Requests: store, Now: func() time.Time { return now }}

	id := store.docs[0].ID.Hex()
	tr, err := svc.SetStatus(context.Background(), id, "APPROVED")
	require.NoError(t, err)

	assert.Equal(t, "approved", tr.Status)
	assert.Equal(t, "approved", tr.Approval.Status)
	assert.True(t, tr.UpdatedAt.After(created), "updated_at should advance")
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	store := &fakeRequestStore{docs: []models.TravelRequest{seedRequest("alice@example.com", "pending", time.Now())}}
	svc := WorkflowService{Requests: store}

	_, err := svc.SetStatus(context.Background(), store.docs[0].ID.Hex(), "INVALID")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "pending", store.docs[0].Status, "document must not mutate")
}

func TestSetStatusUnknownID(t *testing.T) {
	svc := WorkflowService{Requests: &fakeRequestStore{}}

	_, err := svc.SetStatus(context.Background(), primitive.NewObjectID().Hex(), "approved")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestSetStatusMalformedID(t *testing.T) {
	svc := WorkflowService{Requests: &fakeRequestStore{}}

	_, err := svc.SetStatus(context.Background(), "not-a-valid-id", "approved")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidID(err))
}

func TestPendingCountMatchesCaseInsensitively(t *testing.T) {
	now := time.Now()
	store := &fakeRequestStore{docs: []models.TravelRequest{
		seedRequest("a@example.com", "pending", now),
		seedRequest("b@example.com", "PENDING", now),
		seedRequest("c@example.com", "approved", now),
	}}
	svc := WorkflowService{Requests: store}

	n, err := svc.PendingTravelRequestCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestLatestStatusForOwner(t *testing.T) {
	t1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(72 * time.Hour)
	store := &fakeRequestStore{docs: []models.TravelRequest{
		seedRequest("alice@example.com", "pending", t1),
		seedRequest("alice@example.com", "approved", t2),
		seedRequest("bob@example.com", "rejected", t2),
	}}
	svc := WorkflowService{Requests: store}

	status, err := svc.LatestStatusForOwner(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "approved", *status)
}

func TestLatestStatusForOwnerWithoutRequests(t *testing.T) {
	svc := WorkflowService{Requests: &fakeRequestStore{}}

	status, err := svc.LatestStatusForOwner(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestAcceptedRequestsQueryApprovedStatus(t *testing.T) {
	now := time.Now()
	store := &fakeRequestStore{docs: []models.TravelRequest{
		seedRequest("a@example.com", "approved", now),
		seedRequest("b@example.com", "pending", now),
	}}
	svc := WorkflowService{Requests: store}

	list, err := svc.AcceptedTravelRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a@example.com", list[0].UserEmail)
}

func TestEmployeeCount(t *testing.T) {
	users := &fakeEmployeeStore{users: []models.User{
		{Role: models.RoleEmployee},
		{Role: models.RoleEmployee},
		{Role: models.RoleAdmin},
	}}
	svc := WorkflowService{Users: users}

	n, err := svc.EmployeeCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
