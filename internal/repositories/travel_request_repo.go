package repositories

import (
	"context"
	"errors"
	"time"

	"voxia/internal/domain"
	"voxia/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Legacy documents carry mixed-case status values, so every status filter
// uses a case-insensitive collation.
var statusCollation = &options.Collation{Locale: "en", Strength: 2}

// TravelRequestRepository wraps the travel_requests collection.
type TravelRequestRepository struct {
	Col *mongo.Collection
}

func NewTravelRequestRepository(db *mongo.Database) TravelRequestRepository {
	return TravelRequestRepository{Col: db.Collection("travel_requests")}
}

// UpdateStatus sets the canonical status, mirrors approval.status and
// advances updated_at in one atomic document update. Last write wins when
// two updates race on the same request.
func (r TravelRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, now time.Time) (models.TravelRequest, error) {
	update := bson.M{"$set": bson.M{
		"status":          status,
		"approval.status": status,
		"updated_at":      now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tr models.TravelRequest
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&tr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return tr, domain.NotFoundError{Resource: "travel request"}
	}
	if err != nil {
		return tr, domain.StorageError{Op: "update travel request status", Err: err}
	}
	return tr, nil
}

func (r TravelRequestRepository) CountAll(ctx context.Context) (int64, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, domain.StorageError{Op: "count travel requests", Err: err}
	}
	return n, nil
}

func (r TravelRequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	opts := options.Count().SetCollation(statusCollation)
	n, err := r.Col.CountDocuments(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return 0, domain.StorageError{Op: "count travel requests by status", Err: err}
	}
	return n, nil
}

func (r TravelRequestRepository) CountByOwner(ctx context.Context, email string) (int64, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{"user_email": email})
	if err != nil {
		return 0, domain.StorageError{Op: "count travel requests by owner", Err: err}
	}
	return n, nil
}

func (r TravelRequestRepository) CountByOwnerAndStatus(ctx context.Context, email, status string) (int64, error) {
	opts := options.Count().SetCollation(statusCollation)
	n, err := r.Col.CountDocuments(ctx, bson.M{"user_email": email, "status": status}, opts)
	if err != nil {
		return 0, domain.StorageError{Op: "count travel requests by owner and status", Err: err}
	}
	return n, nil
}

func (r TravelRequestRepository) ListAll(ctx context.Context) ([]models.TravelRequest, error) {
	return r.list(ctx, bson.M{}, nil)
}

func (r TravelRequestRepository) ListByStatus(ctx context.Context, status string) ([]models.TravelRequest, error) {
	return r.list(ctx, bson.M{"status": status}, options.Find().SetCollation(statusCollation))
}

func (r TravelRequestRepository) ListByOwner(ctx context.Context, email string) ([]models.TravelRequest, error) {
	return r.list(ctx, bson.M{"user_email": email}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

// LatestByOwner returns the owner's most recent request by created_at, or
// nil when the owner has none. Absence is not an error here.
func (r TravelRequestRepository) LatestByOwner(ctx context.Context, email string) (*models.TravelRequest, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var tr models.TravelRequest
	err := r.Col.FindOne(ctx, bson.M{"user_email": email}, opts).Decode(&tr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StorageError{Op: "find latest travel request", Err: err}
	}
	return &tr, nil
}

func (r TravelRequestRepository) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.TravelRequest, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.Col.Find(ctx, filter, opts)
	} else {
		cur, err = r.Col.Find(ctx, filter)
	}
	if err != nil {
		return nil, domain.StorageError{Op: "list travel requests", Err: err}
	}
	defer cur.Close(ctx)

	out := []models.TravelRequest{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.StorageError{Op: "decode travel requests", Err: err}
	}
	return out, nil
}
