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

// UserRepository wraps the users collection.
type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return UserRepository{Col: db.Collection("users")}
}

func (r UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return u, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return u, domain.StorageError{Op: "find user", Err: err}
	}
	return u, nil
}

func (r UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return u, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return u, domain.StorageError{Op: "find user", Err: err}
	}
	return u, nil
}

// FindByResetToken resolves a password-reset token that has not expired yet.
func (r UserRepository) FindByResetToken(ctx context.Context, token string, now time.Time) (models.User, error) {
	var u models.User
	filter := bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": bson.M{"$gt": now},
	}
	err := r.Col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return u, domain.NotFoundError{Resource: "reset token"}
	}
	if err != nil {
		return u, domain.StorageError{Op: "find user by reset token", Err: err}
	}
	return u, nil
}

func (r UserRepository) Insert(ctx context.Context, u models.User) (models.User, error) {
	res, err := r.Col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return u, domain.ConflictError{Resource: "user", Msg: "email or username already registered"}
	}
	if err != nil {
		return u, domain.StorageError{Op: "insert user", Err: err}
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return u, nil
}

// SetToken stores the last-issued auth token on the user document.
func (r UserRepository) SetToken(ctx context.Context, id primitive.ObjectID, token string, now time.Time) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"token": token, "updatedAt": now}})
}

func (r UserRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": expires,
	}})
}

// SetPassword stores a new password hash and clears any pending reset token.
func (r UserRepository) SetPassword(ctx context.Context, id primitive.ObjectID, hash string, now time.Time) error {
	return r.updateByID(ctx, id, bson.M{
		"$set":   bson.M{"password": hash, "updatedAt": now},
		"$unset": bson.M{"resetPasswordToken": "", "resetPasswordExpires": ""},
	})
}

// UpdateProfile applies the given field patch and returns the updated document.
func (r UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, patch bson.M, now time.Time) (models.User, error) {
	patch["updatedAt"] = now
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patch}, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return u, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return u, domain.StorageError{Op: "update user", Err: err}
	}
	return u, nil
}

func (r UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, domain.StorageError{Op: "count users by role", Err: err}
	}
	return n, nil
}

func (r UserRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	cur, err := r.Col.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, domain.StorageError{Op: "list users by role", Err: err}
	}
	defer cur.Close(ctx)

	out := []models.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.StorageError{Op: "decode users", Err: err}
	}
	return out, nil
}

func (r UserRepository) updateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := r.Col.UpdateByID(ctx, id, update)
	if err != nil {
		return domain.StorageError{Op: "update user", Err: err}
	}
	if res.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
