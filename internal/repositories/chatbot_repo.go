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

// ChatbotRepository wraps the chatbots collection.
type ChatbotRepository struct {
	Col *mongo.Collection
}

func NewChatbotRepository(db *mongo.Database) ChatbotRepository {
	return ChatbotRepository{Col: db.Collection("chatbots")}
}

func (r ChatbotRepository) Insert(ctx context.Context, cb models.Chatbot) (models.Chatbot, error) {
	res, err := r.Col.InsertOne(ctx, cb)
	if err != nil {
		return cb, domain.StorageError{Op: "insert chatbot", Err: err}
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		cb.ID = id
	}
	return cb, nil
}

func (r ChatbotRepository) List(ctx context.Context) ([]models.Chatbot, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.StorageError{Op: "list chatbots", Err: err}
	}
	defer cur.Close(ctx)

	out := []models.Chatbot{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.StorageError{Op: "decode chatbots", Err: err}
	}
	return out, nil
}

func (r ChatbotRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.Chatbot, error) {
	var cb models.Chatbot
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&cb)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return cb, domain.NotFoundError{Resource: "chatbot"}
	}
	if err != nil {
		return cb, domain.StorageError{Op: "find chatbot", Err: err}
	}
	return cb, nil
}

func (r ChatbotRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M, now time.Time) (models.Chatbot, error) {
	patch["updatedAt"] = now
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cb models.Chatbot
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patch}, opts).Decode(&cb)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return cb, domain.NotFoundError{Resource: "chatbot"}
	}
	if err != nil {
		return cb, domain.StorageError{Op: "update chatbot", Err: err}
	}
	return cb, nil
}

func (r ChatbotRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.StorageError{Op: "delete chatbot", Err: err}
	}
	if res.DeletedCount == 0 {
		return domain.NotFoundError{Resource: "chatbot"}
	}
	return nil
}
