package services

import (
	"context"
	"strings"
	"time"

	"voxia/internal/domain"
	"voxia/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatbotStore is the chatbots collection access the service needs.
type ChatbotStore interface {
	Insert(ctx context.Context, cb models.Chatbot) (models.Chatbot, error)
	List(ctx context.Context) ([]models.Chatbot, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Chatbot, error)
	Update(ctx context.Context, id primitive.ObjectID, patch bson.M, now time.Time) (models.Chatbot, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ChatbotService manages chatbot configuration documents. The conversational
// runtime itself is external.
type ChatbotService struct {
	Bots ChatbotStore
	Now  func() time.Time
}

func (s ChatbotService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type ChatbotInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Settings    bson.M `json:"settings"`
}

func (s ChatbotService) Create(ctx context.Context, in ChatbotInput) (models.Chatbot, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Chatbot{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	now := s.now()
	return s.Bots.Insert(ctx, models.Chatbot{
		Name:        in.Name,
		Description: in.Description,
		Settings:    in.Settings,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s ChatbotService) List(ctx context.Context) ([]models.Chatbot, error) {
	return s.Bots.List(ctx)
}

func (s ChatbotService) Get(ctx context.Context, rawID string) (models.Chatbot, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return models.Chatbot{}, domain.InvalidIDError{ID: rawID, Err: err}
	}
	return s.Bots.GetByID(ctx, id)
}

func (s ChatbotService) Update(ctx context.Context, rawID string, in ChatbotInput) (models.Chatbot, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return models.Chatbot{}, domain.InvalidIDError{ID: rawID, Err: err}
	}
	patch := bson.M{}
	if strings.TrimSpace(in.Name) != "" {
		patch["name"] = in.Name
	}
	if in.Description != "" {
		patch["description"] = in.Description
	}
	if in.Settings != nil {
		patch["settings"] = in.Settings
	}
	if len(patch) == 0 {
		return models.Chatbot{}, domain.ValidationError{Msg: "no fields to update"}
	}
	return s.Bots.Update(ctx, id, patch, s.now())
}

func (s ChatbotService) Delete(ctx context.Context, rawID string) error {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return domain.InvalidIDError{ID: rawID, Err: err}
	}
	return s.Bots.Delete(ctx, id)
}
