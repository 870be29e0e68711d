package services

import (
	"context"
	"testing"
	"time"

	"voxia/internal/domain"
	"voxia/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeChatbotStore struct {
	bots []models.Chatbot
}

func (f *fakeChatbotStore) Insert(_ context.Context, cb models.Chatbot) (models.Chatbot, error) {
	cb.ID = primitive.NewObjectID()
	f.bots = append(f.bots, cb)
	return cb, nil
}

func (f *fakeChatbotStore) List(context.Context) ([]models.Chatbot, error) {
	return f.bots, nil
}

func (f *fakeChatbotStore) GetByID(_ context.Context, id primitive.ObjectID) (models.Chatbot, error) {
	for _, cb := range f.bots {
		if cb.ID == id {
			return cb, nil
		}
	}
	return models.Chatbot{}, domain.NotFoundError{Resource: "chatbot"}
}

func (f *fakeChatbotStore) Update(_ context.Context, id primitive.ObjectID, patch bson.M, now time.Time) (models.Chatbot, error) {
	for i := range f.bots {
		if f.bots[i].ID == id {
			if v, ok := patch["name"].(string); ok {
				f.bots[i].Name = v
			}
			if v, ok := patch["description"].(string); ok {
				f.bots[i].Description = v
			}
			f.bots[i].UpdatedAt = now
			return f.bots[i], nil
		}
	}
	return models.Chatbot{}, domain.NotFoundError{Resource: "chatbot"}
}

func (f *fakeChatbotStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range f.bots {
		if f.bots[i].ID == id {
			f.bots = append(f.bots[:i], f.bots[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "chatbot"}
}

func TestChatbotCreateRequiresName(t *testing.T) {
	svc := ChatbotService{Bots: &fakeChatbotStore{}}

	_, err := svc.Create(context.Background(), ChatbotInput{Description: "no name"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestChatbotCRUD(t *testing.T) {
	store := &fakeChatbotStore{}
	svc := ChatbotService{Bots: store}

	cb, err := svc.Create(context.Background(), ChatbotInput{Name: "travel-assistant", Description: "collects request forms"})
	require.NoError(t, err)
	require.NotEqual(t, primitive.NilObjectID, cb.ID)

	got, err := svc.Get(context.Background(), cb.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "travel-assistant", got.Name)

	updated, err := svc.Update(context.Background(), cb.ID.Hex(), ChatbotInput{Description: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Description)
	assert.Equal(t, "travel-assistant", updated.Name, "absent fields stay untouched")

	require.NoError(t, svc.Delete(context.Background(), cb.ID.Hex()))
	_, err = svc.Get(context.Background(), cb.ID.Hex())
	assert.True(t, domain.IsNotFound(err))
}

func TestChatbotMalformedID(t *testing.T) {
	svc := ChatbotService{Bots: &fakeChatbotStore{}}

	_, err := svc.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidID(err))

	err = svc.Delete(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidID(err))
}
