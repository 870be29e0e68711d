package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"voxia/internal/domain"
	"voxia/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubRequestStore struct {
	docs []models.TravelRequest
}

func (s *stubRequestStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string, now time.Time) (models.TravelRequest, error) {
	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs[i].Status = status
			s.docs[i].Approval.Status = status
			s.docs[i].UpdatedAt = now
			return s.docs[i], nil
		}
	}
	return models.TravelRequest{}, domain.NotFoundError{Resource: "travel request"}
}

func (s *stubRequestStore) CountAll(context.Context) (int64, error) {
	return int64(len(s.docs)), nil
}

func (s *stubRequestStore) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, d := range s.docs {
		if strings.EqualFold(d.Status, status) {
			n++
		}
	}
	return n, nil
}

func (s *stubRequestStore) CountByOwner(context.Context, string) (int64, error) { return 0, nil }

func (s *stubRequestStore) CountByOwnerAndStatus(context.Context, string, string) (int64, error) {
	return 0, nil
}

func (s *stubRequestStore) ListAll(context.Context) ([]models.TravelRequest, error) {
	return s.docs, nil
}

func (s *stubRequestStore) ListByStatus(context.Context, string) ([]models.TravelRequest, error) {
	return s.docs, nil
}

func (s *stubRequestStore) ListByOwner(context.Context, string) ([]models.TravelRequest, error) {
	return s.docs, nil
}

func (s *stubRequestStore) LatestByOwner(_ context.Context, email string) (*models.TravelRequest, error) {
	var latest *models.TravelRequest
	for i := range s.docs {
		if s.docs[i].UserEmail != email {
			continue
		}
		if latest == nil || s.docs[i].CreatedAt.After(latest.CreatedAt) {
			latest = &s.docs[i]
		}
	}
	return latest, nil
}

type stubEmployeeStore struct{}

func (stubEmployeeStore) CountByRole(context.Context, string) (int64, error) { return 0, nil }

func (stubEmployeeStore) ListByRole(context.Context, string) ([]models.User, error) {
	return nil, nil
}

func setupDashboardRouter(store *stubRequestStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(store, stubEmployeeStore{})

	r := gin.New()
	r.GET("/api/dashboard/pending-travel-request-count", h.PendingTravelRequestCount)
	r.GET("/api/dashboard/travel-requests/:id/latest-status", h.LatestStatusForUser)
	r.PUT("/api/dashboard/travel-requests/:id/status", h.UpdateTravelRequestStatus)
	return r
}

func putStatus(t *testing.T, r *gin.Engine, id, status string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"status": status})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/dashboard/travel-requests/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestUpdateStatusEndpoint(t *testing.T) {
	doc := models.TravelRequest{
		ID:        primitive.NewObjectID(),
		UserEmail: "alice@example.com",
		Status:    "pending",
		CreatedAt: time.Now(),
	}
	store := &stubRequestStore{docs: []models.TravelRequest{doc}}
	r := setupDashboardRouter(store)

	rec := putStatus(t, r, doc.ID.Hex(), "Approved")
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, true, env["success"])
	data := env["data"].(map[string]any)
	updated := data["updatedTravelRequest"].(map[string]any)
	assert.Equal(t, "approved", updated["status"])
	assert.Equal(t, "approved", store.docs[0].Status)
}

func TestUpdateStatusEndpointRejectsUnknownStatus(t *testing.T) {
	doc := models.TravelRequest{ID: primitive.NewObjectID(), Status: "pending"}
	store := &stubRequestStore{docs: []models.TravelRequest{doc}}
	r := setupDashboardRouter(store)

	rec := putStatus(t, r, doc.ID.Hex(), "INVALID")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "pending", store.docs[0].Status, "document must not mutate")
}

func TestUpdateStatusEndpointUnknownID(t *testing.T) {
	r := setupDashboardRouter(&stubRequestStore{})

	rec := putStatus(t, r, primitive.NewObjectID().Hex(), "approved")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusEndpointMalformedID(t *testing.T) {
	r := setupDashboardRouter(&stubRequestStore{})

	rec := putStatus(t, r, "not-an-id", "approved")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLatestStatusEndpointNullPayload(t *testing.T) {
	r := setupDashboardRouter(&stubRequestStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/travel-requests/nobody@example.com/latest-status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	data := env["data"].(map[string]any)
	assert.Nil(t, data["status"])
}

func TestLatestStatusEndpoint(t *testing.T) {
	t1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	store := &stubRequestStore{docs: []models.TravelRequest{
		{ID: primitive.NewObjectID(), UserEmail: "alice@example.com", Status: "pending", CreatedAt: t1},
		{ID: primitive.NewObjectID(), UserEmail: "alice@example.com", Status: "approved", CreatedAt: t1.Add(time.Hour)},
	}}
	r := setupDashboardRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/travel-requests/alice@example.com/latest-status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	data := env["data"].(map[string]any)
	assert.Equal(t, "approved", data["status"])
}

func TestPendingCountEndpoint(t *testing.T) {
	store := &stubRequestStore{docs: []models.TravelRequest{
		{ID: primitive.NewObjectID(), Status: "pending"},
		{ID: primitive.NewObjectID(), Status: "PENDING"},
		{ID: primitive.NewObjectID(), Status: "approved"},
	}}
	r := setupDashboardRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/pending-travel-request-count", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	data := env["data"].(map[string]any)
	assert.Equal(t, float64(2), data["pendingRequestCount"])
}
