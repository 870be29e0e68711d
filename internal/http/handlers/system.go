package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by the Mongo store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves liveness and connectivity probes.
type SystemHandler struct {
	Store Pinger
}

// GET /api/health
func (h SystemHandler) Health(c *gin.Context) {
	RespondSuccess(c, http.StatusOK, "ok", gin.H{"time": time.Now().UTC()})
}

// GET /api/db-check
func (h SystemHandler) DBCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		RespondError(c, http.StatusInternalServerError, "database unreachable", err)
		return
	}
	RespondSuccess(c, http.StatusOK, "database reachable", nil)
}
