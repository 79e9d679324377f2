package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fatah2004/KechEx/internal/store"
	"github.com/fatah2004/KechEx/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides health endpoint.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// GetHealth responds with service and document store status. The probe
// read hits a reserved id; a not-found answer still proves the store is
// reachable.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	storeStatus := "connected"
	_, err := h.store.GetDocument(c.Request.Context(), store.CollectionProducts, "__health__")
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		storeStatus = "disconnected"
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"documentStore": gin.H{
			"status": storeStatus,
		},
	})
}
