package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

const pingTimeout = 2 * time.Second

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
	Root(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	store   database.Pinger
	version string
}

func NewHealthHandler(store database.Pinger, version string) HealthHandler {
	return &healthHandlerImpl{store: store, version: version}
}

// Health handles GET /health
func (h *healthHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		slog.Error("Health check failed", "error", err)
		response.ServiceUnavailable(w, "Database unavailable")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Root handles GET /
func (h *healthHandlerImpl) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to HRMS Lite API",
		"version": h.version,
	})
}
