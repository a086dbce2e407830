package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"steeldash/internal/services"
)

// HealthHandler serves the liveness endpoint. It reports the cached
// dataset lifecycle state without forcing a load.
type HealthHandler struct {
	service *services.DashboardService
	version string
	started time.Time
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service *services.DashboardService, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		version: version,
		started: time.Now(),
		logger:  logger.With(slog.String("component", "health_handler")),
	}
}

// HealthCheck handles GET /api/health.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	state, loadErr := h.service.State()
	datasetInfo := map[string]interface{}{
		"state": state,
	}
	if loadErr != "" {
		datasetInfo["error"] = loadErr
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"status":  "healthy",
			"version": h.version,
			"uptime":  time.Since(h.started).String(),
			"dataset": datasetInfo,
		},
	})
}
