package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"steeldash/internal/dataset"
	apierrors "steeldash/internal/errors"
	"steeldash/internal/middleware"
	"steeldash/internal/services"
)

// DashboardHandler serves the dashboard data API: dataset metadata,
// filtered rows, KPI summary and map points.
type DashboardHandler struct {
	service  *services.DashboardService
	logger   *slog.Logger
	validate *validator.Validate
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service *services.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:  service,
		logger:   logger.With(slog.String("component", "dashboard_handler")),
		validate: validator.New(),
	}
}

// Routes returns the dashboard routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/meta", h.GetMeta)
	r.Get("/plants", h.GetPlants)
	r.Get("/summary", h.GetSummary)
	r.Get("/map", h.GetMap)
	return r
}

// GetMeta handles GET /api/dashboard/meta.
func (h *DashboardHandler) GetMeta(w http.ResponseWriter, r *http.Request) {
	meta, err := h.service.Meta(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   meta,
	})
}

// GetPlants handles GET /api/dashboard/plants with the filter query
// parameters.
func (h *DashboardHandler) GetPlants(w http.ResponseWriter, r *http.Request) {
	params, ok := h.filterParams(w, r)
	if !ok {
		return
	}
	table, err := h.service.Plants(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   table,
		"count":  len(table.Records),
	})
}

// GetSummary handles GET /api/dashboard/summary with the filter query
// parameters.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	params, ok := h.filterParams(w, r)
	if !ok {
		return
	}
	summary, err := h.service.Summary(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

// GetMap handles GET /api/dashboard/map with the filter query
// parameters.
func (h *DashboardHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	params, ok := h.filterParams(w, r)
	if !ok {
		return
	}
	points, err := h.service.MapPoints(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   points,
		"count":  len(points),
	})
}

func (h *DashboardHandler) filterParams(w http.ResponseWriter, r *http.Request) (dataset.Params, bool) {
	req, apiErr := parseFilterRequest(r, h.validate)
	if apiErr != nil {
		h.logger.WarnContext(r.Context(), "rejected filter request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("error", apiErr.Message))
		render.Render(w, r, apierrors.NewErrorResponse(apiErr))
		return dataset.Params{}, false
	}
	return req.Params(), true
}

func (h *DashboardHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apierrors.FromDataset(err)
	h.logger.ErrorContext(r.Context(), "dashboard request failed",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("error_code", apiErr.ErrorCode),
		slog.String("error", err.Error()))
	render.Render(w, r, apierrors.NewErrorResponse(apiErr))
}
