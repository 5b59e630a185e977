package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/api/request"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/api/response"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/service"
)

// MetalHandler handles HTTP requests for metal price endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the metalService.
type MetalHandler struct {
	metalService *service.MetalService
}

// NewMetalHandler creates a new MetalHandler with the provided service dependency.
func NewMetalHandler(metalService *service.MetalService) *MetalHandler {
	return &MetalHandler{
		metalService: metalService,
	}
}

// GetMetals handles GET requests to list the available metals.
//
// Endpoint: GET /api/metal
// Response: 200 OK with sorted array of metal names
// Error: 503 Service Unavailable if the dataset is not loaded
func (h *MetalHandler) GetMetals(w http.ResponseWriter, r *http.Request) {
	metals, err := h.metalService.ListMetals()
	if err != nil {
		respondLookupError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, metals)
}

// GetOverview handles GET requests for the full dashboard payload of one
// metal: chart window, performance table, moving-average row and summary.
//
// Endpoint: GET /api/metal/{name}/overview
// Response: 200 OK with MetalOverview
// Error: 404 if the metal is unknown, 503 if the dataset is not loaded
func (h *MetalHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	overview, err := h.metalService.GetOverview(name)
	if err != nil {
		respondLookupError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

// GetChart handles GET requests for a metal's chart window.
//
// Endpoint: GET /api/metal/{name}/chart?days=N
// Response: 200 OK with array of date/price points, oldest first
// Error: 400 on invalid days, 404 unknown metal, 503 dataset not loaded
func (h *MetalHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	days, err := request.ParseChartDays(r.URL.Query().Get("days"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid chart window", err.Error())
		return
	}

	points, err := h.metalService.GetChart(name, days)
	if err != nil {
		respondLookupError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, points)
}

// GetPerformance handles GET requests for a metal's performance table.
//
// Endpoint: GET /api/metal/{name}/performance
// Response: 200 OK with MetalPerformance
// Error: 404 unknown metal, 503 dataset not loaded
func (h *MetalHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	performance, err := h.metalService.GetPerformance(name)
	if err != nil {
		respondLookupError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, performance)
}

// GetSummary handles GET requests for a metal's day-over-day summary line.
//
// Endpoint: GET /api/metal/{name}/summary
// Response: 200 OK with MetalSummary
// Error: 404 unknown metal, 503 dataset not loaded
func (h *MetalHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	summary, err := h.metalService.GetSummary(name)
	if err != nil {
		respondLookupError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
