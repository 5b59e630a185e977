package handlers

import (
	"errors"
	"net/http"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/api/response"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/apperrors"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/service"
)

// DeveloperHandler handles HTTP requests for developer endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the ImportService.
type DeveloperHandler struct {
	importService *service.ImportService
}

// NewDeveloperHandler creates a new DeveloperHandler with the provided service dependency.
func NewDeveloperHandler(importService *service.ImportService) *DeveloperHandler {
	return &DeveloperHandler{
		importService: importService,
	}
}

// ImportResponse reports how many price rows an import stored.
type ImportResponse struct {
	Metal    string `json:"metal"`
	Imported int    `json:"imported"`
}

// ImportPrices handles POST requests ingesting a CSV price history for one
// metal. The metal name comes from the "metal" query parameter, an optional
// ticker from "symbol", and the request body is the CSV file itself with a
// date,price header. The in-memory dataset is reloaded before responding.
//
// Endpoint: POST /api/developer/import-prices?metal=Gold&symbol=XAU
// Response: 200 OK with ImportResponse
// Error: 400 on malformed input, 500 on storage or reload failure
func (h *DeveloperHandler) ImportPrices(w http.ResponseWriter, r *http.Request) {
	metal := r.URL.Query().Get("metal")
	symbol := r.URL.Query().Get("symbol")

	count, err := h.importService.ImportPrices(r.Context(), metal, symbol, r.Body)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmptyMetalName),
			errors.Is(err, apperrors.ErrInvalidCSVHeaders),
			errors.Is(err, apperrors.ErrEmptySeries),
			errors.Is(err, apperrors.ErrSeriesGap),
			errors.Is(err, apperrors.ErrStartDateMismatch):
			response.RespondError(w, http.StatusBadRequest, "invalid import", err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to import prices", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, ImportResponse{Metal: metal, Imported: count})
}
