package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/api/response"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondLookupError maps dataset lookup failures to HTTP statuses. An
// unknown metal is a normal empty selection (404); an uninitialized dataset
// is a setup fault the operator must fix, so it reports 503 rather than
// inviting a retry with a different name.
func respondLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMetalNotFound):
		response.RespondError(w, http.StatusNotFound, "metal not found", "")
	case errors.Is(err, apperrors.ErrDatasetUninitialized):
		response.RespondError(w, http.StatusServiceUnavailable, "price dataset not initialized", "")
	default:
		response.RespondError(w, http.StatusInternalServerError, "failed to compute metrics", err.Error())
	}
}
