package handlers

import (
	"errors"
	"net/http"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/api/request"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/api/response"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/apperrors"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/service"
)

// SettingHandler handles HTTP requests for display preferences.
type SettingHandler struct {
	settingService *service.SettingService
}

// NewSettingHandler creates a new SettingHandler with the provided service dependency.
func NewSettingHandler(settingService *service.SettingService) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
	}
}

// ThemeResponse is the body of the theme endpoints.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// GetTheme handles GET requests for the stored theme preference.
//
// Endpoint: GET /api/settings/theme
// Response: 200 OK with ThemeResponse ("light" when never set)
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.settingService.GetTheme(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve theme", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, ThemeResponse{Theme: theme})
}

// SetTheme handles PUT requests updating the theme preference.
//
// Endpoint: PUT /api/settings/theme
// Request: {"theme": "light"|"dark"}
// Response: 200 OK with the stored ThemeResponse
// Error: 400 on malformed body or unknown theme, 500 on storage failure
func (h *SettingHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	req, err := request.ParseThemeRequest(r.Body)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.settingService.SetTheme(r.Context(), req.Theme); err != nil {
		if errors.Is(err, apperrors.ErrInvalidTheme) {
			response.RespondError(w, http.StatusBadRequest, "invalid theme", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to store theme", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, ThemeResponse{Theme: req.Theme})
}
