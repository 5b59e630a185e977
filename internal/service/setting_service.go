package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/apperrors"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/repository"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/validation"
)

// ThemeKey is the setting key for the dark/light display preference.
const ThemeKey = "theme"

// SettingService handles display-preference persistence. The core metrics
// engine has no notion of theme; this is the external key-value preference
// store the dashboard reads on startup.
type SettingService struct {
	repo *repository.SettingRepository
}

// NewSettingService creates a new SettingService.
func NewSettingService(repo *repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// GetTheme returns the stored theme, defaulting to light when no preference
// has ever been saved.
func (s *SettingService) GetTheme(ctx context.Context) (string, error) {
	setting, err := s.repo.Get(ctx, ThemeKey)
	if errors.Is(err, apperrors.ErrSettingNotFound) {
		return validation.ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveSetting, err)
	}
	return setting.Value, nil
}

// SetTheme validates and persists the theme preference.
func (s *SettingService) SetTheme(ctx context.Context, theme string) error {
	if err := validation.ValidateTheme(theme); err != nil {
		return err
	}
	return s.repo.Set(ctx, ThemeKey, theme)
}
