// Package validation holds small request-level checks shared by the API layer.
package validation

import (
	"fmt"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/apperrors"
)

// Themes accepted by the display-preference endpoint.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidateTheme checks that a theme value is one of the supported options.
func ValidateTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidTheme, theme)
	}
	return nil
}

// ValidateMetalName checks that a metal name parameter is present. Names are
// matched case-sensitively against the dataset; no normalization happens here.
func ValidateMetalName(name string) error {
	if name == "" {
		return apperrors.ErrEmptyMetalName
	}
	return nil
}

// ValidateLookback checks that a window or lookback parameter is positive.
func ValidateLookback(days int) error {
	if days < 1 {
		return fmt.Errorf("%w: %d", apperrors.ErrInvalidLookback, days)
	}
	return nil
}
