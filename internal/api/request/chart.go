// Package request parses and validates incoming request parameters before
// they reach the service layer.
package request

import (
	"fmt"
	"strconv"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/validation"
)

// ParseChartDays parses the optional days query parameter of the chart
// endpoint. An empty value selects the server's configured default window
// (signalled by returning 0); anything else must be a positive integer.
func ParseChartDays(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("days must be an integer, got %q", raw)
	}
	if err := validation.ValidateLookback(days); err != nil {
		return 0, err
	}
	return days, nil
}
