package service

import (
	"math"
	"time"
)

// RoundingPrecision is the factor used to round displayed values to two
// decimal places.
const RoundingPrecision = 100

// round rounds a float64 value to two decimal places. Used throughout the
// service layer so amounts and percentages render consistently in API
// responses; the metrics engine itself stays unrounded.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// daysBetween returns the number of calendar days from a to b. Both inputs
// are truncated to their UTC calendar date first, so the result is pure day
// arithmetic regardless of the time-of-day or zone on either value.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// direction maps a change amount to the visual class used by the table and
// summary renderers. Zero counts as positive: a flat day renders as a gain,
// not a distinct neutral state.
func direction(amount float64) string {
	if amount < 0 {
		return "negative"
	}
	return "positive"
}
