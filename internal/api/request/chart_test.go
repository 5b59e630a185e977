package request_test

import (
	"testing"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/api/request"
)

func TestParseChartDays(t *testing.T) {
	t.Run("empty selects the server default", func(t *testing.T) {
		days, err := request.ParseChartDays("")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if days != 0 {
			t.Errorf("Expected 0 (server default), got %d", days)
		}
	})

	t.Run("parses a positive integer", func(t *testing.T) {
		days, err := request.ParseChartDays("90")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if days != 90 {
			t.Errorf("Expected 90, got %d", days)
		}
	})

	t.Run("rejects zero, negatives and junk", func(t *testing.T) {
		for _, raw := range []string{"0", "-3", "ten", "2.5"} {
			if _, err := request.ParseChartDays(raw); err == nil {
				t.Errorf("Expected error for %q", raw)
			}
		}
	})
}
