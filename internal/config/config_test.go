package config_test

import (
	"testing"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("SERVER_HOST", "")
		t.Setenv("SERVER_PORT", "")
		t.Setenv("CHART_WINDOW_DAYS", "")
		t.Setenv("MOVING_AVERAGE_DAYS", "")
		t.Setenv("PERFORMANCE_PERIODS", "")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load returned unexpected error: %v", err)
		}

		if cfg.Server.Addr != "localhost:5001" {
			t.Errorf("Expected localhost:5001, got %s", cfg.Server.Addr)
		}
		if cfg.Metrics.ChartWindowDays != 30 {
			t.Errorf("Expected default chart window 30, got %d", cfg.Metrics.ChartWindowDays)
		}
		if cfg.Metrics.MovingAverageDays != 50 {
			t.Errorf("Expected default moving average 50, got %d", cfg.Metrics.MovingAverageDays)
		}
		if len(cfg.Metrics.Periods) != 6 {
			t.Fatalf("Expected 6 default periods, got %d", len(cfg.Metrics.Periods))
		}
		if cfg.Metrics.Periods[0].Label != "Today" || cfg.Metrics.Periods[0].LookbackDays != 1 {
			t.Errorf("Unexpected first period: %+v", cfg.Metrics.Periods[0])
		}
		if cfg.Metrics.Periods[5].Label != "20 Years" || cfg.Metrics.Periods[5].LookbackDays != 7300 {
			t.Errorf("Unexpected last period: %+v", cfg.Metrics.Periods[5])
		}
	})

	t.Run("parses a custom period table", func(t *testing.T) {
		t.Setenv("PERFORMANCE_PERIODS", "Today:1,1 Week:7,90 Days:90")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load returned unexpected error: %v", err)
		}

		if len(cfg.Metrics.Periods) != 3 {
			t.Fatalf("Expected 3 periods, got %d", len(cfg.Metrics.Periods))
		}
		if cfg.Metrics.Periods[1].Label != "1 Week" || cfg.Metrics.Periods[1].LookbackDays != 7 {
			t.Errorf("Unexpected period: %+v", cfg.Metrics.Periods[1])
		}
	})

	t.Run("rejects malformed periods", func(t *testing.T) {
		for _, raw := range []string{"Today", "Today:zero", "Today:0", ":5"} {
			t.Setenv("PERFORMANCE_PERIODS", raw)
			if _, err := config.Load(); err == nil {
				t.Errorf("Expected error for %q", raw)
			}
		}
	})

	t.Run("rejects a non-positive chart window", func(t *testing.T) {
		t.Setenv("PERFORMANCE_PERIODS", "")
		t.Setenv("CHART_WINDOW_DAYS", "0")

		if _, err := config.Load(); err == nil {
			t.Error("Expected error for CHART_WINDOW_DAYS=0")
		}
	})
}
