package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/metrics"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Metrics  MetricsConfig
	Reload   ReloadConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// MetricsConfig holds the adjustable parameters of the metrics engine:
// how many days the chart window covers, the trailing-moving-average
// lookback, and the performance period table.
type MetricsConfig struct {
	ChartWindowDays   int
	MovingAverageDays int
	Periods           []metrics.PerformancePeriod
}

// ReloadConfig holds the optional cron schedule for reloading the price
// dataset from the database. Empty disables scheduled reloads.
type ReloadConfig struct {
	Schedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	chartWindow, err := getEnvInt("CHART_WINDOW_DAYS", 30)
	if err != nil {
		return nil, err
	}
	maLookback, err := getEnvInt("MOVING_AVERAGE_DAYS", 50)
	if err != nil {
		return nil, err
	}
	periods, err := parsePeriods(os.Getenv("PERFORMANCE_PERIODS"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/metal_prices.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Metrics: MetricsConfig{
			ChartWindowDays:   chartWindow,
			MovingAverageDays: maLookback,
			Periods:           periods,
		},
		Reload: ReloadConfig{
			Schedule: os.Getenv("RELOAD_SCHEDULE"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// parsePeriods parses the PERFORMANCE_PERIODS value, a comma-separated list
// of label:days pairs, e.g. "Today:1,30 Days:30,1 Year:365". An empty value
// yields the default period table.
func parsePeriods(raw string) ([]metrics.PerformancePeriod, error) {
	if raw == "" {
		return metrics.DefaultPeriods(), nil
	}

	parts := strings.Split(raw, ",")
	periods := make([]metrics.PerformancePeriod, 0, len(parts))
	for _, part := range parts {
		label, daysStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok || label == "" {
			return nil, fmt.Errorf("invalid performance period %q, expected label:days", part)
		}
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 1 {
			return nil, fmt.Errorf("invalid look-back days in period %q", part)
		}
		periods = append(periods, metrics.PerformancePeriod{Label: label, LookbackDays: days})
	}
	return periods, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets a positive integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, value)
	}
	return n, nil
}
