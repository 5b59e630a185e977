package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/config"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/dataset"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/metrics"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/repository"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/service"
)

// MakeID returns a fresh UUID string for test rows.
func MakeID() string {
	return uuid.New().String()
}

// MakeMetalName returns a prefix with a random suffix so parallel builders
// never collide on the metal name unique constraint.
func MakeMetalName(prefix string) string {
	return fmt.Sprintf("%s %04d", prefix, rand.Intn(10000)) //nolint:gosec // test data
}

// DefaultMetricsConfig mirrors the production defaults: 30-day chart window,
// 50-day moving average, reference period table.
func DefaultMetricsConfig() config.MetricsConfig {
	return config.MetricsConfig{
		ChartWindowDays:   30,
		MovingAverageDays: 50,
		Periods:           metrics.DefaultPeriods(),
	}
}

// NewTestStore builds a dataset store loaded from whatever metals the test
// has created in the database so far.
func NewTestStore(t *testing.T, db *sql.DB) *dataset.Store {
	t.Helper()

	store := dataset.NewStore()
	loader := dataset.NewLoader(repository.NewPriceRepository(db), store)
	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load test dataset: %v", err)
	}
	return store
}

// NewTestMetalService builds a MetalService over a freshly loaded store with
// the default metrics configuration.
func NewTestMetalService(t *testing.T, db *sql.DB) *service.MetalService {
	t.Helper()

	return service.NewMetalService(NewTestStore(t, db), DefaultMetricsConfig())
}

// NewTestSettingService builds a SettingService over the test database.
func NewTestSettingService(t *testing.T, db *sql.DB) *service.SettingService {
	t.Helper()

	return service.NewSettingService(repository.NewSettingRepository(db))
}

// NewTestImportService builds an ImportService plus the store its loader
// feeds, so tests can observe imported data becoming queryable.
func NewTestImportService(t *testing.T, db *sql.DB) (*service.ImportService, *dataset.Store) {
	t.Helper()

	repo := repository.NewPriceRepository(db)
	store := dataset.NewStore()
	loader := dataset.NewLoader(repo, store)
	return service.NewImportService(repo, loader), store
}
