package service

import (
	"fmt"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/config"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/dataset"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/metrics"
)

// MetalService resolves metal names through the dataset store and runs the
// metrics engine over the resulting series. It owns the adjustable engine
// parameters (chart window, moving-average lookback, period table) taken from
// configuration.
type MetalService struct {
	store      *dataset.Store
	windowSize int
	maLookback int
	periods    []metrics.PerformancePeriod
}

// NewMetalService creates a new MetalService backed by the given store.
func NewMetalService(store *dataset.Store, cfg config.MetricsConfig) *MetalService {
	return &MetalService{
		store:      store,
		windowSize: cfg.ChartWindowDays,
		maLookback: cfg.MovingAverageDays,
		periods:    cfg.Periods,
	}
}

// PerformanceRow is one rendered line of the performance table. Direction is
// "positive" or "negative" based on the sign of the amount; zero is positive.
type PerformanceRow struct {
	Label         string  `json:"label"`
	AmountChange  float64 `json:"amount_change"`
	PercentChange float64 `json:"percent_change"`
	Direction     string  `json:"direction"`
}

// MetalSummary is the single-line day-over-day movement for one metal.
type MetalSummary struct {
	Metal         string  `json:"metal"`
	CurrentPrice  float64 `json:"current_price"`
	AmountChange  float64 `json:"amount_change"`
	PercentChange float64 `json:"percent_change"`
	Direction     string  `json:"direction"`
}

// MetalPerformance is the full performance table for one metal: one row per
// configured look-back period plus the trailing-moving-average row.
type MetalPerformance struct {
	Metal         string           `json:"metal"`
	Periods       []PerformanceRow `json:"periods"`
	MovingAverage PerformanceRow   `json:"moving_average"`
}

// MetalOverview bundles everything the dashboard renders for one metal.
type MetalOverview struct {
	Metal         string               `json:"metal"`
	Chart         []metrics.ChartPoint `json:"chart"`
	Periods       []PerformanceRow     `json:"periods"`
	MovingAverage PerformanceRow       `json:"moving_average"`
	Summary       MetalSummary         `json:"summary"`
}

// ListMetals returns the names of all loaded metals in sorted order.
func (s *MetalService) ListMetals() ([]string, error) {
	return s.store.Metals()
}

// GetChart returns the chart window for a metal. A windowDays of 0 selects
// the configured default window size.
func (s *MetalService) GetChart(name string, windowDays int) ([]metrics.ChartPoint, error) {
	if windowDays == 0 {
		windowDays = s.windowSize
	}

	prices, err := s.store.Lookup(name)
	if err != nil {
		return nil, err
	}
	startDate, err := s.store.StartDate()
	if err != nil {
		return nil, err
	}

	return metrics.ChartWindow(prices, startDate, windowDays), nil
}

// GetPerformance returns the look-back period table and the moving-average
// row for a metal.
func (s *MetalService) GetPerformance(name string) (MetalPerformance, error) {
	prices, err := s.store.Lookup(name)
	if err != nil {
		return MetalPerformance{}, err
	}

	return MetalPerformance{
		Metal:         name,
		Periods:       s.periodRows(prices),
		MovingAverage: s.movingAverageRow(prices),
	}, nil
}

// GetSummary returns the day-over-day movement for a metal.
func (s *MetalService) GetSummary(name string) (MetalSummary, error) {
	prices, err := s.store.Lookup(name)
	if err != nil {
		return MetalSummary{}, err
	}
	return s.summary(name, prices), nil
}

// GetOverview returns the chart window, performance table, moving-average row
// and day-over-day summary for a metal in a single payload.
func (s *MetalService) GetOverview(name string) (MetalOverview, error) {
	prices, err := s.store.Lookup(name)
	if err != nil {
		return MetalOverview{}, err
	}
	startDate, err := s.store.StartDate()
	if err != nil {
		return MetalOverview{}, err
	}

	return MetalOverview{
		Metal:         name,
		Chart:         metrics.ChartWindow(prices, startDate, s.windowSize),
		Periods:       s.periodRows(prices),
		MovingAverage: s.movingAverageRow(prices),
		Summary:       s.summary(name, prices),
	}, nil
}

func (s *MetalService) periodRows(prices []float64) []PerformanceRow {
	changes := metrics.PeriodChanges(prices, s.periods)

	rows := make([]PerformanceRow, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, PerformanceRow{
			Label:         c.Label,
			AmountChange:  round(c.AmountChange),
			PercentChange: round(c.PercentChange),
			Direction:     direction(c.AmountChange),
		})
	}
	return rows
}

func (s *MetalService) movingAverageRow(prices []float64) PerformanceRow {
	m := metrics.MovingAverageDeviation(prices, s.maLookback)
	return PerformanceRow{
		Label:         fmt.Sprintf("%d Day Avg", s.maLookback),
		AmountChange:  round(m.AmountChange),
		PercentChange: round(m.PercentChange),
		Direction:     direction(m.AmountChange),
	}
}

func (s *MetalService) summary(name string, prices []float64) MetalSummary {
	m := metrics.DayChange(prices)
	return MetalSummary{
		Metal:         name,
		CurrentPrice:  prices[len(prices)-1],
		AmountChange:  round(m.AmountChange),
		PercentChange: round(m.PercentChange),
		Direction:     direction(m.AmountChange),
	}
}
