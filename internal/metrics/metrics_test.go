package metrics_test

import (
	"math"
	"testing"
	"time"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/metrics"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func seq(n int) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = float64(i + 1)
	}
	return prices
}

// TestChartWindow verifies the window size invariant: min(n, w) points,
// ascending by date, ending at the latest price.
func TestChartWindow(t *testing.T) {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns exactly windowSize points for a long series", func(t *testing.T) {
		prices := seq(100)

		points := metrics.ChartWindow(prices, start, 30)

		if len(points) != 30 {
			t.Fatalf("Expected 30 points, got %d", len(points))
		}
		if points[len(points)-1].Price != 100 {
			t.Errorf("Expected last point price 100, got %v", points[len(points)-1].Price)
		}
		for i := 1; i < len(points); i++ {
			if points[i].Date <= points[i-1].Date {
				t.Errorf("Dates not ascending at index %d: %s then %s", i, points[i-1].Date, points[i].Date)
			}
		}
	})

	t.Run("returns the whole series when shorter than the window", func(t *testing.T) {
		prices := seq(5)

		points := metrics.ChartWindow(prices, start, 30)

		if len(points) != 5 {
			t.Fatalf("Expected 5 points, got %d", len(points))
		}
		if points[0].Price != 1 || points[4].Price != 5 {
			t.Errorf("Window does not cover the whole series: %+v", points)
		}
	})

	t.Run("derives dates by pure calendar-day arithmetic", func(t *testing.T) {
		prices := seq(60)

		points := metrics.ChartWindow(prices, start, 60)

		if points[0].Date != "2021-01-01" {
			t.Errorf("Expected first date 2021-01-01, got %s", points[0].Date)
		}
		// Index 59 in a non-leap year: 31 days of January + 28 of February
		// land on March 1st.
		if points[59].Date != "2021-03-01" {
			t.Errorf("Expected date at index 59 to be 2021-03-01, got %s", points[59].Date)
		}
	})

	t.Run("ignores the time of day on the start date", func(t *testing.T) {
		noon := time.Date(2021, 1, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))
		prices := seq(2)

		points := metrics.ChartWindow(prices, noon, 30)

		if points[0].Date != "2021-01-01" || points[1].Date != "2021-01-02" {
			t.Errorf("Expected plain calendar dates, got %+v", points)
		}
	})
}

// TestPeriodChanges verifies the look-back table, including the fallback to
// the earliest available price when a period exceeds history.
func TestPeriodChanges(t *testing.T) {
	t.Run("falls back to the earliest price for long look-backs", func(t *testing.T) {
		prices := seq(10) // 1..10, current = 10
		periods := []metrics.PerformancePeriod{{Label: "1 Year", LookbackDays: 365}}

		changes := metrics.PeriodChanges(prices, periods)

		if len(changes) != 1 {
			t.Fatalf("Expected 1 change, got %d", len(changes))
		}
		// Reference must be prices[0] = 1, not an error or a skipped row.
		if !almostEqual(changes[0].AmountChange, 9) {
			t.Errorf("Expected amount change 9, got %v", changes[0].AmountChange)
		}
		if !almostEqual(changes[0].PercentChange, 900) {
			t.Errorf("Expected percent change 900, got %v", changes[0].PercentChange)
		}
	})

	t.Run("computes the reference scenario", func(t *testing.T) {
		prices := []float64{100, 102, 98, 105}
		periods := []metrics.PerformancePeriod{
			{Label: "Today", LookbackDays: 1},
			{Label: "30 Days", LookbackDays: 30},
		}

		changes := metrics.PeriodChanges(prices, periods)

		if changes[0].Label != "Today" || changes[1].Label != "30 Days" {
			t.Fatalf("Period order not preserved: %+v", changes)
		}
		// Today: idx 4-1=3 -> reference 105, zero change.
		if !almostEqual(changes[0].AmountChange, 0) || !almostEqual(changes[0].PercentChange, 0) {
			t.Errorf("Expected Today change 0/0%%, got %+v", changes[0])
		}
		// 30 Days: idx 4-30 < 0 -> fallback to prices[0]=100.
		if !almostEqual(changes[1].AmountChange, 5) || !almostEqual(changes[1].PercentChange, 5) {
			t.Errorf("Expected 30 Days change +5/+5%%, got %+v", changes[1])
		}
	})

	t.Run("yields zero percent when the reference price is zero", func(t *testing.T) {
		prices := []float64{0, 50}
		periods := []metrics.PerformancePeriod{{Label: "30 Days", LookbackDays: 30}}

		changes := metrics.PeriodChanges(prices, periods)

		if !almostEqual(changes[0].AmountChange, 50) {
			t.Errorf("Expected amount change 50, got %v", changes[0].AmountChange)
		}
		if changes[0].PercentChange != 0 {
			t.Errorf("Expected percent change exactly 0, got %v", changes[0].PercentChange)
		}
	})
}

// TestMovingAverageDeviation verifies the trailing average, including the
// use-what-exists policy when history is shorter than the lookback.
func TestMovingAverageDeviation(t *testing.T) {
	t.Run("averages all available values when history is short", func(t *testing.T) {
		prices := []float64{1, 2, 3, 4, 5}

		m := metrics.MovingAverageDeviation(prices, 50)

		// Mean over the 5 available values is 3, not a 50-value window.
		if !almostEqual(m.AmountChange, 2) {
			t.Errorf("Expected amount change 2, got %v", m.AmountChange)
		}
		if !almostEqual(m.PercentChange, 200.0/3.0) {
			t.Errorf("Expected percent change %v, got %v", 200.0/3.0, m.PercentChange)
		}
	})

	t.Run("averages only the lookback window for long series", func(t *testing.T) {
		prices := []float64{1000, 1000, 10, 20, 30, 40}

		m := metrics.MovingAverageDeviation(prices, 4)

		// Average of the last 4 values is 25; current is 40.
		if !almostEqual(m.AmountChange, 15) {
			t.Errorf("Expected amount change 15, got %v", m.AmountChange)
		}
		if !almostEqual(m.PercentChange, 60) {
			t.Errorf("Expected percent change 60, got %v", m.PercentChange)
		}
	})

	t.Run("yields zero percent when the average is zero", func(t *testing.T) {
		prices := []float64{0, 0, 0}

		m := metrics.MovingAverageDeviation(prices, 50)

		if m.AmountChange != 0 || m.PercentChange != 0 {
			t.Errorf("Expected 0/0, got %+v", m)
		}
	})
}

// TestDayChange verifies day-over-day movement and the single-point edge case.
func TestDayChange(t *testing.T) {
	t.Run("compares against the previous day", func(t *testing.T) {
		prices := []float64{100, 102, 98, 105}

		m := metrics.DayChange(prices)

		if !almostEqual(m.AmountChange, 7) {
			t.Errorf("Expected amount change 7, got %v", m.AmountChange)
		}
		if !almostEqual(m.PercentChange, 700.0/98.0) {
			t.Errorf("Expected percent change %v, got %v", 700.0/98.0, m.PercentChange)
		}
	})

	t.Run("yields zero change for a single-point series", func(t *testing.T) {
		m := metrics.DayChange([]float64{42})

		if m.AmountChange != 0 || m.PercentChange != 0 {
			t.Errorf("Expected 0/0 for single-point history, got %+v", m)
		}
	})
}

// TestChange verifies the division-by-zero guard.
func TestChange(t *testing.T) {
	t.Run("zero reference yields zero percent", func(t *testing.T) {
		m := metrics.Change(123.45, 0)

		if !almostEqual(m.AmountChange, 123.45) {
			t.Errorf("Expected amount change 123.45, got %v", m.AmountChange)
		}
		if m.PercentChange != 0 {
			t.Errorf("Expected percent change exactly 0, got %v", m.PercentChange)
		}
	})
}
