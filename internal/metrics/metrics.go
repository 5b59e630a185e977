// Package metrics computes derived figures over a fixed-origin daily price
// series: windowed chart points, look-back performance, trailing-moving-average
// deviation and day-over-day movement. All functions are pure, allocate fresh
// results on every call and never abort the process; degenerate inputs produce
// defined outputs rather than faults.
package metrics

import "time"

// DateFormat is the calendar-day format emitted on chart points.
const DateFormat = "2006-01-02"

// DerivedMetric describes the movement of the latest price relative to a
// reference value. PercentChange is 0 exactly when the reference is 0.
type DerivedMetric struct {
	AmountChange  float64 `json:"amount_change"`
	PercentChange float64 `json:"percent_change"`
}

// PerformancePeriod names a look-back window measured in days before the most
// recent data point.
type PerformancePeriod struct {
	Label        string
	LookbackDays int
}

// PeriodChange pairs a period label with its computed metric.
type PeriodChange struct {
	Label         string  `json:"label"`
	AmountChange  float64 `json:"amount_change"`
	PercentChange float64 `json:"percent_change"`
}

// ChartPoint is one plotted day.
type ChartPoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// DefaultPeriods returns the reference look-back table. It is a configuration
// value, not an engine constant: PeriodChanges accepts any period list.
func DefaultPeriods() []PerformancePeriod {
	return []PerformancePeriod{
		{Label: "Today", LookbackDays: 1},
		{Label: "30 Days", LookbackDays: 30},
		{Label: "6 Months", LookbackDays: 180},
		{Label: "1 Year", LookbackDays: 365},
		{Label: "5 Years", LookbackDays: 1825},
		{Label: "20 Years", LookbackDays: 7300},
	}
}

// Change computes the movement from reference to current. A zero reference
// yields 0% rather than a division fault.
func Change(current, reference float64) DerivedMetric {
	amount := current - reference
	percent := 0.0
	if reference != 0 {
		percent = amount / reference * 100
	}
	return DerivedMetric{AmountChange: amount, PercentChange: percent}
}

// ChartWindow returns the most recent min(len(prices), windowSize) points in
// ascending date order. Day i is always exactly i days after startDate: dates
// are derived by calendar arithmetic on the UTC date, so local timezone and
// DST transitions cannot shift a point.
func ChartWindow(prices []float64, startDate time.Time, windowSize int) []ChartPoint {
	n := len(prices)
	first := n - windowSize
	if first < 0 {
		first = 0
	}

	origin := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)

	points := make([]ChartPoint, 0, n-first)
	for i := first; i < n; i++ {
		points = append(points, ChartPoint{
			Date:  origin.AddDate(0, 0, i).Format(DateFormat),
			Price: prices[i],
		})
	}
	return points
}

// PeriodChanges computes one entry per period, preserving the input order.
// For a period of d days the reference is prices[n-d]; when the look-back
// reaches past the first data point the earliest available price is used
// instead, so long windows report the change since the start of the dataset
// rather than erroring or dropping the row. The series must be non-empty;
// callers are expected to have resolved it through the dataset store first.
func PeriodChanges(prices []float64, periods []PerformancePeriod) []PeriodChange {
	n := len(prices)
	current := prices[n-1]

	changes := make([]PeriodChange, 0, len(periods))
	for _, p := range periods {
		idx := n - p.LookbackDays
		reference := prices[0]
		if idx >= 0 {
			reference = prices[idx]
		}
		m := Change(current, reference)
		changes = append(changes, PeriodChange{
			Label:         p.Label,
			AmountChange:  m.AmountChange,
			PercentChange: m.PercentChange,
		})
	}
	return changes
}

// MovingAverageDeviation compares the latest price against the arithmetic
// mean of the most recent min(lookback, len(prices)) values. When history is
// shorter than the lookback the average covers everything available.
func MovingAverageDeviation(prices []float64, lookback int) DerivedMetric {
	n := len(prices)
	effective := lookback
	if n < effective {
		effective = n
	}

	sum := 0.0
	for _, p := range prices[n-effective:] {
		sum += p
	}
	average := sum / float64(effective)

	return Change(prices[n-1], average)
}

// DayChange reports movement against the previous day's price. With fewer
// than two points the current price is its own reference, yielding a zero
// change rather than an error.
func DayChange(prices []float64) DerivedMetric {
	n := len(prices)
	current := prices[n-1]
	reference := current
	if n >= 2 {
		reference = prices[n-2]
	}
	return Change(current, reference)
}
