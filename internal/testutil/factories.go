package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/model"
)

// MetalBuilder provides a fluent interface for creating test metals with
// price history.
//
// Example usage:
//
//	// Simple creation with defaults
//	metal := testutil.NewMetal().Build(t, db)
//
//	// Customized metal with a four-day series
//	metal := testutil.NewMetal().
//	    WithName("Gold").
//	    WithStartDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)).
//	    WithPrices(100, 102, 98, 105).
//	    Build(t, db)
type MetalBuilder struct {
	ID        string
	Name      string
	Symbol    string
	Unit      string
	StartDate time.Time
	Prices    []float64
}

// NewMetal creates a MetalBuilder with sensible defaults.
func NewMetal() *MetalBuilder {
	return &MetalBuilder{
		ID:        MakeID(),
		Name:      MakeMetalName("Test Metal"),
		Symbol:    "XAU",
		Unit:      "USD/oz",
		StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *MetalBuilder) WithID(id string) *MetalBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *MetalBuilder) WithName(name string) *MetalBuilder {
	b.Name = name
	return b
}

// WithSymbol sets a custom ticker symbol.
func (b *MetalBuilder) WithSymbol(symbol string) *MetalBuilder {
	b.Symbol = symbol
	return b
}

// WithStartDate sets the series origin date.
func (b *MetalBuilder) WithStartDate(date time.Time) *MetalBuilder {
	b.StartDate = date
	return b
}

// WithPrices sets the daily price series, one value per day from the start date.
func (b *MetalBuilder) WithPrices(prices ...float64) *MetalBuilder {
	b.Prices = prices
	return b
}

// Build creates the metal and its price rows in the database and returns it.
func (b *MetalBuilder) Build(t *testing.T, db *sql.DB) model.Metal {
	t.Helper()

	metalQuery := `
		INSERT INTO metal (id, name, symbol, unit, start_date)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(metalQuery, b.ID, b.Name, b.Symbol, b.Unit, b.StartDate.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("Failed to create test metal: %v", err)
	}

	priceQuery := `
		INSERT INTO metal_price (id, metal_id, day_index, price)
		VALUES (?, ?, ?, ?)
	`

	for i, price := range b.Prices {
		if _, err := db.Exec(priceQuery, MakeID(), b.ID, i, price); err != nil {
			t.Fatalf("Failed to create test price at day %d: %v", i, err)
		}
	}

	return model.Metal{
		ID:        b.ID,
		Name:      b.Name,
		Symbol:    b.Symbol,
		Unit:      b.Unit,
		StartDate: b.StartDate,
	}
}
