package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/apperrors"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/model"
)

// PriceRepository provides data access methods for the metal and metal_price
// tables. It handles retrieving metal metadata and historical price data, and
// bulk-writing imported price rows.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new PriceRepository with the provided database connection.
func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// GetMetals retrieves all metals ordered by name.
// Returns an empty slice if no metals exist.
func (r *PriceRepository) GetMetals(ctx context.Context) ([]model.Metal, error) {
	query := `
		SELECT id, name, symbol, unit, start_date
		FROM metal
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query metal table: %w", err)
	}
	defer rows.Close()

	metals := []model.Metal{}

	for rows.Next() {
		var m model.Metal
		var startDateStr string

		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Symbol,
			&m.Unit,
			&startDateStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan metal table results: %w", err)
		}

		m.StartDate, err = ParseTime(startDateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse metal start date: %w", err)
		}

		metals = append(metals, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metal table: %w", err)
	}

	return metals, nil
}

// GetMetalByName retrieves a single metal by its exact name.
// Returns apperrors.ErrMetalNotFound if no such metal exists.
func (r *PriceRepository) GetMetalByName(ctx context.Context, name string) (model.Metal, error) {
	query := `
		SELECT id, name, symbol, unit, start_date
		FROM metal
		WHERE name = ?
	`

	var m model.Metal
	var startDateStr string

	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&m.ID,
		&m.Name,
		&m.Symbol,
		&m.Unit,
		&startDateStr,
	)
	if err == sql.ErrNoRows {
		return model.Metal{}, apperrors.ErrMetalNotFound
	}
	if err != nil {
		return model.Metal{}, fmt.Errorf("failed to query metal by name: %w", err)
	}

	m.StartDate, err = ParseTime(startDateStr)
	if err != nil {
		return model.Metal{}, fmt.Errorf("failed to parse metal start date: %w", err)
	}

	return m, nil
}

// CreateMetal inserts a new metal and returns it with a generated ID.
func (r *PriceRepository) CreateMetal(ctx context.Context, m model.Metal) (model.Metal, error) {
	m.ID = uuid.New().String()
	if m.Unit == "" {
		m.Unit = "USD/oz"
	}

	query := `
		INSERT INTO metal (id, name, symbol, unit, start_date)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Symbol, m.Unit, m.StartDate.Format("2006-01-02"))
	if err != nil {
		return model.Metal{}, fmt.Errorf("failed to insert metal: %w", err)
	}

	return m, nil
}

// GetPrices retrieves a metal's price rows ordered by day index ascending.
// Returns an empty slice if the metal has no prices.
func (r *PriceRepository) GetPrices(ctx context.Context, metalID string) ([]model.MetalPrice, error) {
	query := `
		SELECT id, metal_id, day_index, price
		FROM metal_price
		WHERE metal_id = ?
		ORDER BY day_index ASC
	`

	rows, err := r.db.QueryContext(ctx, query, metalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query metal_price table: %w", err)
	}
	defer rows.Close()

	prices := []model.MetalPrice{}

	for rows.Next() {
		var p model.MetalPrice

		err := rows.Scan(
			&p.ID,
			&p.MetalID,
			&p.DayIndex,
			&p.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan metal_price table results: %w", err)
		}
		prices = append(prices, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metal_price table: %w", err)
	}

	return prices, nil
}

// UpsertPrices writes price rows for a metal inside a single transaction.
// An existing row for the same (metal, day index) pair is overwritten, so
// re-importing a file is idempotent.
func (r *PriceRepository) UpsertPrices(ctx context.Context, metalID string, prices []model.MetalPrice) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO metal_price (id, metal_id, day_index, price)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(metal_id, day_index) DO UPDATE SET price = excluded.price
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare price insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range prices {
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), metalID, p.DayIndex, p.Price); err != nil {
			return fmt.Errorf("failed to insert price for day %d: %w", p.DayIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price import: %w", err)
	}
	return nil
}
