package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/apperrors"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/model"
)

// SettingRepository provides data access methods for the setting table, a
// small key/value store for display preferences.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get retrieves a setting by key.
// Returns apperrors.ErrSettingNotFound if the key has never been set.
func (r *SettingRepository) Get(ctx context.Context, key string) (model.Setting, error) {
	query := `SELECT key, value FROM setting WHERE key = ?`

	var s model.Setting
	err := r.db.QueryRowContext(ctx, query, key).Scan(&s.Key, &s.Value)
	if err == sql.ErrNoRows {
		return model.Setting{}, apperrors.ErrSettingNotFound
	}
	if err != nil {
		return model.Setting{}, fmt.Errorf("failed to query setting table: %w", err)
	}

	return s, nil
}

// Set stores a setting value, overwriting any previous value for the key.
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO setting (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write setting: %w", err)
	}
	return nil
}
