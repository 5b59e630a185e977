package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Metal table
		CREATE TABLE metal (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE,
			symbol VARCHAR(10) NOT NULL,
			unit VARCHAR(20) NOT NULL DEFAULT 'USD/oz',
			start_date DATE NOT NULL
		);

		-- Metal price table
		CREATE TABLE metal_price (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			metal_id VARCHAR(36) NOT NULL,
			day_index INTEGER NOT NULL,
			price FLOAT NOT NULL,
			FOREIGN KEY(metal_id) REFERENCES metal(id) ON DELETE CASCADE,
			CONSTRAINT unique_metal_day UNIQUE (metal_id, day_index)
		);

		-- Setting table
		CREATE TABLE setting (
			key VARCHAR(50) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}
