package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search over alert and incident
// text fields from the operator UI.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for alert full-text search (title + description)
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_alerts_text_gin
		ON alerts USING gin(to_tsvector('english', title || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create alerts GIN index: %w", err)
	}

	// GIN index for incident full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_incidents_text_gin
		ON incidents USING gin(to_tsvector('english', title || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create incidents GIN index: %w", err)
	}

	return nil
}
