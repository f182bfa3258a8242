package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		id              INTEGER PRIMARY KEY,
		name            TEXT    NOT NULL,
		property_types  TEXT    NOT NULL,
		price_bucket    TEXT    NOT NULL,
		bedroom_options TEXT    NOT NULL,
		location        TEXT    NOT NULL DEFAULT '',
		possession      TEXT    NOT NULL DEFAULT '',
		amenities       TEXT    NOT NULL DEFAULT '[]',
		created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
