package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS habits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			position INTEGER NOT NULL,
			periodicity TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS cells (
			habit_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			value INTEGER NOT NULL DEFAULT 0,
			note TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (habit_id, date),
			FOREIGN KEY(habit_id) REFERENCES habits(id)
		);`,
		// Append-only periodicity history; one entry per habit per calendar date.
		`CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			habit_id INTEGER NOT NULL,
			effective_date TEXT NOT NULL,
			periodicity TEXT NOT NULL DEFAULT '',
			UNIQUE(habit_id, effective_date),
			FOREIGN KEY(habit_id) REFERENCES habits(id)
		);`,
		// The shared date header. Every habit is accounted against every
		// column here; a missing cells row reads as a neutral cell.
		`CREATE TABLE IF NOT EXISTS grid_dates (
			date TEXT PRIMARY KEY
		);`,
		`CREATE INDEX IF NOT EXISTS idx_cells_habit_id ON cells(habit_id);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_habit_date ON snapshots(habit_id, effective_date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
