package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// DateRepo maintains the ordered shared date header.
type DateRepo struct {
	db *sql.DB
}

func NewDateRepo(db *sql.DB) *DateRepo {
	return &DateRepo{db: db}
}

func (r *DateRepo) Ensure(ctx context.Context, date string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO grid_dates (date) VALUES (?)`, date)
	if err != nil {
		return fmt.Errorf("date ensure: %w", err)
	}
	return nil
}

func (r *DateRepo) Exists(ctx context.Context, date string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT 1 FROM grid_dates WHERE date = ? LIMIT 1`, date)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("date exists: %w", err)
	}
	return true, nil
}

// List returns all date columns in chronological order.
func (r *DateRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date FROM grid_dates ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("date list: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("date scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("date rows: %w", err)
	}
	return out, nil
}
