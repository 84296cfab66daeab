package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type CellRepo struct {
	db *sql.DB
}

func NewCellRepo(db *sql.DB) *CellRepo {
	return &CellRepo{db: db}
}

func (r *CellRepo) Get(ctx context.Context, habitID int64, date string) (*Cell, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT habit_id, date, value, note FROM cells WHERE habit_id = ? AND date = ?
	`, habitID, date)
	var c Cell
	if err := row.Scan(&c.HabitID, &c.Date, &c.Value, &c.Note); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("cell get: %w", err)
	}
	return &c, nil
}

func (r *CellRepo) ListAll(ctx context.Context) ([]Cell, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT habit_id, date, value, note
		FROM cells
		ORDER BY habit_id ASC, date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("cell list: %w", err)
	}
	defer rows.Close()

	var out []Cell
	for rows.Next() {
		var c Cell
		if err := rows.Scan(&c.HabitID, &c.Date, &c.Value, &c.Note); err != nil {
			return nil, fmt.Errorf("cell scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cell list rows: %w", err)
	}
	return out, nil
}

// SetValue upserts the cell value, leaving any note in place.
func (r *CellRepo) SetValue(ctx context.Context, habitID int64, date string, value int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cells (habit_id, date, value)
		VALUES (?, ?, ?)
		ON CONFLICT(habit_id, date) DO UPDATE SET value = excluded.value
	`, habitID, date, value)
	if err != nil {
		return fmt.Errorf("cell set value: %w", err)
	}
	return nil
}

// SetNote upserts the cell note, leaving any value in place.
func (r *CellRepo) SetNote(ctx context.Context, habitID int64, date string, note string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cells (habit_id, date, note)
		VALUES (?, ?, ?)
		ON CONFLICT(habit_id, date) DO UPDATE SET note = excluded.note
	`, habitID, date, note)
	if err != nil {
		return fmt.Errorf("cell set note: %w", err)
	}
	return nil
}
