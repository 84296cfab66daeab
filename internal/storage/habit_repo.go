package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type HabitRepo struct {
	db *sql.DB
}

func NewHabitRepo(db *sql.DB) *HabitRepo {
	return &HabitRepo{db: db}
}

func (r *HabitRepo) Insert(ctx context.Context, name string, periodicity string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO habits (name, position, periodicity)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM habits), ?)
	`, name, periodicity)
	if err != nil {
		return 0, fmt.Errorf("habit insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("habit last insert id: %w", err)
	}
	return id, nil
}

func (r *HabitRepo) Get(ctx context.Context, id int64) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, position, periodicity FROM habits WHERE id = ?
	`, id)
	return scanHabit(row)
}

func (r *HabitRepo) GetByName(ctx context.Context, name string) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, position, periodicity FROM habits WHERE name = ?
	`, name)
	return scanHabit(row)
}

// ListAll returns habits in row order.
func (r *HabitRepo) ListAll(ctx context.Context) ([]Habit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, position, periodicity
		FROM habits
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("habit list: %w", err)
	}
	defer rows.Close()

	var out []Habit
	for rows.Next() {
		var h Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Position, &h.Periodicity); err != nil {
			return nil, fmt.Errorf("habit scan: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habit list rows: %w", err)
	}
	return out, nil
}

func (r *HabitRepo) Rename(ctx context.Context, id int64, newName string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE habits SET name = ? WHERE id = ?`, newName, id)
	if err != nil {
		return fmt.Errorf("habit rename: %w", err)
	}
	return nil
}

func (r *HabitRepo) UpdatePeriodicity(ctx context.Context, id int64, periodicity string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE habits SET periodicity = ? WHERE id = ?`, periodicity, id)
	if err != nil {
		return fmt.Errorf("habit update periodicity: %w", err)
	}
	return nil
}

// Move places the habit at the given row position and renumbers the rest,
// preserving their relative order.
func (r *HabitRepo) Move(ctx context.Context, id int64, position int) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT id FROM habits ORDER BY position ASC, id ASC`)
		if err != nil {
			return fmt.Errorf("habit move list: %w", err)
		}
		var ids []int64
		for rows.Next() {
			var hid int64
			if err := rows.Scan(&hid); err != nil {
				rows.Close()
				return fmt.Errorf("habit move scan: %w", err)
			}
			ids = append(ids, hid)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("habit move rows: %w", err)
		}

		idx := -1
		for i, hid := range ids {
			if hid == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return fmt.Errorf("habit %d not found", id)
		}
		ids = append(ids[:idx], ids[idx+1:]...)
		if position < 0 {
			position = 0
		}
		if position > len(ids) {
			position = len(ids)
		}
		ids = append(ids[:position], append([]int64{id}, ids[position:]...)...)

		for i, hid := range ids {
			if _, err := tx.ExecContext(ctx, `UPDATE habits SET position = ? WHERE id = ?`, i, hid); err != nil {
				return fmt.Errorf("habit move renumber: %w", err)
			}
		}
		return nil
	})
}

func (r *HabitRepo) Delete(ctx context.Context, id int64) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cells WHERE habit_id = ?`, id); err != nil {
			return fmt.Errorf("habit delete cells: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE habit_id = ?`, id); err != nil {
			return fmt.Errorf("habit delete snapshots: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id); err != nil {
			return fmt.Errorf("habit delete: %w", err)
		}
		return nil
	})
}

func scanHabit(row *sql.Row) (*Habit, error) {
	var h Habit
	if err := row.Scan(&h.ID, &h.Name, &h.Position, &h.Periodicity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("habit scan: %w", err)
	}
	return &h, nil
}
