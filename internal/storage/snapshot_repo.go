package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Upsert records a habit's periodicity under the given effective date.
// Re-recording the same date overwrites rather than duplicates.
func (r *SnapshotRepo) Upsert(ctx context.Context, habitID int64, effectiveDate string, periodicity string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (habit_id, effective_date, periodicity)
		VALUES (?, ?, ?)
		ON CONFLICT(habit_id, effective_date) DO UPDATE SET periodicity = excluded.periodicity
	`, habitID, effectiveDate, periodicity)
	if err != nil {
		return fmt.Errorf("snapshot upsert: %w", err)
	}
	return nil
}

// ListByHabit returns a habit's snapshot history in ascending effective-date order.
func (r *SnapshotRepo) ListByHabit(ctx context.Context, habitID int64) ([]Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, habit_id, effective_date, periodicity
		FROM snapshots
		WHERE habit_id = ?
		ORDER BY effective_date ASC
	`, habitID)
	if err != nil {
		return nil, fmt.Errorf("snapshot list: %w", err)
	}
	defer rows.Close()
	return collectSnapshots(rows)
}

func (r *SnapshotRepo) ListAll(ctx context.Context) ([]Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, habit_id, effective_date, periodicity
		FROM snapshots
		ORDER BY habit_id ASC, effective_date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("snapshot list all: %w", err)
	}
	defer rows.Close()
	return collectSnapshots(rows)
}

func collectSnapshots(rows *sql.Rows) ([]Snapshot, error) {
	var out []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.HabitID, &s.EffectiveDate, &s.Periodicity); err != nil {
			return nil, fmt.Errorf("snapshot scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot rows: %w", err)
	}
	return out, nil
}
