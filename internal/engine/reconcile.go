package engine

import (
	"context"
	"time"

	"github.com/NicoEre03/habit-tracker/internal/storage"
)

// Reconcile runs the full reconciliation pass: every habit, every date
// column, resolved against the periodicity history, bucketed into accounting
// periods and evaluated. Changed outcomes are written back to the store.
// It recomputes from scratch each run and is idempotent: a second run with
// no intervening external writes produces zero writes.
//
// Malformed data on one habit (bad periodicity, bad column date) degrades
// to defaults or is skipped; it never aborts the pass for other habits.
// Returns the number of cell values written.
func (s *Service) Reconcile(ctx context.Context, today time.Time) (int, error) {
	today = DateOf(today)

	dates, err := s.dates.List(ctx)
	if err != nil {
		return 0, err
	}
	habits, err := s.habits.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	cells, err := s.cells.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	snaps, err := s.snapshots.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	cellsByHabit := make(map[int64]map[string]storage.Cell)
	for _, c := range cells {
		m := cellsByHabit[c.HabitID]
		if m == nil {
			m = make(map[string]storage.Cell)
			cellsByHabit[c.HabitID] = m
		}
		m[c.Date] = c
	}
	// ListAll orders by (habit_id, effective_date), so per-habit slices
	// arrive ascending as ResolveRule requires.
	snapsByHabit := make(map[int64][]storage.Snapshot)
	for _, snap := range snaps {
		snapsByHabit[snap.HabitID] = append(snapsByHabit[snap.HabitID], snap)
	}

	writes := 0
	for _, h := range habits {
		row := make([]BucketCell, 0, len(dates))
		for col, d := range dates {
			date, ok := ParseDate(d)
			if !ok {
				s.log.Warn("skipping unparseable date column", "date", d)
				continue
			}
			value := storage.ValueNeutral
			if c, found := cellsByHabit[h.ID][d]; found {
				value = NormalizeValue(c.Value)
			}
			row = append(row, BucketCell{Date: date, Value: value, Col: col})
		}

		history := snapsByHabit[h.ID]
		resolve := func(date time.Time) (Rule, bool) {
			return ResolveRule(history, h.Periodicity, date)
		}

		for _, b := range buildBuckets(row, resolve) {
			for _, ch := range evaluateBucket(b, today) {
				if err := s.cells.SetValue(ctx, h.ID, FormatDate(ch.Date), ch.Value); err != nil {
					return writes, err
				}
				writes++
			}
		}
	}

	if s.OnReconcile != nil {
		s.OnReconcile(writes)
	}
	return writes, nil
}
