package engine

import (
	"context"
	"time"

	"github.com/NicoEre03/habit-tracker/internal/storage"
)

// GridCell is the user-facing cell payload.
type GridCell struct {
	Val  int    `json:"val"`
	Note string `json:"note"`
}

type GridRow struct {
	Name        string
	Periodicity string
	Cells       []GridCell
}

// Grid is the assembled user-facing view: a shared date header plus one row
// per habit in row order.
type Grid struct {
	Dates []string
	Rows  []GridRow
}

// Wire renders the grid in the row-major wire format: row 0 is
// [null, null, date...], each habit row is [name, periodicity, {val,note}...].
func (g *Grid) Wire() [][]any {
	header := make([]any, 0, len(g.Dates)+2)
	header = append(header, nil, nil)
	for _, d := range g.Dates {
		header = append(header, d)
	}

	out := make([][]any, 0, len(g.Rows)+1)
	out = append(out, header)
	for _, r := range g.Rows {
		row := make([]any, 0, len(r.Cells)+2)
		row = append(row, r.Name, r.Periodicity)
		for _, c := range r.Cells {
			row = append(row, c)
		}
		out = append(out, row)
	}
	return out
}

// Project assembles the grid. Each habit's displayed periodicity is resolved
// against today through the snapshot history, so it reflects history-aware
// resolution rather than the raw live value. Callers run Reconcile first.
func (s *Service) Project(ctx context.Context, today time.Time) (*Grid, error) {
	today = DateOf(today)

	dates, err := s.dates.List(ctx)
	if err != nil {
		return nil, err
	}
	habits, err := s.habits.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	cells, err := s.cells.ListAll(ctx)
	if err != nil {
		return nil, err
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

	g := &Grid{Dates: dates}
	for _, h := range habits {
		history, err := s.snapshots.ListByHabit(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		periodicity := ""
		if rule, ok := ResolveRule(history, h.Periodicity, today); ok {
			periodicity = rule.String()
		}

		row := GridRow{
			Name:        h.Name,
			Periodicity: periodicity,
			Cells:       make([]GridCell, 0, len(dates)),
		}
		for _, d := range dates {
			gc := GridCell{}
			if c, found := cellsByHabit[h.ID][d]; found {
				gc.Val = NormalizeValue(c.Value)
				gc.Note = c.Note
			}
			row.Cells = append(row.Cells, gc)
		}
		g.Rows = append(g.Rows, row)
	}
	return g, nil
}
