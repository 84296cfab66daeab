package engine

import (
	"sort"
	"time"

	"github.com/NicoEre03/habit-tracker/internal/storage"
)

// CellChange is a pending retroactive write produced by evaluation.
type CellChange struct {
	Date  time.Time
	Value int
}

func isDone(v int) bool {
	return v == storage.ValueDone || v == storage.ValueDoneAlt
}

// failScore orders non-done cells for failure selection: cells that are
// already failed stay failed before untouched cells are drafted in, and
// excused cells are drafted last.
func failScore(v int) int {
	switch v {
	case storage.ValueFailed:
		return 0
	case storage.ValueNeutral:
		return 1
	default:
		return 2
	}
}

// evaluateBucket assigns outcomes to the bucket's undetermined cells
// ("undetermined" = not an explicit completion). It never downgrades a
// done value, only emits changes whose new value differs from the current
// one, and is idempotent: re-running on its own output yields no changes.
//
// today must be a bare calendar date (see DateOf).
func evaluateBucket(b Bucket, today time.Time) []CellChange {
	if b.Unit == UnitDay {
		var out []CellChange
		for _, c := range b.Cells {
			if !c.Date.Before(today) {
				continue
			}
			if c.Value == storage.ValueNeutral || c.Value == storage.ValueExcused {
				out = append(out, CellChange{Date: c.Date, Value: storage.ValueFailed})
			}
		}
		return out
	}

	done := 0
	for _, c := range b.Cells {
		if isDone(c.Value) {
			done++
		}
	}

	// The period is elapsed iff its key sorts before today's key for the
	// same unit. A bucket ending mid-calendar-week is still current when
	// today falls in the same ISO week.
	if b.Key.Before(keyFor(b.Unit, today)) {
		needed := b.Target - done
		if needed < 0 {
			needed = 0
		}

		nonDone := make([]BucketCell, 0, len(b.Cells))
		for _, c := range b.Cells {
			if !isDone(c.Value) {
				nonDone = append(nonDone, c)
			}
		}
		// Ties between equal scores break by column order, keeping the
		// pass deterministic and re-runnable.
		sort.SliceStable(nonDone, func(i, j int) bool {
			si, sj := failScore(nonDone[i].Value), failScore(nonDone[j].Value)
			if si != sj {
				return si < sj
			}
			return nonDone[i].Col < nonDone[j].Col
		})

		var out []CellChange
		for i, c := range nonDone {
			want := storage.ValueExcused
			if i < needed {
				want = storage.ValueFailed
			}
			if c.Value != want {
				out = append(out, CellChange{Date: c.Date, Value: want})
			}
		}
		return out
	}

	// Period still open: a skipped past day is excused, not failed, as long
	// as the target is still reachable with the slots that remain.
	remaining := 0
	for _, c := range b.Cells {
		if !c.Date.Before(today) {
			remaining++
		}
	}
	if done+remaining < b.Target {
		return nil
	}

	var out []CellChange
	for _, c := range b.Cells {
		if c.Date.Before(today) && c.Value == storage.ValueNeutral {
			out = append(out, CellChange{Date: c.Date, Value: storage.ValueExcused})
		}
	}
	return out
}
