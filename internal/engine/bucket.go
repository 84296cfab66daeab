package engine

import "time"

// PeriodKey identifies one accounting period. Day keys are (year, month,
// day), week keys are (ISO year, ISO week, 0) and month keys are
// (year, month, 0). Keys compare lexicographically, which orders periods
// chronologically within a unit.
type PeriodKey struct {
	Y int
	M int
	D int
}

func keyFor(unit PeriodUnit, date time.Time) PeriodKey {
	switch unit {
	case UnitWeek:
		iy, iw := date.ISOWeek()
		return PeriodKey{Y: iy, M: iw}
	case UnitMonth:
		y, m, _ := date.Date()
		return PeriodKey{Y: y, M: int(m)}
	default:
		y, m, d := date.Date()
		return PeriodKey{Y: y, M: int(m), D: d}
	}
}

func (k PeriodKey) Before(o PeriodKey) bool {
	if k.Y != o.Y {
		return k.Y < o.Y
	}
	if k.M != o.M {
		return k.M < o.M
	}
	return k.D < o.D
}

// BucketCell is one dated observation inside a bucket. Col is the cell's
// index in the shared date header, used for deterministic tie-breaking.
type BucketCell struct {
	Date  time.Time
	Value int
	Col   int
}

// Bucket is a contiguous run of same-unit, same-key dated cells evaluated
// together against a single target count.
type Bucket struct {
	Unit   PeriodUnit
	Key    PeriodKey
	Target int
	Cells  []BucketCell
}

// buildBuckets walks a habit's cells in ascending date order and groups them
// into accounting periods. resolve returns the rule in force on a date;
// ok=false (habit did not exist) closes any open bucket and skips the date.
//
// While a bucket stays open its target tracks the last resolved rule's
// count: a mid-period frequency edit takes effect for the whole period's
// evaluation, not just forward.
func buildBuckets(cells []BucketCell, resolve func(time.Time) (Rule, bool)) []Bucket {
	var out []Bucket
	var open *Bucket

	for _, c := range cells {
		rule, ok := resolve(c.Date)
		if !ok {
			if open != nil {
				out = append(out, *open)
				open = nil
			}
			continue
		}

		key := keyFor(rule.Unit, c.Date)
		if open != nil && open.Unit == rule.Unit && open.Key == key {
			open.Cells = append(open.Cells, c)
			open.Target = rule.Count
			continue
		}
		if open != nil {
			out = append(out, *open)
		}
		open = &Bucket{
			Unit:   rule.Unit,
			Key:    key,
			Target: rule.Count,
			Cells:  []BucketCell{c},
		}
	}
	if open != nil {
		out = append(out, *open)
	}
	return out
}
