package engine

import (
	"testing"
	"time"

	"github.com/NicoEre03/habit-tracker/internal/storage"
)

func day(s string) time.Time {
	t, ok := ParseDate(s)
	if !ok {
		panic("bad test date: " + s)
	}
	return t
}

func cellsFor(dates ...string) []BucketCell {
	out := make([]BucketCell, 0, len(dates))
	for i, d := range dates {
		out = append(out, BucketCell{Date: day(d), Col: i})
	}
	return out
}

func TestKeyForISOWeek(t *testing.T) {
	// 2025-06-16 is a Monday; the ISO week runs through Sunday 2025-06-22.
	mon := keyFor(UnitWeek, day("2025-06-16"))
	sun := keyFor(UnitWeek, day("2025-06-22"))
	if mon != sun {
		t.Fatalf("Monday and Sunday of one ISO week got different keys: %+v vs %+v", mon, sun)
	}
	next := keyFor(UnitWeek, day("2025-06-23"))
	if !mon.Before(next) {
		t.Fatalf("week key %+v should sort before %+v", mon, next)
	}
	// Year boundary: 2024-12-30 (Monday) belongs to ISO week 1 of 2025.
	if k := keyFor(UnitWeek, day("2024-12-30")); k.Y != 2025 || k.M != 1 {
		t.Fatalf("2024-12-30 ISO key=%+v, want {2025 1 0}", k)
	}
}

func TestBuildBucketsDaily(t *testing.T) {
	resolve := func(time.Time) (Rule, bool) { return Rule{1, UnitDay}, true }
	got := buildBuckets(cellsFor("2025-06-16", "2025-06-17", "2025-06-18"), resolve)
	if len(got) != 3 {
		t.Fatalf("daily buckets=%d, want 3", len(got))
	}
	for _, b := range got {
		if len(b.Cells) != 1 || b.Target != 1 || b.Unit != UnitDay {
			t.Fatalf("unexpected daily bucket: %+v", b)
		}
	}
}

func TestBuildBucketsMidWeekRuleChange(t *testing.T) {
	// Daily before 2025-06-18, 3/w from then on. The post-change days of
	// the same ISO week must land in one weekly bucket with target 3.
	history := []storage.Snapshot{
		{EffectiveDate: "2025-05-01", Periodicity: "1/d"},
		{EffectiveDate: "2025-06-18", Periodicity: "3/w"},
	}
	resolve := func(d time.Time) (Rule, bool) { return ResolveRule(history, "", d) }

	got := buildBuckets(cellsFor(
		"2025-06-16", "2025-06-17", // daily
		"2025-06-18", "2025-06-19", "2025-06-20", "2025-06-21", "2025-06-22", // weekly
	), resolve)
	if len(got) != 3 {
		t.Fatalf("buckets=%d, want 3 (2 daily + 1 weekly)", len(got))
	}
	wk := got[2]
	if wk.Unit != UnitWeek || wk.Target != 3 || len(wk.Cells) != 5 {
		t.Fatalf("weekly bucket=%+v, want unit=week target=3 cells=5", wk)
	}
}

func TestBuildBucketsTargetFollowsLastResolvedRule(t *testing.T) {
	// A frequency edit mid-week retargets the whole week's bucket.
	history := []storage.Snapshot{
		{EffectiveDate: "2025-06-01", Periodicity: "2/w"},
		{EffectiveDate: "2025-06-19", Periodicity: "4/w"},
	}
	resolve := func(d time.Time) (Rule, bool) { return ResolveRule(history, "", d) }

	got := buildBuckets(cellsFor("2025-06-16", "2025-06-17", "2025-06-19", "2025-06-20"), resolve)
	if len(got) != 1 {
		t.Fatalf("buckets=%d, want 1", len(got))
	}
	if got[0].Target != 4 {
		t.Fatalf("target=%d, want 4 (last resolved rule wins)", got[0].Target)
	}
}

func TestBuildBucketsSkipsDatesBeforeHabitExisted(t *testing.T) {
	// An empty snapshot string means the habit did not exist on that date.
	history := []storage.Snapshot{
		{EffectiveDate: "2025-06-01", Periodicity: ""},
		{EffectiveDate: "2025-06-18", Periodicity: "1/d"},
	}
	resolve := func(d time.Time) (Rule, bool) { return ResolveRule(history, "1/d", d) }

	got := buildBuckets(cellsFor("2025-06-16", "2025-06-17", "2025-06-18", "2025-06-19"), resolve)
	if len(got) != 2 {
		t.Fatalf("buckets=%d, want 2 (pre-existence dates skipped)", len(got))
	}
	for _, b := range got {
		if b.Cells[0].Date.Before(day("2025-06-18")) {
			t.Fatalf("bucketed a date before the habit existed: %+v", b)
		}
	}
}
