package engine

import (
	"time"

	"github.com/NicoEre03/habit-tracker/internal/storage"
)

// ResolveRule returns the frequency rule in force for a habit on the given
// date. history must be in ascending effective-date order.
//
// The latest snapshot dated on or before the query date wins. A date older
// than every snapshot resolves to the oldest snapshot (the "origin" rule):
// history is treated as unchanged before the first recorded change, so
// editing today's live periodicity never rewrites past accounting. Only a
// habit with no history at all falls back to its live string.
//
// ok=false means the habit did not exist on that date (the resolved string
// was empty); callers must skip accounting for it entirely.
func ResolveRule(history []storage.Snapshot, live string, date time.Time) (Rule, bool) {
	if len(history) == 0 {
		if rule, ok := ParseRule(live); ok {
			return rule, true
		}
		// Empty live periodicity reads as the daily default.
		return DefaultRule, true
	}

	dateStr := FormatDate(date)
	resolved := history[0].Periodicity
	for _, snap := range history {
		if snap.EffectiveDate > dateStr {
			break
		}
		resolved = snap.Periodicity
	}
	return ParseRule(resolved)
}
