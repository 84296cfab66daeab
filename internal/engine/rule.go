package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// PeriodUnit is the accounting period a frequency rule is counted against.
type PeriodUnit string

const (
	UnitDay   PeriodUnit = "day"
	UnitWeek  PeriodUnit = "week"
	UnitMonth PeriodUnit = "month"
)

func (u PeriodUnit) IsValid() bool {
	switch u {
	case UnitDay, UnitWeek, UnitMonth:
		return true
	default:
		return false
	}
}

// Rule is a frequency target: Count completions per Unit.
type Rule struct {
	Count int
	Unit  PeriodUnit
}

// DefaultRule is the fallback for missing or unparseable periodicity strings.
var DefaultRule = Rule{Count: 1, Unit: UnitDay}

// ParseRule parses a periodicity string of the form "<digits>/<d|w|m>",
// e.g. "3/w". An empty string returns ok=false: it means no rule existed,
// which callers treat differently from a bad one. Any non-empty string that
// fails to parse degrades to DefaultRule instead of erroring.
func ParseRule(s string) (Rule, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rule{}, false
	}

	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return DefaultRule, true
	}
	count, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || count <= 0 {
		return DefaultRule, true
	}
	switch strings.TrimSpace(strings.ToLower(parts[1])) {
	case "d":
		return Rule{Count: count, Unit: UnitDay}, true
	case "w":
		return Rule{Count: count, Unit: UnitWeek}, true
	case "m":
		return Rule{Count: count, Unit: UnitMonth}, true
	default:
		return DefaultRule, true
	}
}

func (r Rule) String() string {
	var u string
	switch r.Unit {
	case UnitWeek:
		u = "w"
	case UnitMonth:
		u = "m"
	default:
		u = "d"
	}
	return fmt.Sprintf("%d/%s", r.Count, u)
}
