package engine

import "errors"

// Lookup failures: a targeted update named a habit or date column that does
// not exist. Reported to the caller as an error message, never a crash.
var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrDateNotFound  = errors.New("date column not found")
	ErrHabitExists   = errors.New("habit already exists")
)
