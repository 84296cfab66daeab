package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ReadGrid ensures today's column exists, reconciles the full history and
// returns the projected grid.
func (s *Service) ReadGrid(ctx context.Context, today time.Time) (*Grid, error) {
	today = DateOf(today)
	if err := s.dates.Ensure(ctx, FormatDate(today)); err != nil {
		return nil, err
	}
	if _, err := s.Reconcile(ctx, today); err != nil {
		return nil, err
	}
	return s.Project(ctx, today)
}

// UpdateCell writes a cell's value and/or note, then reconciles. A nil value
// or note leaves that part untouched. The habit name and date column must
// already exist.
func (s *Service) UpdateCell(ctx context.Context, habitName string, date string, value *int, note *string, today time.Time) error {
	h, err := s.habits.GetByName(ctx, habitName)
	if err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("%w: %q", ErrHabitNotFound, habitName)
	}
	exists, err := s.dates.Exists(ctx, date)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %q", ErrDateNotFound, date)
	}

	if value != nil {
		if err := s.cells.SetValue(ctx, h.ID, date, NormalizeValue(*value)); err != nil {
			return err
		}
	}
	if note != nil {
		if err := s.cells.SetNote(ctx, h.ID, date, *note); err != nil {
			return err
		}
	}

	_, err = s.Reconcile(ctx, today)
	return err
}

// UpdatePeriodicity changes a habit's live frequency string, then reconciles.
// Historical accounting stays anchored to the snapshot table, so past periods
// are unaffected until the next snapshot is recorded.
func (s *Service) UpdatePeriodicity(ctx context.Context, habitName string, periodicity string, today time.Time) error {
	h, err := s.habits.GetByName(ctx, habitName)
	if err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("%w: %q", ErrHabitNotFound, habitName)
	}
	if err := s.habits.UpdatePeriodicity(ctx, h.ID, strings.TrimSpace(periodicity)); err != nil {
		return err
	}
	_, err = s.Reconcile(ctx, today)
	return err
}

// RecordSnapshot writes every habit's current live periodicity string under
// the given calendar date. Recording twice on the same date overwrites that
// date's entry. It does not reconcile.
func (s *Service) RecordSnapshot(ctx context.Context, asOf time.Time) error {
	habits, err := s.habits.ListAll(ctx)
	if err != nil {
		return err
	}
	date := FormatDate(DateOf(asOf))
	for _, h := range habits {
		if err := s.snapshots.Upsert(ctx, h.ID, date, h.Periodicity); err != nil {
			return err
		}
	}
	return nil
}

// AddHabit appends a habit row.
func (s *Service) AddHabit(ctx context.Context, name string, periodicity string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errors.New("habit name is required")
	}
	existing, err := s.habits.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, fmt.Errorf("%w: %q", ErrHabitExists, name)
	}
	return s.habits.Insert(ctx, name, strings.TrimSpace(periodicity))
}

// DeleteHabit removes a habit row along with its cells and snapshot history.
func (s *Service) DeleteHabit(ctx context.Context, name string) error {
	h, err := s.habits.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("%w: %q", ErrHabitNotFound, name)
	}
	return s.habits.Delete(ctx, h.ID)
}

func (s *Service) RenameHabit(ctx context.Context, name string, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return errors.New("new habit name is required")
	}
	h, err := s.habits.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("%w: %q", ErrHabitNotFound, name)
	}
	if other, err := s.habits.GetByName(ctx, newName); err != nil {
		return err
	} else if other != nil && other.ID != h.ID {
		return fmt.Errorf("%w: %q", ErrHabitExists, newName)
	}
	return s.habits.Rename(ctx, h.ID, newName)
}

// MoveHabit reorders a habit row to the given position (0-based).
func (s *Service) MoveHabit(ctx context.Context, name string, position int) error {
	h, err := s.habits.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("%w: %q", ErrHabitNotFound, name)
	}
	return s.habits.Move(ctx, h.ID, position)
}
