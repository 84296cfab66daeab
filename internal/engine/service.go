package engine

import (
	"database/sql"
	"log/slog"

	"github.com/NicoEre03/habit-tracker/internal/storage"
)

type Service struct {
	db        *sql.DB
	habits    *storage.HabitRepo
	cells     *storage.CellRepo
	snapshots *storage.SnapshotRepo
	dates     *storage.DateRepo
	log       *slog.Logger

	// OnReconcile, when set, observes the number of cell writes each
	// reconciliation pass produced.
	OnReconcile func(writes int)
}

func NewService(db *sql.DB, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		db:        db,
		habits:    storage.NewHabitRepo(db),
		cells:     storage.NewCellRepo(db),
		snapshots: storage.NewSnapshotRepo(db),
		dates:     storage.NewDateRepo(db),
		log:       log,
	}
}

func (s *Service) HabitRepo() *storage.HabitRepo       { return s.habits }
func (s *Service) CellRepo() *storage.CellRepo         { return s.cells }
func (s *Service) SnapshotRepo() *storage.SnapshotRepo { return s.snapshots }
func (s *Service) DateRepo() *storage.DateRepo         { return s.dates }

// NormalizeValue clamps a stored or submitted cell value onto the enumerated
// set; anything unrecognized reads as neutral.
func NormalizeValue(v int) int {
	switch v {
	case storage.ValueExcused, storage.ValueFailed, storage.ValueNeutral,
		storage.ValueDone, storage.ValueDoneAlt:
		return v
	default:
		return storage.ValueNeutral
	}
}
