package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestHabitPositions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewHabitRepo(db)

	var ids []int64
	for _, name := range []string{"a", "b", "c"} {
		id, err := repo.Insert(ctx, name, "1/d")
		if err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
		ids = append(ids, id)
	}

	habits, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, h := range habits {
		if h.Position != i {
			t.Fatalf("habit %s position=%d, want %d", h.Name, h.Position, i)
		}
	}

	if err := repo.Move(ctx, ids[2], 0); err != nil {
		t.Fatalf("move: %v", err)
	}
	habits, err = repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list after move: %v", err)
	}
	wantOrder := []string{"c", "a", "b"}
	for i, h := range habits {
		if h.Name != wantOrder[i] || h.Position != i {
			t.Fatalf("after move habits=%+v, want order %v with dense positions", habits, wantOrder)
		}
	}
}

func TestHabitDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	habits := NewHabitRepo(db)
	cells := NewCellRepo(db)
	snaps := NewSnapshotRepo(db)

	id, err := habits.Insert(ctx, "a", "1/d")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := cells.SetValue(ctx, id, "2025-06-19", ValueDone); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if err := snaps.Upsert(ctx, id, "2025-06-19", "1/d"); err != nil {
		t.Fatalf("upsert snapshot: %v", err)
	}

	if err := habits.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, err := cells.ListAll(ctx)
	if err != nil {
		t.Fatalf("list cells: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("cells survived habit delete: %+v", all)
	}
	history, err := snaps.ListByHabit(ctx, id)
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("snapshots survived habit delete: %+v", history)
	}
}

func TestCellUpsertPreservesOtherField(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	habits := NewHabitRepo(db)
	cells := NewCellRepo(db)

	id, err := habits.Insert(ctx, "a", "1/d")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := cells.SetNote(ctx, id, "2025-06-19", "felt great"); err != nil {
		t.Fatalf("set note: %v", err)
	}
	if err := cells.SetValue(ctx, id, "2025-06-19", ValueDone); err != nil {
		t.Fatalf("set value: %v", err)
	}

	c, err := cells.Get(ctx, id, "2025-06-19")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c == nil || c.Value != ValueDone || c.Note != "felt great" {
		t.Fatalf("cell=%+v, want done with note intact", c)
	}
}

func TestSnapshotUpsertOverwritesSameDate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	habits := NewHabitRepo(db)
	snaps := NewSnapshotRepo(db)

	id, err := habits.Insert(ctx, "a", "1/d")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := snaps.Upsert(ctx, id, "2025-06-19", "1/d"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := snaps.Upsert(ctx, id, "2025-06-19", "3/w"); err != nil {
		t.Fatalf("upsert again: %v", err)
	}
	if err := snaps.Upsert(ctx, id, "2025-06-20", "2/m"); err != nil {
		t.Fatalf("upsert next day: %v", err)
	}

	history, err := snaps.ListByHabit(ctx, id)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("entries=%d, want 2", len(history))
	}
	if history[0].Periodicity != "3/w" || history[1].Periodicity != "2/m" {
		t.Fatalf("history=%+v", history)
	}
}

func TestDateHeaderOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dates := NewDateRepo(db)

	for _, d := range []string{"2025-06-19", "2025-06-17", "2025-06-18", "2025-06-19"} {
		if err := dates.Ensure(ctx, d); err != nil {
			t.Fatalf("ensure %s: %v", d, err)
		}
	}

	got, err := dates.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"2025-06-17", "2025-06-18", "2025-06-19"}
	if len(got) != len(want) {
		t.Fatalf("dates=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dates=%v, want %v", got, want)
		}
	}

	ok, err := dates.Exists(ctx, "2025-06-18")
	if err != nil || !ok {
		t.Fatalf("exists=%v err=%v, want true", ok, err)
	}
	ok, err = dates.Exists(ctx, "2025-07-01")
	if err != nil || ok {
		t.Fatalf("exists=%v err=%v, want false", ok, err)
	}
}
