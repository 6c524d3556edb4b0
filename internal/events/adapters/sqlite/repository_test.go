package sqlite

import (
	"context"
	"testing"
	"time"

	"calendar-events/internal/events/core/domain"
	"calendar-events/migrations"
)

func newTestRepository(t *testing.T) *EventRepository {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := migrations.Apply(db.DB, "sqlite"); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewEventRepository(db)
}

var testStart = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestEventRepository_CRUD(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	e := &domain.Event{Title: "Planning", StartTime: testStart, EndTime: testStart.Add(time.Hour)}
	if err := repo.Save(ctx, e); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if e.ID == 0 {
		t.Fatalf("expected id to be assigned")
	}

	got, found, err := repo.FindByID(ctx, e.ID)
	if err != nil || !found {
		t.Fatalf("expected event, found=%v err=%v", found, err)
	}
	if got.Title != "Planning" || !got.StartTime.Equal(e.StartTime) || !got.EndTime.Equal(e.EndTime) {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	got.Title = "Planning (moved)"
	got.StartTime = testStart.Add(2 * time.Hour)
	got.EndTime = testStart.Add(3 * time.Hour)
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 || all[0].Title != "Planning (moved)" || !all[0].StartTime.Equal(testStart.Add(2*time.Hour)) {
		t.Fatalf("unexpected events after update: %+v", all)
	}

	if err := repo.DeleteByID(ctx, e.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.DeleteByID(ctx, e.ID); err != nil {
		t.Fatalf("repeated delete failed: %v", err)
	}
	if _, found, _ := repo.FindByID(ctx, e.ID); found {
		t.Fatalf("expected event to be gone")
	}
}

func TestEventRepository_FindAllOrdersByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i, title := range []string{"late", "early", "middle"} {
		e := &domain.Event{
			Title:     title,
			StartTime: testStart.Add(time.Duration(3-i) * time.Hour),
			EndTime:   testStart.Add(time.Duration(3-i)*time.Hour + 30*time.Minute),
		}
		if err := repo.Save(ctx, e); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("events not ordered by id: %+v", all)
		}
	}
	if all[0].Title != "late" {
		t.Fatalf("expected insertion order, got %s first", all[0].Title)
	}
}

func TestEventRepository_StoresUTC(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	zone := time.FixedZone("UTC+2", 2*60*60)
	e := &domain.Event{Title: "offset", StartTime: testStart.In(zone), EndTime: testStart.Add(time.Hour).In(zone)}
	if err := repo.Save(ctx, e); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	got, _, err := repo.FindByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.StartTime.Equal(testStart) {
		t.Fatalf("expected same instant, got %v", got.StartTime)
	}
}

func TestEventRepository_FindByIDMissing(t *testing.T) {
	repo := newTestRepository(t)

	e, found, err := repo.FindByID(context.Background(), 404)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found || e != nil {
		t.Fatalf("expected not found")
	}
}

func TestEventRepository_RejectsInvertedRange(t *testing.T) {
	repo := newTestRepository(t)

	e := &domain.Event{Title: "backwards", StartTime: testStart.Add(time.Hour), EndTime: testStart}
	if err := repo.Save(context.Background(), e); err == nil {
		t.Fatalf("expected CHECK constraint to reject inverted range")
	}
}
