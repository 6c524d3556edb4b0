package postgres

import (
	"context"
	"database/sql"
	"time"

	"calendar-events/internal/events/core/domain"
	"calendar-events/internal/events/core/ports"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// Postgres error codes raised by the events table constraints.
const (
	checkViolation     = "23514"
	exclusionViolation = "23P01"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

type eventRow struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
}

func (r eventRow) model() domain.Event {
	return domain.Event{
		ID:        r.ID,
		Title:     r.Title,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

const selectEventsSQL = `
SELECT id, title, start_time, end_time
FROM events
ORDER BY id`

const selectEventByIDSQL = `
SELECT id, title, start_time, end_time
FROM events
WHERE id = $1`

const insertEventSQL = `
INSERT INTO events (title, start_time, end_time)
VALUES ($1, $2, $3)
RETURNING id`

const updateEventSQL = `
UPDATE events
SET title = $2, start_time = $3, end_time = $4
WHERE id = $1`

const deleteEventSQL = `DELETE FROM events WHERE id = $1`

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, selectEventsSQL); err != nil {
		return nil, errors.Wrap(err, "failed to fetch all events")
	}

	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.model())
	}
	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, bool, error) {
	var row eventRow
	if err := r.db.GetContext(ctx, &row, selectEventByIDSQL, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "failed to find event")
	}

	e := row.model()
	return &e, true, nil
}

func (r *EventRepository) Save(ctx context.Context, e *domain.Event) error {
	if e.ID == 0 {
		var id int64
		if err := r.db.GetContext(ctx, &id, insertEventSQL, e.Title, e.StartTime, e.EndTime); err != nil {
			return translateError(err, "failed to create event")
		}
		e.ID = id
		return nil
	}

	if _, err := r.db.ExecContext(ctx, updateEventSQL, e.ID, e.Title, e.StartTime, e.EndTime); err != nil {
		return translateError(err, "failed to update event")
	}
	return nil
}

func (r *EventRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteEventSQL, id); err != nil {
		return errors.Wrap(err, "failed to delete event")
	}
	return nil
}

// translateError maps constraint violations onto domain validation errors so
// a write that lost a race against a concurrent overlapping write is still
// reported as an overlap.
func translateError(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case exclusionViolation:
			return errors.Wrap(domain.ErrEventOverlap, msg)
		case checkViolation:
			return errors.Wrap(domain.ErrInvalidTimeRange, msg)
		}
	}
	return errors.Wrap(err, msg)
}
