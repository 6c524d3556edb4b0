package sqlite

import (
	"context"
	"database/sql"
	"time"

	"calendar-events/internal/events/core/domain"
	"calendar-events/internal/events/core/ports"

	"github.com/pkg/errors"
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

const (
	selectEventsSQL    = `SELECT id, title, start_time, end_time FROM events ORDER BY id`
	selectEventByIDSQL = `SELECT id, title, start_time, end_time FROM events WHERE id = ?`
	insertEventSQL     = `INSERT INTO events (title, start_time, end_time) VALUES (?, ?, ?)`
	updateEventSQL     = `UPDATE events SET title = ?, start_time = ?, end_time = ? WHERE id = ?`
	deleteEventSQL     = `DELETE FROM events WHERE id = ?`
)

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, selectEventsSQL); err != nil {
		return nil, errors.Wrap(err, "failed to fetch all events")
	}

	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, domain.Event(row))
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

	e := domain.Event(row)
	return &e, true, nil
}

// Save stores timestamps in UTC so text comparison in SQL matches time order.
func (r *EventRepository) Save(ctx context.Context, e *domain.Event) error {
	start, end := e.StartTime.UTC(), e.EndTime.UTC()

	if e.ID == 0 {
		res, err := r.db.ExecContext(ctx, insertEventSQL, e.Title, start, end)
		if err != nil {
			return errors.Wrap(err, "failed to create event")
		}
		id, err := res.LastInsertId()
		if err != nil {
			return errors.Wrap(err, "failed to read event id")
		}
		e.ID = id
		return nil
	}

	if _, err := r.db.ExecContext(ctx, updateEventSQL, e.Title, start, end, e.ID); err != nil {
		return errors.Wrap(err, "failed to update event")
	}
	return nil
}

func (r *EventRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteEventSQL, id); err != nil {
		return errors.Wrap(err, "failed to delete event")
	}
	return nil
}
