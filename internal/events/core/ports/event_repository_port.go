package ports

import (
	"context"

	"calendar-events/internal/events/core/domain"
)

type EventRepositoryPort interface {
	// FindAll returns every stored event ordered by ID.
	FindAll(ctx context.Context) ([]domain.Event, error)

	// FindByID:
	//   found = true,  err = nil  -> e holds the record
	//   found = false, err = nil  -> no record with that id
	//   found = false, err != nil -> DB error
	FindByID(ctx context.Context, id int64) (e *domain.Event, found bool, err error)

	// Save inserts e when e.ID is zero (assigning e.ID) and otherwise
	// writes title/start/end for the row with e.ID.
	Save(ctx context.Context, e *domain.Event) error

	// DeleteByID is a no-op when no row has that id.
	DeleteByID(ctx context.Context, id int64) error
}
