package memory

import (
	"context"
	"sort"
	"sync"

	"calendar-events/internal/events/core/domain"
	"calendar-events/internal/events/core/ports"
)

// EventRepository keeps events in a map guarded by a RWMutex. It is used by
// STORE_DRIVER=memory and as a real store in tests.
type EventRepository struct {
	mu     sync.RWMutex
	events map[int64]domain.Event
	nextID int64
}

func NewEventRepository() *EventRepository {
	return &EventRepository{
		events: make(map[int64]domain.Event),
		nextID: 1,
	}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return nil, false, nil
	}
	return &e, true, nil
}

func (r *EventRepository) Save(ctx context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == 0 {
		e.ID = r.nextID
		r.nextID++
	} else if e.ID >= r.nextID {
		r.nextID = e.ID + 1
	}

	r.events[e.ID] = *e
	return nil
}

func (r *EventRepository) DeleteByID(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.events, id)
	return nil
}
