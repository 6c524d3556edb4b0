package usecase

import (
	"context"
	"errors"
	"time"

	"calendar-events/internal/events/core/domain"
	"calendar-events/internal/events/core/ports"

	"github.com/sirupsen/logrus"
)

type EventUseCase struct {
	repo ports.EventRepositoryPort
	log  logrus.FieldLogger
}

// NewEventUseCase falls back to the standard logrus logger when log is nil.
func NewEventUseCase(repo ports.EventRepositoryPort, log logrus.FieldLogger) *EventUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &EventUseCase{repo: repo, log: log}
}

type EventInput struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
}

func (uc *EventUseCase) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := uc.repo.FindAll(ctx)
	if err != nil {
		uc.log.WithError(err).Error("list events failed")
		return nil, err
	}
	return events, nil
}

// GetEvent returns found=false with a nil error when no event has that id.
func (uc *EventUseCase) GetEvent(ctx context.Context, id int64) (*domain.Event, bool, error) {
	e, found, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		uc.log.WithError(err).WithField("event_id", id).Error("get event failed")
		return nil, false, err
	}
	return e, found, nil
}

func (uc *EventUseCase) CreateEvent(ctx context.Context, in EventInput) (*domain.Event, error) {
	e := &domain.Event{
		Title:     in.Title,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}

	if !e.ValidRange() {
		uc.rejected(e, domain.ErrInvalidTimeRange)
		return nil, domain.ErrInvalidTimeRange
	}

	if err := uc.checkOverlap(ctx, *e); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, uc.saveFailed(e, err)
	}

	uc.log.WithField("event_id", e.ID).Info("event created")
	return e, nil
}

// UpdateEvent returns found=false with a nil error, and writes nothing, when
// no event has that id. The overlap scan only runs when the time window moves.
func (uc *EventUseCase) UpdateEvent(ctx context.Context, id int64, in EventInput) (*domain.Event, bool, error) {
	existing, found, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		uc.log.WithError(err).WithField("event_id", id).Error("get event failed")
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	candidate := domain.Event{
		ID:        existing.ID,
		Title:     in.Title,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}

	if !candidate.ValidRange() {
		uc.rejected(&candidate, domain.ErrInvalidTimeRange)
		return nil, true, domain.ErrInvalidTimeRange
	}

	if !candidate.SameWindow(*existing) {
		if err := uc.checkOverlap(ctx, candidate); err != nil {
			return nil, true, err
		}
	}

	existing.Title = candidate.Title
	existing.StartTime = candidate.StartTime
	existing.EndTime = candidate.EndTime

	if err := uc.repo.Save(ctx, existing); err != nil {
		return nil, true, uc.saveFailed(existing, err)
	}

	uc.log.WithField("event_id", existing.ID).Info("event updated")
	return existing, true, nil
}

func (uc *EventUseCase) DeleteEvent(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		uc.log.WithError(err).WithField("event_id", id).Error("delete event failed")
		return err
	}
	return nil
}

func (uc *EventUseCase) checkOverlap(ctx context.Context, candidate domain.Event) error {
	existing, err := uc.repo.FindAll(ctx)
	if err != nil {
		uc.log.WithError(err).Error("list events for overlap check failed")
		return err
	}

	if domain.OverlapsAny(candidate, existing) {
		uc.rejected(&candidate, domain.ErrEventOverlap)
		return domain.ErrEventOverlap
	}
	return nil
}

func (uc *EventUseCase) rejected(e *domain.Event, reason error) {
	uc.log.WithFields(logrus.Fields{
		"event_id":   e.ID,
		"start_time": e.StartTime,
		"end_time":   e.EndTime,
	}).WithError(reason).Debug("event rejected")
}

// saveFailed passes overlap errors raised by store constraints through as
// validation failures and logs everything else.
func (uc *EventUseCase) saveFailed(e *domain.Event, err error) error {
	if errors.Is(err, domain.ErrEventOverlap) {
		uc.rejected(e, domain.ErrEventOverlap)
		return domain.ErrEventOverlap
	}
	uc.log.WithError(err).WithField("event_id", e.ID).Error("save event failed")
	return err
}
