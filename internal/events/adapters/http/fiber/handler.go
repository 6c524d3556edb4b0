package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"calendar-events/internal/events/core/domain"
	"calendar-events/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
)

const notFoundMessage = "Event not found"

type EventUseCase interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id int64) (*domain.Event, bool, error)
	CreateEvent(ctx context.Context, in usecase.EventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id int64, in usecase.EventInput) (*domain.Event, bool, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type EventHandler struct {
	uc EventUseCase
}

func NewEventHandler(uc EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

func (h *EventHandler) Register(r fiber.Router) {
	r.Get("/events", h.ListEvents)
	r.Get("/events/:id", h.GetEvent)
	r.Post("/events", h.CreateEvent)
	r.Put("/events/:id", h.UpdateEvent)
	r.Delete("/events/:id", h.DeleteEvent)
}

// ListEvents godoc
// @Summary List events
// @Description Returns every stored event
// @Tags Events
// @Produce json
// @Success 200 {array} EventResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.uc.ListEvents(c.UserContext())
	if err != nil {
		return internalError(c)
	}

	resp := make([]EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, toResponse(&events[i]))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetEvent godoc
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {string} string "Event not found"
// @Failure 500 {object} ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	e, found, err := h.uc.GetEvent(c.UserContext(), id)
	if err != nil {
		return internalError(c)
	}
	if !found {
		return c.Status(http.StatusNotFound).SendString(notFoundMessage)
	}

	return c.Status(http.StatusOK).JSON(toResponse(e))
}

// CreateEvent godoc
// @Summary Create an event
// @Description Stores an event unless it overlaps an existing one
// @Tags Events
// @Accept json
// @Produce json
// @Param request body EventRequest true "Event payload"
// @Success 201 {object} EventResponse
// @Failure 400 {string} string "event overlaps with existing events"
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	in, ok := parseInput(c)
	if !ok {
		return invalidJSON(c)
	}

	e, err := h.uc.CreateEvent(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(toResponse(e))
}

// UpdateEvent godoc
// @Summary Replace an event
// @Description Overlap is re-checked only when the time window changes
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body EventRequest true "Event payload"
// @Success 200 {object} EventResponse
// @Failure 400 {string} string "event overlaps with existing events"
// @Failure 404 {string} string "Event not found"
// @Failure 500 {object} ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	in, ok := parseInput(c)
	if !ok {
		return invalidJSON(c)
	}

	e, found, err := h.uc.UpdateEvent(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return c.Status(http.StatusNotFound).SendString(notFoundMessage)
	}

	return c.Status(http.StatusOK).JSON(toResponse(e))
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Succeeds whether or not the event exists
// @Tags Events
// @Param id path int true "Event ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.uc.DeleteEvent(c.UserContext(), id); err != nil {
		return internalError(c)
	}

	return c.SendStatus(http.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func parseInput(c *fiber.Ctx) (usecase.EventInput, bool) {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return usecase.EventInput{}, false
	}

	return usecase.EventInput{
		Title:     req.Title,
		StartTime: req.StartTime.Time,
		EndTime:   req.EndTime.Time,
	}, true
}

// writeError maps validation failures to 400 with the plain message and
// everything else to 500.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEventOverlap):
		return c.Status(http.StatusBadRequest).SendString(domain.ErrEventOverlap.Error())
	case errors.Is(err, domain.ErrInvalidTimeRange):
		return c.Status(http.StatusBadRequest).SendString(domain.ErrInvalidTimeRange.Error())
	default:
		return internalError(c)
	}
}

func invalidJSON(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error: "invalid_json",
	})
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_id",
		Message: "id must be an integer",
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}
