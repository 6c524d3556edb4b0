package fiber

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"calendar-events/internal/events/core/domain"
)

// localDateTimeLayout is accepted for clients that send wall-clock times
// without an offset; such values are read as UTC.
const localDateTimeLayout = "2006-01-02T15:04:05.999999999"

// Timestamp decodes RFC 3339 or zone-less local date-times.
type Timestamp struct {
	time.Time
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		ts.Time = time.Time{}
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		ts.Time = t
		return nil
	}
	t, err := time.ParseInLocation(localDateTimeLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q", s)
	}
	ts.Time = t
	return nil
}

// EventRequest represents the create/update payload
// @Description Event payload; id is ignored
type EventRequest struct {
	Title     string    `json:"title" example:"Sprint planning"`
	StartTime Timestamp `json:"startTime" swaggertype:"string" example:"2024-05-01T10:00:00Z"`
	EndTime   Timestamp `json:"endTime" swaggertype:"string" example:"2024-05-01T11:00:00Z"`
}

type EventResponse struct {
	ID        int64     `json:"id" example:"1"`
	Title     string    `json:"title" example:"Sprint planning"`
	StartTime time.Time `json:"startTime" example:"2024-05-01T10:00:00Z"`
	EndTime   time.Time `json:"endTime" example:"2024-05-01T11:00:00Z"`
}

func toResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		Title:     e.Title,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
	}
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_json"`
	Message string `json:"message,omitempty" example:"Event payload is invalid"`
}
