// file: internals/features/updates/dto/event_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	model "bhanjyang_backend/internals/features/updates/model"
)

var ErrInvalidEventDate = errors.New("invalid event_date (use RFC3339)")

type CreateEventRequest struct {
	EventTitle       string `json:"event_title" validate:"required,max=200"`
	EventDescription string `json:"event_description" validate:"required"`
	EventLocation    string `json:"event_location" validate:"omitempty,max=150"`
	EventDate        string `json:"event_date" validate:"required"` // RFC3339
}

func (r *CreateEventRequest) ToModel() (*model.EventModel, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(r.EventDate))
	if err != nil {
		return nil, ErrInvalidEventDate
	}
	loc := strings.TrimSpace(r.EventLocation)
	if loc == "" {
		loc = "Cooperative Office"
	}
	return &model.EventModel{
		EventTitle:       strings.TrimSpace(r.EventTitle),
		EventDescription: r.EventDescription,
		EventLocation:    loc,
		EventDate:        t,
	}, nil
}

type PatchEventRequest struct {
	EventTitle       *string `json:"event_title" validate:"omitempty,max=200"`
	EventDescription *string `json:"event_description" validate:"omitempty"`
	EventLocation    *string `json:"event_location" validate:"omitempty,max=150"`
	EventDate        *string `json:"event_date" validate:"omitempty"` // RFC3339
}

func (r *PatchEventRequest) Apply(m *model.EventModel) error {
	if r.EventTitle != nil {
		m.EventTitle = strings.TrimSpace(*r.EventTitle)
	}
	if r.EventDescription != nil {
		m.EventDescription = *r.EventDescription
	}
	if r.EventLocation != nil {
		m.EventLocation = strings.TrimSpace(*r.EventLocation)
	}
	if r.EventDate != nil {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(*r.EventDate))
		if err != nil {
			return ErrInvalidEventDate
		}
		m.EventDate = t
	}
	return nil
}

type EventResponse struct {
	EventID          uuid.UUID `json:"event_id"`
	EventTitle       string    `json:"event_title"`
	EventDescription string    `json:"event_description"`
	EventLocation    string    `json:"event_location"`
	EventDate        time.Time `json:"event_date"`
}

func FromModelEvent(m *model.EventModel) EventResponse {
	return EventResponse{
		EventID:          m.EventID,
		EventTitle:       m.EventTitle,
		EventDescription: m.EventDescription,
		EventLocation:    m.EventLocation,
		EventDate:        m.EventDate,
	}
}

func FromModelEvents(rows []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelEvent(&rows[i]))
	}
	return out
}
