// file: internals/features/updates/dto/subscriber_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "bhanjyang_backend/internals/features/updates/model"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

func (r *SubscribeRequest) ToModel() *model.SubscriberModel {
	return &model.SubscriberModel{
		SubscriberEmail: strings.ToLower(strings.TrimSpace(r.Email)),
	}
}

type SubscriberResponse struct {
	SubscriberID           uuid.UUID `json:"subscriber_id"`
	SubscriberEmail        string    `json:"subscriber_email"`
	SubscriberSubscribedAt time.Time `json:"subscriber_subscribed_at"`
}

func FromModelSubscriber(m *model.SubscriberModel) SubscriberResponse {
	return SubscriberResponse{
		SubscriberID:           m.SubscriberID,
		SubscriberEmail:        m.SubscriberEmail,
		SubscriberSubscribedAt: m.SubscriberSubscribedAt,
	}
}

func FromModelSubscribers(rows []model.SubscriberModel) []SubscriberResponse {
	out := make([]SubscriberResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelSubscriber(&rows[i]))
	}
	return out
}
