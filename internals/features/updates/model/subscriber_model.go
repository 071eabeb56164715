// file: internals/features/updates/model/subscriber_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: subscribers
   ========================================================= */

// Subscribers are created once through the public form, never updated and
// never deleted by the system itself.
type SubscriberModel struct {
	SubscriberID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subscriber_id" json:"subscriber_id"`
	SubscriberEmail string    `gorm:"type:varchar(254);not null;uniqueIndex;column:subscriber_email" json:"subscriber_email"`

	SubscriberSubscribedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:subscriber_subscribed_at" json:"subscriber_subscribed_at"`
}

func (SubscriberModel) TableName() string { return "subscribers" }
