// file: internals/features/updates/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: events
   ========================================================= */

type EventModel struct {
	EventID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:event_id" json:"event_id"`

	EventTitle       string `gorm:"type:varchar(200);not null;column:event_title" json:"event_title"`
	EventDescription string `gorm:"type:text;not null;column:event_description" json:"event_description"`
	EventLocation    string `gorm:"type:varchar(150);not null;default:'Cooperative Office';column:event_location" json:"event_location"`

	EventDate time.Time `gorm:"type:timestamptz;not null;index;column:event_date" json:"event_date"`

	EventCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:event_created_at" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:event_updated_at" json:"event_updated_at"`
}

func (EventModel) TableName() string { return "events" }
