// file: internals/features/team/model/person_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: people
   ========================================================= */

// One row per unique person; committee seats and staff records reference it.
type PersonModel struct {
	PersonID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:person_id" json:"person_id"`
	PersonFullName string    `gorm:"type:varchar(100);not null;uniqueIndex;column:person_full_name" json:"person_full_name"`
	PersonPhotoURL *string   `gorm:"type:text;column:person_photo_url" json:"person_photo_url,omitempty"`
	PersonBio      string    `gorm:"type:text;not null;default:'';column:person_bio" json:"person_bio"`

	PersonCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:person_created_at" json:"person_created_at"`
	PersonUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:person_updated_at" json:"person_updated_at"`
}

func (PersonModel) TableName() string { return "people" }
