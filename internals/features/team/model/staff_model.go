// file: internals/features/team/model/staff_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: staff
   ========================================================= */

// 1:1 extension of a person for employed staff. Deleting the person cascades.
type StaffModel struct {
	StaffID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_id" json:"staff_id"`
	StaffPersonID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:staff_person_id" json:"staff_person_id"`

	StaffPosition  string     `gorm:"type:varchar(100);not null;column:staff_position" json:"staff_position"`
	StaffStartDate *time.Time `gorm:"type:date;column:staff_start_date" json:"staff_start_date,omitempty"`

	StaffIsActive bool `gorm:"type:boolean;not null;default:true;column:staff_is_active" json:"staff_is_active"`
	StaffOrder    int  `gorm:"type:integer;not null;default:0;column:staff_order" json:"staff_order"`

	StaffCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:staff_created_at" json:"staff_created_at"`
	StaffUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:staff_updated_at" json:"staff_updated_at"`

	Person *PersonModel `gorm:"foreignKey:StaffPersonID;references:PersonID;constraint:OnDelete:CASCADE" json:"person,omitempty"`
}

func (StaffModel) TableName() string { return "staff" }
