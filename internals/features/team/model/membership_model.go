// file: internals/features/team/model/membership_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: memberships
   ========================================================= */

// Links a person to a committee seat. A person holds at most one position per
// committee (composite unique). Deleting either side cascades here.
type MembershipModel struct {
	MembershipID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:membership_id" json:"membership_id"`

	MembershipPersonID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_membership_person_committee;column:membership_person_id" json:"membership_person_id"`
	MembershipCommitteeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_membership_person_committee;column:membership_committee_id" json:"membership_committee_id"`

	MembershipPosition string `gorm:"type:varchar(100);not null;column:membership_position" json:"membership_position"`
	MembershipOrder    int    `gorm:"type:integer;not null;default:0;column:membership_order" json:"membership_order"`

	MembershipCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:membership_created_at" json:"membership_created_at"`
	MembershipUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:membership_updated_at" json:"membership_updated_at"`

	Person    *PersonModel    `gorm:"foreignKey:MembershipPersonID;references:PersonID;constraint:OnDelete:CASCADE" json:"person,omitempty"`
	Committee *CommitteeModel `gorm:"foreignKey:MembershipCommitteeID;references:CommitteeID;constraint:OnDelete:CASCADE" json:"committee,omitempty"`
}

func (MembershipModel) TableName() string { return "memberships" }
