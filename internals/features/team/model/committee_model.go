// file: internals/features/team/model/committee_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bhanjyang_backend/internals/helpers"
)

/* =========================================================
   MODEL: committees
   ========================================================= */

// A committee instance is bound to a tenure label (e.g. "२०८०-२०८३"); the same
// committee name re-appears with a new tenure each term.
type CommitteeModel struct {
	CommitteeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:committee_id" json:"committee_id"`

	CommitteeName   string `gorm:"type:varchar(150);not null;column:committee_name" json:"committee_name"`
	CommitteeTenure string `gorm:"type:varchar(20);not null;column:committee_tenure" json:"committee_tenure"`
	CommitteeSlug   string `gorm:"type:varchar(180);not null;uniqueIndex;column:committee_slug" json:"committee_slug"`

	CommitteeIsActive bool `gorm:"type:boolean;not null;default:true;column:committee_is_active" json:"committee_is_active"`
	CommitteeOrder    int  `gorm:"type:integer;not null;default:0;column:committee_order" json:"committee_order"`

	CommitteeCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:committee_created_at" json:"committee_created_at"`
	CommitteeUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:committee_updated_at" json:"committee_updated_at"`

	Memberships []MembershipModel `gorm:"foreignKey:MembershipCommitteeID;references:CommitteeID" json:"memberships,omitempty"`
}

func (CommitteeModel) TableName() string { return "committees" }

// BeforeSave derives the slug from name+tenure on first save only.
func (m *CommitteeModel) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(m.CommitteeSlug) == "" {
		m.CommitteeSlug = helper.Slugify(m.CommitteeName+"-"+m.CommitteeTenure, 180)
	}
	return nil
}
