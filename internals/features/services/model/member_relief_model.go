// file: internals/features/services/model/member_relief_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   ENUM: ReliefType
   ========================================================= */

type ReliefType string

const (
	ReliefMedical   ReliefType = "medical"
	ReliefEducation ReliefType = "education"
	ReliefDisaster  ReliefType = "disaster"
	ReliefWelfare   ReliefType = "welfare"
	ReliefEmergency ReliefType = "emergency"
)

func (t ReliefType) Valid() bool {
	switch t {
	case ReliefMedical, ReliefEducation, ReliefDisaster, ReliefWelfare, ReliefEmergency:
		return true
	default:
		return false
	}
}

func (t ReliefType) Label() string {
	switch t {
	case ReliefMedical:
		return "Medical Relief"
	case ReliefEducation:
		return "Educational Support"
	case ReliefDisaster:
		return "Disaster Relief"
	case ReliefWelfare:
		return "Welfare Support"
	case ReliefEmergency:
		return "Emergency Assistance"
	default:
		return string(t)
	}
}

/* =========================================================
   MODEL: member_reliefs
   ========================================================= */

type MemberReliefModel struct {
	MemberReliefID   uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_relief_id" json:"member_relief_id"`
	MemberReliefType ReliefType `gorm:"type:varchar(20);not null;column:member_relief_type" json:"member_relief_type"`

	MemberReliefTitle       string `gorm:"type:varchar(200);not null;column:member_relief_title" json:"member_relief_title"`
	MemberReliefNepaliTitle string `gorm:"type:varchar(200);not null;column:member_relief_nepali_title" json:"member_relief_nepali_title"`

	MemberReliefDescription string `gorm:"type:text;not null;column:member_relief_description" json:"member_relief_description"`
	MemberReliefEligibility string `gorm:"type:text;not null;column:member_relief_eligibility" json:"member_relief_eligibility"`
	MemberReliefBenefits    string `gorm:"type:text;not null;column:member_relief_benefits" json:"member_relief_benefits"`

	MemberReliefApplicationProcess string `gorm:"type:text;not null;default:'';column:member_relief_application_process" json:"member_relief_application_process"`
	MemberReliefRequiredDocuments  string `gorm:"type:text;not null;default:'';column:member_relief_required_documents" json:"member_relief_required_documents"`
	MemberReliefContactInfo        string `gorm:"type:text;not null;default:'';column:member_relief_contact_info" json:"member_relief_contact_info"`

	MemberReliefImageURL *string `gorm:"type:text;column:member_relief_image_url" json:"member_relief_image_url,omitempty"`

	MemberReliefIcon  string `gorm:"type:varchar(50);not null;default:'fas fa-heart';column:member_relief_icon" json:"member_relief_icon"`
	MemberReliefColor string `gorm:"type:varchar(20);not null;default:'bhanjyangred';column:member_relief_color" json:"member_relief_color"`

	MemberReliefIsActive bool `gorm:"type:boolean;not null;default:true;column:member_relief_is_active" json:"member_relief_is_active"`

	MemberReliefCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:member_relief_created_at" json:"member_relief_created_at"`
	MemberReliefUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:member_relief_updated_at" json:"member_relief_updated_at"`
}

func (MemberReliefModel) TableName() string { return "member_reliefs" }
