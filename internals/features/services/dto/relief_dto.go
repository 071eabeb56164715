// file: internals/features/services/dto/relief_dto.go
package dto

import (
	"strings"

	model "bhanjyang_backend/internals/features/services/model"
)

/* =========================================================
   Member relief programs
========================================================= */

type CreateMemberReliefRequest struct {
	MemberReliefType model.ReliefType `json:"member_relief_type" validate:"required,oneof=medical education disaster welfare emergency"`

	MemberReliefTitle       string `json:"member_relief_title" validate:"required,max=200"`
	MemberReliefNepaliTitle string `json:"member_relief_nepali_title" validate:"required,max=200"`

	MemberReliefDescription string `json:"member_relief_description" validate:"required"`
	MemberReliefEligibility string `json:"member_relief_eligibility" validate:"required"`
	MemberReliefBenefits    string `json:"member_relief_benefits" validate:"required"`

	MemberReliefApplicationProcess string `json:"member_relief_application_process" validate:"omitempty"`
	MemberReliefRequiredDocuments  string `json:"member_relief_required_documents" validate:"omitempty"`
	MemberReliefContactInfo        string `json:"member_relief_contact_info" validate:"omitempty"`

	MemberReliefImageURL *string `json:"member_relief_image_url" validate:"omitempty"`

	MemberReliefIcon  *string `json:"member_relief_icon" validate:"omitempty,max=50"`
	MemberReliefColor *string `json:"member_relief_color" validate:"omitempty,max=20"`

	MemberReliefIsActive *bool `json:"member_relief_is_active" validate:"omitempty"`
}

func (r *CreateMemberReliefRequest) ToModel() *model.MemberReliefModel {
	m := &model.MemberReliefModel{
		MemberReliefType:               r.MemberReliefType,
		MemberReliefTitle:              strings.TrimSpace(r.MemberReliefTitle),
		MemberReliefNepaliTitle:        strings.TrimSpace(r.MemberReliefNepaliTitle),
		MemberReliefDescription:        r.MemberReliefDescription,
		MemberReliefEligibility:        r.MemberReliefEligibility,
		MemberReliefBenefits:           r.MemberReliefBenefits,
		MemberReliefApplicationProcess: r.MemberReliefApplicationProcess,
		MemberReliefRequiredDocuments:  r.MemberReliefRequiredDocuments,
		MemberReliefContactInfo:        r.MemberReliefContactInfo,
		MemberReliefImageURL:           r.MemberReliefImageURL,
		MemberReliefIcon:               "fas fa-heart",
		MemberReliefColor:              "bhanjyangred",
		MemberReliefIsActive:           true,
	}
	if r.MemberReliefIcon != nil {
		m.MemberReliefIcon = strings.TrimSpace(*r.MemberReliefIcon)
	}
	if r.MemberReliefColor != nil {
		m.MemberReliefColor = strings.TrimSpace(*r.MemberReliefColor)
	}
	if r.MemberReliefIsActive != nil {
		m.MemberReliefIsActive = *r.MemberReliefIsActive
	}
	return m
}

type PatchMemberReliefRequest struct {
	MemberReliefTitle       *string `json:"member_relief_title" validate:"omitempty,max=200"`
	MemberReliefNepaliTitle *string `json:"member_relief_nepali_title" validate:"omitempty,max=200"`

	MemberReliefDescription *string `json:"member_relief_description" validate:"omitempty"`
	MemberReliefEligibility *string `json:"member_relief_eligibility" validate:"omitempty"`
	MemberReliefBenefits    *string `json:"member_relief_benefits" validate:"omitempty"`

	MemberReliefApplicationProcess *string `json:"member_relief_application_process" validate:"omitempty"`
	MemberReliefRequiredDocuments  *string `json:"member_relief_required_documents" validate:"omitempty"`
	MemberReliefContactInfo        *string `json:"member_relief_contact_info" validate:"omitempty"`

	MemberReliefImageURL *string `json:"member_relief_image_url" validate:"omitempty"`

	MemberReliefIcon  *string `json:"member_relief_icon" validate:"omitempty,max=50"`
	MemberReliefColor *string `json:"member_relief_color" validate:"omitempty,max=20"`

	MemberReliefIsActive *bool `json:"member_relief_is_active" validate:"omitempty"`
}

func (r *PatchMemberReliefRequest) Apply(m *model.MemberReliefModel) {
	if r.MemberReliefTitle != nil {
		m.MemberReliefTitle = strings.TrimSpace(*r.MemberReliefTitle)
	}
	if r.MemberReliefNepaliTitle != nil {
		m.MemberReliefNepaliTitle = strings.TrimSpace(*r.MemberReliefNepaliTitle)
	}
	if r.MemberReliefDescription != nil {
		m.MemberReliefDescription = *r.MemberReliefDescription
	}
	if r.MemberReliefEligibility != nil {
		m.MemberReliefEligibility = *r.MemberReliefEligibility
	}
	if r.MemberReliefBenefits != nil {
		m.MemberReliefBenefits = *r.MemberReliefBenefits
	}
	if r.MemberReliefApplicationProcess != nil {
		m.MemberReliefApplicationProcess = *r.MemberReliefApplicationProcess
	}
	if r.MemberReliefRequiredDocuments != nil {
		m.MemberReliefRequiredDocuments = *r.MemberReliefRequiredDocuments
	}
	if r.MemberReliefContactInfo != nil {
		m.MemberReliefContactInfo = *r.MemberReliefContactInfo
	}
	if r.MemberReliefImageURL != nil {
		m.MemberReliefImageURL = r.MemberReliefImageURL
	}
	if r.MemberReliefIcon != nil {
		m.MemberReliefIcon = strings.TrimSpace(*r.MemberReliefIcon)
	}
	if r.MemberReliefColor != nil {
		m.MemberReliefColor = strings.TrimSpace(*r.MemberReliefColor)
	}
	if r.MemberReliefIsActive != nil {
		m.MemberReliefIsActive = *r.MemberReliefIsActive
	}
}

/* =========================================================
   Public grouping
========================================================= */

type MemberReliefGroup struct {
	TypeLabel string                    `json:"type_label"`
	Programs  []model.MemberReliefModel `json:"programs"`
}

// GroupMemberReliefs buckets relief programs by their type label, preserving
// the incoming order.
func GroupMemberReliefs(rows []model.MemberReliefModel) []MemberReliefGroup {
	var groups []MemberReliefGroup
	index := map[string]int{}
	for i := range rows {
		label := rows[i].MemberReliefType.Label()
		at, ok := index[label]
		if !ok {
			at = len(groups)
			index[label] = at
			groups = append(groups, MemberReliefGroup{TypeLabel: label})
		}
		groups[at].Programs = append(groups[at].Programs, rows[i])
	}
	if groups == nil {
		groups = []MemberReliefGroup{}
	}
	return groups
}
