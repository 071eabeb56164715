// file: internals/features/team/dto/committee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "bhanjyang_backend/internals/features/team/model"
)

/* =========================================================
   Committee
========================================================= */

type CreateCommitteeRequest struct {
	CommitteeName     string `json:"committee_name" validate:"required,max=150"`
	CommitteeTenure   string `json:"committee_tenure" validate:"required,max=20"`
	CommitteeIsActive *bool  `json:"committee_is_active" validate:"omitempty"`
	CommitteeOrder    int    `json:"committee_order" validate:"omitempty,min=0"`
}

func (r *CreateCommitteeRequest) ToModel() *model.CommitteeModel {
	isActive := true
	if r.CommitteeIsActive != nil {
		isActive = *r.CommitteeIsActive
	}
	return &model.CommitteeModel{
		CommitteeName:     strings.TrimSpace(r.CommitteeName),
		CommitteeTenure:   strings.TrimSpace(r.CommitteeTenure),
		CommitteeIsActive: isActive,
		CommitteeOrder:    r.CommitteeOrder,
	}
}

// Slug is frozen at create time; name and tenure edits do not move it.
type PatchCommitteeRequest struct {
	CommitteeName     *string `json:"committee_name" validate:"omitempty,max=150"`
	CommitteeTenure   *string `json:"committee_tenure" validate:"omitempty,max=20"`
	CommitteeIsActive *bool   `json:"committee_is_active" validate:"omitempty"`
	CommitteeOrder    *int    `json:"committee_order" validate:"omitempty,min=0"`
}

func (r *PatchCommitteeRequest) Apply(m *model.CommitteeModel) {
	if r.CommitteeName != nil {
		m.CommitteeName = strings.TrimSpace(*r.CommitteeName)
	}
	if r.CommitteeTenure != nil {
		m.CommitteeTenure = strings.TrimSpace(*r.CommitteeTenure)
	}
	if r.CommitteeIsActive != nil {
		m.CommitteeIsActive = *r.CommitteeIsActive
	}
	if r.CommitteeOrder != nil {
		m.CommitteeOrder = *r.CommitteeOrder
	}
}

type CommitteeResponse struct {
	CommitteeID        uuid.UUID            `json:"committee_id"`
	CommitteeName      string               `json:"committee_name"`
	CommitteeTenure    string               `json:"committee_tenure"`
	CommitteeSlug      string               `json:"committee_slug"`
	CommitteeIsActive  bool                 `json:"committee_is_active"`
	CommitteeOrder     int                  `json:"committee_order"`
	CommitteeCreatedAt time.Time            `json:"committee_created_at"`
	Memberships        []MembershipResponse `json:"memberships,omitempty"`
}

func FromModelCommittee(m *model.CommitteeModel) CommitteeResponse {
	resp := CommitteeResponse{
		CommitteeID:        m.CommitteeID,
		CommitteeName:      m.CommitteeName,
		CommitteeTenure:    m.CommitteeTenure,
		CommitteeSlug:      m.CommitteeSlug,
		CommitteeIsActive:  m.CommitteeIsActive,
		CommitteeOrder:     m.CommitteeOrder,
		CommitteeCreatedAt: m.CommitteeCreatedAt,
	}
	if len(m.Memberships) > 0 {
		resp.Memberships = FromModelMemberships(m.Memberships)
	}
	return resp
}

func FromModelCommittees(rows []model.CommitteeModel) []CommitteeResponse {
	out := make([]CommitteeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelCommittee(&rows[i]))
	}
	return out
}

/* =========================================================
   Membership
========================================================= */

type CreateMembershipRequest struct {
	MembershipPersonID    uuid.UUID `json:"membership_person_id" validate:"required"`
	MembershipCommitteeID uuid.UUID `json:"membership_committee_id" validate:"required"`
	MembershipPosition    string    `json:"membership_position" validate:"required,max=100"`
	MembershipOrder       int       `json:"membership_order" validate:"omitempty,min=0"`
}

func (r *CreateMembershipRequest) ToModel() *model.MembershipModel {
	return &model.MembershipModel{
		MembershipPersonID:    r.MembershipPersonID,
		MembershipCommitteeID: r.MembershipCommitteeID,
		MembershipPosition:    strings.TrimSpace(r.MembershipPosition),
		MembershipOrder:       r.MembershipOrder,
	}
}

type PatchMembershipRequest struct {
	MembershipPosition *string `json:"membership_position" validate:"omitempty,max=100"`
	MembershipOrder    *int    `json:"membership_order" validate:"omitempty,min=0"`
}

func (r *PatchMembershipRequest) Apply(m *model.MembershipModel) {
	if r.MembershipPosition != nil {
		m.MembershipPosition = strings.TrimSpace(*r.MembershipPosition)
	}
	if r.MembershipOrder != nil {
		m.MembershipOrder = *r.MembershipOrder
	}
}

type MembershipResponse struct {
	MembershipID          uuid.UUID `json:"membership_id"`
	MembershipPersonID    uuid.UUID `json:"membership_person_id"`
	MembershipCommitteeID uuid.UUID `json:"membership_committee_id"`
	PersonFullName        string    `json:"person_full_name,omitempty"`
	PersonPhotoURL        *string   `json:"person_photo_url,omitempty"`
	MembershipPosition    string    `json:"membership_position"`
	MembershipOrder       int       `json:"membership_order"`
}

func FromModelMembership(m *model.MembershipModel) MembershipResponse {
	resp := MembershipResponse{
		MembershipID:          m.MembershipID,
		MembershipPersonID:    m.MembershipPersonID,
		MembershipCommitteeID: m.MembershipCommitteeID,
		MembershipPosition:    m.MembershipPosition,
		MembershipOrder:       m.MembershipOrder,
	}
	if m.Person != nil {
		resp.PersonFullName = m.Person.PersonFullName
		resp.PersonPhotoURL = m.Person.PersonPhotoURL
	}
	return resp
}

func FromModelMemberships(rows []model.MembershipModel) []MembershipResponse {
	out := make([]MembershipResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelMembership(&rows[i]))
	}
	return out
}
