// file: internals/features/team/dto/person_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "bhanjyang_backend/internals/features/team/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   Person
========================================================= */

type CreatePersonRequest struct {
	PersonFullName string  `json:"person_full_name" validate:"required,max=100"`
	PersonPhotoURL *string `json:"person_photo_url" validate:"omitempty"`
	PersonBio      string  `json:"person_bio" validate:"omitempty"`
}

func (r *CreatePersonRequest) ToModel() *model.PersonModel {
	return &model.PersonModel{
		PersonFullName: strings.TrimSpace(r.PersonFullName),
		PersonPhotoURL: trimPtr(r.PersonPhotoURL),
		PersonBio:      r.PersonBio,
	}
}

type PatchPersonRequest struct {
	PersonFullName *string `json:"person_full_name" validate:"omitempty,max=100"`
	PersonPhotoURL *string `json:"person_photo_url" validate:"omitempty"`
	PersonBio      *string `json:"person_bio" validate:"omitempty"`
}

func (r *PatchPersonRequest) Apply(m *model.PersonModel) {
	if r.PersonFullName != nil {
		m.PersonFullName = strings.TrimSpace(*r.PersonFullName)
	}
	if r.PersonPhotoURL != nil {
		m.PersonPhotoURL = trimPtr(r.PersonPhotoURL)
	}
	if r.PersonBio != nil {
		m.PersonBio = *r.PersonBio
	}
}

type PersonResponse struct {
	PersonID       uuid.UUID `json:"person_id"`
	PersonFullName string    `json:"person_full_name"`
	PersonPhotoURL *string   `json:"person_photo_url,omitempty"`
	PersonBio      string    `json:"person_bio"`
}

func FromModelPerson(m *model.PersonModel) PersonResponse {
	return PersonResponse{
		PersonID:       m.PersonID,
		PersonFullName: m.PersonFullName,
		PersonPhotoURL: m.PersonPhotoURL,
		PersonBio:      m.PersonBio,
	}
}

func FromModelPeople(rows []model.PersonModel) []PersonResponse {
	out := make([]PersonResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelPerson(&rows[i]))
	}
	return out
}

/* =========================================================
   Staff
========================================================= */

type CreateStaffRequest struct {
	StaffPersonID  uuid.UUID `json:"staff_person_id" validate:"required"`
	StaffPosition  string    `json:"staff_position" validate:"required,max=100"`
	StaffStartDate *string   `json:"staff_start_date" validate:"omitempty"` // YYYY-MM-DD
	StaffIsActive  *bool     `json:"staff_is_active" validate:"omitempty"`
	StaffOrder     int       `json:"staff_order" validate:"omitempty,min=0"`
}

func (r *CreateStaffRequest) ToModel() (*model.StaffModel, error) {
	start, err := parseYMDPtr(r.StaffStartDate)
	if err != nil {
		return nil, err
	}
	isActive := true
	if r.StaffIsActive != nil {
		isActive = *r.StaffIsActive
	}
	return &model.StaffModel{
		StaffPersonID:  r.StaffPersonID,
		StaffPosition:  strings.TrimSpace(r.StaffPosition),
		StaffStartDate: start,
		StaffIsActive:  isActive,
		StaffOrder:     r.StaffOrder,
	}, nil
}

type PatchStaffRequest struct {
	StaffPosition  *string `json:"staff_position" validate:"omitempty,max=100"`
	StaffStartDate *string `json:"staff_start_date" validate:"omitempty"` // YYYY-MM-DD
	StaffIsActive  *bool   `json:"staff_is_active" validate:"omitempty"`
	StaffOrder     *int    `json:"staff_order" validate:"omitempty,min=0"`
}

func (r *PatchStaffRequest) Apply(m *model.StaffModel) error {
	if r.StaffPosition != nil {
		m.StaffPosition = strings.TrimSpace(*r.StaffPosition)
	}
	if r.StaffStartDate != nil {
		start, err := parseYMDPtr(r.StaffStartDate)
		if err != nil {
			return err
		}
		m.StaffStartDate = start
	}
	if r.StaffIsActive != nil {
		m.StaffIsActive = *r.StaffIsActive
	}
	if r.StaffOrder != nil {
		m.StaffOrder = *r.StaffOrder
	}
	return nil
}

type StaffResponse struct {
	StaffID        uuid.UUID  `json:"staff_id"`
	StaffPersonID  uuid.UUID  `json:"staff_person_id"`
	PersonFullName string     `json:"person_full_name,omitempty"`
	PersonPhotoURL *string    `json:"person_photo_url,omitempty"`
	StaffPosition  string     `json:"staff_position"`
	StaffStartDate *time.Time `json:"staff_start_date,omitempty"`
	StaffIsActive  bool       `json:"staff_is_active"`
	StaffOrder     int        `json:"staff_order"`
}

func FromModelStaff(m *model.StaffModel) StaffResponse {
	resp := StaffResponse{
		StaffID:        m.StaffID,
		StaffPersonID:  m.StaffPersonID,
		StaffPosition:  m.StaffPosition,
		StaffStartDate: m.StaffStartDate,
		StaffIsActive:  m.StaffIsActive,
		StaffOrder:     m.StaffOrder,
	}
	if m.Person != nil {
		resp.PersonFullName = m.Person.PersonFullName
		resp.PersonPhotoURL = m.Person.PersonPhotoURL
	}
	return resp
}

func FromModelStaffList(rows []model.StaffModel) []StaffResponse {
	out := make([]StaffResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelStaff(&rows[i]))
	}
	return out
}

func parseYMDPtr(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}
