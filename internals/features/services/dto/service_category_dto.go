// file: internals/features/services/dto/service_category_dto.go
package dto

import (
	"strings"

	model "bhanjyang_backend/internals/features/services/model"
)

/* =========================================================
   Service categories
========================================================= */

type CreateServiceCategoryRequest struct {
	ServiceCategoryName        string  `json:"service_category_name" validate:"required,max=100"`
	ServiceCategoryNepaliName  string  `json:"service_category_nepali_name" validate:"required,max=100"`
	ServiceCategoryDescription string  `json:"service_category_description" validate:"omitempty"`
	ServiceCategoryIcon        *string `json:"service_category_icon" validate:"omitempty,max=50"`
	ServiceCategoryColor       *string `json:"service_category_color" validate:"omitempty,max=20"`
	ServiceCategoryOrder       int     `json:"service_category_order" validate:"omitempty,min=0"`
	ServiceCategoryIsActive    *bool   `json:"service_category_is_active" validate:"omitempty"`
}

func (r *CreateServiceCategoryRequest) ToModel() *model.ServiceCategoryModel {
	m := &model.ServiceCategoryModel{
		ServiceCategoryName:        strings.TrimSpace(r.ServiceCategoryName),
		ServiceCategoryNepaliName:  strings.TrimSpace(r.ServiceCategoryNepaliName),
		ServiceCategoryDescription: r.ServiceCategoryDescription,
		ServiceCategoryColor:       "deuraligreen",
		ServiceCategoryOrder:       r.ServiceCategoryOrder,
		ServiceCategoryIsActive:    true,
	}
	if r.ServiceCategoryIcon != nil {
		m.ServiceCategoryIcon = strings.TrimSpace(*r.ServiceCategoryIcon)
	}
	if r.ServiceCategoryColor != nil {
		m.ServiceCategoryColor = strings.TrimSpace(*r.ServiceCategoryColor)
	}
	if r.ServiceCategoryIsActive != nil {
		m.ServiceCategoryIsActive = *r.ServiceCategoryIsActive
	}
	return m
}

type PatchServiceCategoryRequest struct {
	ServiceCategoryName        *string `json:"service_category_name" validate:"omitempty,max=100"`
	ServiceCategoryNepaliName  *string `json:"service_category_nepali_name" validate:"omitempty,max=100"`
	ServiceCategoryDescription *string `json:"service_category_description" validate:"omitempty"`
	ServiceCategoryIcon        *string `json:"service_category_icon" validate:"omitempty,max=50"`
	ServiceCategoryColor       *string `json:"service_category_color" validate:"omitempty,max=20"`
	ServiceCategoryOrder       *int    `json:"service_category_order" validate:"omitempty,min=0"`
	ServiceCategoryIsActive    *bool   `json:"service_category_is_active" validate:"omitempty"`
}

func (r *PatchServiceCategoryRequest) Apply(m *model.ServiceCategoryModel) {
	if r.ServiceCategoryName != nil {
		m.ServiceCategoryName = strings.TrimSpace(*r.ServiceCategoryName)
	}
	if r.ServiceCategoryNepaliName != nil {
		m.ServiceCategoryNepaliName = strings.TrimSpace(*r.ServiceCategoryNepaliName)
	}
	if r.ServiceCategoryDescription != nil {
		m.ServiceCategoryDescription = *r.ServiceCategoryDescription
	}
	if r.ServiceCategoryIcon != nil {
		m.ServiceCategoryIcon = strings.TrimSpace(*r.ServiceCategoryIcon)
	}
	if r.ServiceCategoryColor != nil {
		m.ServiceCategoryColor = strings.TrimSpace(*r.ServiceCategoryColor)
	}
	if r.ServiceCategoryOrder != nil {
		m.ServiceCategoryOrder = *r.ServiceCategoryOrder
	}
	if r.ServiceCategoryIsActive != nil {
		m.ServiceCategoryIsActive = *r.ServiceCategoryIsActive
	}
}
