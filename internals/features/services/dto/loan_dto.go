// file: internals/features/services/dto/loan_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	model "bhanjyang_backend/internals/features/services/model"
)

/* =========================================================
   Loan types
========================================================= */

type CreateLoanTypeRequest struct {
	LoanTypeCategory model.LoanCategory `json:"loan_type_category" validate:"required,oneof=business agricultural vehicle foreign_employment household house_construction land_purchase education personal"`

	LoanTypeNepaliName  string `json:"loan_type_nepali_name" validate:"required,max=100"`
	LoanTypeEnglishName string `json:"loan_type_english_name" validate:"required,max=100"`

	LoanTypeMonthlyInstallmentRate   float64 `json:"loan_type_monthly_installment_rate" validate:"required,gte=0,lte=30"`
	LoanTypeQuarterlyInstallmentRate float64 `json:"loan_type_quarterly_installment_rate" validate:"required,gte=0,lte=30"`
	LoanTypeMonthlyInterestRate      float64 `json:"loan_type_monthly_interest_rate" validate:"required,gte=0,lte=30"`

	LoanTypeMinimumAmount  *float64 `json:"loan_type_minimum_amount" validate:"omitempty,gte=0"`
	LoanTypeMaximumAmount  *float64 `json:"loan_type_maximum_amount" validate:"omitempty,gte=0"`
	LoanTypeMaxTenureYears *int     `json:"loan_type_max_tenure_years" validate:"omitempty,min=1,max=30"`

	LoanTypeDescription  string         `json:"loan_type_description" validate:"omitempty"`
	LoanTypeRequirements datatypes.JSON `json:"loan_type_requirements" validate:"omitempty"`
	LoanTypeBenefits     datatypes.JSON `json:"loan_type_benefits" validate:"omitempty"`

	LoanTypeIcon  *string `json:"loan_type_icon" validate:"omitempty,max=50"`
	LoanTypeColor *string `json:"loan_type_color" validate:"omitempty,max=20"`

	LoanTypeIsFeatured *bool `json:"loan_type_is_featured" validate:"omitempty"`
	LoanTypeIsActive   *bool `json:"loan_type_is_active" validate:"omitempty"`
}

func (r *CreateLoanTypeRequest) ToModel() *model.LoanTypeModel {
	m := &model.LoanTypeModel{
		LoanTypeCategory:                 r.LoanTypeCategory,
		LoanTypeNepaliName:               strings.TrimSpace(r.LoanTypeNepaliName),
		LoanTypeEnglishName:              strings.TrimSpace(r.LoanTypeEnglishName),
		LoanTypeMonthlyInstallmentRate:   r.LoanTypeMonthlyInstallmentRate,
		LoanTypeQuarterlyInstallmentRate: r.LoanTypeQuarterlyInstallmentRate,
		LoanTypeMonthlyInterestRate:      r.LoanTypeMonthlyInterestRate,
		LoanTypeMinimumAmount:            r.LoanTypeMinimumAmount,
		LoanTypeMaximumAmount:            r.LoanTypeMaximumAmount,
		LoanTypeMaxTenureYears:           r.LoanTypeMaxTenureYears,
		LoanTypeDescription:              r.LoanTypeDescription,
		LoanTypeRequirements:             r.LoanTypeRequirements,
		LoanTypeBenefits:                 r.LoanTypeBenefits,
		LoanTypeIcon:                     "fas fa-hand-holding-usd",
		LoanTypeColor:                    "bhanjyangred",
		LoanTypeIsActive:                 true,
	}
	if r.LoanTypeIcon != nil {
		m.LoanTypeIcon = strings.TrimSpace(*r.LoanTypeIcon)
	}
	if r.LoanTypeColor != nil {
		m.LoanTypeColor = strings.TrimSpace(*r.LoanTypeColor)
	}
	if r.LoanTypeIsFeatured != nil {
		m.LoanTypeIsFeatured = *r.LoanTypeIsFeatured
	}
	if r.LoanTypeIsActive != nil {
		m.LoanTypeIsActive = *r.LoanTypeIsActive
	}
	return m
}

type PatchLoanTypeRequest struct {
	LoanTypeNepaliName  *string `json:"loan_type_nepali_name" validate:"omitempty,max=100"`
	LoanTypeEnglishName *string `json:"loan_type_english_name" validate:"omitempty,max=100"`

	LoanTypeMonthlyInstallmentRate   *float64 `json:"loan_type_monthly_installment_rate" validate:"omitempty,gte=0,lte=30"`
	LoanTypeQuarterlyInstallmentRate *float64 `json:"loan_type_quarterly_installment_rate" validate:"omitempty,gte=0,lte=30"`
	LoanTypeMonthlyInterestRate      *float64 `json:"loan_type_monthly_interest_rate" validate:"omitempty,gte=0,lte=30"`

	LoanTypeMinimumAmount  *float64 `json:"loan_type_minimum_amount" validate:"omitempty,gte=0"`
	LoanTypeMaximumAmount  *float64 `json:"loan_type_maximum_amount" validate:"omitempty,gte=0"`
	LoanTypeMaxTenureYears *int     `json:"loan_type_max_tenure_years" validate:"omitempty,min=1,max=30"`

	LoanTypeDescription  *string        `json:"loan_type_description" validate:"omitempty"`
	LoanTypeRequirements datatypes.JSON `json:"loan_type_requirements" validate:"omitempty"`
	LoanTypeBenefits     datatypes.JSON `json:"loan_type_benefits" validate:"omitempty"`

	LoanTypeIcon  *string `json:"loan_type_icon" validate:"omitempty,max=50"`
	LoanTypeColor *string `json:"loan_type_color" validate:"omitempty,max=20"`

	LoanTypeIsFeatured *bool `json:"loan_type_is_featured" validate:"omitempty"`
	LoanTypeIsActive   *bool `json:"loan_type_is_active" validate:"omitempty"`
}

func (r *PatchLoanTypeRequest) Apply(m *model.LoanTypeModel) {
	if r.LoanTypeNepaliName != nil {
		m.LoanTypeNepaliName = strings.TrimSpace(*r.LoanTypeNepaliName)
	}
	if r.LoanTypeEnglishName != nil {
		m.LoanTypeEnglishName = strings.TrimSpace(*r.LoanTypeEnglishName)
	}
	if r.LoanTypeMonthlyInstallmentRate != nil {
		m.LoanTypeMonthlyInstallmentRate = *r.LoanTypeMonthlyInstallmentRate
	}
	if r.LoanTypeQuarterlyInstallmentRate != nil {
		m.LoanTypeQuarterlyInstallmentRate = *r.LoanTypeQuarterlyInstallmentRate
	}
	if r.LoanTypeMonthlyInterestRate != nil {
		m.LoanTypeMonthlyInterestRate = *r.LoanTypeMonthlyInterestRate
	}
	if r.LoanTypeMinimumAmount != nil {
		m.LoanTypeMinimumAmount = r.LoanTypeMinimumAmount
	}
	if r.LoanTypeMaximumAmount != nil {
		m.LoanTypeMaximumAmount = r.LoanTypeMaximumAmount
	}
	if r.LoanTypeMaxTenureYears != nil {
		m.LoanTypeMaxTenureYears = r.LoanTypeMaxTenureYears
	}
	if r.LoanTypeDescription != nil {
		m.LoanTypeDescription = *r.LoanTypeDescription
	}
	if len(r.LoanTypeRequirements) > 0 {
		m.LoanTypeRequirements = r.LoanTypeRequirements
	}
	if len(r.LoanTypeBenefits) > 0 {
		m.LoanTypeBenefits = r.LoanTypeBenefits
	}
	if r.LoanTypeIcon != nil {
		m.LoanTypeIcon = strings.TrimSpace(*r.LoanTypeIcon)
	}
	if r.LoanTypeColor != nil {
		m.LoanTypeColor = strings.TrimSpace(*r.LoanTypeColor)
	}
	if r.LoanTypeIsFeatured != nil {
		m.LoanTypeIsFeatured = *r.LoanTypeIsFeatured
	}
	if r.LoanTypeIsActive != nil {
		m.LoanTypeIsActive = *r.LoanTypeIsActive
	}
}
