// file: internals/features/services/dto/savings_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	model "bhanjyang_backend/internals/features/services/model"
)

/* =========================================================
   Savings accounts
========================================================= */

type CreateSavingsAccountRequest struct {
	SavingsAccountType           model.SavingsAccountType `json:"savings_account_type" validate:"required,oneof=general daily institutional child senior_citizen remit insurance monthly"`
	SavingsAccountNepaliName     string                   `json:"savings_account_nepali_name" validate:"required,max=100"`
	SavingsAccountEnglishName    string                   `json:"savings_account_english_name" validate:"required,max=100"`
	SavingsAccountInterestRate   float64                  `json:"savings_account_interest_rate" validate:"required,gte=0,lte=25"`
	SavingsAccountMinimumBalance *float64                 `json:"savings_account_minimum_balance" validate:"omitempty,gte=0"`
	SavingsAccountDescription    string                   `json:"savings_account_description" validate:"omitempty"`
	SavingsAccountFeatures       datatypes.JSON           `json:"savings_account_features" validate:"omitempty"`
	SavingsAccountIcon           *string                  `json:"savings_account_icon" validate:"omitempty,max=50"`
	SavingsAccountColor          *string                  `json:"savings_account_color" validate:"omitempty,max=20"`
	SavingsAccountIsFeatured     *bool                    `json:"savings_account_is_featured" validate:"omitempty"`
	SavingsAccountIsActive       *bool                    `json:"savings_account_is_active" validate:"omitempty"`
}

func (r *CreateSavingsAccountRequest) ToModel() *model.SavingsAccountModel {
	m := &model.SavingsAccountModel{
		SavingsAccountType:           r.SavingsAccountType,
		SavingsAccountNepaliName:     strings.TrimSpace(r.SavingsAccountNepaliName),
		SavingsAccountEnglishName:    strings.TrimSpace(r.SavingsAccountEnglishName),
		SavingsAccountInterestRate:   r.SavingsAccountInterestRate,
		SavingsAccountMinimumBalance: r.SavingsAccountMinimumBalance,
		SavingsAccountDescription:    r.SavingsAccountDescription,
		SavingsAccountFeatures:       r.SavingsAccountFeatures,
		SavingsAccountIcon:           "fas fa-piggy-bank",
		SavingsAccountColor:          "deuraligreen",
		SavingsAccountIsActive:       true,
	}
	if r.SavingsAccountIcon != nil {
		m.SavingsAccountIcon = strings.TrimSpace(*r.SavingsAccountIcon)
	}
	if r.SavingsAccountColor != nil {
		m.SavingsAccountColor = strings.TrimSpace(*r.SavingsAccountColor)
	}
	if r.SavingsAccountIsFeatured != nil {
		m.SavingsAccountIsFeatured = *r.SavingsAccountIsFeatured
	}
	if r.SavingsAccountIsActive != nil {
		m.SavingsAccountIsActive = *r.SavingsAccountIsActive
	}
	return m
}

type PatchSavingsAccountRequest struct {
	SavingsAccountNepaliName     *string        `json:"savings_account_nepali_name" validate:"omitempty,max=100"`
	SavingsAccountEnglishName    *string        `json:"savings_account_english_name" validate:"omitempty,max=100"`
	SavingsAccountInterestRate   *float64       `json:"savings_account_interest_rate" validate:"omitempty,gte=0,lte=25"`
	SavingsAccountMinimumBalance *float64       `json:"savings_account_minimum_balance" validate:"omitempty,gte=0"`
	SavingsAccountDescription    *string        `json:"savings_account_description" validate:"omitempty"`
	SavingsAccountFeatures       datatypes.JSON `json:"savings_account_features" validate:"omitempty"`
	SavingsAccountIcon           *string        `json:"savings_account_icon" validate:"omitempty,max=50"`
	SavingsAccountColor          *string        `json:"savings_account_color" validate:"omitempty,max=20"`
	SavingsAccountIsFeatured     *bool          `json:"savings_account_is_featured" validate:"omitempty"`
	SavingsAccountIsActive       *bool          `json:"savings_account_is_active" validate:"omitempty"`
}

func (r *PatchSavingsAccountRequest) Apply(m *model.SavingsAccountModel) {
	if r.SavingsAccountNepaliName != nil {
		m.SavingsAccountNepaliName = strings.TrimSpace(*r.SavingsAccountNepaliName)
	}
	if r.SavingsAccountEnglishName != nil {
		m.SavingsAccountEnglishName = strings.TrimSpace(*r.SavingsAccountEnglishName)
	}
	if r.SavingsAccountInterestRate != nil {
		m.SavingsAccountInterestRate = *r.SavingsAccountInterestRate
	}
	if r.SavingsAccountMinimumBalance != nil {
		m.SavingsAccountMinimumBalance = r.SavingsAccountMinimumBalance
	}
	if r.SavingsAccountDescription != nil {
		m.SavingsAccountDescription = *r.SavingsAccountDescription
	}
	if len(r.SavingsAccountFeatures) > 0 {
		m.SavingsAccountFeatures = r.SavingsAccountFeatures
	}
	if r.SavingsAccountIcon != nil {
		m.SavingsAccountIcon = strings.TrimSpace(*r.SavingsAccountIcon)
	}
	if r.SavingsAccountColor != nil {
		m.SavingsAccountColor = strings.TrimSpace(*r.SavingsAccountColor)
	}
	if r.SavingsAccountIsFeatured != nil {
		m.SavingsAccountIsFeatured = *r.SavingsAccountIsFeatured
	}
	if r.SavingsAccountIsActive != nil {
		m.SavingsAccountIsActive = *r.SavingsAccountIsActive
	}
}
