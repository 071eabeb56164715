// file: internals/features/services/dto/fixed_deposit_dto.go
package dto

import (
	"errors"
	"strings"

	"gorm.io/datatypes"

	model "bhanjyang_backend/internals/features/services/model"
)

var ErrInvalidDepositDuration = errors.New("deposit duration is not an offered term")

/* =========================================================
   Fixed deposits
========================================================= */

type CreateFixedDepositRequest struct {
	FixedDepositDurationMonths   int                    `json:"fixed_deposit_duration_months" validate:"required,min=1"`
	FixedDepositPaymentFrequency model.PaymentFrequency `json:"fixed_deposit_payment_frequency" validate:"required,oneof=monthly quarterly lump_sum"`
	FixedDepositInterestRate     float64                `json:"fixed_deposit_interest_rate" validate:"required,gte=0,lte=25"`
	FixedDepositMinimumAmount    *float64               `json:"fixed_deposit_minimum_amount" validate:"omitempty,gte=0"`
	FixedDepositMaximumAmount    *float64               `json:"fixed_deposit_maximum_amount" validate:"omitempty,gte=0"`
	FixedDepositDescription      string                 `json:"fixed_deposit_description" validate:"omitempty"`
	FixedDepositBenefits         datatypes.JSON         `json:"fixed_deposit_benefits" validate:"omitempty"`
	FixedDepositIcon             *string                `json:"fixed_deposit_icon" validate:"omitempty,max=50"`
	FixedDepositIsActive         *bool                  `json:"fixed_deposit_is_active" validate:"omitempty"`
}

func (r *CreateFixedDepositRequest) ToModel() (*model.FixedDepositModel, error) {
	if !model.ValidDepositDuration(r.FixedDepositDurationMonths) {
		return nil, ErrInvalidDepositDuration
	}
	m := &model.FixedDepositModel{
		FixedDepositDurationMonths:   r.FixedDepositDurationMonths,
		FixedDepositPaymentFrequency: r.FixedDepositPaymentFrequency,
		FixedDepositInterestRate:     r.FixedDepositInterestRate,
		FixedDepositMinimumAmount:    r.FixedDepositMinimumAmount,
		FixedDepositMaximumAmount:    r.FixedDepositMaximumAmount,
		FixedDepositDescription:      r.FixedDepositDescription,
		FixedDepositBenefits:         r.FixedDepositBenefits,
		FixedDepositIcon:             "fas fa-certificate",
		FixedDepositIsActive:         true,
	}
	if r.FixedDepositIcon != nil {
		m.FixedDepositIcon = strings.TrimSpace(*r.FixedDepositIcon)
	}
	if r.FixedDepositIsActive != nil {
		m.FixedDepositIsActive = *r.FixedDepositIsActive
	}
	return m, nil
}

// Duration and frequency identify the term and are not patchable.
type PatchFixedDepositRequest struct {
	FixedDepositInterestRate  *float64       `json:"fixed_deposit_interest_rate" validate:"omitempty,gte=0,lte=25"`
	FixedDepositMinimumAmount *float64       `json:"fixed_deposit_minimum_amount" validate:"omitempty,gte=0"`
	FixedDepositMaximumAmount *float64       `json:"fixed_deposit_maximum_amount" validate:"omitempty,gte=0"`
	FixedDepositDescription   *string        `json:"fixed_deposit_description" validate:"omitempty"`
	FixedDepositBenefits      datatypes.JSON `json:"fixed_deposit_benefits" validate:"omitempty"`
	FixedDepositIcon          *string        `json:"fixed_deposit_icon" validate:"omitempty,max=50"`
	FixedDepositIsActive      *bool          `json:"fixed_deposit_is_active" validate:"omitempty"`
}

func (r *PatchFixedDepositRequest) Apply(m *model.FixedDepositModel) {
	if r.FixedDepositInterestRate != nil {
		m.FixedDepositInterestRate = *r.FixedDepositInterestRate
	}
	if r.FixedDepositMinimumAmount != nil {
		m.FixedDepositMinimumAmount = r.FixedDepositMinimumAmount
	}
	if r.FixedDepositMaximumAmount != nil {
		m.FixedDepositMaximumAmount = r.FixedDepositMaximumAmount
	}
	if r.FixedDepositDescription != nil {
		m.FixedDepositDescription = *r.FixedDepositDescription
	}
	if len(r.FixedDepositBenefits) > 0 {
		m.FixedDepositBenefits = r.FixedDepositBenefits
	}
	if r.FixedDepositIcon != nil {
		m.FixedDepositIcon = strings.TrimSpace(*r.FixedDepositIcon)
	}
	if r.FixedDepositIsActive != nil {
		m.FixedDepositIsActive = *r.FixedDepositIsActive
	}
}

/* =========================================================
   Public grouping
========================================================= */

// FixedDepositGroup carries one duration bucket of the deposits page.
type FixedDepositGroup struct {
	DurationLabel string                    `json:"duration_label"`
	Deposits      []model.FixedDepositModel `json:"deposits"`
}

// GroupFixedDeposits buckets deposits by their duration label, preserving the
// incoming order both across and inside buckets.
func GroupFixedDeposits(rows []model.FixedDepositModel) []FixedDepositGroup {
	var groups []FixedDepositGroup
	index := map[string]int{}
	for i := range rows {
		label := rows[i].DurationLabel()
		at, ok := index[label]
		if !ok {
			at = len(groups)
			index[label] = at
			groups = append(groups, FixedDepositGroup{DurationLabel: label})
		}
		groups[at].Deposits = append(groups[at].Deposits, rows[i])
	}
	if groups == nil {
		groups = []FixedDepositGroup{}
	}
	return groups
}
