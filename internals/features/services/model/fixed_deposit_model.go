// file: internals/features/services/model/fixed_deposit_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   ENUM: PaymentFrequency
   ========================================================= */

type PaymentFrequency string

const (
	PaymentMonthly   PaymentFrequency = "monthly"
	PaymentQuarterly PaymentFrequency = "quarterly"
	PaymentLumpSum   PaymentFrequency = "lump_sum"
)

func (f PaymentFrequency) Valid() bool {
	switch f {
	case PaymentMonthly, PaymentQuarterly, PaymentLumpSum:
		return true
	default:
		return false
	}
}

func (f PaymentFrequency) Label() string {
	switch f {
	case PaymentMonthly:
		return "Monthly"
	case PaymentQuarterly:
		return "Quarterly"
	case PaymentLumpSum:
		return "Lump Sum"
	default:
		return string(f)
	}
}

// Offered deposit terms in months.
var FixedDepositDurations = []int{3, 6, 9, 12, 24, 36}

func ValidDepositDuration(months int) bool {
	for _, d := range FixedDepositDurations {
		if d == months {
			return true
		}
	}
	return false
}

/* =========================================================
   MODEL: fixed_deposits
   ========================================================= */

type FixedDepositModel struct {
	FixedDepositID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fixed_deposit_id" json:"fixed_deposit_id"`

	FixedDepositDurationMonths   int              `gorm:"type:integer;not null;uniqueIndex:uq_fixed_deposit_term;column:fixed_deposit_duration_months" json:"fixed_deposit_duration_months"`
	FixedDepositPaymentFrequency PaymentFrequency `gorm:"type:varchar(20);not null;uniqueIndex:uq_fixed_deposit_term;column:fixed_deposit_payment_frequency" json:"fixed_deposit_payment_frequency"`

	FixedDepositInterestRate  float64  `gorm:"type:numeric(4,2);not null;column:fixed_deposit_interest_rate" json:"fixed_deposit_interest_rate"`
	FixedDepositMinimumAmount *float64 `gorm:"type:numeric(12,2);column:fixed_deposit_minimum_amount" json:"fixed_deposit_minimum_amount,omitempty"`
	FixedDepositMaximumAmount *float64 `gorm:"type:numeric(12,2);column:fixed_deposit_maximum_amount" json:"fixed_deposit_maximum_amount,omitempty"`

	FixedDepositDescription string         `gorm:"type:text;not null;default:'';column:fixed_deposit_description" json:"fixed_deposit_description"`
	FixedDepositBenefits    datatypes.JSON `gorm:"type:jsonb;column:fixed_deposit_benefits" json:"fixed_deposit_benefits,omitempty"`

	FixedDepositIcon     string `gorm:"type:varchar(50);not null;default:'fas fa-certificate';column:fixed_deposit_icon" json:"fixed_deposit_icon"`
	FixedDepositIsActive bool   `gorm:"type:boolean;not null;default:true;column:fixed_deposit_is_active" json:"fixed_deposit_is_active"`

	FixedDepositCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:fixed_deposit_created_at" json:"fixed_deposit_created_at"`
	FixedDepositUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:fixed_deposit_updated_at" json:"fixed_deposit_updated_at"`
}

func (FixedDepositModel) TableName() string { return "fixed_deposits" }

// DurationLabel renders the term the way the catalog pages group it.
func (m FixedDepositModel) DurationLabel() string {
	switch m.FixedDepositDurationMonths {
	case 12:
		return "1 Year"
	case 24:
		return "2 Years"
	case 36:
		return "3 Years"
	default:
		return fmt.Sprintf("%d Months", m.FixedDepositDurationMonths)
	}
}
