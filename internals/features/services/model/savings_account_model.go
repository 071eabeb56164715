// file: internals/features/services/model/savings_account_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   ENUM: SavingsAccountType
   ========================================================= */

type SavingsAccountType string

const (
	SavingsGeneral       SavingsAccountType = "general"
	SavingsDaily         SavingsAccountType = "daily"
	SavingsInstitutional SavingsAccountType = "institutional"
	SavingsChild         SavingsAccountType = "child"
	SavingsSeniorCitizen SavingsAccountType = "senior_citizen"
	SavingsRemit         SavingsAccountType = "remit"
	SavingsInsurance     SavingsAccountType = "insurance"
	SavingsMonthly       SavingsAccountType = "monthly"
)

func (t SavingsAccountType) Valid() bool {
	switch t {
	case SavingsGeneral, SavingsDaily, SavingsInstitutional, SavingsChild,
		SavingsSeniorCitizen, SavingsRemit, SavingsInsurance, SavingsMonthly:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: savings_accounts
   ========================================================= */

type SavingsAccountModel struct {
	SavingsAccountID   uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:savings_account_id" json:"savings_account_id"`
	SavingsAccountType SavingsAccountType `gorm:"type:varchar(20);not null;uniqueIndex;column:savings_account_type" json:"savings_account_type"`

	SavingsAccountNepaliName  string `gorm:"type:varchar(100);not null;column:savings_account_nepali_name" json:"savings_account_nepali_name"`
	SavingsAccountEnglishName string `gorm:"type:varchar(100);not null;column:savings_account_english_name" json:"savings_account_english_name"`

	SavingsAccountInterestRate   float64  `gorm:"type:numeric(4,2);not null;column:savings_account_interest_rate" json:"savings_account_interest_rate"`
	SavingsAccountMinimumBalance *float64 `gorm:"type:numeric(10,2);column:savings_account_minimum_balance" json:"savings_account_minimum_balance,omitempty"`

	SavingsAccountDescription string         `gorm:"type:text;not null;default:'';column:savings_account_description" json:"savings_account_description"`
	SavingsAccountFeatures    datatypes.JSON `gorm:"type:jsonb;column:savings_account_features" json:"savings_account_features,omitempty"`

	SavingsAccountIcon  string `gorm:"type:varchar(50);not null;default:'fas fa-piggy-bank';column:savings_account_icon" json:"savings_account_icon"`
	SavingsAccountColor string `gorm:"type:varchar(20);not null;default:'deuraligreen';column:savings_account_color" json:"savings_account_color"`

	SavingsAccountIsFeatured bool `gorm:"type:boolean;not null;default:false;column:savings_account_is_featured" json:"savings_account_is_featured"`
	SavingsAccountIsActive   bool `gorm:"type:boolean;not null;default:true;column:savings_account_is_active" json:"savings_account_is_active"`

	SavingsAccountCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:savings_account_created_at" json:"savings_account_created_at"`
	SavingsAccountUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:savings_account_updated_at" json:"savings_account_updated_at"`
}

func (SavingsAccountModel) TableName() string { return "savings_accounts" }
