// file: internals/features/services/model/loan_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   ENUM: LoanCategory
   ========================================================= */

type LoanCategory string

const (
	LoanBusiness          LoanCategory = "business"
	LoanAgricultural      LoanCategory = "agricultural"
	LoanVehicle           LoanCategory = "vehicle"
	LoanForeignEmployment LoanCategory = "foreign_employment"
	LoanHousehold         LoanCategory = "household"
	LoanHouseConstruction LoanCategory = "house_construction"
	LoanLandPurchase      LoanCategory = "land_purchase"
	LoanEducation         LoanCategory = "education"
	LoanPersonal          LoanCategory = "personal"
)

func (c LoanCategory) Valid() bool {
	switch c {
	case LoanBusiness, LoanAgricultural, LoanVehicle, LoanForeignEmployment,
		LoanHousehold, LoanHouseConstruction, LoanLandPurchase, LoanEducation, LoanPersonal:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: loan_types
   ========================================================= */

type LoanTypeModel struct {
	LoanTypeID       uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:loan_type_id" json:"loan_type_id"`
	LoanTypeCategory LoanCategory `gorm:"type:varchar(30);not null;uniqueIndex;column:loan_type_category" json:"loan_type_category"`

	LoanTypeNepaliName  string `gorm:"type:varchar(100);not null;column:loan_type_nepali_name" json:"loan_type_nepali_name"`
	LoanTypeEnglishName string `gorm:"type:varchar(100);not null;column:loan_type_english_name" json:"loan_type_english_name"`

	LoanTypeMonthlyInstallmentRate   float64 `gorm:"type:numeric(4,2);not null;column:loan_type_monthly_installment_rate" json:"loan_type_monthly_installment_rate"`
	LoanTypeQuarterlyInstallmentRate float64 `gorm:"type:numeric(4,2);not null;column:loan_type_quarterly_installment_rate" json:"loan_type_quarterly_installment_rate"`
	LoanTypeMonthlyInterestRate      float64 `gorm:"type:numeric(4,2);not null;column:loan_type_monthly_interest_rate" json:"loan_type_monthly_interest_rate"`

	LoanTypeMinimumAmount  *float64 `gorm:"type:numeric(12,2);column:loan_type_minimum_amount" json:"loan_type_minimum_amount,omitempty"`
	LoanTypeMaximumAmount  *float64 `gorm:"type:numeric(12,2);column:loan_type_maximum_amount" json:"loan_type_maximum_amount,omitempty"`
	LoanTypeMaxTenureYears *int     `gorm:"type:integer;column:loan_type_max_tenure_years" json:"loan_type_max_tenure_years,omitempty"`

	LoanTypeDescription  string         `gorm:"type:text;not null;default:'';column:loan_type_description" json:"loan_type_description"`
	LoanTypeRequirements datatypes.JSON `gorm:"type:jsonb;column:loan_type_requirements" json:"loan_type_requirements,omitempty"`
	LoanTypeBenefits     datatypes.JSON `gorm:"type:jsonb;column:loan_type_benefits" json:"loan_type_benefits,omitempty"`

	LoanTypeIcon  string `gorm:"type:varchar(50);not null;default:'fas fa-hand-holding-usd';column:loan_type_icon" json:"loan_type_icon"`
	LoanTypeColor string `gorm:"type:varchar(20);not null;default:'bhanjyangred';column:loan_type_color" json:"loan_type_color"`

	LoanTypeIsFeatured bool `gorm:"type:boolean;not null;default:false;column:loan_type_is_featured" json:"loan_type_is_featured"`
	LoanTypeIsActive   bool `gorm:"type:boolean;not null;default:true;column:loan_type_is_active" json:"loan_type_is_active"`

	LoanTypeCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:loan_type_created_at" json:"loan_type_created_at"`
	LoanTypeUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:loan_type_updated_at" json:"loan_type_updated_at"`
}

func (LoanTypeModel) TableName() string { return "loan_types" }
