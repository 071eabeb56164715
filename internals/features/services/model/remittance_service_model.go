// file: internals/features/services/model/remittance_service_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   ENUM: RemittanceType
   ========================================================= */

type RemittanceType string

const (
	RemittanceDomestic      RemittanceType = "domestic"
	RemittanceInternational RemittanceType = "international"
	RemittanceMobileBanking RemittanceType = "mobile_banking"
)

func (t RemittanceType) Valid() bool {
	switch t {
	case RemittanceDomestic, RemittanceInternational, RemittanceMobileBanking:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: remittance_services
   ========================================================= */

type RemittanceServiceModel struct {
	RemittanceServiceID   uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:remittance_service_id" json:"remittance_service_id"`
	RemittanceServiceType RemittanceType `gorm:"type:varchar(20);not null;uniqueIndex;column:remittance_service_type" json:"remittance_service_type"`

	RemittanceServiceName        string         `gorm:"type:varchar(100);not null;column:remittance_service_name" json:"remittance_service_name"`
	RemittanceServiceDescription string         `gorm:"type:text;not null;column:remittance_service_description" json:"remittance_service_description"`
	RemittanceServiceFeatures    datatypes.JSON `gorm:"type:jsonb;column:remittance_service_features" json:"remittance_service_features,omitempty"`

	RemittanceServiceTransferLimitMin *float64 `gorm:"type:numeric(12,2);column:remittance_service_transfer_limit_min" json:"remittance_service_transfer_limit_min,omitempty"`
	RemittanceServiceTransferLimitMax *float64 `gorm:"type:numeric(12,2);column:remittance_service_transfer_limit_max" json:"remittance_service_transfer_limit_max,omitempty"`

	RemittanceServiceProcessingTime string `gorm:"type:varchar(100);not null;default:'';column:remittance_service_processing_time" json:"remittance_service_processing_time"`
	RemittanceServiceFees           string `gorm:"type:text;not null;default:'';column:remittance_service_fees" json:"remittance_service_fees"`

	RemittanceServiceIcon     string `gorm:"type:varchar(50);not null;default:'fas fa-exchange-alt';column:remittance_service_icon" json:"remittance_service_icon"`
	RemittanceServiceIsActive bool   `gorm:"type:boolean;not null;default:true;column:remittance_service_is_active" json:"remittance_service_is_active"`

	RemittanceServiceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:remittance_service_created_at" json:"remittance_service_created_at"`
	RemittanceServiceUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:remittance_service_updated_at" json:"remittance_service_updated_at"`
}

func (RemittanceServiceModel) TableName() string { return "remittance_services" }
