// file: internals/features/services/dto/remittance_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	model "bhanjyang_backend/internals/features/services/model"
)

/* =========================================================
   Remittance services
========================================================= */

type CreateRemittanceServiceRequest struct {
	RemittanceServiceType model.RemittanceType `json:"remittance_service_type" validate:"required,oneof=domestic international mobile_banking"`

	RemittanceServiceName        string         `json:"remittance_service_name" validate:"required,max=100"`
	RemittanceServiceDescription string         `json:"remittance_service_description" validate:"required"`
	RemittanceServiceFeatures    datatypes.JSON `json:"remittance_service_features" validate:"omitempty"`

	RemittanceServiceTransferLimitMin *float64 `json:"remittance_service_transfer_limit_min" validate:"omitempty,gte=0"`
	RemittanceServiceTransferLimitMax *float64 `json:"remittance_service_transfer_limit_max" validate:"omitempty,gte=0"`

	RemittanceServiceProcessingTime string `json:"remittance_service_processing_time" validate:"omitempty,max=100"`
	RemittanceServiceFees           string `json:"remittance_service_fees" validate:"omitempty"`

	RemittanceServiceIcon     *string `json:"remittance_service_icon" validate:"omitempty,max=50"`
	RemittanceServiceIsActive *bool   `json:"remittance_service_is_active" validate:"omitempty"`
}

func (r *CreateRemittanceServiceRequest) ToModel() *model.RemittanceServiceModel {
	m := &model.RemittanceServiceModel{
		RemittanceServiceType:             r.RemittanceServiceType,
		RemittanceServiceName:             strings.TrimSpace(r.RemittanceServiceName),
		RemittanceServiceDescription:      r.RemittanceServiceDescription,
		RemittanceServiceFeatures:         r.RemittanceServiceFeatures,
		RemittanceServiceTransferLimitMin: r.RemittanceServiceTransferLimitMin,
		RemittanceServiceTransferLimitMax: r.RemittanceServiceTransferLimitMax,
		RemittanceServiceProcessingTime:   strings.TrimSpace(r.RemittanceServiceProcessingTime),
		RemittanceServiceFees:             r.RemittanceServiceFees,
		RemittanceServiceIcon:             "fas fa-exchange-alt",
		RemittanceServiceIsActive:         true,
	}
	if r.RemittanceServiceIcon != nil {
		m.RemittanceServiceIcon = strings.TrimSpace(*r.RemittanceServiceIcon)
	}
	if r.RemittanceServiceIsActive != nil {
		m.RemittanceServiceIsActive = *r.RemittanceServiceIsActive
	}
	return m
}

type PatchRemittanceServiceRequest struct {
	RemittanceServiceName        *string        `json:"remittance_service_name" validate:"omitempty,max=100"`
	RemittanceServiceDescription *string        `json:"remittance_service_description" validate:"omitempty"`
	RemittanceServiceFeatures    datatypes.JSON `json:"remittance_service_features" validate:"omitempty"`

	RemittanceServiceTransferLimitMin *float64 `json:"remittance_service_transfer_limit_min" validate:"omitempty,gte=0"`
	RemittanceServiceTransferLimitMax *float64 `json:"remittance_service_transfer_limit_max" validate:"omitempty,gte=0"`

	RemittanceServiceProcessingTime *string `json:"remittance_service_processing_time" validate:"omitempty,max=100"`
	RemittanceServiceFees           *string `json:"remittance_service_fees" validate:"omitempty"`

	RemittanceServiceIcon     *string `json:"remittance_service_icon" validate:"omitempty,max=50"`
	RemittanceServiceIsActive *bool   `json:"remittance_service_is_active" validate:"omitempty"`
}

func (r *PatchRemittanceServiceRequest) Apply(m *model.RemittanceServiceModel) {
	if r.RemittanceServiceName != nil {
		m.RemittanceServiceName = strings.TrimSpace(*r.RemittanceServiceName)
	}
	if r.RemittanceServiceDescription != nil {
		m.RemittanceServiceDescription = *r.RemittanceServiceDescription
	}
	if len(r.RemittanceServiceFeatures) > 0 {
		m.RemittanceServiceFeatures = r.RemittanceServiceFeatures
	}
	if r.RemittanceServiceTransferLimitMin != nil {
		m.RemittanceServiceTransferLimitMin = r.RemittanceServiceTransferLimitMin
	}
	if r.RemittanceServiceTransferLimitMax != nil {
		m.RemittanceServiceTransferLimitMax = r.RemittanceServiceTransferLimitMax
	}
	if r.RemittanceServiceProcessingTime != nil {
		m.RemittanceServiceProcessingTime = strings.TrimSpace(*r.RemittanceServiceProcessingTime)
	}
	if r.RemittanceServiceFees != nil {
		m.RemittanceServiceFees = *r.RemittanceServiceFees
	}
	if r.RemittanceServiceIcon != nil {
		m.RemittanceServiceIcon = strings.TrimSpace(*r.RemittanceServiceIcon)
	}
	if r.RemittanceServiceIsActive != nil {
		m.RemittanceServiceIsActive = *r.RemittanceServiceIsActive
	}
}
