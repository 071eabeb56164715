// file: internals/features/services/model/service_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: service_categories
   ========================================================= */

// Presentation grouping for the services overview page.
type ServiceCategoryModel struct {
	ServiceCategoryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:service_category_id" json:"service_category_id"`

	ServiceCategoryName       string `gorm:"type:varchar(100);not null;column:service_category_name" json:"service_category_name"`
	ServiceCategoryNepaliName string `gorm:"type:varchar(100);not null;column:service_category_nepali_name" json:"service_category_nepali_name"`

	ServiceCategoryDescription string `gorm:"type:text;not null;default:'';column:service_category_description" json:"service_category_description"`

	ServiceCategoryIcon  string `gorm:"type:varchar(50);not null;default:'';column:service_category_icon" json:"service_category_icon"`
	ServiceCategoryColor string `gorm:"type:varchar(20);not null;default:'deuraligreen';column:service_category_color" json:"service_category_color"`

	ServiceCategoryOrder    int  `gorm:"type:integer;not null;default:0;column:service_category_order" json:"service_category_order"`
	ServiceCategoryIsActive bool `gorm:"type:boolean;not null;default:true;column:service_category_is_active" json:"service_category_is_active"`

	ServiceCategoryCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:service_category_created_at" json:"service_category_created_at"`
	ServiceCategoryUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:service_category_updated_at" json:"service_category_updated_at"`
}

func (ServiceCategoryModel) TableName() string { return "service_categories" }
