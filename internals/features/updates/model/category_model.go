// file: internals/features/updates/model/category_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bhanjyang_backend/internals/helpers"
)

/* =========================================================
   MODEL: categories
   ========================================================= */

type CategoryModel struct {
	CategoryID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:category_id" json:"category_id"`
	CategoryName string    `gorm:"type:varchar(100);not null;uniqueIndex;column:category_name" json:"category_name"`
	CategorySlug string    `gorm:"type:varchar(100);not null;uniqueIndex;column:category_slug" json:"category_slug"`

	CategoryCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:category_created_at" json:"category_created_at"`
	CategoryUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:category_updated_at" json:"category_updated_at"`
}

func (CategoryModel) TableName() string { return "categories" }

// BeforeSave derives the slug from the name on first save only. An already
// set slug is never recomputed so permalinks stay stable across renames.
func (m *CategoryModel) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(m.CategorySlug) == "" {
		m.CategorySlug = helper.Slugify(m.CategoryName, 100)
	}
	return nil
}
