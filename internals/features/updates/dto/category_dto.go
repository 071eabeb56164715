// file: internals/features/updates/dto/category_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "bhanjyang_backend/internals/features/updates/model"
)

type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required,max=100"`
	CategorySlug string `json:"category_slug" validate:"omitempty,max=100"`
}

func (r *CreateCategoryRequest) ToModel() *model.CategoryModel {
	return &model.CategoryModel{
		CategoryName: strings.TrimSpace(r.CategoryName),
		CategorySlug: strings.TrimSpace(r.CategorySlug),
	}
}

// A rename never touches the slug; permalinks built on it must keep working.
type PatchCategoryRequest struct {
	CategoryName *string `json:"category_name" validate:"omitempty,max=100"`
}

func (r *PatchCategoryRequest) Apply(m *model.CategoryModel) {
	if r.CategoryName != nil {
		m.CategoryName = strings.TrimSpace(*r.CategoryName)
	}
}

type CategoryResponse struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CategorySlug string    `json:"category_slug"`
}

func FromModelCategory(m *model.CategoryModel) CategoryResponse {
	return CategoryResponse{
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		CategorySlug: m.CategorySlug,
	}
}

func FromModelCategories(rows []model.CategoryModel) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelCategory(&rows[i]))
	}
	return out
}
