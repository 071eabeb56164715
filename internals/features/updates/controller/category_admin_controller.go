// file: internals/features/updates/controller/category_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bhanjyang_backend/internals/features/updates/dto"
	model "bhanjyang_backend/internals/features/updates/model"
	helper "bhanjyang_backend/internals/helpers"
)

/* ==============================
   Admin: categories
============================== */

// POST /categories
func (ctl *UpdatesController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Name or slug already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Category created", dto.FromModelCategory(m))
}

// GET /categories
func (ctl *UpdatesController) ListCategories(c *fiber.Ctx) error {
	var rows []model.CategoryModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("category_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load categories")
	}
	return helper.JsonOK(c, "ok", dto.FromModelCategories(rows))
}

// PATCH /categories/:id - rename only; slug is frozen after first save
func (ctl *UpdatesController) PatchCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.CategoryModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	body.Apply(&row)

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Name already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Category updated", dto.FromModelCategory(&row))
}

// DELETE /categories/:id - blocked while articles still reference it
func (ctl *UpdatesController) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var refs int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.NewsArticleModel{}).
		Where("news_article_category_id = ?", id).
		Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Category still has articles")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&model.CategoryModel{}, "category_id = ?", id)
	if res.Error != nil {
		// The FK constraint is the safety net against a racing insert
		if helper.IsForeignKeyViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "Category still has articles")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}
	return helper.JsonDeleted(c, "Category deleted", fiber.Map{"category_id": id})
}
