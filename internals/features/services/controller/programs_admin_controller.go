// file: internals/features/services/controller/programs_admin_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bhanjyang_backend/internals/features/services/dto"
	model "bhanjyang_backend/internals/features/services/model"
	helper "bhanjyang_backend/internals/helpers"
)

/* ==============================
   Admin: remittance services
============================== */

// POST /remittance
func (ctl *ServicesController) CreateRemittanceService(c *fiber.Ctx) error {
	var req dto.CreateRemittanceServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A remittance service of this type already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Remittance service created", m)
}

// GET /remittance
func (ctl *ServicesController) ListRemittanceServices(c *fiber.Ctx) error {
	var rows []model.RemittanceServiceModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("remittance_service_type ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load remittance services")
	}
	return helper.JsonOK(c, "ok", rows)
}

// PATCH /remittance/:id
func (ctl *ServicesController) PatchRemittanceService(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.RemittanceServiceModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "remittance_service_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Remittance service not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchRemittanceServiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	body.Apply(&row)

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Remittance service updated", row)
}

// DELETE /remittance/:id
func (ctl *ServicesController) DeleteRemittanceService(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.RemittanceServiceModel{}, "remittance_service_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Remittance service not found")
	}
	return helper.JsonDeleted(c, "Remittance service deleted", fiber.Map{"remittance_service_id": id})
}

/* ==============================
   Admin: member relief programs
============================== */

// POST /relief
func (ctl *ServicesController) CreateMemberRelief(c *fiber.Ctx) error {
	var req dto.CreateMemberReliefRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Relief program created", m)
}

// GET /relief
func (ctl *ServicesController) ListMemberReliefs(c *fiber.Ctx) error {
	var rows []model.MemberReliefModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("member_relief_type ASC, member_relief_title ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load relief programs")
	}
	return helper.JsonOK(c, "ok", rows)
}

// PATCH /relief/:id
func (ctl *ServicesController) PatchMemberRelief(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.MemberReliefModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "member_relief_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Relief program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchMemberReliefRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	body.Apply(&row)

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Relief program updated", row)
}

// DELETE /relief/:id
func (ctl *ServicesController) DeleteMemberRelief(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.MemberReliefModel{}, "member_relief_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Relief program not found")
	}
	return helper.JsonDeleted(c, "Relief program deleted", fiber.Map{"member_relief_id": id})
}

/* ==============================
   Admin: service categories
============================== */

// POST /service-categories
func (ctl *ServicesController) CreateServiceCategory(c *fiber.Ctx) error {
	var req dto.CreateServiceCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Service category created", m)
}

// GET /service-categories
func (ctl *ServicesController) ListServiceCategories(c *fiber.Ctx) error {
	var rows []model.ServiceCategoryModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("service_category_order ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load service categories")
	}
	return helper.JsonOK(c, "ok", rows)
}

// PATCH /service-categories/:id
func (ctl *ServicesController) PatchServiceCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.ServiceCategoryModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "service_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchServiceCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	body.Apply(&row)

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Service category updated", row)
}

// DELETE /service-categories/:id
func (ctl *ServicesController) DeleteServiceCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.ServiceCategoryModel{}, "service_category_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Service category not found")
	}
	return helper.JsonDeleted(c, "Service category deleted", fiber.Map{"service_category_id": id})
}
