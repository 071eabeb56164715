// file: internals/features/team/controller/person_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bhanjyang_backend/internals/features/team/dto"
	model "bhanjyang_backend/internals/features/team/model"
	helper "bhanjyang_backend/internals/helpers"
)

/* ==============================
   Admin: people
============================== */

// POST /people
func (ctl *TeamController) CreatePerson(c *fiber.Ctx) error {
	var req dto.CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A person with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Person created", dto.FromModelPerson(m))
}

// GET /people
func (ctl *TeamController) ListPeople(c *fiber.Ctx) error {
	var rows []model.PersonModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("person_full_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load people")
	}
	return helper.JsonOK(c, "ok", dto.FromModelPeople(rows))
}

// PATCH /people/:id
func (ctl *TeamController) PatchPerson(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.PersonModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "person_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Person not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchPersonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	body.Apply(&row)

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A person with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Person updated", dto.FromModelPerson(&row))
}

// DELETE /people/:id - memberships and staff rows cascade away with the person
func (ctl *TeamController) DeletePerson(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.PersonModel{}, "person_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Person not found")
	}
	return helper.JsonDeleted(c, "Person deleted", fiber.Map{"person_id": id})
}

/* ==============================
   Admin: staff
============================== */

// POST /staff
func (ctl *TeamController) CreateStaff(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "staff_start_date must be YYYY-MM-DD")
	}
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "This person already has a staff record")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown person")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctl.DB.WithContext(c.Context()).Preload("Person").First(m, "staff_id = ?", m.StaffID)
	return helper.JsonCreated(c, "Staff record created", dto.FromModelStaff(m))
}

// GET /staff
func (ctl *TeamController) ListStaff(c *fiber.Ctx) error {
	var rows []model.StaffModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("staff_order ASC").
		Preload("Person").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load staff")
	}
	return helper.JsonOK(c, "ok", dto.FromModelStaffList(rows))
}

// PATCH /staff/:id
func (ctl *TeamController) PatchStaff(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.StaffModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Person").
		First(&row, "staff_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Staff record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchStaffRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if err := body.Apply(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "staff_start_date must be YYYY-MM-DD")
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Staff record updated", dto.FromModelStaff(&row))
}

// DELETE /staff/:id
func (ctl *TeamController) DeleteStaff(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.StaffModel{}, "staff_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Staff record not found")
	}
	return helper.JsonDeleted(c, "Staff record deleted", fiber.Map{"staff_id": id})
}
