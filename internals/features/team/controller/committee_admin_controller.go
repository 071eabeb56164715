// file: internals/features/team/controller/committee_admin_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bhanjyang_backend/internals/features/team/dto"
	model "bhanjyang_backend/internals/features/team/model"
	helper "bhanjyang_backend/internals/helpers"
)

/* ==============================
   Admin: committees
============================== */

// POST /committees
func (ctl *TeamController) CreateCommittee(c *fiber.Ctx) error {
	var req dto.CreateCommitteeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A committee with this name and tenure already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Committee created", dto.FromModelCommittee(m))
}

// GET /committees - ?active=true|false filter
func (ctl *TeamController) ListCommittees(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&model.CommitteeModel{})
	switch strings.ToLower(strings.TrimSpace(c.Query("active"))) {
	case "true":
		q = q.Where("committee_is_active = ?", true)
	case "false":
		q = q.Where("committee_is_active = ?", false)
	}

	var rows []model.CommitteeModel
	if err := q.
		Order("committee_order ASC, committee_tenure DESC").
		Preload("Memberships", func(db *gorm.DB) *gorm.DB {
			return db.Order("membership_order ASC")
		}).
		Preload("Memberships.Person").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load committees")
	}
	return helper.JsonOK(c, "ok", dto.FromModelCommittees(rows))
}

// GET /committees/:id
func (ctl *TeamController) GetCommitteeByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.CommitteeModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Memberships", func(db *gorm.DB) *gorm.DB {
			return db.Order("membership_order ASC")
		}).
		Preload("Memberships.Person").
		First(&row, "committee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Committee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromModelCommittee(&row))
}

// PATCH /committees/:id - slug is frozen; typically used to flip is_active
// when a committee's term ends.
func (ctl *TeamController) PatchCommittee(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.CommitteeModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "committee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Committee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchCommitteeRequest
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
	return helper.JsonUpdated(c, "Committee updated", dto.FromModelCommittee(&row))
}

// DELETE /committees/:id - memberships cascade away with the committee
func (ctl *TeamController) DeleteCommittee(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.CommitteeModel{}, "committee_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Committee not found")
	}
	return helper.JsonDeleted(c, "Committee deleted", fiber.Map{"committee_id": id})
}

/* ==============================
   Admin: memberships
============================== */

// POST /memberships
func (ctl *TeamController) CreateMembership(c *fiber.Ctx) error {
	var req dto.CreateMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "This person already holds a seat on this committee")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown person or committee")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).
		Preload("Person").
		First(m, "membership_id = ?", m.MembershipID).Error; err != nil {
		log.Printf("⚠️  membership %s created but reload failed: %v", m.MembershipID, err)
	}
	return helper.JsonCreated(c, "Membership created", dto.FromModelMembership(m))
}

// PATCH /memberships/:id
func (ctl *TeamController) PatchMembership(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.MembershipModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Person").
		First(&row, "membership_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membership not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchMembershipRequest
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
	return helper.JsonUpdated(c, "Membership updated", dto.FromModelMembership(&row))
}

// DELETE /memberships/:id
func (ctl *TeamController) DeleteMembership(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.MembershipModel{}, "membership_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Membership not found")
	}
	return helper.JsonDeleted(c, "Membership deleted", fiber.Map{"membership_id": id})
}
