// file: internals/features/team/controller/team_user_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bhanjyang_backend/internals/features/team/dto"
	model "bhanjyang_backend/internals/features/team/model"
	helper "bhanjyang_backend/internals/helpers"
)

/* ==============================
   Public: team pages
============================== */

// GET /team - active committees with their seats, plus active staff.
func (ctl *TeamController) Team(c *fiber.Ctx) error {
	var committees []model.CommitteeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("committee_is_active = ?", true).
		Order("committee_order ASC, committee_name ASC").
		Preload("Memberships", func(db *gorm.DB) *gorm.DB {
			return db.Order("membership_order ASC")
		}).
		Preload("Memberships.Person").
		Find(&committees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load committees")
	}

	var staff []model.StaffModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("staff_is_active = ?", true).
		Order("staff_order ASC").
		Preload("Person").
		Find(&staff).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load staff")
	}

	return helper.JsonOK(c, "Our Team", fiber.Map{
		"committees": dto.FromModelCommittees(committees),
		"staff":      dto.FromModelStaffList(staff),
	})
}

// GET /team/archive - inactive committees, newest tenure first.
func (ctl *TeamController) TeamArchive(c *fiber.Ctx) error {
	var committees []model.CommitteeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("committee_is_active = ?", false).
		Order("committee_tenure DESC, committee_name ASC").
		Preload("Memberships", func(db *gorm.DB) *gorm.DB {
			return db.Order("membership_order ASC")
		}).
		Preload("Memberships.Person").
		Find(&committees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load committee archive")
	}

	return helper.JsonOK(c, "Committee Archive", fiber.Map{
		"committees": dto.FromModelCommittees(committees),
	})
}
