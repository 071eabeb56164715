// file: internals/features/team/controller/about_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "bhanjyang_backend/internals/features/team/model"
	service "bhanjyang_backend/internals/features/team/service"
	helper "bhanjyang_backend/internals/helpers"
)

/* ==============================
   Public: about page
============================== */

// GET /about - leadership buckets, chairman/manager highlights, and the list
// of former committees. Query failures are logged and the page is served with
// whatever was assembled; the About page never 500s over a single bad query.
func (ctl *TeamController) About(c *fiber.Ctx) error {
	ctx := service.NewAboutContext()

	var active []model.CommitteeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("committee_is_active = ?", true).
		Order("committee_order ASC").
		Preload("Memberships", func(db *gorm.DB) *gorm.DB {
			return db.Order("membership_order ASC")
		}).
		Preload("Memberships.Person").
		Find(&active).Error; err != nil {
		log.Printf("⚠️  about: load active committees: %v", err)
	} else {
		ctx.FillBuckets(active)
	}

	var former []model.CommitteeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("committee_is_active = ?", false).
		Find(&former).Error; err != nil {
		log.Printf("⚠️  about: load former committees: %v", err)
	} else {
		ctx.FillFormer(former)
	}

	return helper.JsonOK(c, "About Us", ctx)
}
