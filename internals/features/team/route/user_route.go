// file: internals/features/team/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bhanjyang_backend/internals/features/team/controller"
)

// TeamPublicRoutes mounts the team and about pages.
func TeamPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeamController(db)

	r.Get("/team", ctl.Team)
	r.Get("/team/archive", ctl.TeamArchive)
	r.Get("/about", ctl.About)
}
