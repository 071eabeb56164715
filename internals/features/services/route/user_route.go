// file: internals/features/services/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bhanjyang_backend/internals/features/services/controller"
)

// ServicesPublicRoutes mounts the services catalog pages.
func ServicesPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewServicesController(db)

	g := r.Group("/services")
	g.Get("/", ctl.Overview)
	g.Get("/savings", ctl.Savings)
	g.Get("/fixed-deposits", ctl.FixedDeposits)
	g.Get("/loans", ctl.Loans)
	g.Get("/remittance", ctl.Remittance)
	g.Get("/member-relief", ctl.Relief)
	// kind matcher goes last
	g.Get("/:kind/:id", ctl.Detail)
}
