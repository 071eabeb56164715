// file: internals/features/services/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bhanjyang_backend/internals/features/services/controller"
)

// ServicesAdminRoutes mounts CRUD for every service kind.
func ServicesAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewServicesController(db)

	savings := r.Group("/savings")
	savings.Post("/", ctl.CreateSavingsAccount)
	savings.Get("/", ctl.ListSavingsAccounts)
	savings.Patch("/:id", ctl.PatchSavingsAccount)
	savings.Delete("/:id", ctl.DeleteSavingsAccount)

	deposits := r.Group("/fixed-deposits")
	deposits.Post("/", ctl.CreateFixedDeposit)
	deposits.Get("/", ctl.ListFixedDeposits)
	deposits.Patch("/:id", ctl.PatchFixedDeposit)
	deposits.Delete("/:id", ctl.DeleteFixedDeposit)

	loans := r.Group("/loans")
	loans.Post("/", ctl.CreateLoanType)
	loans.Get("/", ctl.ListLoanTypes)
	loans.Patch("/:id", ctl.PatchLoanType)
	loans.Delete("/:id", ctl.DeleteLoanType)

	remittance := r.Group("/remittance")
	remittance.Post("/", ctl.CreateRemittanceService)
	remittance.Get("/", ctl.ListRemittanceServices)
	remittance.Patch("/:id", ctl.PatchRemittanceService)
	remittance.Delete("/:id", ctl.DeleteRemittanceService)

	relief := r.Group("/relief")
	relief.Post("/", ctl.CreateMemberRelief)
	relief.Get("/", ctl.ListMemberReliefs)
	relief.Patch("/:id", ctl.PatchMemberRelief)
	relief.Delete("/:id", ctl.DeleteMemberRelief)

	categories := r.Group("/service-categories")
	categories.Post("/", ctl.CreateServiceCategory)
	categories.Get("/", ctl.ListServiceCategories)
	categories.Patch("/:id", ctl.PatchServiceCategory)
	categories.Delete("/:id", ctl.DeleteServiceCategory)
}
