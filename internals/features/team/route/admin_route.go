// file: internals/features/team/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bhanjyang_backend/internals/features/team/controller"
)

// TeamAdminRoutes mounts people, committee, membership and staff CRUD.
func TeamAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeamController(db)

	people := r.Group("/people")
	people.Post("/", ctl.CreatePerson)
	people.Get("/", ctl.ListPeople)
	people.Patch("/:id", ctl.PatchPerson)
	people.Delete("/:id", ctl.DeletePerson)

	committees := r.Group("/committees")
	committees.Post("/", ctl.CreateCommittee)
	committees.Get("/", ctl.ListCommittees)
	committees.Get("/:id", ctl.GetCommitteeByID)
	committees.Patch("/:id", ctl.PatchCommittee)
	committees.Delete("/:id", ctl.DeleteCommittee)

	memberships := r.Group("/memberships")
	memberships.Post("/", ctl.CreateMembership)
	memberships.Patch("/:id", ctl.PatchMembership)
	memberships.Delete("/:id", ctl.DeleteMembership)

	staff := r.Group("/staff")
	staff.Post("/", ctl.CreateStaff)
	staff.Get("/", ctl.ListStaff)
	staff.Patch("/:id", ctl.PatchStaff)
	staff.Delete("/:id", ctl.DeleteStaff)
}
