// file: internals/features/downloads/route/download_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bhanjyang_backend/internals/features/downloads/controller"
)

// DownloadPublicRoutes mounts the public document list.
func DownloadPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDownloadController(db)
	r.Get("/downloads", ctl.ListDownloads)
}

// DownloadAdminRoutes mounts document CRUD.
func DownloadAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDownloadController(db)

	g := r.Group("/downloads")
	g.Post("/", ctl.CreateDownload)
	g.Patch("/:id", ctl.PatchDownload)
	g.Delete("/:id", ctl.DeleteDownload)
}
