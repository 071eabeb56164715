// file: internals/features/updates/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bhanjyang_backend/internals/features/updates/controller"
)

// UpdatesAdminRoutes mounts the editorial CRUD surface.
func UpdatesAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUpdatesController(db)

	news := r.Group("/news")
	news.Post("/", ctl.CreateArticle)
	news.Get("/", ctl.ListArticles)
	news.Get("/:id", ctl.GetArticleByID)
	news.Patch("/:id", ctl.PatchArticle)
	news.Delete("/:id", ctl.DeleteArticle)

	cats := r.Group("/categories")
	cats.Post("/", ctl.CreateCategory)
	cats.Get("/", ctl.ListCategories)
	cats.Patch("/:id", ctl.PatchCategory)
	cats.Delete("/:id", ctl.DeleteCategory)

	events := r.Group("/events")
	events.Post("/", ctl.CreateEvent)
	events.Patch("/:id", ctl.PatchEvent)
	events.Delete("/:id", ctl.DeleteEvent)

	subs := r.Group("/subscribers")
	subs.Get("/", ctl.ListSubscribers)
	subs.Delete("/:id", ctl.DeleteSubscriber)
}
