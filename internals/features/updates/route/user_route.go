// file: internals/features/updates/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bhanjyang_backend/internals/features/updates/controller"
	middlewares "bhanjyang_backend/internals/middlewares"
)

// UpdatesPublicRoutes mounts the public news/events surface.
func UpdatesPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUpdatesController(db)

	g := r.Group("/updates")
	g.Get("/", ctl.Home)
	g.Get("/news", ctl.ListAllNews)
	g.Get("/news/category/:category_slug", ctl.ListNewsByCategory)
	g.Get("/events", ctl.ListUpcomingEvents)
	g.Get("/events/past", ctl.ListPastEvents)
	g.Post("/subscribe", middlewares.SubscribeRateLimiter(), ctl.Subscribe)
	// slug matcher goes last
	g.Get("/news/:slug", ctl.GetNewsBySlug)
}
