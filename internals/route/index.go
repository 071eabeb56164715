// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configs "bhanjyang_backend/internals/configs"
	contactRoute "bhanjyang_backend/internals/features/contact/route"
	downloadRoute "bhanjyang_backend/internals/features/downloads/route"
	servicesRoute "bhanjyang_backend/internals/features/services/route"
	teamRoute "bhanjyang_backend/internals/features/team/route"
	updatesRoute "bhanjyang_backend/internals/features/updates/route"
	mailer "bhanjyang_backend/internals/mailer"
	middlewares "bhanjyang_backend/internals/middlewares"
)

// SetupRoutes mounts the public site under /api/public and the admin CRUD
// surface under /api/a behind the admin JWT guard.
func SetupRoutes(app *fiber.App, db *gorm.DB, mail mailer.Mailer) {
	public := app.Group("/api/public")
	updatesRoute.UpdatesPublicRoutes(public, db)
	teamRoute.TeamPublicRoutes(public, db)
	servicesRoute.ServicesPublicRoutes(public, db)
	downloadRoute.DownloadPublicRoutes(public, db)
	contactRoute.ContactPublicRoutes(public, mail)

	admin := app.Group("/api/a", middlewares.AdminJWT(middlewares.AdminJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))
	updatesRoute.UpdatesAdminRoutes(admin, db)
	teamRoute.TeamAdminRoutes(admin, db)
	servicesRoute.ServicesAdminRoutes(admin, db)
	downloadRoute.DownloadAdminRoutes(admin, db)
}
