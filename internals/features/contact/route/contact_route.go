// file: internals/features/contact/route/contact_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "bhanjyang_backend/internals/features/contact/controller"
	mailer "bhanjyang_backend/internals/mailer"
	middlewares "bhanjyang_backend/internals/middlewares"
)

// ContactPublicRoutes mounts the contact form endpoint.
func ContactPublicRoutes(r fiber.Router, mail mailer.Mailer) {
	ctl := controller.NewContactController(mail)
	r.Post("/contact", middlewares.ContactRateLimiter(), ctl.Submit)
}
