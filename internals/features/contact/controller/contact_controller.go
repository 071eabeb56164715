// file: internals/features/contact/controller/contact_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	validator "github.com/go-playground/validator/v10"

	configs "bhanjyang_backend/internals/configs"
	dto "bhanjyang_backend/internals/features/contact/dto"
	helper "bhanjyang_backend/internals/helpers"
	mailer "bhanjyang_backend/internals/mailer"
)

type ContactController struct {
	Mail      mailer.Mailer
	Validator *validator.Validate
}

func NewContactController(mail mailer.Mailer) *ContactController {
	return &ContactController{
		Mail:      mail,
		Validator: helper.NewValidator(),
	}
}

/* ==============================
   Public: contact form
============================== */

// POST /contact - relays the form to the office inbox. Nothing is persisted;
// a transport failure must surface so the visitor knows to retry.
func (ctl *ContactController) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	if err := ctl.Mail.Send(configs.ContactInbox, req.MailSubject(), req.MailBody()); err != nil {
		log.Printf("❌ contact: send mail: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not send your message, please try again later")
	}
	return helper.JsonOK(c, "Thank you for contacting us. We will get back to you soon.", nil)
}
