// file: internals/features/updates/controller/subscriber_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "bhanjyang_backend/internals/features/updates/dto"
	model "bhanjyang_backend/internals/features/updates/model"
	helper "bhanjyang_backend/internals/helpers"
)

/* ==============================
   Public: newsletter subscription
============================== */

// POST /updates/subscribe
// Duplicate submissions fail with a uniqueness error; they never overwrite.
func (ctl *UpdatesController) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "This email address is already subscribed.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Subscription failed")
	}

	return helper.JsonCreated(c, "Thank you for subscribing!", dto.FromModelSubscriber(m))
}

/* ==============================
   Admin: subscribers (list + delete only; the system never updates them)
============================== */

// GET /subscribers
func (ctl *UpdatesController) ListSubscribers(c *fiber.Ctx) error {
	var rows []model.SubscriberModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("subscriber_subscribed_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subscribers")
	}
	return helper.JsonOK(c, "ok", dto.FromModelSubscribers(rows))
}

// DELETE /subscribers/:id
func (ctl *UpdatesController) DeleteSubscriber(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&model.SubscriberModel{}, "subscriber_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subscriber not found")
	}
	return helper.JsonDeleted(c, "Subscriber deleted", fiber.Map{"subscriber_id": id})
}
