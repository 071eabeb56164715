// file: internals/features/updates/controller/event_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bhanjyang_backend/internals/features/updates/dto"
	model "bhanjyang_backend/internals/features/updates/model"
	helper "bhanjyang_backend/internals/helpers"
)

/* ==============================
   Public: events
============================== */

// GET /updates/events - upcoming, soonest first. The boundary instant
// (event_date == now) classifies as upcoming, never past.
func (ctl *UpdatesController) ListUpcomingEvents(c *fiber.Ctx) error {
	return ctl.listEvents(c, true)
}

// GET /updates/events/past - archive, most recent first
func (ctl *UpdatesController) ListPastEvents(c *fiber.Ctx) error {
	return ctl.listEvents(c, false)
}

func (ctl *UpdatesController) listEvents(c *fiber.Ctx, upcoming bool) error {
	now := time.Now()
	q := ctl.DB.WithContext(c.Context()).Model(&model.EventModel{})
	if upcoming {
		q = q.Where("event_date >= ?", now)
	} else {
		q = q.Where("event_date < ?", now)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	page := helper.ClampPage(helper.ResolvePage(c), helper.TotalPages(total, eventsPerPage))

	order := "event_date ASC"
	title := "All Upcoming Events"
	if !upcoming {
		order = "event_date DESC"
		title = "Past Events Archive"
	}

	var rows []model.EventModel
	if err := q.Order(order).
		Limit(eventsPerPage).
		Offset((page - 1) * eventsPerPage).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	return helper.JsonList(c, "ok", fiber.Map{
		"page_title": title,
		"events":     dto.FromModelEvents(rows),
	}, helper.BuildPaginationFromPage(total, page, eventsPerPage))
}

/* ==============================
   Admin: events
============================== */

// POST /events
func (ctl *UpdatesController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Event created", dto.FromModelEvent(m))
}

// PATCH /events/:id
func (ctl *UpdatesController) PatchEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.EventModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if err := body.Apply(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Event updated", dto.FromModelEvent(&row))
}

// DELETE /events/:id
func (ctl *UpdatesController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&model.EventModel{}, "event_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": id})
}
