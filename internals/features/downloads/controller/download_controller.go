// file: internals/features/downloads/controller/download_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bhanjyang_backend/internals/features/downloads/dto"
	model "bhanjyang_backend/internals/features/downloads/model"
	helper "bhanjyang_backend/internals/helpers"
)

type DownloadController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDownloadController(db *gorm.DB) *DownloadController {
	return &DownloadController{
		DB:        db,
		Validator: helper.NewValidator(),
	}
}

/* ==============================
   Public
============================== */

// GET /downloads - newest upload first.
func (ctl *DownloadController) ListDownloads(c *fiber.Ctx) error {
	var rows []model.DownloadModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("download_uploaded_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load downloads")
	}
	return helper.JsonOK(c, "Downloads", fiber.Map{"downloads": rows})
}

/* ==============================
   Admin
============================== */

// POST /downloads
func (ctl *DownloadController) CreateDownload(c *fiber.Ctx) error {
	var req dto.CreateDownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Download created", m)
}

// PATCH /downloads/:id
func (ctl *DownloadController) PatchDownload(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.DownloadModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "download_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Download not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchDownloadRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	body.Apply(&row)

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Download updated", row)
}

// DELETE /downloads/:id
func (ctl *DownloadController) DeleteDownload(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.DownloadModel{}, "download_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Download not found")
	}
	return helper.JsonDeleted(c, "Download deleted", fiber.Map{"download_id": id})
}
