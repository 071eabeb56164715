// file: internals/features/updates/controller/updates_controller.go
package controller

import (
	validator "github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	helper "bhanjyang_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

// Page sizes are fixed per view.
const (
	newsPerPage    = 6
	eventsPerPage  = 5
	homeNewsLimit  = 3
	homeEventLimit = 3
	relatedLimit   = 2
)

type UpdatesController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUpdatesController(db *gorm.DB) *UpdatesController {
	return &UpdatesController{
		DB:        db,
		Validator: helper.NewValidator(),
	}
}
