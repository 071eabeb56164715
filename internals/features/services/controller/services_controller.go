// file: internals/features/services/controller/services_controller.go
package controller

import (
	validator "github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	helper "bhanjyang_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

// The overview page shows at most this many featured items per section.
const featuredLimit = 3

type ServicesController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewServicesController(db *gorm.DB) *ServicesController {
	return &ServicesController{
		DB:        db,
		Validator: helper.NewValidator(),
	}
}
