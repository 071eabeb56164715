// file: internals/features/team/controller/team_controller.go
package controller

import (
	validator "github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	helper "bhanjyang_backend/internals/helpers"
)

type TeamController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{
		DB:        db,
		Validator: helper.NewValidator(),
	}
}
