// file: internals/features/services/controller/catalog_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bhanjyang_backend/internals/features/services/dto"
	model "bhanjyang_backend/internals/features/services/model"
	helper "bhanjyang_backend/internals/helpers"
)

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("id")))
}

/* ==============================
   Admin: savings accounts
============================== */

// POST /savings
func (ctl *ServicesController) CreateSavingsAccount(c *fiber.Ctx) error {
	var req dto.CreateSavingsAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A savings account of this type already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Savings account created", m)
}

// GET /savings
func (ctl *ServicesController) ListSavingsAccounts(c *fiber.Ctx) error {
	var rows []model.SavingsAccountModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("savings_account_type ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load savings accounts")
	}
	return helper.JsonOK(c, "ok", rows)
}

// PATCH /savings/:id - the account type identifies the product and is frozen
func (ctl *ServicesController) PatchSavingsAccount(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.SavingsAccountModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "savings_account_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Savings account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchSavingsAccountRequest
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
	return helper.JsonUpdated(c, "Savings account updated", row)
}

// DELETE /savings/:id
func (ctl *ServicesController) DeleteSavingsAccount(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.SavingsAccountModel{}, "savings_account_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Savings account not found")
	}
	return helper.JsonDeleted(c, "Savings account deleted", fiber.Map{"savings_account_id": id})
}

/* ==============================
   Admin: fixed deposits
============================== */

// POST /fixed-deposits
func (ctl *ServicesController) CreateFixedDeposit(c *fiber.Ctx) error {
	var req dto.CreateFixedDepositRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Duration must be one of the offered terms")
	}
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "This duration and payment frequency combination already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Fixed deposit created", m)
}

// GET /fixed-deposits
func (ctl *ServicesController) ListFixedDeposits(c *fiber.Ctx) error {
	var rows []model.FixedDepositModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("fixed_deposit_duration_months ASC, fixed_deposit_payment_frequency ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load fixed deposits")
	}
	return helper.JsonOK(c, "ok", rows)
}

// PATCH /fixed-deposits/:id
func (ctl *ServicesController) PatchFixedDeposit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.FixedDepositModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "fixed_deposit_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fixed deposit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchFixedDepositRequest
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
	return helper.JsonUpdated(c, "Fixed deposit updated", row)
}

// DELETE /fixed-deposits/:id
func (ctl *ServicesController) DeleteFixedDeposit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.FixedDepositModel{}, "fixed_deposit_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fixed deposit not found")
	}
	return helper.JsonDeleted(c, "Fixed deposit deleted", fiber.Map{"fixed_deposit_id": id})
}

/* ==============================
   Admin: loan types
============================== */

// POST /loans
func (ctl *ServicesController) CreateLoanType(c *fiber.Ctx) error {
	var req dto.CreateLoanTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A loan type in this category already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Loan type created", m)
}

// GET /loans
func (ctl *ServicesController) ListLoanTypes(c *fiber.Ctx) error {
	var rows []model.LoanTypeModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("loan_type_english_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load loan types")
	}
	return helper.JsonOK(c, "ok", rows)
}

// PATCH /loans/:id - the category identifies the product and is frozen
func (ctl *ServicesController) PatchLoanType(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.LoanTypeModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "loan_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Loan type not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchLoanTypeRequest
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
	return helper.JsonUpdated(c, "Loan type updated", row)
}

// DELETE /loans/:id
func (ctl *ServicesController) DeleteLoanType(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.LoanTypeModel{}, "loan_type_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Loan type not found")
	}
	return helper.JsonDeleted(c, "Loan type deleted", fiber.Map{"loan_type_id": id})
}
