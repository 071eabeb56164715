// file: internals/features/services/controller/services_user_controller.go
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

/* ==============================
   Public: services catalog
============================== */

// GET /services - every active offering per kind, the presentation
// categories, and the featured savings and loans highlights.
func (ctl *ServicesController) Overview(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.Context())

	var savings []model.SavingsAccountModel
	if err := db.
		Where("savings_account_is_active = ?", true).
		Order("savings_account_is_featured DESC, savings_account_interest_rate ASC, savings_account_type ASC").
		Find(&savings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load savings accounts")
	}

	var deposits []model.FixedDepositModel
	if err := db.
		Where("fixed_deposit_is_active = ?", true).
		Order("fixed_deposit_duration_months ASC, fixed_deposit_payment_frequency ASC").
		Find(&deposits).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load fixed deposits")
	}

	var loans []model.LoanTypeModel
	if err := db.
		Where("loan_type_is_active = ?", true).
		Order("loan_type_is_featured DESC, loan_type_category ASC").
		Find(&loans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load loan types")
	}

	var remittances []model.RemittanceServiceModel
	if err := db.
		Where("remittance_service_is_active = ?", true).
		Order("remittance_service_type ASC").
		Find(&remittances).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load remittance services")
	}

	var reliefs []model.MemberReliefModel
	if err := db.
		Where("member_relief_is_active = ?", true).
		Order("member_relief_type ASC, member_relief_title ASC").
		Find(&reliefs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load relief programs")
	}

	var categories []model.ServiceCategoryModel
	if err := db.
		Where("service_category_is_active = ?", true).
		Order("service_category_order ASC").
		Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load service categories")
	}

	featuredSavings := make([]model.SavingsAccountModel, 0, featuredLimit)
	for i := range savings {
		if savings[i].SavingsAccountIsFeatured && len(featuredSavings) < featuredLimit {
			featuredSavings = append(featuredSavings, savings[i])
		}
	}
	featuredLoans := make([]model.LoanTypeModel, 0, featuredLimit)
	for i := range loans {
		if loans[i].LoanTypeIsFeatured && len(featuredLoans) < featuredLimit {
			featuredLoans = append(featuredLoans, loans[i])
		}
	}

	return helper.JsonOK(c, "Our Services", fiber.Map{
		"savings_accounts":    savings,
		"fixed_deposits":      deposits,
		"loan_types":          loans,
		"remittance_services": remittances,
		"member_reliefs":      reliefs,
		"categories":          categories,
		"featured_savings":    featuredSavings,
		"featured_loans":      featuredLoans,
	})
}

// GET /services/savings - featured first, then by interest rate, then type.
func (ctl *ServicesController) Savings(c *fiber.Ctx) error {
	var rows []model.SavingsAccountModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("savings_account_is_active = ?", true).
		Order("savings_account_is_featured DESC, savings_account_interest_rate ASC, savings_account_type ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load savings accounts")
	}
	return helper.JsonOK(c, "Savings Accounts", fiber.Map{"accounts": rows})
}

// GET /services/fixed-deposits - grouped by term length.
func (ctl *ServicesController) FixedDeposits(c *fiber.Ctx) error {
	var rows []model.FixedDepositModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("fixed_deposit_is_active = ?", true).
		Order("fixed_deposit_duration_months ASC, fixed_deposit_payment_frequency ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load fixed deposits")
	}
	return helper.JsonOK(c, "Fixed Deposits", fiber.Map{
		"groups":    dto.GroupFixedDeposits(rows),
		"durations": model.FixedDepositDurations,
	})
}

// GET /services/loans - featured loans highlighted ahead of the full list.
func (ctl *ServicesController) Loans(c *fiber.Ctx) error {
	var rows []model.LoanTypeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("loan_type_is_active = ?", true).
		Order("loan_type_is_featured DESC, loan_type_category ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load loan types")
	}

	featured := make([]model.LoanTypeModel, 0, featuredLimit)
	for i := range rows {
		if rows[i].LoanTypeIsFeatured && len(featured) < featuredLimit {
			featured = append(featured, rows[i])
		}
	}
	return helper.JsonOK(c, "Loan Services", fiber.Map{
		"featured": featured,
		"loans":    rows,
	})
}

// GET /services/remittance
func (ctl *ServicesController) Remittance(c *fiber.Ctx) error {
	var rows []model.RemittanceServiceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("remittance_service_is_active = ?", true).
		Order("remittance_service_type ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load remittance services")
	}
	return helper.JsonOK(c, "Remittance Services", fiber.Map{"services": rows})
}

// GET /services/relief - programs grouped by relief type.
func (ctl *ServicesController) Relief(c *fiber.Ctx) error {
	var rows []model.MemberReliefModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("member_relief_is_active = ?", true).
		Order("member_relief_type ASC, member_relief_title ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load relief programs")
	}
	return helper.JsonOK(c, "Member Relief Programs", fiber.Map{
		"groups": dto.GroupMemberReliefs(rows),
	})
}

// GET /services/:kind/:id - detail page over a closed set of kinds. Unknown
// kinds and inactive rows both resolve to 404.
func (ctl *ServicesController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	db := ctl.DB.WithContext(c.Context())

	var (
		kind = strings.ToLower(strings.TrimSpace(c.Params("kind")))
		data any
		qerr error
	)
	switch kind {
	case "savings":
		var row model.SavingsAccountModel
		qerr = db.Where("savings_account_is_active = ?", true).
			First(&row, "savings_account_id = ?", id).Error
		data = row
	case "fixed-deposit":
		var row model.FixedDepositModel
		qerr = db.Where("fixed_deposit_is_active = ?", true).
			First(&row, "fixed_deposit_id = ?", id).Error
		data = row
	case "loan":
		var row model.LoanTypeModel
		qerr = db.Where("loan_type_is_active = ?", true).
			First(&row, "loan_type_id = ?", id).Error
		data = row
	case "remittance":
		var row model.RemittanceServiceModel
		qerr = db.Where("remittance_service_is_active = ?", true).
			First(&row, "remittance_service_id = ?", id).Error
		data = row
	case "relief":
		var row model.MemberReliefModel
		qerr = db.Where("member_relief_is_active = ?", true).
			First(&row, "member_relief_id = ?", id).Error
		data = row
	default:
		return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
	}

	if qerr != nil {
		if errors.Is(qerr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, qerr.Error())
	}
	return helper.JsonOK(c, "Service Detail", fiber.Map{
		"kind":    kind,
		"service": data,
	})
}
