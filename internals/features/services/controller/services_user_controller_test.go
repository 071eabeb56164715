// file: internals/features/services/controller/services_user_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB hands the controller a gorm handle backed by sqlmock.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return gdb, mock
}

func TestOverviewReturnsEveryKind(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "savings_accounts" WHERE savings_account_is_active = \$1 ORDER BY savings_account_is_featured DESC, savings_account_interest_rate ASC, savings_account_type ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"savings_account_id", "savings_account_type", "savings_account_interest_rate", "savings_account_is_featured"}).
			AddRow(uuid.New(), "special", 8.5, true).
			AddRow(uuid.New(), "normal", 6.0, false))
	mock.ExpectQuery(`SELECT \* FROM "fixed_deposits" WHERE fixed_deposit_is_active = \$1 ORDER BY fixed_deposit_duration_months ASC, fixed_deposit_payment_frequency ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"fixed_deposit_id", "fixed_deposit_duration_months"}).
			AddRow(uuid.New(), 12))
	mock.ExpectQuery(`SELECT \* FROM "loan_types" WHERE loan_type_is_active = \$1 ORDER BY loan_type_is_featured DESC, loan_type_category ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"loan_type_id", "loan_type_category", "loan_type_is_featured"}).
			AddRow(uuid.New(), "business", true).
			AddRow(uuid.New(), "personal", false))
	mock.ExpectQuery(`SELECT \* FROM "remittance_services" WHERE remittance_service_is_active = \$1 ORDER BY remittance_service_type ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"remittance_service_id", "remittance_service_type"}).
			AddRow(uuid.New(), "ime"))
	mock.ExpectQuery(`SELECT \* FROM "member_reliefs" WHERE member_relief_is_active = \$1 ORDER BY member_relief_type ASC, member_relief_title ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"member_relief_id", "member_relief_type", "member_relief_title"}).
			AddRow(uuid.New(), "medical", "Medical Relief"))
	mock.ExpectQuery(`SELECT \* FROM "service_categories" WHERE service_category_is_active = \$1 ORDER BY service_category_order ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"service_category_id", "service_category_order"}).
			AddRow(uuid.New(), 1))

	app := fiber.New()
	ctl := NewServicesController(gdb)
	app.Get("/services", ctl.Overview)

	resp, err := app.Test(httptest.NewRequest("GET", "/services", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Success bool                       `json:"success"`
		Data    map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	if !body.Success {
		t.Fatal("success = false, want true")
	}
	for _, key := range []string{
		"savings_accounts", "fixed_deposits", "loan_types",
		"remittance_services", "member_reliefs", "categories",
		"featured_savings", "featured_loans",
	} {
		if _, ok := body.Data[key]; !ok {
			t.Errorf("data is missing %q", key)
		}
	}

	var featuredSavings []struct {
		SavingsAccountType string `json:"savings_account_type"`
	}
	if err := json.Unmarshal(body.Data["featured_savings"], &featuredSavings); err != nil {
		t.Fatalf("decode featured_savings: %v", err)
	}
	if len(featuredSavings) != 1 || featuredSavings[0].SavingsAccountType != "special" {
		t.Fatalf("featured_savings = %+v, want only the featured account", featuredSavings)
	}

	var featuredLoans []struct {
		LoanTypeCategory string `json:"loan_type_category"`
	}
	if err := json.Unmarshal(body.Data["featured_loans"], &featuredLoans); err != nil {
		t.Fatalf("decode featured_loans: %v", err)
	}
	if len(featuredLoans) != 1 || featuredLoans[0].LoanTypeCategory != "business" {
		t.Fatalf("featured_loans = %+v, want only the featured loan", featuredLoans)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
