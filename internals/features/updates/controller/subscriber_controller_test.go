// file: internals/features/updates/controller/subscriber_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
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

func TestListSubscribers(t *testing.T) {
	gdb, mock := newMockDB(t)

	newer := uuid.New()
	older := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "subscribers" ORDER BY subscriber_subscribed_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"subscriber_id", "subscriber_email", "subscriber_subscribed_at"}).
			AddRow(newer, "b@example.com", time.Now()).
			AddRow(older, "a@example.com", time.Now().Add(-time.Hour)))

	app := fiber.New()
	ctl := NewUpdatesController(gdb)
	app.Get("/subscribers", ctl.ListSubscribers)

	resp, err := app.Test(httptest.NewRequest("GET", "/subscribers", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			SubscriberEmail string `json:"subscriber_email"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	if !body.Success {
		t.Fatal("success = false, want true")
	}
	if len(body.Data) != 2 || body.Data[0].SubscriberEmail != "b@example.com" {
		t.Fatalf("unexpected data: %+v", body.Data)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subscribers"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_subscribers_subscriber_email"})
	mock.ExpectRollback()

	app := fiber.New()
	ctl := NewUpdatesController(gdb)
	app.Post("/subscribe", ctl.Subscribe)

	req := httptest.NewRequest("POST", "/subscribe", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	if body.Success {
		t.Fatal("success = true, want false")
	}
	if !strings.Contains(body.Message, "already subscribed") {
		t.Fatalf("message = %q, want a duplicate notice", body.Message)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
