// file: internals/features/contact/controller/contact_controller_test.go
package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	configs "bhanjyang_backend/internals/configs"
)

type fakeMailer struct {
	to, subject, body string
	calls             int
	err               error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.calls++
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

func newContactApp(mail *fakeMailer) *fiber.App {
	app := fiber.New()
	ctl := NewContactController(mail)
	app.Post("/contact", ctl.Submit)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, payload string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return resp.StatusCode, body
}

func TestContactSubmitRelaysMail(t *testing.T) {
	configs.ContactInbox = "office@example.com"
	mail := &fakeMailer{}
	app := newContactApp(mail)

	status, body := postJSON(t, app, "/contact", `{
		"name": "Ram Thapa",
		"email": "ram@example.com",
		"phone": "9800000000",
		"subject": "Loan inquiry",
		"message": "I would like to know about vehicle loans."
	}`)

	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["success"] != true {
		t.Fatalf("success = %v, want true", body["success"])
	}
	if mail.calls != 1 {
		t.Fatalf("mailer called %d times, want 1", mail.calls)
	}
	if mail.to != "office@example.com" {
		t.Fatalf("mail to = %q, want the configured inbox", mail.to)
	}
	if mail.subject != "Website Contact: Loan inquiry" {
		t.Fatalf("mail subject = %q", mail.subject)
	}
	for _, want := range []string{"Ram Thapa", "ram@example.com", "9800000000", "vehicle loans"} {
		if !strings.Contains(mail.body, want) {
			t.Fatalf("mail body missing %q:\n%s", want, mail.body)
		}
	}
}

func TestContactSubmitValidation(t *testing.T) {
	mail := &fakeMailer{}
	app := newContactApp(mail)

	status, body := postJSON(t, app, "/contact", `{
		"name": "",
		"email": "not-an-email",
		"subject": "",
		"message": ""
	}`)

	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if mail.calls != 0 {
		t.Fatal("mailer must not be called on validation failure")
	}

	fieldErrs, ok := body["errors"].(map[string]any)
	if !ok {
		t.Fatalf("errors missing from response: %v", body)
	}
	for _, field := range []string{"name", "email", "subject", "message"} {
		if _, present := fieldErrs[field]; !present {
			t.Fatalf("expected field error for %q, got %v", field, fieldErrs)
		}
	}
	if _, present := fieldErrs["phone"]; present {
		t.Fatal("phone is optional and must not error when absent")
	}
}

func TestContactSubmitTransportFailure(t *testing.T) {
	mail := &fakeMailer{err: errors.New("smtp: connection refused")}
	app := newContactApp(mail)

	status, body := postJSON(t, app, "/contact", `{
		"name": "Ram Thapa",
		"email": "ram@example.com",
		"subject": "Hello",
		"message": "Test"
	}`)

	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if body["success"] != false {
		t.Fatalf("success = %v, want false", body["success"])
	}
}
