// file: internals/features/contact/dto/contact_dto.go
package dto

import (
	"fmt"
	"strings"
)

/* =========================================================
   Contact form
========================================================= */

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// MailSubject is what lands in the office inbox.
func (r *ContactRequest) MailSubject() string {
	return "Website Contact: " + strings.TrimSpace(r.Subject)
}

func (r *ContactRequest) MailBody() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", strings.TrimSpace(r.Name))
	fmt.Fprintf(&b, "Email: %s\n", strings.TrimSpace(r.Email))
	if phone := strings.TrimSpace(r.Phone); phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", phone)
	}
	b.WriteString("\n")
	b.WriteString(r.Message)
	return b.String()
}
