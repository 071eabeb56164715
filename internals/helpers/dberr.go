package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err is a unique-constraint violation
// (SQLSTATE 23505). Falls back to message sniffing for wrapped drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}

// IsForeignKeyViolation reports whether err is a foreign-key violation
// (SQLSTATE 23503), e.g. deleting a category that still has articles.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23503") ||
		strings.Contains(s, "foreign key constraint")
}
