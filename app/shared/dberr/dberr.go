// Package dberr classifies Postgres errors returned through bun.
package dberr

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == uniqueViolation
	}
	return false
}
