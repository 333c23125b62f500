package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKeyErr reports whether err is a unique constraint violation
// from any of the supported drivers.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()

	// PostgreSQL (23505)
	if strings.Contains(msg, "duplicate key value violates unique constraint") {
		return true
	}
	// MySQL (1062)
	if strings.Contains(msg, "Error 1062") {
		return true
	}
	// SQLite
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return true
	}

	return false
}

// DuplicateKeyMentions reports whether a duplicate key error names the given
// column or index. Drivers differ in what they print, so callers pass every
// spelling they accept.
func DuplicateKeyMentions(err error, names ...string) bool {
	if !IsDuplicateKeyErr(err) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, n := range names {
		if strings.Contains(msg, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
