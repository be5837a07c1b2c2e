package util

import (
	"strings"
)

// IsDuplicateKeyError checks if the error is a database constraint violation
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	// Postgres "SQLSTATE 23505" and SQLite "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
