package postgres

import (
	"strings"

	"shop/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error (TranslateError enabled)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasPgCode(err, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasPgCode(err, pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	if hasPgCode(err, pgNotNullViolation) {
		return true
	}

	// Drivers without structured errors (sqlite) only carry the message
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint")
}

func hasPgCode(err error, code string) bool {
	pgErr, ok := errors.AsTarget[*pgconn.PgError](err)

	return ok && pgErr.Code == code
}
