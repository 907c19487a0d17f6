package postgres

import (
	"testing"

	"shop/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "uk_members_name"}, "insert")
	fk := &pgconn.PgError{Code: "23503"}
	notNull := &pgconn.PgError{Code: "23502"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.False(t, isUniqueConstraintViolation(fk))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.True(t, isNotNullConstraintViolation(errors.New("NOT NULL constraint failed: members.name")))
	assert.False(t, isNotNullConstraintViolation(unique))
}
