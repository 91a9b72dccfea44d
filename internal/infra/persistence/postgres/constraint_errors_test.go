package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers(t *testing.T) {
	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code, Message: "violation"}, "insert failed")
	}

	assert.True(t, isUniqueConstraintViolation(wrapped(pgUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrapped(pgCheckViolation)))

	assert.True(t, isForeignKeyConstraintViolation(wrapped(pgForeignKeyViolation)))
	assert.True(t, isNotNullConstraintViolation(wrapped(pgNotNullViolation)))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "name" violates not-null constraint`)))
	assert.True(t, isCheckConstraintViolation(wrapped(pgCheckViolation)))
	assert.False(t, isCheckConstraintViolation(errors.New("boom")))
}
