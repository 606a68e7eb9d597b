package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "developers_email_key"}

	assert.True(t, isDuplicateKeyError(unique, "email"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("wrapped: %w", unique), "EMAIL"))
	assert.False(t, isDuplicateKeyError(unique, "specialty"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "developers_email_key"}, "email"))
	assert.False(t, isDuplicateKeyError(errors.New("plain"), "email"))
}
