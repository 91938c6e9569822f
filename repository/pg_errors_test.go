package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pgconn.PgError{Code: pgFKViolation, ConstraintName: "saved_selection_products_product_id_fkey"}

	assert.True(t, isForeignKeyViolation(fkErr))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("failed to add product: %w", fkErr)))

	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("connection refused")))
	assert.False(t, isForeignKeyViolation(nil))
}
