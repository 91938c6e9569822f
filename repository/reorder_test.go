package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReorder(t *testing.T) {
	current := []string{"collares", "camas", "juguetes"}

	t.Run("ValidPermutation", func(t *testing.T) {
		assert.NoError(t, validateReorder(current, []string{"camas", "juguetes", "collares"}))
		assert.NoError(t, validateReorder(current, []string{"collares", "camas", "juguetes"}))
	})

	t.Run("WrongLength", func(t *testing.T) {
		err := validateReorder(current, []string{"camas", "collares"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadReorder)

		err = validateReorder(current, []string{"camas", "collares", "juguetes", "extra"})
		assert.ErrorIs(t, err, ErrBadReorder)
	})

	t.Run("UnknownItem", func(t *testing.T) {
		err := validateReorder(current, []string{"camas", "collares", "ropa"})
		assert.ErrorIs(t, err, ErrBadReorder)
	})

	t.Run("DuplicateItem", func(t *testing.T) {
		err := validateReorder(current, []string{"camas", "camas", "collares"})
		assert.ErrorIs(t, err, ErrBadReorder)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.NoError(t, validateReorder(nil, nil))
	})
}
