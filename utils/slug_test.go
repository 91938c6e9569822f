package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlug(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for _, slug := range []string{"collares", "camas-grandes", "a", "x9", "ropa-de-invierno-2025"} {
			assert.NoError(t, ValidateSlug(slug), slug)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, slug := range []string{
			"",
			"Collares",
			"con espacios",
			"-inicia-con-guion",
			"termina-con-guion-",
			"doble--guion",
			"con_underscore",
			"acentuación",
			strings.Repeat("a", 101),
		} {
			assert.Error(t, ValidateSlug(slug), "%q should be rejected", slug)
		}
	})

	t.Run("MaxLength", func(t *testing.T) {
		assert.NoError(t, ValidateSlug(strings.Repeat("a", 100)))
	})
}
