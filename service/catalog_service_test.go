package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda-catalogo/models"
)

func makeEntries(n int) []models.CatalogEntry {
	entries := make([]models.CatalogEntry, n)
	for i := range entries {
		entries[i] = models.CatalogEntry{
			ID:   fmt.Sprintf("producto-%d", i),
			Name: fmt.Sprintf("Producto %d", i),
		}
	}
	return entries
}

func TestMissingIDs(t *testing.T) {
	products := []models.Product{{ID: "collar-rojo"}, {ID: "cama-grande"}}

	t.Run("AllFound", func(t *testing.T) {
		assert.Empty(t, missingIDs([]string{"collar-rojo", "cama-grande"}, products))
	})

	t.Run("SomeMissing", func(t *testing.T) {
		missing := missingIDs([]string{"collar-rojo", "no-existe", "cama-grande", "tampoco"}, products)
		assert.Equal(t, []string{"no-existe", "tampoco"}, missing)
	})

	t.Run("NoneFound", func(t *testing.T) {
		assert.Equal(t, []string{"fantasma"}, missingIDs([]string{"fantasma"}, nil))
	})
}

func TestPaginateEntries(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, paginateEntries(nil))
	})

	t.Run("SinglePartialPage", func(t *testing.T) {
		pages := paginateEntries(makeEntries(4))
		require.Len(t, pages, 1)
		assert.Len(t, pages[0], 4)
	})

	t.Run("ExactPageBoundary", func(t *testing.T) {
		pages := paginateEntries(makeEntries(9))
		require.Len(t, pages, 1)
		assert.Len(t, pages[0], 9)

		pages = paginateEntries(makeEntries(18))
		require.Len(t, pages, 2)
		assert.Len(t, pages[1], 9)
	})

	t.Run("Overflow", func(t *testing.T) {
		pages := paginateEntries(makeEntries(20))
		require.Len(t, pages, 3)
		assert.Len(t, pages[0], 9)
		assert.Len(t, pages[1], 9)
		assert.Len(t, pages[2], 2)

		// Order is preserved across pages
		assert.Equal(t, "producto-0", pages[0][0].ID)
		assert.Equal(t, "producto-9", pages[1][0].ID)
		assert.Equal(t, "producto-18", pages[2][0].ID)
	})
}
