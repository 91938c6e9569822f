package models

// Category represents a product grouping, keyed by its slug
type Category struct {
	Category     string `json:"category"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

// CategoryUpdateRequest carries the editable fields of a category.
// NewCategory, when set, renames the slug (a primary-key update that
// cascades into products.category).
type CategoryUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	NewCategory string  `json:"newCategory,omitempty"`
}

// CategoryReorderRequest carries a full permutation of the existing slugs
type CategoryReorderRequest struct {
	Categories []string `json:"categories"`
}
