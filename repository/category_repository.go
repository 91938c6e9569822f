package repository

import (
	"context"
	"fmt"
	"log"

	"tienda-catalogo/db"
	"tienda-catalogo/models"
)

// CategoryRepository handles database operations for categories
// Implements CategoryRepositoryInterface
type CategoryRepository struct{}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// Ensure CategoryRepository implements CategoryRepositoryInterface
var _ CategoryRepositoryInterface = (*CategoryRepository)(nil)

// GetAll retrieves all categories ordered by display_order
func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT category, COALESCE(name, '') as name, display_order
		FROM categories
		ORDER BY display_order ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error fetching categories: %v", err)
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Category, &c.Name, &c.DisplayOrder); err != nil {
			log.Printf("❌ Error scanning category: %v", err)
			continue
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// Exists checks whether a category with the given slug exists
func (r *CategoryRepository) Exists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE category = $1)`
	if err := db.DB.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new category at the end of the display order.
// Returns ErrConflict when the slug is already taken.
func (r *CategoryRepository) Create(ctx context.Context, slug, name string) (*models.Category, error) {
	log.Printf("💾 Creating category: %s", slug)

	exists, err := r.Exists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("category %q %w", slug, ErrConflict)
	}

	query := `
		INSERT INTO categories (category, name, display_order)
		VALUES ($1, $2, (SELECT COUNT(*) FROM categories))
		RETURNING display_order
	`

	c := models.Category{Category: slug, Name: name}
	if err := db.DB.QueryRowContext(ctx, query, slug, name).Scan(&c.DisplayOrder); err != nil {
		log.Printf("❌ Error inserting category %s: %v", slug, err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	log.Printf("✓ Category created: %s (display_order=%d)", slug, c.DisplayOrder)
	return &c, nil
}

// Update changes a category's name and/or renames its slug. A rename is
// a primary-key update; products follow via ON UPDATE CASCADE.
func (r *CategoryRepository) Update(ctx context.Context, slug string, req models.CategoryUpdateRequest) error {
	if req.NewCategory != "" && req.NewCategory != slug {
		exists, err := r.Exists(ctx, req.NewCategory)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("category %q %w", req.NewCategory, ErrConflict)
		}
	}

	newSlug := slug
	if req.NewCategory != "" {
		newSlug = req.NewCategory
	}

	query := `
		UPDATE categories
		SET category = $1,
		    name = COALESCE($2, name)
		WHERE category = $3
	`

	result, err := db.DB.ExecContext(ctx, query, newSlug, req.Name, slug)
	if err != nil {
		log.Printf("❌ Error updating category %s: %v", slug, err)
		return fmt.Errorf("failed to update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return fmt.Errorf("category %q %w", slug, ErrNotFound)
	}

	log.Printf("✓ Category updated: %s -> %s", slug, newSlug)
	return nil
}

// Delete removes a category and renormalizes the remaining display orders
// to a dense 0..N-1 sequence inside a single transaction.
func (r *CategoryRepository) Delete(ctx context.Context, slug string) error {
	log.Printf("🗑️  Deleting category: %s", slug)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE category = $1`, slug)
	if err != nil {
		log.Printf("❌ Error deleting category %s: %v", slug, err)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return fmt.Errorf("category %q %w", slug, ErrNotFound)
	}

	// Close the gap left by the deleted row
	rows, err := tx.QueryContext(ctx, `SELECT category FROM categories ORDER BY display_order ASC`)
	if err != nil {
		return fmt.Errorf("failed to list remaining categories: %w", err)
	}

	var remaining []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan category: %w", err)
		}
		remaining = append(remaining, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate categories: %w", err)
	}

	for i, c := range remaining {
		if _, err := tx.ExecContext(ctx, `UPDATE categories SET display_order = $1 WHERE category = $2`, i, c); err != nil {
			return fmt.Errorf("failed to renormalize display order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✓ Category deleted: %s (%d remaining)", slug, len(remaining))
	return nil
}

// Reorder accepts a full permutation of the existing slugs and persists new
// dense display orders in a transaction
func (r *CategoryRepository) Reorder(ctx context.Context, proposed []string) error {
	log.Printf("🔄 Reordering %d categories", len(proposed))

	categories, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	current := make([]string, len(categories))
	for i, c := range categories {
		current[i] = c.Category
	}

	if err := validateReorder(current, proposed); err != nil {
		return fmt.Errorf("invalid category reorder: %w", err)
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for i, slug := range proposed {
		if _, err := tx.ExecContext(ctx, `UPDATE categories SET display_order = $1 WHERE category = $2`, i, slug); err != nil {
			log.Printf("❌ Error reordering category %s: %v", slug, err)
			return fmt.Errorf("failed to reorder categories: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✓ Categories reordered")
	return nil
}
