package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"tienda-catalogo/db"
	"tienda-catalogo/models"
)

// SavedSelectionRepository handles database operations for saved selections
// Implements SavedSelectionRepositoryInterface
type SavedSelectionRepository struct{}

// NewSavedSelectionRepository creates a new SavedSelectionRepository
func NewSavedSelectionRepository() *SavedSelectionRepository {
	return &SavedSelectionRepository{}
}

// Ensure SavedSelectionRepository implements SavedSelectionRepositoryInterface
var _ SavedSelectionRepositoryInterface = (*SavedSelectionRepository)(nil)

// List retrieves all selections, newest first, without their product lists
func (r *SavedSelectionRepository) List(ctx context.Context) ([]models.SavedSelection, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM saved_selections
		ORDER BY created_at DESC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error fetching saved selections: %v", err)
		return nil, fmt.Errorf("failed to get saved selections: %w", err)
	}
	defer rows.Close()

	var selections []models.SavedSelection
	for rows.Next() {
		var s models.SavedSelection
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			log.Printf("❌ Error scanning saved selection: %v", err)
			continue
		}
		selections = append(selections, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved selections: %w", err)
	}

	return selections, nil
}

// Get retrieves a selection together with its ordered product ids
func (r *SavedSelectionRepository) Get(ctx context.Context, id uuid.UUID) (*models.SavedSelection, error) {
	query := `SELECT id, name, created_at, updated_at FROM saved_selections WHERE id = $1`

	var s models.SavedSelection
	err := db.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("selection %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get saved selection: %w", err)
	}

	s.ProductIDs, err = r.GetProductIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// GetProductIDs retrieves a selection's product ids ordered by position
func (r *SavedSelectionRepository) GetProductIDs(ctx context.Context, id uuid.UUID) ([]string, error) {
	query := `
		SELECT product_id
		FROM saved_selection_products
		WHERE selection_id = $1
		ORDER BY position ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get selection products: %w", err)
	}
	defer rows.Close()

	var productIDs []string
	for rows.Next() {
		var pid string
		if err := rows.Scan(&pid); err != nil {
			return nil, fmt.Errorf("failed to scan selection product: %w", err)
		}
		productIDs = append(productIDs, pid)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate selection products: %w", err)
	}

	return productIDs, nil
}

// Create inserts a selection and its ordered join rows in one transaction
func (r *SavedSelectionRepository) Create(ctx context.Context, name string, productIDs []string) (*models.SavedSelection, error) {
	log.Printf("💾 Creating saved selection %q with %d products", name, len(productIDs))

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	s := models.SavedSelection{ID: uuid.New(), Name: name, ProductIDs: productIDs}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO saved_selections (id, name) VALUES ($1, $2) RETURNING created_at, updated_at`,
		s.ID, name,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		log.Printf("❌ Error inserting saved selection %q: %v", name, err)
		return nil, fmt.Errorf("failed to create saved selection: %w", err)
	}

	for i, pid := range productIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO saved_selection_products (selection_id, product_id, position) VALUES ($1, $2, $3)`,
			s.ID, pid, i); err != nil {
			if isForeignKeyViolation(err) {
				return nil, fmt.Errorf("product %q %w", pid, ErrNotFound)
			}
			log.Printf("❌ Error inserting selection product %s: %v", pid, err)
			return nil, fmt.Errorf("failed to add product %q to selection: %w", pid, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✓ Saved selection created: %s", s.ID)
	return &s, nil
}

// Update renames a selection and/or fully replaces its join rows. The
// product list is replaced delete-and-reinsert, not diffed, so no residual
// rows from the old set survive.
func (r *SavedSelectionRepository) Update(ctx context.Context, id uuid.UUID, req models.SelectionUpdateRequest) error {
	log.Printf("🔄 Updating saved selection: %s", id)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE saved_selections SET name = COALESCE($1, name), updated_at = now() WHERE id = $2`,
		req.Name, id)
	if err != nil {
		return fmt.Errorf("failed to update saved selection: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return fmt.Errorf("selection %s %w", id, ErrNotFound)
	}

	if req.ProductIDs != nil {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM saved_selection_products WHERE selection_id = $1`, id); err != nil {
			return fmt.Errorf("failed to clear selection products: %w", err)
		}

		for i, pid := range *req.ProductIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO saved_selection_products (selection_id, product_id, position) VALUES ($1, $2, $3)`,
				id, pid, i); err != nil {
				if isForeignKeyViolation(err) {
					return fmt.Errorf("product %q %w", pid, ErrNotFound)
				}
				return fmt.Errorf("failed to add product %q to selection: %w", pid, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✓ Saved selection updated: %s", id)
	return nil
}

// Delete removes a selection; join rows cascade
func (r *SavedSelectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM saved_selections WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting saved selection %s: %v", id, err)
		return fmt.Errorf("failed to delete saved selection: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return fmt.Errorf("selection %s %w", id, ErrNotFound)
	}

	log.Printf("✓ Saved selection deleted: %s", id)
	return nil
}
