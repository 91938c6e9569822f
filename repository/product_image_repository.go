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

// ProductImageRepository handles database operations for product images
// Implements ProductImageRepositoryInterface
type ProductImageRepository struct{}

// NewProductImageRepository creates a new ProductImageRepository
func NewProductImageRepository() *ProductImageRepository {
	return &ProductImageRepository{}
}

// Ensure ProductImageRepository implements ProductImageRepositoryInterface
var _ ProductImageRepositoryInterface = (*ProductImageRepository)(nil)

const imageColumns = `id, product_id, object_key, mime_type, width, height, position, created_at`

// ListByProduct retrieves a product's images ordered by position
func (r *ProductImageRepository) ListByProduct(ctx context.Context, productID string) ([]models.ProductImage, error) {
	query := `SELECT ` + imageColumns + ` FROM product_images WHERE product_id = $1 ORDER BY position ASC`

	rows, err := db.DB.QueryContext(ctx, query, productID)
	if err != nil {
		log.Printf("❌ Error fetching images for product %s: %v", productID, err)
		return nil, fmt.Errorf("failed to get product images: %w", err)
	}
	defer rows.Close()

	var images []models.ProductImage
	for rows.Next() {
		var img models.ProductImage
		err := rows.Scan(&img.ID, &img.ProductID, &img.ObjectKey, &img.MimeType,
			&img.Width, &img.Height, &img.Position, &img.CreatedAt)
		if err != nil {
			log.Printf("❌ Error scanning product image: %v", err)
			continue
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product images: %w", err)
	}

	return images, nil
}

// GetByID retrieves a single image row
func (r *ProductImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductImage, error) {
	query := `SELECT ` + imageColumns + ` FROM product_images WHERE id = $1`

	var img models.ProductImage
	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&img.ID, &img.ProductID, &img.ObjectKey, &img.MimeType,
		&img.Width, &img.Height, &img.Position, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("image %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product image: %w", err)
	}
	return &img, nil
}

// CountByProduct returns the number of images a product has
func (r *ProductImageRepository) CountByProduct(ctx context.Context, productID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM product_images WHERE product_id = $1`
	if err := db.DB.QueryRowContext(ctx, query, productID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count product images: %w", err)
	}
	return count, nil
}

// Insert stores a new image row
func (r *ProductImageRepository) Insert(ctx context.Context, img *models.ProductImage) error {
	log.Printf("💾 Inserting image row: product=%s key=%s position=%d", img.ProductID, img.ObjectKey, img.Position)

	query := `
		INSERT INTO product_images (id, product_id, object_key, mime_type, width, height, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := db.DB.QueryRowContext(ctx, query,
		img.ID, img.ProductID, img.ObjectKey, img.MimeType,
		img.Width, img.Height, img.Position,
	).Scan(&img.CreatedAt)
	if err != nil {
		log.Printf("❌ Error inserting image for product %s: %v", img.ProductID, err)
		return fmt.Errorf("failed to insert product image: %w", err)
	}

	log.Printf("✓ Image row inserted: %s", img.ID)
	return nil
}

// Delete removes an image row and renormalizes the remaining positions of
// its product to a dense sequence in the same transaction
func (r *ProductImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("🗑️  Deleting image row: %s", id)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var productID string
	err = tx.QueryRowContext(ctx, `DELETE FROM product_images WHERE id = $1 RETURNING product_id`, id).Scan(&productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("image %s %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to delete product image: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM product_images WHERE product_id = $1 ORDER BY position ASC`, productID)
	if err != nil {
		return fmt.Errorf("failed to list remaining images: %w", err)
	}

	var remaining []uuid.UUID
	for rows.Next() {
		var imgID uuid.UUID
		if err := rows.Scan(&imgID); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan image id: %w", err)
		}
		remaining = append(remaining, imgID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate images: %w", err)
	}

	for i, imgID := range remaining {
		if _, err := tx.ExecContext(ctx, `UPDATE product_images SET position = $1 WHERE id = $2`, i, imgID); err != nil {
			return fmt.Errorf("failed to renormalize image positions: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✓ Image row deleted: %s (%d remaining for %s)", id, len(remaining), productID)
	return nil
}

// Reorder accepts the full ordered list of a product's image IDs and
// rewrites each position to its index in a transaction
func (r *ProductImageRepository) Reorder(ctx context.Context, productID string, imageIDs []uuid.UUID) error {
	log.Printf("🔄 Reordering %d images for product %s", len(imageIDs), productID)

	current, err := r.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}

	currentIDs := make([]string, len(current))
	for i, img := range current {
		currentIDs[i] = img.ID.String()
	}
	proposed := make([]string, len(imageIDs))
	for i, id := range imageIDs {
		proposed[i] = id.String()
	}

	if err := validateReorder(currentIDs, proposed); err != nil {
		return fmt.Errorf("invalid image reorder: %w", err)
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for i, id := range imageIDs {
		if _, err := tx.ExecContext(ctx,
			`UPDATE product_images SET position = $1 WHERE id = $2 AND product_id = $3`, i, id, productID); err != nil {
			log.Printf("❌ Error reordering image %s: %v", id, err)
			return fmt.Errorf("failed to reorder images: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✓ Images reordered for product %s", productID)
	return nil
}
