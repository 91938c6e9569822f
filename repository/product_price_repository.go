package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"tienda-catalogo/db"
	"tienda-catalogo/models"
)

// ProductPriceRepository handles database operations for price tiers
// Implements ProductPriceRepositoryInterface
type ProductPriceRepository struct{}

// NewProductPriceRepository creates a new ProductPriceRepository
func NewProductPriceRepository() *ProductPriceRepository {
	return &ProductPriceRepository{}
}

// Ensure ProductPriceRepository implements ProductPriceRepositoryInterface
var _ ProductPriceRepositoryInterface = (*ProductPriceRepository)(nil)

// ListByProduct retrieves all price tiers for a product
func (r *ProductPriceRepository) ListByProduct(ctx context.Context, productID string) ([]models.ProductPrice, error) {
	query := `
		SELECT id, product_id, tier, cents, currency
		FROM product_prices
		WHERE product_id = $1
		ORDER BY tier ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, productID)
	if err != nil {
		log.Printf("❌ Error fetching prices for product %s: %v", productID, err)
		return nil, fmt.Errorf("failed to get product prices: %w", err)
	}
	defer rows.Close()

	var prices []models.ProductPrice
	for rows.Next() {
		var p models.ProductPrice
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Tier, &p.Cents, &p.Currency); err != nil {
			log.Printf("❌ Error scanning product price: %v", err)
			continue
		}
		prices = append(prices, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product prices: %w", err)
	}

	return prices, nil
}

// Upsert creates or replaces the price for (product, tier)
func (r *ProductPriceRepository) Upsert(ctx context.Context, productID, tier string, cents int, currency string) (*models.ProductPrice, error) {
	log.Printf("💾 Upserting price: product=%s tier=%s cents=%d %s", productID, tier, cents, currency)

	query := `
		INSERT INTO product_prices (id, product_id, tier, cents, currency)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id, tier)
		DO UPDATE SET cents = EXCLUDED.cents, currency = EXCLUDED.currency
		RETURNING id
	`

	p := models.ProductPrice{ProductID: productID, Tier: tier, Cents: cents, Currency: currency}
	if err := db.DB.QueryRowContext(ctx, query, uuid.New(), productID, tier, cents, currency).Scan(&p.ID); err != nil {
		log.Printf("❌ Error upserting price for product %s: %v", productID, err)
		return nil, fmt.Errorf("failed to upsert product price: %w", err)
	}

	log.Printf("✓ Price upserted: %s/%s", productID, tier)
	return &p, nil
}

// Delete removes the price for (product, tier)
func (r *ProductPriceRepository) Delete(ctx context.Context, productID, tier string) error {
	result, err := db.DB.ExecContext(ctx,
		`DELETE FROM product_prices WHERE product_id = $1 AND tier = $2`, productID, tier)
	if err != nil {
		log.Printf("❌ Error deleting price %s/%s: %v", productID, tier, err)
		return fmt.Errorf("failed to delete product price: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return fmt.Errorf("price %s/%s %w", productID, tier, ErrNotFound)
	}

	log.Printf("✓ Price deleted: %s/%s", productID, tier)
	return nil
}
