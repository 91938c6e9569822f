package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"tienda-catalogo/db"
	"tienda-catalogo/models"
)

// ProductRepository handles database operations for products
// Implements ProductRepositoryInterface
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productColumns = `
	id,
	COALESCE(name, '') as name,
	COALESCE(description, '') as description,
	COALESCE(price, '') as price,
	clearance,
	sold_out,
	hidden,
	COALESCE(category, '') as category,
	created_at
`

func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Clearance,
		&p.SoldOut,
		&p.Hidden,
		&p.Category,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Filter retrieves products matching the provided parameters. Hidden
// products are excluded unless IncludeHidden is set.
func (r *ProductRepository) Filter(ctx context.Context, params models.ProductFilterParams) ([]models.Product, error) {
	baseQuery := `SELECT ` + productColumns + ` FROM products WHERE 1=1`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if !params.IncludeHidden {
		conditions = append(conditions, "hidden = false")
	}

	if params.Query != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(id ILIKE $%d OR name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex, argIndex))
		args = append(args, "%"+params.Query+"%")
		argIndex++
	}

	if params.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, params.Category)
		argIndex++
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY created_at DESC"

	rows, err := db.DB.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		log.Printf("❌ Error filtering products: %v", err)
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Printf("❌ Error scanning product: %v", err)
			continue
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its slug
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %q %w", id, ErrNotFound)
		}
		log.Printf("❌ Error fetching product %s: %v", id, err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// GetByIDs retrieves the products matching ids. Missing ids are simply
// absent from the result; callers detect them by comparing lengths.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Printf("❌ Error scanning product: %v", err)
			continue
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// Exists checks whether a product with the given id exists
func (r *ProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`
	if err := db.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new product. Returns ErrConflict when the id is taken.
func (r *ProductRepository) Create(ctx context.Context, req models.ProductCreateRequest) (*models.Product, error) {
	log.Printf("💾 Creating product: %s", req.ID)

	exists, err := r.Exists(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("product %q %w", req.ID, ErrConflict)
	}

	query := `
		INSERT INTO products (id, name, description, price, clearance, sold_out, hidden, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
		RETURNING created_at
	`

	p := models.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Clearance:   req.Clearance,
		SoldOut:     req.SoldOut,
		Hidden:      req.Hidden,
		Category:    req.Category,
	}

	err = db.DB.QueryRowContext(ctx, query,
		req.ID, req.Name, req.Description, req.Price,
		req.Clearance, req.SoldOut, req.Hidden, req.Category,
	).Scan(&p.CreatedAt)
	if err != nil {
		log.Printf("❌ Error inserting product %s: %v", req.ID, err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("✓ Product created: %s", req.ID)
	return &p, nil
}

// Update applies the provided field changes. A NewID renames the primary
// key; images, prices and selection rows follow via ON UPDATE CASCADE.
// Returns ErrConflict without touching either row when NewID is taken.
func (r *ProductRepository) Update(ctx context.Context, id string, req models.ProductUpdateRequest) error {
	if req.NewID != "" && req.NewID != id {
		exists, err := r.Exists(ctx, req.NewID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("product %q %w", req.NewID, ErrConflict)
		}
	}

	newID := id
	if req.NewID != "" {
		newID = req.NewID
	}

	query := `
		UPDATE products
		SET id = $1,
		    name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    price = COALESCE($4, price),
		    clearance = COALESCE($5, clearance),
		    sold_out = COALESCE($6, sold_out),
		    hidden = COALESCE($7, hidden),
		    category = CASE WHEN $8::text IS NULL THEN category ELSE NULLIF($8, '') END
		WHERE id = $9
	`

	result, err := db.DB.ExecContext(ctx, query,
		newID, req.Name, req.Description, req.Price,
		req.Clearance, req.SoldOut, req.Hidden, req.Category, id)
	if err != nil {
		log.Printf("❌ Error updating product %s: %v", id, err)
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return fmt.Errorf("product %q %w", id, ErrNotFound)
	}

	log.Printf("✓ Product updated: %s -> %s", id, newID)
	return nil
}

// Delete removes a product; images, prices and selection rows cascade
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	log.Printf("🗑️  Deleting product: %s", id)

	result, err := db.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting product %s: %v", id, err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return fmt.Errorf("product %q %w", id, ErrNotFound)
	}

	log.Printf("✓ Product deleted: %s", id)
	return nil
}
