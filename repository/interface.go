package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tienda-catalogo/models"
)

// ErrNotFound marks lookups for rows that do not exist
var ErrNotFound = errors.New("not found")

// ErrConflict marks creates or renames that collide with an existing row
var ErrConflict = errors.New("already exists")

// ErrBadReorder marks reorder payloads that are not a full permutation of
// the current set
var ErrBadReorder = errors.New("invalid reorder")

// CategoryRepositoryInterface defines the contract for category operations
type CategoryRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	Exists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, slug, name string) (*models.Category, error)
	Update(ctx context.Context, slug string, req models.CategoryUpdateRequest) error
	Delete(ctx context.Context, slug string) error
	Reorder(ctx context.Context, proposed []string) error
}

// ProductRepositoryInterface defines the contract for product operations
type ProductRepositoryInterface interface {
	Filter(ctx context.Context, params models.ProductFilterParams) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, req models.ProductCreateRequest) (*models.Product, error)
	Update(ctx context.Context, id string, req models.ProductUpdateRequest) error
	Delete(ctx context.Context, id string) error
}

// ProductImageRepositoryInterface defines the contract for image row operations
type ProductImageRepositoryInterface interface {
	ListByProduct(ctx context.Context, productID string) ([]models.ProductImage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductImage, error)
	CountByProduct(ctx context.Context, productID string) (int, error)
	Insert(ctx context.Context, img *models.ProductImage) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, productID string, imageIDs []uuid.UUID) error
}

// ProductPriceRepositoryInterface defines the contract for price tier operations
type ProductPriceRepositoryInterface interface {
	ListByProduct(ctx context.Context, productID string) ([]models.ProductPrice, error)
	Upsert(ctx context.Context, productID, tier string, cents int, currency string) (*models.ProductPrice, error)
	Delete(ctx context.Context, productID, tier string) error
}

// SavedSelectionRepositoryInterface defines the contract for saved selection operations
type SavedSelectionRepositoryInterface interface {
	List(ctx context.Context) ([]models.SavedSelection, error)
	Get(ctx context.Context, id uuid.UUID) (*models.SavedSelection, error)
	GetProductIDs(ctx context.Context, id uuid.UUID) ([]string, error)
	Create(ctx context.Context, name string, productIDs []string) (*models.SavedSelection, error)
	Update(ctx context.Context, id uuid.UUID, req models.SelectionUpdateRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}
