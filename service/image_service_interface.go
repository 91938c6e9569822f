package service

import (
	"context"

	"github.com/google/uuid"

	"tienda-catalogo/models"
)

// ImageServiceInterface defines the contract for the product image pipeline
type ImageServiceInterface interface {
	List(ctx context.Context, productID string) ([]models.ProductImage, error)
	Upload(ctx context.Context, productID, mimeType string, data []byte) (*models.ProductImage, error)
	Delete(ctx context.Context, imageID uuid.UUID) error
	Reorder(ctx context.Context, productID string, imageIDs []uuid.UUID) error
	MigrateImages(ctx context.Context, oldProductID, newProductID string) (*models.ImageMigrationResult, error)
	PurgeProductBlobs(ctx context.Context, productID string) error
}
