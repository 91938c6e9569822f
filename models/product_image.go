package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductImage stores an ordered image entry for a product. The database
// row keeps only the object key; the blob itself lives in the object store
// under {productId}/{objectKey}.
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID string    `json:"productId"`
	ObjectKey string    `json:"objectKey"`
	MimeType  string    `json:"mimeType"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	URL       string    `json:"url,omitempty"`
}

// ImageReorderRequest carries the full ordered list of a product's image IDs
type ImageReorderRequest struct {
	ImageIDs []uuid.UUID `json:"imageIds"`
}

// ImageMigrationResult reports the outcome of moving a product's blobs to a
// new storage prefix after a rename
type ImageMigrationResult struct {
	Migrated int `json:"migrated"`
	Failed   int `json:"failed"`
}
