package service

import (
	"context"
	"io"
)

// StorageServiceInterface defines the contract for object store operations.
// Paths are {productId}/{objectKey}; the bucket is fixed at construction.
type StorageServiceInterface interface {
	Upload(ctx context.Context, path, mimeType string, body io.Reader) error
	Download(ctx context.Context, path string) ([]byte, error)
	Copy(ctx context.Context, srcPath, dstPath string) error
	Delete(ctx context.Context, path string) error
	PublicURL(path string) string
}
