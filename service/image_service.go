package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"
	"sync/atomic"

	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tienda-catalogo/models"
	"tienda-catalogo/repository"
	"tienda-catalogo/utils"
)

// MaxUploadBytes is the upload size ceiling for product images (4 MB)
const MaxUploadBytes = 4 << 20

// migrateConcurrency bounds the parallel copy/delete fan-out during a
// product rename
const migrateConcurrency = 4

// ImageService handles the product image pipeline: validated uploads into
// the object store, best-effort deletes, reordering, and blob migration
// when a product is renamed.
// Implements ImageServiceInterface
type ImageService struct {
	storage   StorageServiceInterface
	imageRepo repository.ProductImageRepositoryInterface
}

// NewImageService creates a new ImageService
func NewImageService(storage StorageServiceInterface, imageRepo repository.ProductImageRepositoryInterface) *ImageService {
	return &ImageService{
		storage:   storage,
		imageRepo: imageRepo,
	}
}

// Ensure ImageService implements ImageServiceInterface
var _ ImageServiceInterface = (*ImageService)(nil)

// List returns a product's images ordered by position, with public URLs
func (s *ImageService) List(ctx context.Context, productID string) ([]models.ProductImage, error) {
	images, err := s.imageRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	for i := range images {
		images[i].URL = s.storage.PublicURL(images[i].ProductID + "/" + images[i].ObjectKey)
	}
	return images, nil
}

// ValidateUpload checks MIME type and size before anything touches the
// object store. Returns the file extension for the accepted MIME type.
func ValidateUpload(mimeType string, size int) (string, error) {
	ext, ok := utils.ExtForMime(mimeType)
	if !ok {
		return "", fmt.Errorf("unsupported image type %q: accepted types are image/jpeg, image/png, image/webp", mimeType)
	}
	if size > MaxUploadBytes {
		return "", fmt.Errorf("image exceeds the %d MB limit", MaxUploadBytes>>20)
	}
	if size == 0 {
		return "", fmt.Errorf("empty image upload")
	}
	return ext, nil
}

// probeDimensions decodes just the image header to get pixel dimensions.
// Best effort: undecodable data (e.g. webp) yields 0x0.
func probeDimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.Printf("⚠️  Warning: could not probe image dimensions: %v", err)
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

// Upload validates the blob, stores it under a randomized key in the
// product's prefix, and records the database row with position equal to
// the current image count.
func (s *ImageService) Upload(ctx context.Context, productID, mimeType string, data []byte) (*models.ProductImage, error) {
	ext, err := ValidateUpload(mimeType, len(data))
	if err != nil {
		return nil, err
	}

	key := utils.NewObjectKey(ext)
	path := productID + "/" + key
	width, height := probeDimensions(data)

	if err := s.storage.Upload(ctx, path, mimeType, bytes.NewReader(data)); err != nil {
		return nil, err
	}

	position, err := s.imageRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	img := &models.ProductImage{
		ID:        uuid.New(),
		ProductID: productID,
		ObjectKey: key,
		MimeType:  mimeType,
		Width:     width,
		Height:    height,
		Position:  position,
	}

	if err := s.imageRepo.Insert(ctx, img); err != nil {
		// Keep the store and database consistent when the row insert fails
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			log.Printf("⚠️  Warning: failed to clean up orphaned blob %s: %v", path, delErr)
		}
		return nil, err
	}

	img.URL = s.storage.PublicURL(path)
	log.Printf("✅ Image uploaded: product=%s key=%s %dx%d position=%d", productID, key, width, height, position)
	return img, nil
}

// Delete removes the blob (best effort) and the database row. A storage
// failure is logged and swallowed so the row delete still happens.
func (s *ImageService) Delete(ctx context.Context, imageID uuid.UUID) error {
	img, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	path := img.ProductID + "/" + img.ObjectKey
	if err := s.storage.Delete(ctx, path); err != nil {
		log.Printf("⚠️  Warning: failed to delete blob %s, removing row anyway: %v", path, err)
	}

	return s.imageRepo.Delete(ctx, imageID)
}

// Reorder rewrites the positions of a product's images
func (s *ImageService) Reorder(ctx context.Context, productID string, imageIDs []uuid.UUID) error {
	return s.imageRepo.Reorder(ctx, productID, imageIDs)
}

// PurgeProductBlobs removes every blob of a product from the object store.
// Called before a product delete; the rows go with the product via the
// delete cascade, so blob failures are logged and swallowed.
func (s *ImageService) PurgeProductBlobs(ctx context.Context, productID string) error {
	images, err := s.imageRepo.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}

	for _, img := range images {
		path := img.ProductID + "/" + img.ObjectKey
		if err := s.storage.Delete(ctx, path); err != nil {
			log.Printf("⚠️  Warning: failed to delete blob %s during purge: %v", path, err)
		}
	}

	return nil
}

// MigrateImages moves a renamed product's blobs from the old prefix to the
// new one. The database rows already point at the new product id via the
// rename cascade; only the object store paths need to follow. Copies and
// deletes run concurrently and each image is best effort: a failed copy
// leaves its old blob in place and counts toward Failed.
func (s *ImageService) MigrateImages(ctx context.Context, oldProductID, newProductID string) (*models.ImageMigrationResult, error) {
	images, err := s.imageRepo.ListByProduct(ctx, newProductID)
	if err != nil {
		return nil, err
	}

	log.Printf("🚚 Migrating %d blobs: %s/ -> %s/", len(images), oldProductID, newProductID)

	var migrated, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(migrateConcurrency)

	for _, img := range images {
		key := img.ObjectKey
		g.Go(func() error {
			oldPath := oldProductID + "/" + key
			newPath := newProductID + "/" + key

			if err := s.storage.Copy(gctx, oldPath, newPath); err != nil {
				log.Printf("❌ Failed to copy blob %s: %v", oldPath, err)
				failed.Add(1)
				return nil
			}

			if err := s.storage.Delete(gctx, oldPath); err != nil {
				// The new blob exists; the leftover old one is harmless
				log.Printf("⚠️  Warning: failed to delete old blob %s: %v", oldPath, err)
			}

			migrated.Add(1)
			return nil
		})
	}

	// Workers never return errors; Wait only observes context cancellation
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to migrate images: %w", err)
	}

	result := &models.ImageMigrationResult{
		Migrated: int(migrated.Load()),
		Failed:   int(failed.Load()),
	}
	log.Printf("🎉 Image migration completed: %d migrated, %d failed", result.Migrated, result.Failed)
	return result, nil
}
