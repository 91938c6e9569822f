package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

// StorageService handles Google Cloud Storage operations for image blobs.
// Only the object key is kept in the database; the blob lives under
// {productId}/{objectKey} in the configured bucket.
type StorageService struct {
	client *storage.Service
	bucket string
}

// Ensure StorageService implements StorageServiceInterface
var _ StorageServiceInterface = (*StorageService)(nil)

// NewStorageService creates a new StorageService instance.
// credentialsPath should be the path to the Service Account JSON file.
func NewStorageService(credentialsPath, bucket string) (*StorageService, error) {
	ctx := context.Background()

	client, err := storage.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}

	return &StorageService{
		client: client,
		bucket: bucket,
	}, nil
}

// Upload stores a blob at path with the given content type
func (s *StorageService) Upload(ctx context.Context, path, mimeType string, body io.Reader) error {
	log.Printf("📤 Uploading object: %s (%s)", path, mimeType)

	obj := &storage.Object{Name: path, ContentType: mimeType}
	_, err := s.client.Objects.Insert(s.bucket, obj).Media(body).Context(ctx).Do()
	if err != nil {
		log.Printf("❌ Error uploading object %s: %v", path, err)
		return fmt.Errorf("failed to upload object: %w", err)
	}

	log.Printf("✓ Object uploaded: %s", path)
	return nil
}

// Download fetches a blob's bytes
func (s *StorageService) Download(ctx context.Context, path string) ([]byte, error) {
	resp, err := s.client.Objects.Get(s.bucket, path).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download object: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object data: %w", err)
	}

	return data, nil
}

// Copy duplicates a blob within the bucket
func (s *StorageService) Copy(ctx context.Context, srcPath, dstPath string) error {
	log.Printf("📋 Copying object: %s -> %s", srcPath, dstPath)

	_, err := s.client.Objects.Copy(s.bucket, srcPath, s.bucket, dstPath, nil).Context(ctx).Do()
	if err != nil {
		log.Printf("❌ Error copying object %s: %v", srcPath, err)
		return fmt.Errorf("failed to copy object: %w", err)
	}

	return nil
}

// Delete removes a blob
func (s *StorageService) Delete(ctx context.Context, path string) error {
	if err := s.client.Objects.Delete(s.bucket, path).Context(ctx).Do(); err != nil {
		log.Printf("❌ Error deleting object %s: %v", path, err)
		return fmt.Errorf("failed to delete object: %w", err)
	}

	log.Printf("✓ Object deleted: %s", path)
	return nil
}

// PublicURL returns the deterministic public URL of a blob
func (s *StorageService) PublicURL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, path)
}
