package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// OptimizeImage converts an image to a downscaled JPEG for catalog
// embedding. size is "thumb" or "medium"; unknown values fall back to
// medium. Returns the optimized JPEG bytes.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim := maxSizeMedium
	quality := qualityMedium
	switch size {
	case "thumb":
		maxDim = maxSizeThumb
		quality = qualityThumb
	case "medium":
	default:
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	bounds := img.Bounds()
	resized := img
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		resized = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		log.Printf("🔄 Resized image: format=%s %dx%d -> %dx%d",
			format, bounds.Dx(), bounds.Dy(), resized.Bounds().Dx(), resized.Bounds().Dy())
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	return buf.Bytes(), nil
}

// JPEGDataURI wraps JPEG bytes as a data URI for inline HTML embedding
func JPEGDataURI(jpegData []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegData)
}
