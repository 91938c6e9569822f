package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUpload(t *testing.T) {
	t.Run("AcceptedTypes", func(t *testing.T) {
		for mime, wantExt := range map[string]string{
			"image/jpeg": "jpg",
			"image/png":  "png",
			"image/webp": "webp",
		} {
			ext, err := ValidateUpload(mime, 1024)
			require.NoError(t, err, mime)
			assert.Equal(t, wantExt, ext)
		}
	})

	t.Run("RejectedTypes", func(t *testing.T) {
		for _, mime := range []string{"image/gif", "application/pdf", "text/html", ""} {
			_, err := ValidateUpload(mime, 1024)
			assert.Error(t, err, mime)
		}
	})

	t.Run("SizeLimit", func(t *testing.T) {
		_, err := ValidateUpload("image/jpeg", MaxUploadBytes)
		assert.NoError(t, err, "exactly at the limit is accepted")

		_, err = ValidateUpload("image/jpeg", MaxUploadBytes+1)
		assert.Error(t, err)

		_, err = ValidateUpload("image/jpeg", 0)
		assert.Error(t, err, "empty upload is rejected")
	})
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestOptimizeImage(t *testing.T) {
	t.Run("DownscalesLargeImage", func(t *testing.T) {
		data, err := OptimizeImage(testPNG(t, 1600, 1200), "thumb")
		require.NoError(t, err)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.LessOrEqual(t, cfg.Width, 300)
		assert.LessOrEqual(t, cfg.Height, 300)
	})

	t.Run("KeepsSmallImageDimensions", func(t *testing.T) {
		data, err := OptimizeImage(testPNG(t, 100, 80), "medium")
		require.NoError(t, err)

		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, 80, cfg.Height)
	})

	t.Run("RejectsGarbage", func(t *testing.T) {
		_, err := OptimizeImage([]byte("definitely not an image"), "thumb")
		assert.Error(t, err)
	})
}

func TestJPEGDataURI(t *testing.T) {
	uri := JPEGDataURI([]byte{0xFF, 0xD8, 0xFF})
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	assert.Greater(t, len(uri), len("data:image/jpeg;base64,"))
}
