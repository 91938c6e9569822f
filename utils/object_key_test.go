package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtForMime(t *testing.T) {
	for mime, want := range map[string]string{
		"image/jpeg": "jpg",
		"image/png":  "png",
		"image/webp": "webp",
	} {
		ext, ok := ExtForMime(mime)
		require.True(t, ok, mime)
		assert.Equal(t, want, ext)
	}

	for _, mime := range []string{"image/gif", "image/svg+xml", "text/plain", ""} {
		_, ok := ExtForMime(mime)
		assert.False(t, ok, mime)
	}
}

func TestNewObjectKey(t *testing.T) {
	keyPattern := regexp.MustCompile(`^\d+-[0-9a-f]{12}\.jpg$`)

	k1 := NewObjectKey("jpg")
	assert.Regexp(t, keyPattern, k1)

	k2 := NewObjectKey("jpg")
	assert.NotEqual(t, k1, k2, "keys must not collide")
}
