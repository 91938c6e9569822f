package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// mimeExtensions maps the accepted upload MIME types to file extensions
var mimeExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// ExtForMime returns the file extension for an accepted image MIME type
func ExtForMime(mimeType string) (string, bool) {
	ext, ok := mimeExtensions[mimeType]
	return ext, ok
}

// NewObjectKey generates a collision-resistant object key of the form
// {timestamp}-{randomId}.{ext}. The key is combined with the product ID
// prefix to form the full storage path.
func NewObjectKey(ext string) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is not recoverable in any useful way here;
		// fall back to the timestamp alone
		return fmt.Sprintf("%d.%s", time.Now().UnixMilli(), ext)
	}
	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), hex.EncodeToString(buf), ext)
}
