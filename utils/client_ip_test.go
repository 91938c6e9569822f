package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	t.Run("ForwardedForFirstHop", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/products", nil)
		r.RemoteAddr = "192.168.1.10:54321"
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1, 10.0.0.2")
		r.Header.Set("X-Real-IP", "10.0.0.1")

		assert.Equal(t, "203.0.113.7", ClientIP(r))
	})

	t.Run("RealIPFallback", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/products", nil)
		r.RemoteAddr = "192.168.1.10:54321"
		r.Header.Set("X-Real-IP", "203.0.113.9")

		assert.Equal(t, "203.0.113.9", ClientIP(r))
	})

	t.Run("RemoteAddrFallback", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/products", nil)
		r.RemoteAddr = "192.168.1.10:54321"

		assert.Equal(t, "192.168.1.10", ClientIP(r))
	})
}
