package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the client identifier for rate limiting.
// Priority: first hop of X-Forwarded-For, then X-Real-IP, then the
// connection's remote address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// The header is a comma-separated chain; the first entry is the client
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if first != "" {
			return first
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
