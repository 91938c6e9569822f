package middleware

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"tienda-catalogo/ratelimit"
	"tienda-catalogo/utils"
)

// Per-action budgets, all over a 15 minute window
const (
	rateLimitWindow = 15 * time.Minute

	PublicReadLimit = 300
	AdminReadLimit  = 100
	AdminWriteLimit = 30
	LoginLimit      = 10
	CompileLimit    = 5
)

// RateLimitMiddleware applies a per-(client, action) request budget
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
}

// NewRateLimitMiddleware creates a new RateLimitMiddleware
func NewRateLimitMiddleware(limiter ratelimit.Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit rejects requests beyond maxRequests per window with 429 and a
// Retry-After hint
func (m *RateLimitMiddleware) Limit(action string, maxRequests int, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := utils.ClientIP(r)

		allowed, retryAfter, err := m.limiter.Allow(r.Context(), action, clientID, maxRequests, rateLimitWindow)
		if err != nil {
			// Limiter trouble must not take the API down
			next(w, r)
			return
		}

		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
			writeJSONError(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		next(w, r)
	}
}

// writeJSONError emits the shared middleware error body
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
