package middleware

import (
	"log"
	"net/http"
	"time"

	"tienda-catalogo/service"
)

// Session cookie names. The refresh cookie is scoped to /admin so it only
// travels with back-office requests.
const (
	AccessCookieName  = "admin-access"
	RefreshCookieName = "admin-refresh"
)

// AuthMiddleware guards admin routes with the access/refresh cookie pair
type AuthMiddleware struct {
	auth   service.AuthServiceInterface
	secure bool
}

// NewAuthMiddleware creates a new AuthMiddleware. secure marks cookies
// Secure (production only).
func NewAuthMiddleware(auth service.AuthServiceInterface, secure bool) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		secure: secure,
	}
}

// SetSessionCookies writes both session cookies on a successful login
func (m *AuthMiddleware) SetSessionCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	m.setAccessCookie(w, accessToken)
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    refreshToken,
		Path:     "/admin",
		MaxAge:   int(service.RefreshTokenTTL / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (m *AuthMiddleware) setAccessCookie(w http.ResponseWriter, accessToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessCookieName,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(service.AccessTokenTTL / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookies expires both session cookies
func (m *AuthMiddleware) ClearSessionCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/admin",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// RequireAdmin verifies the access cookie. When it is missing or invalid,
// a valid refresh cookie silently mints and re-sets a fresh access token;
// otherwise both cookies are cleared and the request gets 401.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(AccessCookieName); err == nil {
			if err := m.auth.VerifyToken(cookie.Value, service.TokenTypeAccess); err == nil {
				next(w, r)
				return
			}
		}

		// Access token failed; fall back to the refresh token
		refreshCookie, err := r.Cookie(RefreshCookieName)
		if err != nil || m.auth.VerifyToken(refreshCookie.Value, service.TokenTypeRefresh) != nil {
			m.ClearSessionCookies(w)
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		accessToken, err := m.auth.IssueAccessToken()
		if err != nil {
			log.Printf("❌ Failed to re-mint access token: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "failed to refresh session")
			return
		}

		m.setAccessCookie(w, accessToken)
		next(w, r)
	}
}
