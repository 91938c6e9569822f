package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token type claim values
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeRender  = "render"
)

// Token lifetimes. The access token is short-lived and re-minted from a
// valid refresh token without asking for credentials again.
const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
	// Render tokens only need to cover one headless-Chrome navigation
	RenderTokenTTL = time.Minute
)

// AuthService issues and verifies HMAC-signed admin session tokens.
// There is no server-side revocation list; expiry is the only invalidation.
// Implements AuthServiceInterface
type AuthService struct {
	secret        []byte
	adminPassword string
	now           func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(secret, adminPassword string) *AuthService {
	return &AuthService{
		secret:        []byte(secret),
		adminPassword: adminPassword,
		now:           time.Now,
	}
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// CheckPassword compares a submitted password against the shared admin
// secret in constant time
func (s *AuthService) CheckPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
}

// IssueAccessToken mints a short-lived token with typ=access
func (s *AuthService) IssueAccessToken() (string, error) {
	return s.issue(TokenTypeAccess, AccessTokenTTL)
}

// IssueRefreshToken mints a long-lived token with typ=refresh
func (s *AuthService) IssueRefreshToken() (string, error) {
	return s.issue(TokenTypeRefresh, RefreshTokenTTL)
}

// IssueRenderToken mints a short-lived token with typ=render. It gates the
// internal catalog render route, which headless Chrome reaches without
// session cookies.
func (s *AuthService) IssueRenderToken() (string, error) {
	return s.issue(TokenTypeRender, RenderTokenTTL)
}

func (s *AuthService) issue(tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"typ": tokenType,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// VerifyToken checks signature, expiry and the typ claim
func (s *AuthService) VerifyToken(tokenString, wantType string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid token claims")
	}

	if typ, _ := claims["typ"].(string); typ != wantType {
		return fmt.Errorf("wrong token type: expected %s", wantType)
	}

	return nil
}
