package service

// AuthServiceInterface defines the contract for admin session tokens
type AuthServiceInterface interface {
	CheckPassword(password string) bool
	IssueAccessToken() (string, error)
	IssueRefreshToken() (string, error)
	IssueRenderToken() (string, error)
	VerifyToken(tokenString, wantType string) error
}
