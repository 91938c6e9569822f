package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"tienda-catalogo/app/middleware"
	"tienda-catalogo/service"
)

// AuthController handles admin session endpoints
type AuthController struct {
	auth     service.AuthServiceInterface
	sessions *middleware.AuthMiddleware
}

// NewAuthController creates a new AuthController
func NewAuthController(auth service.AuthServiceInterface, sessions *middleware.AuthMiddleware) *AuthController {
	return &AuthController{
		auth:     auth,
		sessions: sessions,
	}
}

// Login handles POST /admin/login
// Compares the submitted password against the shared admin secret and
// sets the access/refresh cookie pair on success.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !c.auth.CheckPassword(req.Password) {
		log.Printf("❌ Admin login rejected: wrong password")
		writeError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	accessToken, err := c.auth.IssueAccessToken()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue session")
		return
	}
	refreshToken, err := c.auth.IssueRefreshToken()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue session")
		return
	}

	c.sessions.SetSessionCookies(w, accessToken, refreshToken)
	log.Printf("✅ Admin login successful")
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Logout handles POST /admin/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c.sessions.ClearSessionCookies(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
