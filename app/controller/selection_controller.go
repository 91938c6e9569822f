package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"tienda-catalogo/models"
	"tienda-catalogo/repository"
)

// SelectionController handles HTTP requests for saved selections
type SelectionController struct {
	repository repository.SavedSelectionRepositoryInterface
}

// NewSelectionController creates a new SelectionController
func NewSelectionController(repo repository.SavedSelectionRepositoryInterface) *SelectionController {
	return &SelectionController{repository: repo}
}

func selectionID(urlPath string) (uuid.UUID, bool) {
	raw := strings.TrimPrefix(urlPath, "/admin/selections/")
	if raw == "" || strings.Contains(raw, "/") {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// List handles GET /admin/selections
func (c *SelectionController) List(w http.ResponseWriter, r *http.Request) {
	selections, err := c.repository.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if selections == nil {
		selections = []models.SavedSelection{}
	}

	writeJSON(w, http.StatusOK, selections)
}

// Get handles GET /admin/selections/{id}
// Includes the ordered product id list.
func (c *SelectionController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := selectionID(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "valid selection id is required")
		return
	}

	selection, err := c.repository.Get(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, selection)
}

// Create handles POST /admin/selections
func (c *SelectionController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SelectionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "selection name must not be empty")
		return
	}

	selection, err := c.repository.Create(r.Context(), req.Name, req.ProductIDs)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, selection)
}

// Update handles PUT /admin/selections/{id}
// A productIds list fully replaces the prior ordering.
func (c *SelectionController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := selectionID(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "valid selection id is required")
		return
	}

	var req models.SelectionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeError(w, http.StatusBadRequest, "selection name must not be empty")
		return
	}

	if err := c.repository.Update(r.Context(), id, req); err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Delete handles DELETE /admin/selections/{id}
func (c *SelectionController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := selectionID(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "valid selection id is required")
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
