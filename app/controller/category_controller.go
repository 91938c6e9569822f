package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"tienda-catalogo/models"
	"tienda-catalogo/repository"
	"tienda-catalogo/utils"
)

// CategoryController handles HTTP requests for categories
type CategoryController struct {
	repository repository.CategoryRepositoryInterface
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(repo repository.CategoryRepositoryInterface) *CategoryController {
	return &CategoryController{repository: repo}
}

// List handles GET /categories
// Public listing ordered by display order.
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	categories, err := c.repository.GetAll(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}

// Create handles POST /admin/categories
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Category string `json:"category"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateSlug(req.Category); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := c.repository.Create(r.Context(), req.Category, req.Name)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

// Update handles PUT /admin/categories/{slug}
// Renames the slug when newCategory is set; products follow via cascade.
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/admin/categories/")
	if slug == "" || strings.Contains(slug, "/") {
		writeError(w, http.StatusBadRequest, "category slug is required")
		return
	}

	var req models.CategoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.NewCategory != "" {
		if err := utils.ValidateSlug(req.NewCategory); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := c.repository.Update(r.Context(), slug, req); err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Delete handles DELETE /admin/categories/{slug}
// Remaining display orders are renormalized to a dense sequence.
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/admin/categories/")
	if slug == "" || strings.Contains(slug, "/") {
		writeError(w, http.StatusBadRequest, "category slug is required")
		return
	}

	if err := c.repository.Delete(r.Context(), slug); err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Reorder handles PUT /admin/categories/reorder
// The body must be a full permutation of the existing slugs.
func (c *CategoryController) Reorder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CategoryReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := c.repository.Reorder(r.Context(), req.Categories); err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
