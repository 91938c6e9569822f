package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"tienda-catalogo/models"
	"tienda-catalogo/repository"
	"tienda-catalogo/service"
	"tienda-catalogo/utils"
)

// ProductController handles HTTP requests for products
type ProductController struct {
	repository   repository.ProductRepositoryInterface
	imageService service.ImageServiceInterface
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepositoryInterface, imageService service.ImageServiceInterface) *ProductController {
	return &ProductController{
		repository:   repo,
		imageService: imageService,
	}
}

// PublicList handles GET /products?q=&category=
// Hidden products are excluded.
func (c *ProductController) PublicList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := models.ProductFilterParams{
		Query:    strings.TrimSpace(r.URL.Query().Get("q")),
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
	}

	products, err := c.repository.Filter(r.Context(), params)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// PublicGet handles GET /products/{id}
// Hidden products answer 404 here.
func (c *ProductController) PublicGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/products/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	product, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if product.Hidden {
		writeError(w, http.StatusNotFound, "product \""+id+"\" not found")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// AdminList handles GET /admin/products
// Includes hidden products.
func (c *ProductController) AdminList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := models.ProductFilterParams{
		Query:         strings.TrimSpace(r.URL.Query().Get("q")),
		Category:      strings.TrimSpace(r.URL.Query().Get("category")),
		IncludeHidden: true,
	}

	products, err := c.repository.Filter(r.Context(), params)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /admin/products
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ProductCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateSlug(req.ID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.repository.Create(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /admin/products/{id}
// A newId renames the product; database references follow via cascade and
// the stored blobs are migrated to the new prefix afterwards.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	var req models.ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.NewID != "" {
		if err := utils.ValidateSlug(req.NewID); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := c.repository.Update(r.Context(), id, req); err != nil {
		writeRepoError(w, err)
		return
	}

	response := map[string]interface{}{"status": "success"}

	if req.NewID != "" && req.NewID != id {
		migration, err := c.imageService.MigrateImages(r.Context(), id, req.NewID)
		if err != nil {
			// The rename itself is committed; report the migration failure
			log.Printf("❌ Image migration after rename %s -> %s failed: %v", id, req.NewID, err)
			response["imageMigration"] = map[string]string{"error": err.Error()}
		} else {
			response["imageMigration"] = migration
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// Delete handles DELETE /admin/products/{id}
// Blobs are purged best-effort before the row delete cascades the
// image/price/selection rows.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	if err := c.imageService.PurgeProductBlobs(r.Context(), id); err != nil {
		log.Printf("⚠️  Warning: blob purge for product %s failed: %v", id, err)
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
