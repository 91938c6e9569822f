package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"tienda-catalogo/models"
	"tienda-catalogo/service"
)

// ProductImageController handles HTTP requests for product images
type ProductImageController struct {
	imageService service.ImageServiceInterface
}

// NewProductImageController creates a new ProductImageController
func NewProductImageController(imageService service.ImageServiceInterface) *ProductImageController {
	return &ProductImageController{imageService: imageService}
}

// imagePath splits /admin/products/{id}/images[/{rest}] into product id
// and the remainder after "images"
func imagePath(urlPath string) (productID, rest string, ok bool) {
	path := strings.TrimPrefix(urlPath, "/admin/products/")
	idx := strings.Index(path, "/images")
	if idx <= 0 {
		return "", "", false
	}
	productID = path[:idx]
	rest = strings.TrimPrefix(path[idx+len("/images"):], "/")
	return productID, rest, true
}

// List handles GET /admin/products/{id}/images
func (c *ProductImageController) List(w http.ResponseWriter, r *http.Request) {
	productID, _, ok := imagePath(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	images, err := c.imageService.List(r.Context(), productID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if images == nil {
		images = []models.ProductImage{}
	}

	writeJSON(w, http.StatusOK, images)
}

// Upload handles POST /admin/products/{id}/images
// Multipart upload under the "image" field. MIME type and the 4 MB size
// ceiling are checked before anything reaches the object store.
func (c *ProductImageController) Upload(w http.ResponseWriter, r *http.Request) {
	productID, _, ok := imagePath(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	// Cap the whole request body slightly above the image ceiling
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadBytes+1<<20)

	if err := r.ParseMultipartForm(service.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image data")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	img, err := c.imageService.Upload(r.Context(), productID, mimeType, data)
	if err != nil {
		if _, validationErr := service.ValidateUpload(mimeType, len(data)); validationErr != nil {
			writeError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, img)
}

// Delete handles DELETE /admin/products/{id}/images/{imageId}
func (c *ProductImageController) Delete(w http.ResponseWriter, r *http.Request) {
	_, rest, ok := imagePath(r.URL.Path)
	if !ok || rest == "" {
		writeError(w, http.StatusBadRequest, "image id is required")
		return
	}

	imageID, err := uuid.Parse(rest)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image id")
		return
	}

	if err := c.imageService.Delete(r.Context(), imageID); err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Reorder handles PUT /admin/products/{id}/images/reorder
// The body must list every image id of the product in its new order.
func (c *ProductImageController) Reorder(w http.ResponseWriter, r *http.Request) {
	productID, _, ok := imagePath(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	var req models.ImageReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := c.imageService.Reorder(r.Context(), productID, req.ImageIDs); err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
