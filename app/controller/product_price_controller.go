package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"tienda-catalogo/models"
	"tienda-catalogo/repository"
	"tienda-catalogo/utils"
)

// ProductPriceController handles HTTP requests for price tiers
type ProductPriceController struct {
	repository repository.ProductPriceRepositoryInterface
}

// NewProductPriceController creates a new ProductPriceController
func NewProductPriceController(repo repository.ProductPriceRepositoryInterface) *ProductPriceController {
	return &ProductPriceController{repository: repo}
}

// priceDisplay formats a COP amount in whole pesos for responses.
// Other currencies have no formatter and yield an empty string.
func priceDisplay(cents int, currency string) string {
	if currency != "COP" {
		return ""
	}
	return utils.FormatCOP(int64(cents) / 100)
}

// pricePath splits /admin/products/{id}/prices[/{tier}]
func pricePath(urlPath string) (productID, tier string, ok bool) {
	path := strings.TrimPrefix(urlPath, "/admin/products/")
	idx := strings.Index(path, "/prices")
	if idx <= 0 {
		return "", "", false
	}
	productID = path[:idx]
	tier = strings.TrimPrefix(path[idx+len("/prices"):], "/")
	return productID, tier, true
}

// List handles GET /admin/products/{id}/prices
func (c *ProductPriceController) List(w http.ResponseWriter, r *http.Request) {
	productID, _, ok := pricePath(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	prices, err := c.repository.ListByProduct(r.Context(), productID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if prices == nil {
		prices = []models.ProductPrice{}
	}
	for i := range prices {
		prices[i].Display = priceDisplay(prices[i].Cents, prices[i].Currency)
	}

	writeJSON(w, http.StatusOK, prices)
}

// Upsert handles PUT /admin/products/{id}/prices/{tier}
func (c *ProductPriceController) Upsert(w http.ResponseWriter, r *http.Request) {
	productID, tier, ok := pricePath(r.URL.Path)
	if !ok || tier == "" {
		writeError(w, http.StatusBadRequest, "price tier is required")
		return
	}

	if !models.ValidPriceTiers[tier] {
		writeError(w, http.StatusBadRequest, "invalid price tier: valid tiers are retail, wholesale, clearance")
		return
	}

	var req models.PriceUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Cents < 0 {
		writeError(w, http.StatusBadRequest, "cents must not be negative")
		return
	}
	if req.Currency == "" {
		req.Currency = "COP"
	}

	price, err := c.repository.Upsert(r.Context(), productID, tier, req.Cents, req.Currency)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	price.Display = priceDisplay(price.Cents, price.Currency)

	writeJSON(w, http.StatusOK, price)
}

// Delete handles DELETE /admin/products/{id}/prices/{tier}
func (c *ProductPriceController) Delete(w http.ResponseWriter, r *http.Request) {
	productID, tier, ok := pricePath(r.URL.Path)
	if !ok || tier == "" {
		writeError(w, http.StatusBadRequest, "price tier is required")
		return
	}

	if err := c.repository.Delete(r.Context(), productID, tier); err != nil {
		writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
