package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"tienda-catalogo/models"
	"tienda-catalogo/service"
)

// CatalogController handles PDF catalog compilation
type CatalogController struct {
	catalogService *service.CatalogService
	auth           service.AuthServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *service.CatalogService, auth service.AuthServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		auth:           auth,
	}
}

// Compile handles POST /admin/catalog/compile
// Body: {"productIds": [...]}. Responds with application/pdf bytes; ids
// that did not resolve are reported in X-Missing-Products.
func (c *CatalogController) Compile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.ProductIDs) == 0 {
		writeError(w, http.StatusBadRequest, "productIds must not be empty")
		return
	}

	log.Printf("📄 Compiling catalog PDF for %d products", len(req.ProductIDs))

	pdf, missing, err := c.catalogService.CompilePDF(r.Context(), req.ProductIDs)
	if err != nil {
		log.Printf("❌ Catalog compilation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to compile catalog: "+err.Error())
		return
	}

	if len(missing) > 0 {
		w.Header().Set("X-Missing-Products", strings.Join(missing, ","))
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="catalogo.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// Render handles GET /admin/catalog/render?ids=a,b,c&token=...
// Internal HTML render route that headless Chrome navigates to during
// compilation. Chrome carries no session cookies, so the route is gated by
// a short-lived render token minted per compile; without it the hidden
// products the catalog may include would be readable by anyone.
func (c *CatalogController) Render(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := c.auth.VerifyToken(r.URL.Query().Get("token"), service.TokenTypeRender); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rawIDs := strings.TrimSpace(r.URL.Query().Get("ids"))
	if rawIDs == "" {
		writeError(w, http.StatusBadRequest, "ids parameter is required")
		return
	}

	var productIDs []string
	for _, id := range strings.Split(rawIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			productIDs = append(productIDs, id)
		}
	}

	entries, missing, err := c.catalogService.BuildEntries(r.Context(), productIDs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build catalog entries: "+err.Error())
		return
	}
	if len(missing) > 0 {
		log.Printf("⚠️  Catalog render: %d unknown product ids: %s", len(missing), strings.Join(missing, ", "))
	}

	html, err := c.catalogService.RenderHTML(entries)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render catalog: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}
