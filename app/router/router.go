package router

import (
	"net/http"
	"strings"

	"tienda-catalogo/app/controller"
	"tienda-catalogo/app/middleware"
)

type Controllers struct {
	Auth         *controller.AuthController
	Category     *controller.CategoryController
	Product      *controller.ProductController
	ProductImage *controller.ProductImageController
	ProductPrice *controller.ProductPriceController
	Selection    *controller.SelectionController
	Catalog      *controller.CatalogController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(c *Controllers, auth *middleware.AuthMiddleware, rl *middleware.RateLimitMiddleware) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Public catalog reads
	http.HandleFunc("/categories", rl.Limit("public-read", middleware.PublicReadLimit, c.Category.List))
	http.HandleFunc("/products", rl.Limit("public-read", middleware.PublicReadLimit, c.Product.PublicList))
	http.HandleFunc("/products/", rl.Limit("public-read", middleware.PublicReadLimit, c.Product.PublicGet))

	// Admin session
	http.HandleFunc("/admin/login", rl.Limit("login", middleware.LoginLimit, c.Auth.Login))
	http.HandleFunc("/admin/logout", c.Auth.Logout)

	// Categories
	http.HandleFunc("/admin/categories", rl.Limit("admin-write", middleware.AdminWriteLimit,
		auth.RequireAdmin(c.Category.Create)))

	// Category reorder (must be before the generic /:slug route)
	http.HandleFunc("/admin/categories/reorder", rl.Limit("admin-write", middleware.AdminWriteLimit,
		auth.RequireAdmin(c.Category.Reorder)))

	// Category by slug - handles both PUT (update/rename) and DELETE
	http.HandleFunc("/admin/categories/", rl.Limit("admin-write", middleware.AdminWriteLimit,
		auth.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPut {
				c.Category.Update(w, r)
			} else if r.Method == http.MethodDelete {
				c.Category.Delete(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
		})))

	// Products collection - GET (admin list) and POST (create)
	http.HandleFunc("/admin/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			rl.Limit("admin-read", middleware.AdminReadLimit, auth.RequireAdmin(c.Product.AdminList))(w, r)
		} else if r.Method == http.MethodPost {
			rl.Limit("admin-write", middleware.AdminWriteLimit, auth.RequireAdmin(c.Product.Create))(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Product subresources and the product itself
	http.HandleFunc("/admin/products/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/products/")

		// Image routes: /admin/products/:id/images...
		if strings.Contains(path, "/images") {
			if strings.HasSuffix(path, "/reorder") && r.Method == http.MethodPut {
				rl.Limit("admin-write", middleware.AdminWriteLimit, auth.RequireAdmin(c.ProductImage.Reorder))(w, r)
				return
			}
			switch r.Method {
			case http.MethodGet:
				rl.Limit("admin-read", middleware.AdminReadLimit, auth.RequireAdmin(c.ProductImage.List))(w, r)
			case http.MethodPost:
				rl.Limit("admin-write", middleware.AdminWriteLimit, auth.RequireAdmin(c.ProductImage.Upload))(w, r)
			case http.MethodDelete:
				rl.Limit("admin-write", middleware.AdminWriteLimit, auth.RequireAdmin(c.ProductImage.Delete))(w, r)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Price routes: /admin/products/:id/prices...
		if strings.Contains(path, "/prices") {
			switch r.Method {
			case http.MethodGet:
				rl.Limit("admin-read", middleware.AdminReadLimit, auth.RequireAdmin(c.ProductPrice.List))(w, r)
			case http.MethodPut:
				rl.Limit("admin-write", middleware.AdminWriteLimit, auth.RequireAdmin(c.ProductPrice.Upsert))(w, r)
			case http.MethodDelete:
				rl.Limit("admin-write", middleware.AdminWriteLimit, auth.RequireAdmin(c.ProductPrice.Delete))(w, r)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Otherwise, treat as /admin/products/:id
		if r.Method == http.MethodPut {
			rl.Limit("admin-write", middleware.AdminWriteLimit, auth.RequireAdmin(c.Product.Update))(w, r)
			return
		}
		if r.Method == http.MethodDelete {
			rl.Limit("admin-write", middleware.AdminWriteLimit, auth.RequireAdmin(c.Product.Delete))(w, r)
			return
		}

		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Saved selections collection
	http.HandleFunc("/admin/selections", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			rl.Limit("admin-read", middleware.AdminReadLimit, auth.RequireAdmin(c.Selection.List))(w, r)
		} else if r.Method == http.MethodPost {
			rl.Limit("admin-write", middleware.AdminWriteLimit, auth.RequireAdmin(c.Selection.Create))(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Saved selection by id
	http.HandleFunc("/admin/selections/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			rl.Limit("admin-read", middleware.AdminReadLimit, auth.RequireAdmin(c.Selection.Get))(w, r)
		case http.MethodPut:
			rl.Limit("admin-write", middleware.AdminWriteLimit, auth.RequireAdmin(c.Selection.Update))(w, r)
		case http.MethodDelete:
			rl.Limit("admin-write", middleware.AdminWriteLimit, auth.RequireAdmin(c.Selection.Delete))(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Catalog compilation
	http.HandleFunc("/admin/catalog/compile", rl.Limit("catalog-compile", middleware.CompileLimit,
		auth.RequireAdmin(c.Catalog.Compile)))

	// Internal render route: headless Chrome fetches this during compile
	// without session cookies, so the controller checks a per-compile
	// render token instead of the admin session.
	http.HandleFunc("/admin/catalog/render", rl.Limit("admin-read", middleware.AdminReadLimit, c.Catalog.Render))
}
