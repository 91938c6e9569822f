package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda-catalogo/models"
	"tienda-catalogo/repository"
	"tienda-catalogo/service"
)

type stubProductRepo struct {
	products []models.Product
}

func (s *stubProductRepo) Filter(context.Context, models.ProductFilterParams) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) GetByID(context.Context, string) (*models.Product, error) {
	return nil, repository.ErrNotFound
}

func (s *stubProductRepo) GetByIDs(context.Context, []string) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) Exists(context.Context, string) (bool, error) { return false, nil }

func (s *stubProductRepo) Create(context.Context, models.ProductCreateRequest) (*models.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) Update(context.Context, string, models.ProductUpdateRequest) error {
	return nil
}

func (s *stubProductRepo) Delete(context.Context, string) error { return nil }

type stubImageRepo struct{}

func (stubImageRepo) ListByProduct(context.Context, string) ([]models.ProductImage, error) {
	return nil, nil
}

func (stubImageRepo) GetByID(context.Context, uuid.UUID) (*models.ProductImage, error) {
	return nil, repository.ErrNotFound
}

func (stubImageRepo) CountByProduct(context.Context, string) (int, error) { return 0, nil }
func (stubImageRepo) Insert(context.Context, *models.ProductImage) error { return nil }
func (stubImageRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (stubImageRepo) Reorder(context.Context, string, []uuid.UUID) error { return nil }

type stubStorage struct{}

func (stubStorage) Upload(context.Context, string, string, io.Reader) error { return nil }
func (stubStorage) Download(context.Context, string) ([]byte, error) { return nil, nil }
func (stubStorage) Copy(context.Context, string, string) error { return nil }
func (stubStorage) Delete(context.Context, string) error { return nil }
func (stubStorage) PublicURL(path string) string { return path }

func newRenderTestController(products []models.Product) (*CatalogController, *service.AuthService) {
	auth := service.NewAuthService("test-secret", "hunter2")
	catalogService := service.NewCatalogService(
		&stubProductRepo{products: products}, stubImageRepo{}, stubStorage{},
		auth, "http://localhost:8080", "")
	return NewCatalogController(catalogService, auth), auth
}

func TestRenderRouteRequiresToken(t *testing.T) {
	hidden := models.Product{
		ID:     "producto-oculto",
		Name:   "Producto sin anunciar",
		Hidden: true,
	}

	t.Run("NoToken", func(t *testing.T) {
		ctrl, _ := newRenderTestController([]models.Product{hidden})

		rec := httptest.NewRecorder()
		ctrl.Render(rec, httptest.NewRequest("GET", "/admin/catalog/render?ids=producto-oculto", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, rec.Body.String(), hidden.Name)
	})

	t.Run("SessionTokenRejected", func(t *testing.T) {
		ctrl, auth := newRenderTestController([]models.Product{hidden})
		accessToken, err := auth.IssueAccessToken()
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		ctrl.Render(rec, httptest.NewRequest("GET",
			"/admin/catalog/render?ids=producto-oculto&token="+accessToken, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, rec.Body.String(), hidden.Name)
	})

	t.Run("RenderToken", func(t *testing.T) {
		// The template path is relative to the repo root
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir("../.."))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		ctrl, auth := newRenderTestController([]models.Product{hidden})
		renderToken, err := auth.IssueRenderToken()
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		ctrl.Render(rec, httptest.NewRequest("GET",
			"/admin/catalog/render?ids=producto-oculto&token="+renderToken, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), hidden.Name)
	})
}
