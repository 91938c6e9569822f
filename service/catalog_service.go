package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"tienda-catalogo/models"
	"tienda-catalogo/repository"
)

const (
	itemsPerPage   = 9
	compileTimeout = 30 * time.Second
)

// CatalogService compiles a PDF catalog excerpt from a list of product ids
type CatalogService struct {
	productRepo repository.ProductRepositoryInterface
	imageRepo   repository.ProductImageRepositoryInterface
	storage     StorageServiceInterface
	auth        AuthServiceInterface
	baseURL     string
	chromePath  string
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	productRepo repository.ProductRepositoryInterface,
	imageRepo repository.ProductImageRepositoryInterface,
	storage StorageServiceInterface,
	auth AuthServiceInterface,
	baseURL string,
	chromePath string,
) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		imageRepo:   imageRepo,
		storage:     storage,
		auth:        auth,
		baseURL:     baseURL,
		chromePath:  chromePath,
	}
}

// detectChromePath detects the path to the Chrome/Chromium executable,
// checking the configured path first and then common installation paths
func (s *CatalogService) detectChromePath() string {
	if s.chromePath != "" {
		if _, err := os.Stat(s.chromePath); err == nil {
			return s.chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// BuildEntries resolves product ids into renderable catalog entries,
// preserving the requested order. Missing ids are reported separately.
// Each entry's first image is downloaded and downscaled into a JPEG data
// URI; an image failure just leaves the entry without one.
func (s *CatalogService) BuildEntries(ctx context.Context, productIDs []string) ([]models.CatalogEntry, []string, error) {
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var entries []models.CatalogEntry
	missing := missingIDs(productIDs, products)
	for _, id := range productIDs {
		p, ok := byID[id]
		if !ok {
			continue
		}

		entry := models.CatalogEntry{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			SoldOut:     p.SoldOut,
			Clearance:   p.Clearance,
		}
		entry.ImageDataURI = s.firstImageDataURI(ctx, p.ID)
		entries = append(entries, entry)
	}

	return entries, missing, nil
}

// missingIDs returns the requested ids that did not resolve to a product,
// in request order
func missingIDs(requested []string, products []models.Product) []string {
	found := make(map[string]bool, len(products))
	for _, p := range products {
		found[p.ID] = true
	}

	var missing []string
	for _, id := range requested {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// firstImageDataURI fetches and compresses a product's first image.
// Best effort: any failure returns an empty URI and the image is omitted.
func (s *CatalogService) firstImageDataURI(ctx context.Context, productID string) string {
	images, err := s.imageRepo.ListByProduct(ctx, productID)
	if err != nil || len(images) == 0 {
		return ""
	}

	path := productID + "/" + images[0].ObjectKey
	data, err := s.storage.Download(ctx, path)
	if err != nil {
		log.Printf("⚠️  Warning: failed to fetch image %s for catalog: %v", path, err)
		return ""
	}

	optimized, err := OptimizeImage(data, "medium")
	if err != nil {
		log.Printf("⚠️  Warning: failed to optimize image %s for catalog: %v", path, err)
		return ""
	}

	return JPEGDataURI(optimized)
}

// paginateEntries splits entries into pages of itemsPerPage each
func paginateEntries(entries []models.CatalogEntry) [][]models.CatalogEntry {
	var pages [][]models.CatalogEntry
	for i := 0; i < len(entries); i += itemsPerPage {
		end := i + itemsPerPage
		if end > len(entries) {
			end = len(entries)
		}
		pages = append(pages, entries[i:end])
	}
	return pages
}

// RenderHTML renders the catalog template for the given entries
func (s *CatalogService) RenderHTML(entries []models.CatalogEntry) (string, error) {
	templateData := struct {
		Pages       [][]models.CatalogEntry
		GeneratedAt string
	}{
		Pages:       paginateEntries(entries),
		GeneratedAt: time.Now().Format("2006-01-02"),
	}

	templatePath := filepath.Join("templates", "catalog.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// CompilePDF renders the requested products through the internal render
// route and prints them to PDF with headless Chrome. Returns the PDF bytes
// and the ids that did not resolve to products.
func (s *CatalogService) CompilePDF(ctx context.Context, productIDs []string) ([]byte, []string, error) {
	// Resolve missing ids up front so the response can report them even
	// though Chrome renders from the route. Only the product rows are
	// needed here; images are fetched once, by the render route.
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, nil, err
	}
	missing := missingIDs(productIDs, products)

	renderToken, err := s.auth.IssueRenderToken()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue render token: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, compileTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath := s.detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/catalog/render?ids=%s&token=%s",
		s.baseURL, url.QueryEscape(strings.Join(productIDs, ",")), url.QueryEscape(renderToken))

	var pdfBuf []byte

	// 210mm = 794px at 96 DPI
	err = chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 5000), // Large height to show all pages
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		// Wait for fonts and inlined images to settle
		chromedp.Evaluate(`
			(function() {
				return Promise.all([
					document.fonts.ready,
					Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
						return new Promise((resolve) => {
							if (img.complete) { resolve(); return; }
							const timeout = setTimeout(() => resolve(), 5000);
							img.onload = () => { clearTimeout(timeout); resolve(); };
							img.onerror = () => { clearTimeout(timeout); resolve(); };
						});
					}))
				]);
			})();
		`, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm = 8.27" x 11.69"
			// PrintToPDF handles page breaks via CSS page-break-after
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, missing, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✓ Catalog PDF compiled: %d products, %d missing, %d bytes", len(productIDs)-len(missing), len(missing), len(pdfBuf))
	return pdfBuf, missing, nil
}
