package models

// CatalogEntry is a product prepared for rendering in the PDF catalog
type CatalogEntry struct {
	ID          string
	Name        string
	Description string
	Price       string
	SoldOut     bool
	Clearance   bool
	ImageDataURI string
}

// CompileRequest is the body of POST /admin/catalog/compile
type CompileRequest struct {
	ProductIDs []string `json:"productIds"`
}
