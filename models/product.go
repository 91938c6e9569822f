package models

import "time"

// Product represents a catalog product, keyed by its slug
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Clearance   bool      `json:"clearance"`
	SoldOut     bool      `json:"soldOut"`
	Hidden      bool      `json:"hidden"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductCreateRequest carries the fields accepted on product creation
type ProductCreateRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Clearance   bool   `json:"clearance"`
	SoldOut     bool   `json:"soldOut"`
	Hidden      bool   `json:"hidden"`
	Category    string `json:"category"`
}

// ProductUpdateRequest carries optional field updates. NewID, when set,
// renames the product (primary-key update cascading into images, prices
// and selection rows) and triggers image migration in the object store.
type ProductUpdateRequest struct {
	NewID       string  `json:"newId,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	Clearance   *bool   `json:"clearance,omitempty"`
	SoldOut     *bool   `json:"soldOut,omitempty"`
	Hidden      *bool   `json:"hidden,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// ProductFilterParams represents optional filter parameters for the public
// product listing
type ProductFilterParams struct {
	Query         string
	Category      string
	IncludeHidden bool
}
