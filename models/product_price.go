package models

import "github.com/google/uuid"

// Price tier types
const (
	PriceTierRetail    = "retail"
	PriceTierWholesale = "wholesale"
	PriceTierClearance = "clearance"
)

// ValidPriceTiers is the set of accepted price tier values
var ValidPriceTiers = map[string]bool{
	PriceTierRetail:    true,
	PriceTierWholesale: true,
	PriceTierClearance: true,
}

// ProductPrice represents a per-tier price in integer cents. Display is
// derived for responses, not stored.
type ProductPrice struct {
	ID        uuid.UUID `json:"id"`
	ProductID string    `json:"productId"`
	Tier      string    `json:"tier"`
	Cents     int       `json:"cents"`
	Currency  string    `json:"currency"`
	Display   string    `json:"display,omitempty"`
}

// PriceUpsertRequest carries the body of a price tier upsert
type PriceUpsertRequest struct {
	Cents    int    `json:"cents"`
	Currency string `json:"currency"`
}
