package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedSelection is a named, ordered subset of products used to compile a
// PDF catalog excerpt
type SavedSelection struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ProductIDs []string  `json:"productIds,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SelectionCreateRequest carries the body of a selection create
type SelectionCreateRequest struct {
	Name       string   `json:"name"`
	ProductIDs []string `json:"productIds"`
}

// SelectionUpdateRequest carries the body of a selection update. A non-nil
// ProductIDs fully replaces the prior ordered list.
type SelectionUpdateRequest struct {
	Name       *string   `json:"name,omitempty"`
	ProductIDs *[]string `json:"productIds,omitempty"`
}
