// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog item available for purchase.
// Products are pre-seeded; this codebase never creates or updates them.
type Product struct {
	ID          int64           // The unique, immutable product identifier.
	Name        string          // The product's display name, matched by catalog search.
	Description string          // A short marketing description.
	Price       decimal.Decimal // Unit price. Never negative.
	Rating      *float64        // Optional average review rating.
	PictureURL  string          // Reference to the product image.
}
