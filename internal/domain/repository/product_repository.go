package repository

import (
	"context"
	"errors"

	"congo/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines read access to the pre-seeded catalog.
type ProductRepository interface {
	// Search returns products whose name contains the query substring,
	// in id order. An empty query returns the whole catalog.
	Search(ctx context.Context, query string) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
}
