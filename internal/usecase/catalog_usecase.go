// Package usecase defines the application's business operations as interfaces,
// together with their input and output DTOs. Implementations live in impl.
package usecase

import (
	"context"

	"congo/internal/domain/entity"
)

// CatalogUsecase exposes read-only product browsing.
type CatalogUsecase interface {
	// ListProducts returns the catalog, optionally filtered by a substring
	// match on the product name.
	ListProducts(ctx context.Context, search string) ([]*entity.Product, error)

	// GetProduct returns a single product by id.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
}
