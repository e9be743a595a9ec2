// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"congo/internal/domain/entity"
	domainerrors "congo/internal/domain/errors"
	"congo/internal/domain/repository"
	"congo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// ListProducts returns the catalog, optionally filtered by a name substring.
func (srv *catalogService) ListProducts(ctx context.Context, search string) ([]*entity.Product, error) {
	products, err := srv.productRepo.Search(ctx, search)
	if err != nil {
		srv.logger.Error("Failed to search products", slog.String("search", search), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// GetProduct returns a single product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		srv.logger.Error("Failed to load product", slog.Int64("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}
