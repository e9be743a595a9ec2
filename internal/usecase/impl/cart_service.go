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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// AddToCart merges a product into the session cart. The product is resolved
// first; an unknown id fails before the cart is touched.
func (srv *cartService) AddToCart(ctx context.Context, sessionID string, productID int64, quantity int) (*entity.Cart, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("add to cart rejected")
		}

		return nil, errors.Wrap(err, "failed to resolve product for cart")
	}

	cart, err := srv.cartRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.Add(product, quantity)

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		srv.logger.Error("Failed to save cart", slog.String("sessionID", sessionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// ViewCart returns the cart's lines and computed totals.
func (srv *cartService) ViewCart(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	lines := cart.Lines
	if lines == nil {
		lines = []entity.CartLine{}
	}

	return &usecase.CartView{
		Lines:  lines,
		Totals: cart.Totals(),
	}, nil
}

// ClearCart drops the session's cart.
func (srv *cartService) ClearCart(ctx context.Context, sessionID string) error {
	if err := srv.cartRepo.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
