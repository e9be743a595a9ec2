package usecase

import (
	"context"

	"congo/internal/domain/entity"
)

// CartView is the cart page payload: the ordered lines plus display totals.
type CartView struct {
	Lines  []entity.CartLine `json:"lines"`
	Totals entity.CartTotals `json:"totals"`
}

// CartUsecase exposes session cart operations.
type CartUsecase interface {
	// AddToCart merges a product into the session cart, snapshotting its
	// current name and price. Unknown products fail without mutating the cart.
	AddToCart(ctx context.Context, sessionID string, productID int64, quantity int) (*entity.Cart, error)

	// ViewCart returns the cart's lines and computed totals. A session
	// without a cart gets the zero state.
	ViewCart(ctx context.Context, sessionID string) (*CartView, error)

	// ClearCart drops the session's cart. Used on logout.
	ClearCart(ctx context.Context, sessionID string) error
}
