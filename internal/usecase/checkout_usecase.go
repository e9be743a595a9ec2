package usecase

import (
	"context"

	"congo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderInput carries everything needed to materialize an order from a
// session cart. The cart itself is resolved server-side from SessionID; no
// price or total fields are accepted from the client.
type PlaceOrderInput struct {
	UserID      uuid.UUID
	SessionID   string
	Address     entity.Address
	SaveAddress bool
}

// PlaceOrderOutput is the order confirmation payload.
type PlaceOrderOutput struct {
	OrderID      uuid.UUID       `json:"order_id"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	DeliveryDate string          `json:"delivery_date"` // e.g. "Monday, January 02, 2006"
	QRCode       string          `json:"qr_code"`       // base64-encoded PNG
}

// CheckoutPrefill carries the saved address used to prepopulate the checkout form.
type CheckoutPrefill struct {
	Address entity.Address `json:"address"`
}

// CheckoutUsecase is the order materializer: it converts a non-empty session
// cart plus a shipping address into a persisted order.
type CheckoutUsecase interface {
	// GetCheckout returns the user's saved address for form prefill.
	GetCheckout(ctx context.Context, userID uuid.UUID) (*CheckoutPrefill, error)

	// PlaceOrder atomically persists the order and its lines, clears the
	// session cart and returns the confirmation. The total is recomputed
	// from the cart server-side. If SaveAddress is set the user's saved
	// address is overwritten before order placement; that write is
	// deliberately independent of the order transaction.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*PlaceOrderOutput, error)
}
