package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a durable record of a completed checkout. Immutable once created.
type Order struct {
	ID         uuid.UUID       // The Global Unique Identifier (GUID) for the order.
	UserID     uuid.UUID       // The account that placed the order.
	Address    string          // Flattened shipping address at checkout time.
	TotalPrice decimal.Decimal // Tax-inclusive total, recomputed server-side at checkout.
	CreatedAt  time.Time       // Timestamp of order placement.
	Lines      []OrderLine     // Snapshot of the cart at checkout time.
}

// OrderLine is one purchased item on an order. Immutable once created.
type OrderLine struct {
	OrderID   uuid.UUID
	ProductID int64
	Quantity  int
}

// OrderFromCart materializes an order from a cart snapshot. The total is
// recomputed from the cart's current lines; a client-supplied total is never
// trusted.
func OrderFromCart(userID uuid.UUID, cart *Cart, address Address) *Order {
	order := &Order{
		UserID:     userID,
		Address:    address.Flatten(),
		TotalPrice: cart.Totals().GrandTotal,
	}

	for _, line := range cart.Lines {
		order.Lines = append(order.Lines, OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return order
}
