package repository

import (
	"context"

	"congo/internal/domain/entity"
)

// CartRepository defines the session cart store. Carts are transient session
// state, not rows in the relational store, so this interface is implemented
// by key-value backends (in-memory, Redis) rather than by GORM.
type CartRepository interface {
	// Find returns the cart for a session. A session with no cart yet gets
	// a fresh empty cart, never an error.
	Find(ctx context.Context, sessionID string) (*entity.Cart, error)

	// Save stores the cart under its session id, overwriting any previous
	// value. Concurrent saves for the same session are last-write-wins.
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete removes the cart for a session. Deleting an absent cart is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
