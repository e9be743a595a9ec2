package repository

import (
	"context"
	"errors"

	"congo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for durable order persistence.
type OrderRepository interface {
	// Create persists an order together with all of its lines.
	// Callers that need all-or-nothing semantics must run it inside
	// TransactionManager.Execute.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its lines.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}
