// Package delivery defines the contract implemented by every transport
// (HTTP today; others can join the same fx group).
package delivery

import "context"

// Delivery is a serving transport managed by the application lifecycle.
type Delivery interface {
	// Serve blocks while the transport accepts requests.
	Serve(ctx context.Context) error
}
