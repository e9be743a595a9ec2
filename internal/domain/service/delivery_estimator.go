package service

import "time"

// DeliveryEstimator produces the delivery date shown on an order
// confirmation. The estimate is a placeholder drawn from a fixed day range,
// not a logistics computation; the randomness source is injected so tests
// can seed it.
type DeliveryEstimator interface {
	// Estimate returns the expected delivery date for an order placed at
	// the given time.
	Estimate(placedAt time.Time) time.Time
}
