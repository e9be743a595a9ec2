// Package shipping provides the delivery date estimator used on order
// confirmations.
package shipping

import (
	"math/rand"
	"sync"
	"time"

	"congo/config"
	"congo/internal/domain/service"
)

// randomEstimator draws a delivery window uniformly from a fixed day range.
// This is a placeholder shown to the shopper, not a logistics computation:
// the system has no carrier data to compute a real shipping time from.
type randomEstimator struct {
	minDays int
	maxDays int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomEstimator builds an estimator from config using the given
// randomness source. Tests pass a seeded source for determinism.
func NewRandomEstimator(cfg *config.Config, source rand.Source) service.DeliveryEstimator {
	minDays, maxDays := 2, 10
	if cfg != nil && cfg.Checkout != nil {
		if cfg.Checkout.DeliveryMinDays > 0 {
			minDays = cfg.Checkout.DeliveryMinDays
		}
		if cfg.Checkout.DeliveryMaxDays >= minDays {
			maxDays = cfg.Checkout.DeliveryMaxDays
		} else {
			maxDays = minDays
		}
	}

	return &randomEstimator{
		minDays: minDays,
		maxDays: maxDays,
		rng:     rand.New(source),
	}
}

// NewEstimator is the Fx provider: a random estimator seeded from the clock.
func NewEstimator(cfg *config.Config) service.DeliveryEstimator {
	return NewRandomEstimator(cfg, rand.NewSource(time.Now().UnixNano()))
}

// Estimate returns placedAt plus a uniformly drawn number of days in
// [minDays, maxDays].
func (e *randomEstimator) Estimate(placedAt time.Time) time.Time {
	e.mu.Lock()
	days := e.minDays + e.rng.Intn(e.maxDays-e.minDays+1)
	e.mu.Unlock()

	return placedAt.AddDate(0, 0, days)
}
