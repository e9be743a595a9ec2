// Package cartstore provides session cart store implementations. Carts are
// transient session state, so they live in a key-value store (in-process or
// Redis) rather than in the relational schema.
package cartstore

import (
	"context"
	"sync"
	"time"

	"congo/internal/domain/entity"
	"congo/internal/domain/repository"
)

const janitorInterval = 10 * time.Minute

type memoryEntry struct {
	cart      *entity.Cart
	expiresAt time.Time
}

// memoryStore is an in-process cart store guarded by a mutex. Entries expire
// after the configured TTL; an abandoned cart is simply forgotten.
type memoryStore struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	stop      chan struct{}
	closeOnce sync.Once
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore(ttl time.Duration) repository.CartRepository {
	store := &memoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
	}

	if ttl > 0 {
		go store.janitor()
	}

	return store
}

// Close stops the janitor goroutine. Safe to call more than once.
func (s *memoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
	})

	return nil
}

// Find returns the session's cart, or a fresh empty cart when none exists.
func (s *memoryStore) Find(_ context.Context, sessionID string) (*entity.Cart, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok || s.expired(entry) {
		return entity.NewCart(sessionID), nil
	}

	// Return a copy so callers cannot mutate the stored cart without Save.
	return copyCart(entry.cart), nil
}

// Save stores the cart under its session id. Last write wins.
func (s *memoryStore) Save(_ context.Context, cart *entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[cart.SessionID] = memoryEntry{
		cart:      copyCart(cart),
		expiresAt: s.now().Add(s.ttl),
	}

	return nil
}

// Delete removes the session's cart. Absent carts are a no-op.
func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)

	return nil
}

func (s *memoryStore) expired(entry memoryEntry) bool {
	return s.ttl > 0 && s.now().After(entry.expiresAt)
}

func (s *memoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *memoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sessionID, entry := range s.entries {
		if s.expired(entry) {
			delete(s.entries, sessionID)
		}
	}
}

func copyCart(cart *entity.Cart) *entity.Cart {
	cloned := &entity.Cart{SessionID: cart.SessionID}
	if cart.Lines != nil {
		cloned.Lines = make([]entity.CartLine, len(cart.Lines))
		copy(cloned.Lines, cart.Lines)
	}

	return cloned
}
