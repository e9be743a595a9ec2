package cartstore

import (
	"context"
	"encoding/json"
	"time"

	"congo/config"
	"congo/internal/domain/entity"
	"congo/internal/domain/repository"
	"congo/internal/errors"

	"github.com/go-redis/redis/v8"
)

const cartKeyPrefix = "cart:"

// redisStore keeps session carts as JSON values in Redis with a TTL, so carts
// survive process restarts and can be shared by multiple instances.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore is the constructor for redisStore. It verifies connectivity
// before returning.
func NewRedisStore(ctx context.Context, cfg *config.RedisConfig, ttl time.Duration) (repository.CartRepository, error) {
	if cfg == nil {
		return nil, errors.New("redis cart backend selected but redis configuration is missing")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	return &redisStore{client: client, ttl: ttl}, nil
}

// Close releases the underlying Redis client.
func (s *redisStore) Close() error {
	return errors.Wrap(s.client.Close(), "failed to close redis client")
}

// Find returns the session's cart, or a fresh empty cart when none exists.
func (s *redisStore) Find(ctx context.Context, sessionID string) (*entity.Cart, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.NewCart(sessionID), nil
		}

		return nil, errors.Wrap(err, "failed to load cart from redis")
	}

	var cart entity.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, errors.Wrap(err, "failed to decode stored cart")
	}

	return &cart, nil
}

// Save stores the cart as a JSON value with the configured TTL. Last write wins.
func (s *redisStore) Save(ctx context.Context, cart *entity.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	if err := s.client.Set(ctx, cartKeyPrefix+cart.SessionID, data, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save cart to redis")
	}

	return nil
}

// Delete removes the session's cart. Absent carts are a no-op.
func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+sessionID).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cart from redis")
	}

	return nil
}
