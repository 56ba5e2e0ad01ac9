package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/mithaikart/storefront-service/internal/domain/cart"
	"github.com/mithaikart/storefront-service/internal/infrastructure/monitoring"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

// Carts live for 30 days past the last mutation.
const cartTTL = 30 * 24 * time.Hour

// CartStore keeps each cart as a JSON blob under cart:{id}. Every mutation
// rewrites the blob, so a process restart loses nothing. A blob that fails
// to parse hydrates as an empty cart; a corrupt cart is never fatal.
type CartStore struct {
	client *redis.Client
	logger *logger.Logger
}

func NewCartStore(conn *Connection, log *logger.Logger) *CartStore {
	client := monitoring.InstrumentRedisClient(conn.GetClient())

	return &CartStore{
		client: client,
		logger: log,
	}
}

func cartKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}

func (s *CartStore) Load(ctx context.Context, cartID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(cartID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return cart.NewCart(), nil
		}
		return nil, err
	}

	c := cart.Decode(data)
	if c.IsEmpty() && len(data) > 2 {
		s.logger.Warn("Stored cart did not parse, treating as empty", "cart_id", cartID)
	}

	return c, nil
}

func (s *CartStore) Get(ctx context.Context, cartID, productID string) (int, error) {
	c, err := s.Load(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return c.Get(productID), nil
}

func (s *CartStore) Set(ctx context.Context, cartID, productID string, quantity int) error {
	c, err := s.Load(ctx, cartID)
	if err != nil {
		return err
	}

	c.Set(productID, quantity)
	return s.save(ctx, cartID, c)
}

func (s *CartStore) Clear(ctx context.Context, cartID string) error {
	return s.client.Del(ctx, cartKey(cartID)).Err()
}

func (s *CartStore) IsEmpty(ctx context.Context, cartID string) (bool, error) {
	c, err := s.Load(ctx, cartID)
	if err != nil {
		return false, err
	}
	return c.IsEmpty(), nil
}

func (s *CartStore) save(ctx context.Context, cartID string, c *cart.Cart) error {
	if c.IsEmpty() {
		return s.client.Del(ctx, cartKey(cartID)).Err()
	}

	data, err := c.Encode()
	if err != nil {
		return err
	}

	return s.client.Set(ctx, cartKey(cartID), data, cartTTL).Err()
}
