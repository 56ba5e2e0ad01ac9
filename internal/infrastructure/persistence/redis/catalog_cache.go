package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/mithaikart/storefront-service/internal/domain/catalog"
	"github.com/mithaikart/storefront-service/internal/infrastructure/monitoring"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

const productListKey = "catalog:products"

// CatalogCache is a read-through cache for the product catalog. A cache miss
// or unparseable entry returns nil without error; callers fall back to the
// repository.
type CatalogCache struct {
	client *redis.Client
	logger *logger.Logger
}

func NewCatalogCache(conn *Connection, log *logger.Logger) *CatalogCache {
	client := monitoring.InstrumentRedisClient(conn.GetClient())

	return &CatalogCache{
		client: client,
		logger: log,
	}
}

func productKey(id string) string {
	return fmt.Sprintf("catalog:product:%s", id)
}

func (c *CatalogCache) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var product catalog.Product
	if err := json.Unmarshal(data, &product); err != nil {
		c.logger.Warn("Cached product did not parse, dropping", "product_id", id)
		c.client.Del(ctx, productKey(id))
		return nil, nil
	}

	return &product, nil
}

func (c *CatalogCache) SetProduct(ctx context.Context, product *catalog.Product, expiration time.Duration) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, productKey(product.ID), data, expiration).Err()
}

func (c *CatalogCache) GetProductList(ctx context.Context) ([]*catalog.Product, error) {
	data, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var products []*catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Warn("Cached product list did not parse, dropping")
		c.client.Del(ctx, productListKey)
		return nil, nil
	}

	return products, nil
}

func (c *CatalogCache) SetProductList(ctx context.Context, products []*catalog.Product, expiration time.Duration) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, productListKey, data, expiration).Err()
}

func (c *CatalogCache) InvalidateProduct(ctx context.Context, id string) error {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, productKey(id))
	pipe.Del(ctx, productListKey)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *CatalogCache) InvalidateProductList(ctx context.Context) error {
	return c.client.Del(ctx, productListKey).Err()
}
