package ports

import (
	"context"
	"time"

	"github.com/mithaikart/storefront-service/internal/domain/catalog"
)

type CatalogRepository interface {
	GetProductByID(ctx context.Context, id string) (*catalog.Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) (map[string]*catalog.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]*catalog.Product, error)
	CreateProduct(ctx context.Context, product *catalog.Product) error
	UpdateProduct(ctx context.Context, product *catalog.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// ProductCache fronts the catalog repository for read paths.
type ProductCache interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
	SetProduct(ctx context.Context, product *catalog.Product, expiration time.Duration) error
	GetProductList(ctx context.Context) ([]*catalog.Product, error)
	SetProductList(ctx context.Context, products []*catalog.Product, expiration time.Duration) error
	InvalidateProduct(ctx context.Context, id string) error
	InvalidateProductList(ctx context.Context) error
}
