package use_cases

import (
	"context"
	"time"

	"github.com/mithaikart/storefront-service/internal/application/ports"
	"github.com/mithaikart/storefront-service/internal/domain/catalog"
	"github.com/mithaikart/storefront-service/internal/domain/coupon"
	domainErrors "github.com/mithaikart/storefront-service/internal/domain/errors"
	"github.com/mithaikart/storefront-service/internal/domain/order"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

const productCacheTTL = 5 * time.Minute

// CheckoutUseCase derives an order draft from the stored cart. Every
// monetary figure is recomputed here; nothing priced by the client is
// trusted.
type CheckoutUseCase struct {
	cartStore   ports.CartStore
	catalogRepo ports.CatalogRepository
	cache       ports.ProductCache
	coupons     []coupon.Coupon
	pricing     order.Pricing
	log         *logger.Logger
}

func NewCheckoutUseCase(
	cartStore ports.CartStore,
	catalogRepo ports.CatalogRepository,
	cache ports.ProductCache,
	coupons []coupon.Coupon,
	pricing order.Pricing,
	log *logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartStore:   cartStore,
		catalogRepo: catalogRepo,
		cache:       cache,
		coupons:     coupons,
		pricing:     pricing,
		log:         log,
	}
}

func (uc *CheckoutUseCase) Coupons() []coupon.Coupon {
	return uc.coupons
}

// BuildDraft hydrates the cart, resolves every entry against the catalog and
// computes subtotal, surcharges, discount and total.
func (uc *CheckoutUseCase) BuildDraft(ctx context.Context, cartID, couponCode string, req order.SpecialRequirements) (*order.Draft, error) {
	c, err := uc.cartStore.Load(ctx, cartID)
	if err != nil {
		uc.log.Error("Failed to load cart", "cart_id", cartID, "error", err)
		return nil, err
	}

	if c.IsEmpty() {
		return nil, domainErrors.ErrCartEmpty
	}

	ids := make([]string, 0, c.Len())
	for _, entry := range c.Entries() {
		ids = append(ids, entry.ProductID)
	}

	products, err := uc.resolveProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	return order.BuildDraft(c, products, couponCode, uc.coupons, req, uc.pricing)
}

// Subtotal prices the current cart without coupon or fees, for coupon
// pre-validation.
func (uc *CheckoutUseCase) Subtotal(ctx context.Context, cartID string) (float64, error) {
	draft, err := uc.BuildDraft(ctx, cartID, "", order.SpecialRequirements{})
	if err != nil {
		return 0, err
	}
	return draft.Subtotal, nil
}

func (uc *CheckoutUseCase) resolveProducts(ctx context.Context, ids []string) (map[string]*catalog.Product, error) {
	products := make(map[string]*catalog.Product, len(ids))
	missing := make([]string, 0)

	for _, id := range ids {
		product, err := uc.cache.GetProduct(ctx, id)
		if err != nil {
			uc.log.Warn("Product cache read failed", "product_id", id, "error", err)
		}
		if product != nil {
			products[id] = product
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		fetched, err := uc.catalogRepo.GetProductsByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}

		for _, id := range missing {
			product, ok := fetched[id]
			if !ok {
				return nil, domainErrors.ErrProductNotFound
			}
			products[id] = product

			if cacheErr := uc.cache.SetProduct(ctx, product, productCacheTTL); cacheErr != nil {
				uc.log.Warn("Product cache write failed", "product_id", id, "error", cacheErr)
			}
		}
	}

	return products, nil
}
