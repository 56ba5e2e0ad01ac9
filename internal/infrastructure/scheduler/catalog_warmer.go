package scheduler

import (
	"context"
	"time"

	"github.com/mithaikart/storefront-service/internal/application/ports"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

const warmListLimit = 500

// CatalogWarmer keeps the product list cache populated so storefront reads
// rarely hit postgres cold.
type CatalogWarmer struct {
	catalogRepo ports.CatalogRepository
	cache       ports.ProductCache
	logger      *logger.Logger
	interval    time.Duration
	stopChan    chan struct{}
}

func NewCatalogWarmer(
	catalogRepo ports.CatalogRepository,
	cache ports.ProductCache,
	logger *logger.Logger,
	interval time.Duration,
) *CatalogWarmer {
	return &CatalogWarmer{
		catalogRepo: catalogRepo,
		cache:       cache,
		logger:      logger,
		interval:    interval,
		stopChan:    make(chan struct{}),
	}
}

func (w *CatalogWarmer) Start(ctx context.Context) {
	w.logger.Info("Starting catalog cache warmer", "interval", w.interval.String())

	if err := w.warm(ctx); err != nil {
		w.logger.Error("Initial catalog warm failed", "error", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Catalog cache warmer stopped")
			return
		case <-w.stopChan:
			w.logger.Info("Catalog cache warmer stopped")
			return
		case <-ticker.C:
			if err := w.warm(ctx); err != nil {
				w.logger.Error("Catalog warm failed", "error", err)
			}
		}
	}
}

func (w *CatalogWarmer) Stop() {
	close(w.stopChan)
}

func (w *CatalogWarmer) warm(ctx context.Context) error {
	products, err := w.catalogRepo.ListProducts(ctx, warmListLimit, 0)
	if err != nil {
		return err
	}

	if err := w.cache.SetProductList(ctx, products, 2*w.interval); err != nil {
		return err
	}

	w.logger.Debug("Catalog cache warmed", "products", len(products))
	return nil
}
