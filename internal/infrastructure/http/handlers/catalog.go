package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mithaikart/storefront-service/internal/application/ports"
	"github.com/mithaikart/storefront-service/internal/infrastructure/http/response"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

const listCacheTTL = 2 * time.Minute

type CatalogHandler struct {
	catalogRepo ports.CatalogRepository
	cache       ports.ProductCache
	log         *logger.Logger
}

func NewCatalogHandler(catalogRepo ports.CatalogRepository, cache ports.ProductCache, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogRepo: catalogRepo,
		cache:       cache,
		log:         log,
	}
}

// HandleListProducts serves GET /api/products.
func (h *CatalogHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cached, err := h.cache.GetProductList(r.Context())
	if err != nil {
		h.log.Warn("Product list cache read failed", "error", err)
	}
	if cached != nil {
		response.WriteSuccess(w, cached)
		return
	}

	limit := parseIntParam(r, "limit", 100)
	offset := parseIntParam(r, "offset", 0)

	products, err := h.catalogRepo.ListProducts(r.Context(), limit, offset)
	if err != nil {
		h.log.Error("Failed to list products", "error", err)
		response.WriteDomainError(w, err)
		return
	}

	if offset == 0 {
		if cacheErr := h.cache.SetProductList(r.Context(), products, listCacheTTL); cacheErr != nil {
			h.log.Warn("Product list cache write failed", "error", cacheErr)
		}
	}

	response.WriteSuccess(w, products)
}

// HandleGetProduct serves GET /api/products/{id}.
func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"id": "product id is required",
		})
		return
	}

	product, err := h.cache.GetProduct(r.Context(), id)
	if err != nil {
		h.log.Warn("Product cache read failed", "product_id", id, "error", err)
	}
	if product == nil {
		product, err = h.catalogRepo.GetProductByID(r.Context(), id)
		if err != nil {
			response.WriteDomainError(w, err)
			return
		}

		if cacheErr := h.cache.SetProduct(r.Context(), product, 5*time.Minute); cacheErr != nil {
			h.log.Warn("Product cache write failed", "product_id", id, "error", cacheErr)
		}
	}

	response.WriteSuccess(w, product)
}

func parseIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
