package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mithaikart/storefront-service/internal/application/ports"
	"github.com/mithaikart/storefront-service/internal/domain/catalog"
	"github.com/mithaikart/storefront-service/internal/domain/order"
	"github.com/mithaikart/storefront-service/internal/infrastructure/http/response"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

type AdminHandler struct {
	catalogRepo ports.CatalogRepository
	orderRepo   ports.OrderRepository
	cache       ports.ProductCache
	logger      *logger.Logger
}

func NewAdminHandler(
	catalogRepo ports.CatalogRepository,
	orderRepo ports.OrderRepository,
	cache ports.ProductCache,
	logger *logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		cache:       cache,
		logger:      logger,
	}
}

type upsertProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	ImageURLs   []string `json:"image_urls"`
	Available   *bool    `json:"available"`
}

func (r upsertProductRequest) validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}
	if r.Price < 0 {
		errors["price"] = "price cannot be negative"
	}
	return errors
}

// HandleProducts serves POST /api/admin/products.
func (h *AdminHandler) HandleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	var req upsertProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid request body", err.Error())
		return
	}

	if validationErrors := req.validate(); len(validationErrors) > 0 {
		response.WriteValidationError(w, "Validation failed", validationErrors)
		return
	}

	product, err := catalog.NewProduct(uuid.NewString(), req.Name, req.Description, req.Category, req.Price, req.ImageURLs)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid product", err.Error())
		return
	}

	if err := h.catalogRepo.CreateProduct(ctx, product); err != nil {
		h.logger.Error("Failed to create product", "name", req.Name, "error", err)
		response.WriteDomainError(w, err)
		return
	}

	if err := h.cache.InvalidateProductList(ctx); err != nil {
		h.logger.Warn("Failed to invalidate product list cache", "error", err)
	}

	h.logger.Info("Product created", "product_id", product.ID, "name", product.Name)
	response.WriteJSON(w, http.StatusCreated, response.Success(product, "Product created"))
}

// HandleProductByID serves PUT and DELETE on /api/admin/products/{id}.
func (h *AdminHandler) HandleProductByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := strings.TrimPrefix(r.URL.Path, "/api/admin/products/")
	if id == "" {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"id": "product id is required",
		})
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req upsertProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid request body", err.Error())
			return
		}

		if validationErrors := req.validate(); len(validationErrors) > 0 {
			response.WriteValidationError(w, "Validation failed", validationErrors)
			return
		}

		product, err := h.catalogRepo.GetProductByID(ctx, id)
		if err != nil {
			response.WriteDomainError(w, err)
			return
		}

		product.Name = req.Name
		product.Description = req.Description
		product.Category = req.Category
		product.Price = req.Price
		product.ImageURLs = req.ImageURLs
		if req.Available != nil {
			product.Available = *req.Available
		}
		product.UpdatedAt = time.Now().UTC()

		if err := h.catalogRepo.UpdateProduct(ctx, product); err != nil {
			h.logger.Error("Failed to update product", "product_id", id, "error", err)
			response.WriteDomainError(w, err)
			return
		}

		if err := h.cache.InvalidateProduct(ctx, id); err != nil {
			h.logger.Warn("Failed to invalidate product cache", "product_id", id, "error", err)
		}

		response.WriteSuccess(w, product, "Product updated")

	case http.MethodDelete:
		if err := h.catalogRepo.DeleteProduct(ctx, id); err != nil {
			h.logger.Error("Failed to delete product", "product_id", id, "error", err)
			response.WriteDomainError(w, err)
			return
		}

		if err := h.cache.InvalidateProduct(ctx, id); err != nil {
			h.logger.Warn("Failed to invalidate product cache", "product_id", id, "error", err)
		}

		response.WriteSuccess(w, map[string]string{"id": id}, "Product deleted")

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// HandleListOrders serves GET /api/admin/orders.
func (h *AdminHandler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	limit := parseIntParam(r, "limit", 50)
	offset := parseIntParam(r, "offset", 0)

	orders, err := h.orderRepo.ListOrders(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list orders", "error", err)
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, orders)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// HandleOrderStatus serves PATCH /api/admin/orders/{id}/status.
func (h *AdminHandler) HandleOrderStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/admin/orders/")
	id := strings.TrimSuffix(path, "/status")
	if id == "" || id == path {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"id": "order id is required",
		})
		return
	}

	var req updateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid request body", err.Error())
		return
	}

	status := order.Status(req.Status)
	if !status.Valid() {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"status": "unknown order status",
		})
		return
	}

	if err := h.orderRepo.UpdateOrderStatus(r.Context(), id, status); err != nil {
		h.logger.Error("Failed to update order status", "order_id", id, "status", req.Status, "error", err)
		response.WriteDomainError(w, err)
		return
	}

	h.logger.Info("Order status updated", "order_id", id, "status", req.Status)
	response.WriteSuccess(w, map[string]string{"id": id, "status": req.Status}, "Order status updated")
}
