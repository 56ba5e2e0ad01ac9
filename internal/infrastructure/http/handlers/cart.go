package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mithaikart/storefront-service/internal/application/ports"
	"github.com/mithaikart/storefront-service/internal/infrastructure/http/response"
	"github.com/mithaikart/storefront-service/internal/infrastructure/monitoring"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

type CartHandler struct {
	cartStore ports.CartStore
	log       *logger.Logger
}

func NewCartHandler(cartStore ports.CartStore, log *logger.Logger) *CartHandler {
	return &CartHandler{
		cartStore: cartStore,
		log:       log,
	}
}

type cartResponse struct {
	CartID  string         `json:"cart_id"`
	Items   map[string]int `json:"items"`
	IsEmpty bool           `json:"is_empty"`
}

// HandleGetCart serves GET /api/cart?cart_id=...
func (h *CartHandler) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	cartID := r.URL.Query().Get("cart_id")
	if cartID == "" {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"cart_id": "cart_id is required",
		})
		return
	}

	c, err := h.cartStore.Load(r.Context(), cartID)
	if err != nil {
		h.log.Error("Failed to load cart", "cart_id", cartID, "error", err)
		response.WriteDomainError(w, err)
		return
	}

	items := make(map[string]int, c.Len())
	for _, entry := range c.Entries() {
		items[entry.ProductID] = entry.Quantity
	}

	response.WriteSuccess(w, cartResponse{
		CartID:  cartID,
		Items:   items,
		IsEmpty: c.IsEmpty(),
	})
}

type updateCartRequest struct {
	CartID    string `json:"cart_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// HandleUpdateCart serves POST /api/cart. A quantity of zero or less removes
// the entry.
func (h *CartHandler) HandleUpdateCart(w http.ResponseWriter, r *http.Request) {
	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid request body", err.Error())
		return
	}

	errors := make(map[string]string)
	if req.CartID == "" {
		errors["cart_id"] = "cart_id is required"
	}
	if req.ProductID == "" {
		errors["product_id"] = "product_id is required"
	}
	if len(errors) > 0 {
		response.WriteValidationError(w, "Validation failed", errors)
		return
	}

	if err := h.cartStore.Set(r.Context(), req.CartID, req.ProductID, req.Quantity); err != nil {
		h.log.Error("Failed to update cart",
			"cart_id", req.CartID,
			"product_id", req.ProductID,
			"error", err,
		)
		response.WriteDomainError(w, err)
		return
	}

	monitoring.RecordCartMutation("set")

	quantity, err := h.cartStore.Get(r.Context(), req.CartID, req.ProductID)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, map[string]interface{}{
		"cart_id":    req.CartID,
		"product_id": req.ProductID,
		"quantity":   quantity,
	})
}

type clearCartRequest struct {
	CartID string `json:"cart_id"`
}

// HandleClearCart serves POST /api/cart/clear.
func (h *CartHandler) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	var req clearCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid request body", err.Error())
		return
	}

	if req.CartID == "" {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"cart_id": "cart_id is required",
		})
		return
	}

	if err := h.cartStore.Clear(r.Context(), req.CartID); err != nil {
		h.log.Error("Failed to clear cart", "cart_id", req.CartID, "error", err)
		response.WriteDomainError(w, err)
		return
	}

	monitoring.RecordCartMutation("clear")
	response.WriteSuccess(w, map[string]string{"cart_id": req.CartID}, "Cart cleared")
}
