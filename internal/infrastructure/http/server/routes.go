package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/mithaikart/storefront-service/internal/infrastructure/http/middleware"
	"github.com/mithaikart/storefront-service/internal/infrastructure/monitoring"
)

func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	monitoring.RegisterMetricsEndpoint(mux)

	mux.HandleFunc("/health", s.healthHandler.HandleHealth())

	mux.HandleFunc("/api/products", s.catalogHandler.HandleListProducts)
	mux.HandleFunc("/api/products/", s.catalogHandler.HandleGetProduct)

	mux.HandleFunc("/api/cart", s.handleCartRoutes)
	mux.HandleFunc("/api/cart/clear", s.cartHandler.HandleClearCart)

	mux.HandleFunc("/api/coupon/apply", s.couponHandler.HandleApplyCoupon())

	mux.HandleFunc("/api/order/place", s.orderHandler.HandlePlaceOrder())
	mux.HandleFunc("/api/order/razorpay", s.orderHandler.HandleCreatePaymentOrder())
	mux.HandleFunc("/api/order/verifyRazorpay", s.orderHandler.HandleVerifyPayment())

	adminAuth := middleware.NewAdminAuthMiddleware(s.adminKeyHash, s.logger)
	mux.Handle("/api/admin/products", adminAuth(http.HandlerFunc(s.adminHandler.HandleProducts)))
	mux.Handle("/api/admin/products/", adminAuth(http.HandlerFunc(s.adminHandler.HandleProductByID)))
	mux.Handle("/api/admin/orders", adminAuth(http.HandlerFunc(s.adminHandler.HandleListOrders)))
	mux.Handle("/api/admin/orders/", adminAuth(http.HandlerFunc(s.handleAdminOrderRoutes)))

	handler := middleware.NewRecoveryMiddleware(s.logger)(mux)
	handler = middleware.NewLoggingMiddleware(s.logger)(handler)
	handler = monitoring.WrapHandler(handler)
	handler = s.corsMiddleware(handler)
	handler = s.timeoutMiddleware(handler)

	return handler
}

func (s *Server) handleCartRoutes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.cartHandler.HandleGetCart(w, r)
	case http.MethodPost:
		s.cartHandler.HandleUpdateCart(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleAdminOrderRoutes(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/status") {
		s.adminHandler.HandleOrderStatus(w, r)
		return
	}

	http.NotFound(w, r)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-CSRF-Token")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "300")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) timeoutMiddleware(next http.Handler) http.Handler {
	return http.TimeoutHandler(next, 60*time.Second, "Request timeout")
}
