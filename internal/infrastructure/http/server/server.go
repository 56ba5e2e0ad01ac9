package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mithaikart/storefront-service/internal/application/commands"
	"github.com/mithaikart/storefront-service/internal/application/use_cases"
	"github.com/mithaikart/storefront-service/internal/config"
	"github.com/mithaikart/storefront-service/internal/domain/order"
	"github.com/mithaikart/storefront-service/internal/infrastructure/http/handlers"
	"github.com/mithaikart/storefront-service/internal/infrastructure/notification"
	"github.com/mithaikart/storefront-service/internal/infrastructure/payment/razorpay"
	"github.com/mithaikart/storefront-service/internal/infrastructure/persistence/postgres"
	"github.com/mithaikart/storefront-service/internal/infrastructure/persistence/redis"
	"github.com/mithaikart/storefront-service/internal/pkg/clock"
	"github.com/mithaikart/storefront-service/internal/pkg/generator"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

type Server struct {
	server         *http.Server
	logger         *logger.Logger
	adminKeyHash   string
	healthHandler  *handlers.HealthHandler
	catalogHandler *handlers.CatalogHandler
	cartHandler    *handlers.CartHandler
	couponHandler  *handlers.CouponHandler
	orderHandler   *handlers.OrderHandler
	adminHandler   *handlers.AdminHandler
}

func NewServer(cfg *config.Config, conn *postgres.Connection, redisConn *redis.Connection, log *logger.Logger) *Server {
	catalogRepo := postgres.NewCatalogRepository(conn)
	orderRepo := postgres.NewOrderRepository(conn)

	cartStore := redis.NewCartStore(redisConn, log)
	catalogCache := redis.NewCatalogCache(redisConn, log)

	gateway := razorpay.NewClient(cfg.Razorpay, log)
	notifier := notification.NewEmailNotifier(cfg.SMTP, log)

	gen := generator.NewOrderNumberGenerator()
	clk := clock.NewRealClock()

	pricing := order.Pricing{
		DeliveryFee: cfg.Pricing.DeliveryFee,
		Surcharges: order.Surcharges{
			ColdPacking:     cfg.Pricing.ColdPackingSurcharge,
			GiftWrap:        cfg.Pricing.GiftWrapSurcharge,
			FragileHandling: cfg.Pricing.FragileHandlingSurcharge,
		},
	}

	checkoutUseCase := use_cases.NewCheckoutUseCase(
		cartStore,
		catalogRepo,
		catalogCache,
		cfg.Coupons,
		pricing,
		log,
	)

	placeOrder := commands.NewPlaceOrderHandler(checkoutUseCase, orderRepo, cartStore, notifier, gen, clk, log)
	paymentOrder := commands.NewCreatePaymentOrderHandler(checkoutUseCase, orderRepo, gateway, gen, clk, log)
	verifyPayment := commands.NewVerifyPaymentHandler(orderRepo, cartStore, gateway, notifier, log)
	applyCoupon := commands.NewApplyCouponHandler(checkoutUseCase, log)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		server:         server,
		logger:         log,
		adminKeyHash:   cfg.Admin.APIKeyHash,
		healthHandler:  handlers.NewHealthHandler(conn.GetDB(), redisConn.GetClient(), log),
		catalogHandler: handlers.NewCatalogHandler(catalogRepo, catalogCache, log),
		cartHandler:    handlers.NewCartHandler(cartStore, log),
		couponHandler:  handlers.NewCouponHandler(applyCoupon, log),
		orderHandler:   handlers.NewOrderHandler(placeOrder, paymentOrder, verifyPayment, log),
		adminHandler:   handlers.NewAdminHandler(catalogRepo, orderRepo, catalogCache, log),
	}
}

func (s *Server) ListenAndServe() error {
	s.server.Handler = s.setupRoutes()

	s.logger.Info("Starting HTTP server", "address", s.server.Addr)

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
