package commands

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/mithaikart/storefront-service/internal/application/ports"
	"github.com/mithaikart/storefront-service/internal/application/use_cases"
	"github.com/mithaikart/storefront-service/internal/domain/cart"
	"github.com/mithaikart/storefront-service/internal/domain/catalog"
	"github.com/mithaikart/storefront-service/internal/domain/coupon"
	domainErrors "github.com/mithaikart/storefront-service/internal/domain/errors"
	"github.com/mithaikart/storefront-service/internal/domain/order"
	"github.com/mithaikart/storefront-service/internal/pkg/clock"
	"github.com/mithaikart/storefront-service/internal/pkg/generator"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

type fakeCartStore struct {
	carts      map[string]*cart.Cart
	loadCalls  int
	clearCalls int
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]*cart.Cart)}
}

func (s *fakeCartStore) Load(ctx context.Context, cartID string) (*cart.Cart, error) {
	s.loadCalls++
	c, ok := s.carts[cartID]
	if !ok {
		return cart.NewCart(), nil
	}
	return c, nil
}

func (s *fakeCartStore) Get(ctx context.Context, cartID, productID string) (int, error) {
	c, err := s.Load(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return c.Get(productID), nil
}

func (s *fakeCartStore) Set(ctx context.Context, cartID, productID string, quantity int) error {
	c, ok := s.carts[cartID]
	if !ok {
		c = cart.NewCart()
		s.carts[cartID] = c
	}
	c.Set(productID, quantity)
	return nil
}

func (s *fakeCartStore) Clear(ctx context.Context, cartID string) error {
	s.clearCalls++
	delete(s.carts, cartID)
	return nil
}

func (s *fakeCartStore) IsEmpty(ctx context.Context, cartID string) (bool, error) {
	c, ok := s.carts[cartID]
	return !ok || c.IsEmpty(), nil
}

type fakeCatalogRepo struct {
	products  map[string]*catalog.Product
	byIDCalls int
}

func (r *fakeCatalogRepo) GetProductByID(ctx context.Context, id string) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domainErrors.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeCatalogRepo) GetProductsByIDs(ctx context.Context, ids []string) (map[string]*catalog.Product, error) {
	r.byIDCalls++
	found := make(map[string]*catalog.Product)
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			found[id] = p
		}
	}
	return found, nil
}

func (r *fakeCatalogRepo) ListProducts(ctx context.Context, limit, offset int) ([]*catalog.Product, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) CreateProduct(ctx context.Context, product *catalog.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeCatalogRepo) UpdateProduct(ctx context.Context, product *catalog.Product) error {
	return nil
}

func (r *fakeCatalogRepo) DeleteProduct(ctx context.Context, id string) error {
	return nil
}

type fakeProductCache struct{}

func (c *fakeProductCache) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	return nil, nil
}

func (c *fakeProductCache) SetProduct(ctx context.Context, product *catalog.Product, expiration time.Duration) error {
	return nil
}

func (c *fakeProductCache) GetProductList(ctx context.Context) ([]*catalog.Product, error) {
	return nil, nil
}

func (c *fakeProductCache) SetProductList(ctx context.Context, products []*catalog.Product, expiration time.Duration) error {
	return nil
}

func (c *fakeProductCache) InvalidateProduct(ctx context.Context, id string) error { return nil }
func (c *fakeProductCache) InvalidateProductList(ctx context.Context) error        { return nil }

type fakeOrderRepo struct {
	orders        map[string]*order.Order
	createCalls   int
	markPaidCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*order.Order)}
}

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, o *order.Order) error {
	r.createCalls++
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, id string) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) GetOrderByPaymentOrderID(ctx context.Context, paymentOrderID string) (*order.Order, error) {
	for _, o := range r.orders {
		if o.PaymentOrderID == paymentOrderID {
			return o, nil
		}
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (r *fakeOrderRepo) ListOrders(ctx context.Context, limit, offset int) ([]*order.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, id string, status order.Status) error {
	o, ok := r.orders[id]
	if !ok {
		return domainErrors.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) MarkOrderPaid(ctx context.Context, id, paymentID string) error {
	r.markPaidCalls++
	o, ok := r.orders[id]
	if !ok {
		return domainErrors.ErrOrderNotFound
	}
	if o.PaymentID != "" {
		return domainErrors.ErrOrderAlreadyPaid
	}
	return o.MarkPaid(paymentID)
}

type fakeGateway struct {
	createCalls int
	verifyCalls int
	createErr   error
	verifyErr   error
}

func (g *fakeGateway) CreatePaymentOrder(ctx context.Context, amount float64, receipt string) (*ports.PaymentOrder, error) {
	g.createCalls++
	if g.createErr != nil {
		return nil, g.createErr
	}
	return &ports.PaymentOrder{
		ID:       "pay_order_1",
		Amount:   int64(amount * 100),
		Currency: "INR",
		Receipt:  receipt,
	}, nil
}

func (g *fakeGateway) VerifyPayment(confirmation ports.PaymentConfirmation) error {
	g.verifyCalls++
	return g.verifyErr
}

type testEnv struct {
	cartStore *fakeCartStore
	catalog   *fakeCatalogRepo
	orderRepo *fakeOrderRepo
	gateway   *fakeGateway
	checkout  *use_cases.CheckoutUseCase
	gen       *generator.OrderNumberGenerator
	clk       clock.Clock
	log       *logger.Logger
}

func newTestEnv() *testEnv {
	cartStore := newFakeCartStore()
	catalogRepo := &fakeCatalogRepo{products: map[string]*catalog.Product{
		"kaju-katli": {ID: "kaju-katli", Name: "Kaju Katli", Price: 100, Available: true},
		"motichoor":  {ID: "motichoor", Name: "Motichoor Laddu", Price: 250, Available: true},
	}}
	coupons := []coupon.Coupon{
		{Code: "SWEETFREE", Type: coupon.DiscountFixed, Amount: 100, MinOrderAmount: 500},
		{Code: "WELCOME10", Type: coupon.DiscountPercentage, Rate: 0.10, MaxDiscount: 200},
	}
	pricing := order.Pricing{
		DeliveryFee: 40,
		Surcharges:  order.Surcharges{ColdPacking: 30, GiftWrap: 25, FragileHandling: 20},
	}
	log := logger.NewLoggerWithOutput(io.Discard)

	return &testEnv{
		cartStore: cartStore,
		catalog:   catalogRepo,
		orderRepo: newFakeOrderRepo(),
		gateway:   &fakeGateway{},
		checkout:  use_cases.NewCheckoutUseCase(cartStore, catalogRepo, &fakeProductCache{}, coupons, pricing, log),
		gen:       generator.NewOrderNumberGenerator(),
		clk:       clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)),
		log:       log,
	}
}

func validRequest(cartID string) CheckoutRequest {
	return CheckoutRequest{
		CartID: cartID,
		Address: order.Address{
			FullName: "Asha Rao",
			Email:    "asha@example.com",
			Phone:    "9876543210",
			Street:   "12 MG Road",
			City:     "Bengaluru",
			State:    "Karnataka",
			PinCode:  "560001",
		},
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	env := newTestEnv()
	env.cartStore.Set(context.Background(), "cart-1", "kaju-katli", 2)

	handler := NewPlaceOrderHandler(env.checkout, env.orderRepo, env.cartStore, nil, env.gen, env.clk, env.log)

	resp, err := handler.Handle(context.Background(), PlaceOrderCommand{CheckoutRequest: validRequest("cart-1")})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if resp.State != StateSuccess {
		t.Errorf("state = %s, want %s", resp.State, StateSuccess)
	}
	if resp.Total != 240 {
		t.Errorf("total = %.2f, want 240", resp.Total)
	}
	if env.orderRepo.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", env.orderRepo.createCalls)
	}

	o, err := env.orderRepo.GetOrderByID(context.Background(), resp.OrderID)
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if o.PaymentMethod != order.PaymentCOD {
		t.Errorf("payment method = %s, want %s", o.PaymentMethod, order.PaymentCOD)
	}
	if o.Status != order.StatusPending {
		t.Errorf("status = %s, want %s", o.Status, order.StatusPending)
	}

	if env.cartStore.clearCalls != 1 {
		t.Errorf("clearCalls = %d, want 1", env.cartStore.clearCalls)
	}
	if empty, _ := env.cartStore.IsEmpty(context.Background(), "cart-1"); !empty {
		t.Error("cart not cleared after order")
	}
}

func TestPlaceOrderInvalidEmailStopsBeforeAnyCall(t *testing.T) {
	env := newTestEnv()
	env.cartStore.Set(context.Background(), "cart-1", "kaju-katli", 2)
	env.cartStore.loadCalls = 0

	handler := NewPlaceOrderHandler(env.checkout, env.orderRepo, env.cartStore, nil, env.gen, env.clk, env.log)

	req := validRequest("cart-1")
	req.Address.Email = "not-an-email"

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{CheckoutRequest: req})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if _, ok := vErr.Fields["email"]; !ok {
		t.Errorf("fields = %v, want email error", vErr.Fields)
	}

	if env.cartStore.loadCalls != 0 {
		t.Errorf("cart loaded %d times during validation failure, want 0", env.cartStore.loadCalls)
	}
	if env.orderRepo.createCalls != 0 {
		t.Errorf("order created during validation failure")
	}
	if env.cartStore.clearCalls != 0 {
		t.Errorf("cart cleared during validation failure")
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	env := newTestEnv()

	handler := NewPlaceOrderHandler(env.checkout, env.orderRepo, env.cartStore, nil, env.gen, env.clk, env.log)

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{CheckoutRequest: validRequest("cart-empty")})
	if !errors.Is(err, domainErrors.ErrCartEmpty) {
		t.Errorf("err = %v, want ErrCartEmpty", err)
	}
	if env.orderRepo.createCalls != 0 {
		t.Error("order created for empty cart")
	}
}

func TestPlaceOrderWithCoupon(t *testing.T) {
	env := newTestEnv()
	env.cartStore.Set(context.Background(), "cart-1", "motichoor", 2)
	env.cartStore.Set(context.Background(), "cart-1", "kaju-katli", 1)

	handler := NewPlaceOrderHandler(env.checkout, env.orderRepo, env.cartStore, nil, env.gen, env.clk, env.log)

	req := validRequest("cart-1")
	req.CouponCode = "SWEETFREE"

	resp, err := handler.Handle(context.Background(), PlaceOrderCommand{CheckoutRequest: req})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	// subtotal 600 + delivery 40 - discount 100
	if resp.Total != 540 {
		t.Errorf("total = %.2f, want 540", resp.Total)
	}
}

func TestCreatePaymentOrderSuccess(t *testing.T) {
	env := newTestEnv()
	env.cartStore.Set(context.Background(), "cart-1", "kaju-katli", 2)

	handler := NewCreatePaymentOrderHandler(env.checkout, env.orderRepo, env.gateway, env.gen, env.clk, env.log)

	resp, err := handler.Handle(context.Background(), CreatePaymentOrderCommand{CheckoutRequest: validRequest("cart-1")})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if resp.State != StateSubmitting {
		t.Errorf("state = %s, want %s", resp.State, StateSubmitting)
	}
	if resp.PaymentOrder == nil || resp.PaymentOrder.ID != "pay_order_1" {
		t.Fatalf("payment order = %+v, want pay_order_1", resp.PaymentOrder)
	}
	if resp.PaymentOrder.Amount != 24000 {
		t.Errorf("gateway amount = %d paise, want 24000", resp.PaymentOrder.Amount)
	}

	o, err := env.orderRepo.GetOrderByPaymentOrderID(context.Background(), "pay_order_1")
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if o.Status != order.StatusPaymentPending {
		t.Errorf("status = %s, want %s", o.Status, order.StatusPaymentPending)
	}

	// The cart must survive until the payment is verified.
	if env.cartStore.clearCalls != 0 {
		t.Error("cart cleared before payment verification")
	}
}

func TestCreatePaymentOrderGatewayFailure(t *testing.T) {
	env := newTestEnv()
	env.cartStore.Set(context.Background(), "cart-1", "kaju-katli", 2)
	env.gateway.createErr = errors.New("gateway timeout")

	handler := NewCreatePaymentOrderHandler(env.checkout, env.orderRepo, env.gateway, env.gen, env.clk, env.log)

	_, err := handler.Handle(context.Background(), CreatePaymentOrderCommand{CheckoutRequest: validRequest("cart-1")})
	if !errors.Is(err, domainErrors.ErrPaymentGatewayFailed) {
		t.Errorf("err = %v, want ErrPaymentGatewayFailed", err)
	}
	if env.orderRepo.createCalls != 0 {
		t.Error("order persisted despite gateway failure")
	}
	if empty, _ := env.cartStore.IsEmpty(context.Background(), "cart-1"); empty {
		t.Error("cart lost on gateway failure")
	}
}

func TestCreatePaymentOrderInvalidRequest(t *testing.T) {
	env := newTestEnv()

	handler := NewCreatePaymentOrderHandler(env.checkout, env.orderRepo, env.gateway, env.gen, env.clk, env.log)

	req := validRequest("cart-1")
	req.Address.PinCode = "56"

	_, err := handler.Handle(context.Background(), CreatePaymentOrderCommand{CheckoutRequest: req})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if env.gateway.createCalls != 0 {
		t.Error("gateway called during validation failure")
	}
}

func seedPaymentPendingOrder(t *testing.T, env *testEnv) *order.Order {
	t.Helper()

	env.cartStore.Set(context.Background(), "cart-1", "kaju-katli", 2)

	handler := NewCreatePaymentOrderHandler(env.checkout, env.orderRepo, env.gateway, env.gen, env.clk, env.log)
	resp, err := handler.Handle(context.Background(), CreatePaymentOrderCommand{CheckoutRequest: validRequest("cart-1")})
	if err != nil {
		t.Fatalf("seed payment order: %v", err)
	}

	o, err := env.orderRepo.GetOrderByID(context.Background(), resp.OrderID)
	if err != nil {
		t.Fatalf("seed order lookup: %v", err)
	}
	return o
}

func TestVerifyPaymentSuccess(t *testing.T) {
	env := newTestEnv()
	o := seedPaymentPendingOrder(t, env)

	handler := NewVerifyPaymentHandler(env.orderRepo, env.cartStore, env.gateway, nil, env.log)

	resp, err := handler.Handle(context.Background(), VerifyPaymentCommand{
		PaymentOrderID: o.PaymentOrderID,
		PaymentID:      "pay_abc",
		Signature:      "sig",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if resp.State != StateSuccess {
		t.Errorf("state = %s, want %s", resp.State, StateSuccess)
	}
	if env.orderRepo.markPaidCalls != 1 {
		t.Errorf("markPaidCalls = %d, want 1", env.orderRepo.markPaidCalls)
	}

	updated, _ := env.orderRepo.GetOrderByID(context.Background(), o.ID)
	if updated.Status != order.StatusConfirmed {
		t.Errorf("status = %s, want %s", updated.Status, order.StatusConfirmed)
	}
	if updated.PaymentID != "pay_abc" {
		t.Errorf("payment id = %q, want pay_abc", updated.PaymentID)
	}

	if empty, _ := env.cartStore.IsEmpty(context.Background(), "cart-1"); !empty {
		t.Error("cart not cleared after verified payment")
	}
}

func TestVerifyPaymentIdempotent(t *testing.T) {
	env := newTestEnv()
	o := seedPaymentPendingOrder(t, env)

	handler := NewVerifyPaymentHandler(env.orderRepo, env.cartStore, env.gateway, nil, env.log)

	cmd := VerifyPaymentCommand{
		PaymentOrderID: o.PaymentOrderID,
		PaymentID:      "pay_abc",
		Signature:      "sig",
	}

	if _, err := handler.Handle(context.Background(), cmd); err != nil {
		t.Fatalf("first verify: %v", err)
	}

	verifiesBefore := env.gateway.verifyCalls
	resp, err := handler.Handle(context.Background(), cmd)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if resp.State != StateSuccess {
		t.Errorf("state = %s, want %s", resp.State, StateSuccess)
	}
	if env.gateway.verifyCalls != verifiesBefore {
		t.Error("gateway re-verified an already paid order")
	}
	if env.orderRepo.markPaidCalls != 1 {
		t.Errorf("markPaidCalls = %d, want 1", env.orderRepo.markPaidCalls)
	}
}

func TestVerifyPaymentBadSignature(t *testing.T) {
	env := newTestEnv()
	o := seedPaymentPendingOrder(t, env)
	env.gateway.verifyErr = errors.New("signature mismatch")

	handler := NewVerifyPaymentHandler(env.orderRepo, env.cartStore, env.gateway, nil, env.log)

	_, err := handler.Handle(context.Background(), VerifyPaymentCommand{
		PaymentOrderID: o.PaymentOrderID,
		PaymentID:      "pay_abc",
		Signature:      "forged",
	})
	if !errors.Is(err, domainErrors.ErrPaymentNotVerified) {
		t.Errorf("err = %v, want ErrPaymentNotVerified", err)
	}

	updated, _ := env.orderRepo.GetOrderByID(context.Background(), o.ID)
	if updated.IsPaid() {
		t.Error("order marked paid despite failed verification")
	}
	if empty, _ := env.cartStore.IsEmpty(context.Background(), "cart-1"); empty {
		t.Error("cart cleared despite failed verification")
	}
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	env := newTestEnv()

	handler := NewVerifyPaymentHandler(env.orderRepo, env.cartStore, env.gateway, nil, env.log)

	_, err := handler.Handle(context.Background(), VerifyPaymentCommand{PaymentID: "pay_abc"})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if _, ok := vErr.Fields["razorpay_order_id"]; !ok {
		t.Errorf("fields = %v, want razorpay_order_id error", vErr.Fields)
	}
	if env.gateway.verifyCalls != 0 {
		t.Error("gateway called with incomplete confirmation")
	}
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	env := newTestEnv()

	handler := NewVerifyPaymentHandler(env.orderRepo, env.cartStore, env.gateway, nil, env.log)

	_, err := handler.Handle(context.Background(), VerifyPaymentCommand{
		PaymentOrderID: "pay_order_unknown",
		PaymentID:      "pay_abc",
		Signature:      "sig",
	})
	if !errors.Is(err, domainErrors.ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestApplyCouponSuccess(t *testing.T) {
	env := newTestEnv()
	env.cartStore.Set(context.Background(), "cart-1", "motichoor", 4)

	handler := NewApplyCouponHandler(env.checkout, env.log)

	resp, err := handler.Handle(context.Background(), ApplyCouponCommand{CartID: "cart-1", Code: "welcome10"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if resp.Code != "WELCOME10" {
		t.Errorf("code = %q, want WELCOME10", resp.Code)
	}
	if resp.Subtotal != 1000 {
		t.Errorf("subtotal = %.2f, want 1000", resp.Subtotal)
	}
	if resp.Discount != 100 {
		t.Errorf("discount = %.2f, want 100", resp.Discount)
	}
}

func TestApplyCouponBelowMinimum(t *testing.T) {
	env := newTestEnv()
	env.cartStore.Set(context.Background(), "cart-1", "kaju-katli", 2)

	handler := NewApplyCouponHandler(env.checkout, env.log)

	_, err := handler.Handle(context.Background(), ApplyCouponCommand{CartID: "cart-1", Code: "SWEETFREE"})
	if !errors.Is(err, domainErrors.ErrCouponBelowMinimum) {
		t.Errorf("err = %v, want ErrCouponBelowMinimum", err)
	}
}

func TestApplyCouponUnknownCode(t *testing.T) {
	env := newTestEnv()
	env.cartStore.Set(context.Background(), "cart-1", "kaju-katli", 2)

	handler := NewApplyCouponHandler(env.checkout, env.log)

	_, err := handler.Handle(context.Background(), ApplyCouponCommand{CartID: "cart-1", Code: "FOO123"})
	if !errors.Is(err, domainErrors.ErrInvalidCouponCode) {
		t.Errorf("err = %v, want ErrInvalidCouponCode", err)
	}
}
