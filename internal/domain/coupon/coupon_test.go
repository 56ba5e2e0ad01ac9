package coupon

import (
	"errors"
	"testing"

	domainErrors "github.com/mithaikart/storefront-service/internal/domain/errors"
)

func testCatalog() []Coupon {
	return []Coupon{
		{
			Code:           "SWEETFREE",
			Type:           DiscountFixed,
			Amount:         100,
			MinOrderAmount: 500,
		},
		{
			Code:        "WELCOME10",
			Type:        DiscountPercentage,
			Rate:        0.10,
			MaxDiscount: 200,
		},
	}
}

func TestEvaluateUnknownCode(t *testing.T) {
	for _, subtotal := range []float64{0, 100, 10000} {
		result := Evaluate("FOO123", subtotal, testCatalog())
		if result.Applied() {
			t.Fatalf("unknown code applied at subtotal %.0f", subtotal)
		}
		if !errors.Is(result.Rejection.Err, domainErrors.ErrInvalidCouponCode) {
			t.Errorf("rejection = %v, want ErrInvalidCouponCode", result.Rejection.Err)
		}
	}
}

func TestEvaluateFixedBelowMinimum(t *testing.T) {
	result := Evaluate("SWEETFREE", 400, testCatalog())

	if result.Applied() {
		t.Fatal("coupon applied below its minimum")
	}
	if !errors.Is(result.Rejection.Err, domainErrors.ErrCouponBelowMinimum) {
		t.Errorf("rejection = %v, want ErrCouponBelowMinimum", result.Rejection.Err)
	}
	if result.Rejection.MinOrderAmount != 500 {
		t.Errorf("MinOrderAmount = %.2f, want 500", result.Rejection.MinOrderAmount)
	}
	if !errors.Is(result.Rejection.Reason(), domainErrors.ErrCouponBelowMinimum) {
		t.Error("Reason() must still match the sentinel with errors.Is")
	}
}

func TestEvaluateFixedAboveMinimum(t *testing.T) {
	result := Evaluate("SWEETFREE", 600, testCatalog())

	if !result.Applied() {
		t.Fatalf("coupon rejected: %v", result.Rejection.Err)
	}
	if result.Discount != 100 {
		t.Errorf("discount = %.2f, want 100", result.Discount)
	}
}

func TestEvaluatePercentage(t *testing.T) {
	cases := []struct {
		subtotal float64
		want     float64
	}{
		{1000, 100},
		{3000, 200}, // capped
		{100, 10},
	}

	for _, tc := range cases {
		result := Evaluate("WELCOME10", tc.subtotal, testCatalog())
		if !result.Applied() {
			t.Fatalf("subtotal %.0f: rejected: %v", tc.subtotal, result.Rejection.Err)
		}
		if result.Discount != tc.want {
			t.Errorf("subtotal %.0f: discount = %.2f, want %.2f", tc.subtotal, result.Discount, tc.want)
		}
	}
}

func TestEvaluateCanonicalizesCode(t *testing.T) {
	for _, code := range []string{"sweetfree", "  SWEETFREE  ", "SweetFree"} {
		result := Evaluate(code, 600, testCatalog())
		if !result.Applied() {
			t.Errorf("code %q not matched after canonicalization", code)
		}
	}
}

func TestEvaluateFixedNotClampedToSubtotal(t *testing.T) {
	catalog := []Coupon{{Code: "BIG", Type: DiscountFixed, Amount: 100}}

	result := Evaluate("BIG", 50, catalog)
	if !result.Applied() {
		t.Fatalf("coupon rejected: %v", result.Rejection.Err)
	}
	if result.Discount != 100 {
		t.Errorf("discount = %.2f, want the full 100 even past the subtotal", result.Discount)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	catalog := testCatalog()

	first := Evaluate("WELCOME10", 1500, catalog)
	second := Evaluate("WELCOME10", 1500, catalog)

	if first.Discount != second.Discount {
		t.Errorf("repeated evaluation diverged: %.2f vs %.2f", first.Discount, second.Discount)
	}
}
