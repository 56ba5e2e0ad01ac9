package razorpay

import "testing"

func TestSignAndVerifyRoundTrip(t *testing.T) {
	secret := "test_secret"
	sig := SignPayload("order_N8FvUxcj", "pay_N8FwHqoZ", secret)

	if !VerifySignature("order_N8FvUxcj", "pay_N8FwHqoZ", sig, secret) {
		t.Error("freshly computed signature did not verify")
	}
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	secret := "test_secret"
	sig := SignPayload("order_N8FvUxcj", "pay_N8FwHqoZ", secret)

	cases := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		secret    string
	}{
		{"different order", "order_other", "pay_N8FwHqoZ", sig, secret},
		{"different payment", "order_N8FvUxcj", "pay_other", sig, secret},
		{"forged signature", "order_N8FvUxcj", "pay_N8FwHqoZ", "deadbeef", secret},
		{"wrong secret", "order_N8FvUxcj", "pay_N8FwHqoZ", sig, "other_secret"},
		{"empty signature", "order_N8FvUxcj", "pay_N8FwHqoZ", "", secret},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if VerifySignature(tc.orderID, tc.paymentID, tc.signature, tc.secret) {
				t.Error("tampered confirmation verified")
			}
		})
	}
}

func TestSignPayloadIsHex(t *testing.T) {
	sig := SignPayload("order_1", "pay_1", "s")

	if len(sig) != 64 {
		t.Fatalf("signature length = %d, want 64 hex chars", len(sig))
	}
	for _, r := range sig {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			t.Fatalf("unexpected character %q in signature", r)
		}
	}
}
