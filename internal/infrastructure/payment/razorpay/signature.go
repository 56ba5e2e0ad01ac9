package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayload computes the hex HMAC-SHA256 Razorpay uses for payment
// confirmations: the signed message is "<order_id>|<payment_id>".
func SignPayload(paymentOrderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(paymentOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature recomputes the signature and compares in constant time.
func VerifySignature(paymentOrderID, paymentID, signature, secret string) bool {
	expected := SignPayload(paymentOrderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
