package generator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderNumberGenerator struct{}

func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{}
}

func (g *OrderNumberGenerator) GenerateOrderID() string {
	return uuid.NewString()
}

// GenerateOrderNumber returns the human-facing order reference, e.g.
// ORD-20260901-a1b2c3d4.
func (g *OrderNumberGenerator) GenerateOrderNumber(now time.Time) string {
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), uuid.NewString()[:8])
	}

	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), hex.EncodeToString(randomBytes))
}

// GenerateReceipt returns the receipt identifier passed to the payment
// gateway when creating a hosted-payment order.
func (g *OrderNumberGenerator) GenerateReceipt() string {
	return fmt.Sprintf("rcpt_%s", uuid.NewString()[:18])
}
