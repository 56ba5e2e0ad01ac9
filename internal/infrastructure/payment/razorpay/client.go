package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/mithaikart/storefront-service/internal/application/ports"
	"github.com/mithaikart/storefront-service/internal/config"
	domainErrors "github.com/mithaikart/storefront-service/internal/domain/errors"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

// Client talks to the Razorpay Orders API. Amounts cross the wire in paise.
type Client struct {
	httpClient *http.Client
	keyID      string
	keySecret  string
	baseURL    string
	currency   string
	logger     *logger.Logger
}

func NewClient(cfg config.RazorpayConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		baseURL:   cfg.BaseURL,
		currency:  cfg.Currency,
		logger:    log,
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

func (c *Client) CreatePaymentOrder(ctx context.Context, amount float64, receipt string) (*ports.PaymentOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   toPaise(amount),
		Currency: c.currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Razorpay order request failed", "receipt", receipt, "error", err)
		return nil, domainErrors.ErrPaymentGatewayFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Razorpay order request rejected",
			"receipt", receipt,
			"status", resp.StatusCode,
		)
		return nil, fmt.Errorf("%w: gateway returned status %d", domainErrors.ErrPaymentGatewayFailed, resp.StatusCode)
	}

	var orderResp createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResp); err != nil {
		return nil, domainErrors.ErrPaymentGatewayFailed
	}

	return &ports.PaymentOrder{
		ID:       orderResp.ID,
		Amount:   orderResp.Amount,
		Currency: orderResp.Currency,
		Receipt:  orderResp.Receipt,
	}, nil
}

// VerifyPayment checks the widget callback signature against the key secret.
func (c *Client) VerifyPayment(confirmation ports.PaymentConfirmation) error {
	if !VerifySignature(confirmation.PaymentOrderID, confirmation.PaymentID, confirmation.Signature, c.keySecret) {
		return domainErrors.ErrPaymentNotVerified
	}
	return nil
}

func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
