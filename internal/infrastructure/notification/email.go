package notification

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/mithaikart/storefront-service/internal/config"
	"github.com/mithaikart/storefront-service/internal/domain/order"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

// EmailNotifier sends order confirmations over SMTP. With no SMTP
// configuration it degrades to logging only, so checkout never depends on a
// mail server being reachable.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger *logger.Logger
}

func NewEmailNotifier(cfg config.SMTPConfig, log *logger.Logger) *EmailNotifier {
	if cfg.Host == "" || cfg.User == "" {
		log.Info("SMTP not configured, order confirmation emails disabled")
		return &EmailNotifier{
			logger: log,
		}
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
		logger: log,
	}
}

func (n *EmailNotifier) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	if n.dialer == nil {
		n.logger.Info("Skipping confirmation email, SMTP disabled", "order_number", o.OrderNumber)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", o.Address.Email)
	m.SetHeader("Subject", fmt.Sprintf("Order %s confirmed", o.OrderNumber))
	m.SetBody("text/html", confirmationBody(o))

	return n.dialer.DialAndSend(m)
}

func confirmationBody(o *order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>Thank you for your order, %s!</h2>", o.Address.FullName)
	fmt.Fprintf(&b, "<p>Order number: <strong>%s</strong></p>", o.OrderNumber)
	b.WriteString("<ul>")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "<li>%s × %d — ₹%.2f</li>", item.Name, item.Quantity, item.LineTotal)
	}
	b.WriteString("</ul>")

	if o.Discount > 0 {
		fmt.Fprintf(&b, "<p>Discount: −₹%.2f</p>", o.Discount)
	}
	fmt.Fprintf(&b, "<p>Delivery: ₹%.2f</p>", o.DeliveryFee+o.SurchargeTotal)
	fmt.Fprintf(&b, "<p><strong>Total payable: ₹%.2f</strong></p>", o.Total)

	if o.PaymentMethod == order.PaymentCOD {
		b.WriteString("<p>Payment: cash on delivery.</p>")
	} else {
		b.WriteString("<p>Payment received online.</p>")
	}

	return b.String()
}
