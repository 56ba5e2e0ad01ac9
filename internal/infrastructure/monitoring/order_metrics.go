package monitoring

// OrderMetrics scopes the order counters to a single submission attempt.
type OrderMetrics struct {
	paymentMethod string
}

func NewOrderMetrics(paymentMethod string) *OrderMetrics {
	return &OrderMetrics{
		paymentMethod: paymentMethod,
	}
}

func (m *OrderMetrics) RecordAttempt() {
	RecordOrderAttempt(m.paymentMethod)
}

func (m *OrderMetrics) RecordSuccess(total float64) {
	RecordOrderSuccess(m.paymentMethod, total)
}

func (m *OrderMetrics) RecordFailure(reason string) {
	RecordOrderFailure(m.paymentMethod, reason)
}
