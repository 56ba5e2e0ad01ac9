package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method", "status_code"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status_code"},
	)
)

var (
	OrderAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_attempts_total",
			Help: "Total number of order submission attempts",
		},
		[]string{"payment_method"},
	)

	OrderSuccessTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_success_total",
			Help: "Total number of successfully placed orders",
		},
		[]string{"payment_method"},
	)

	OrderFailureTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_failure_total",
			Help: "Total number of failed order submissions",
		},
		[]string{"payment_method", "reason"},
	)

	OrderTotalAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_amount_total",
			Help: "Cumulative order value in rupees",
		},
		[]string{"payment_method"},
	)

	CouponApplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coupon_applications_total",
			Help: "Total number of coupon applications",
		},
		[]string{"result"},
	)

	PaymentVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_verifications_total",
			Help: "Total number of payment verification attempts",
		},
		[]string{"result"},
	)

	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Total number of cart mutations",
		},
		[]string{"operation"},
	)
)

var (
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"query_type", "table"},
	)

	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

var (
	RedisCommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_command_duration_seconds",
			Help:    "Duration of Redis commands in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"command"},
	)
)

func TimeDBQuery(queryType, table string) func() {
	start := time.Now()
	return func() {
		duration := time.Since(start).Seconds()
		DBQueryDuration.WithLabelValues(queryType, table).Observe(duration)
	}
}

func RecordOrderAttempt(paymentMethod string) {
	OrderAttemptsTotal.WithLabelValues(paymentMethod).Inc()
}

func RecordOrderSuccess(paymentMethod string, total float64) {
	OrderSuccessTotal.WithLabelValues(paymentMethod).Inc()
	OrderTotalAmount.WithLabelValues(paymentMethod).Add(total)
}

func RecordOrderFailure(paymentMethod, reason string) {
	OrderFailureTotal.WithLabelValues(paymentMethod, reason).Inc()
}

func RecordCouponApplication(result string) {
	CouponApplicationsTotal.WithLabelValues(result).Inc()
}

func RecordPaymentVerification(result string) {
	PaymentVerificationsTotal.WithLabelValues(result).Inc()
}

func RecordCartMutation(operation string) {
	CartMutationsTotal.WithLabelValues(operation).Inc()
}
