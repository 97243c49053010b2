package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics covers the payment lifecycle end to end: creation,
// webhook processing and expiry.
type PaymentMetrics struct {
	PaymentsCreatedTotal       prometheus.CounterVec
	PaymentsCreatedAmountTotal prometheus.CounterVec
	PaymentCreationErrorsTotal prometheus.CounterVec

	WebhooksProcessedTotal    prometheus.CounterVec
	WebhookSignatureRejects   prometheus.Counter
	StatusTransitionsTotal    prometheus.CounterVec
	PaymentsFinishedTotal     prometheus.CounterVec
	OrdersExpiredTotal        prometheus.Counter

	GatewayCallDuration prometheus.HistogramVec
}

func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{
		PaymentsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_created_total",
				Help: "Total number of payment orders created",
			},
			[]string{"plan_id", "pay_currency"},
		),

		PaymentsCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_created_amount_total",
				Help: "Total settlement-currency amount of created payment orders",
			},
			[]string{"plan_id"},
		),

		PaymentCreationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_creation_errors_total",
				Help: "Payment creation failures by error type",
			},
			[]string{"error_type"},
		),

		WebhooksProcessedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_webhooks_processed_total",
				Help: "Webhook deliveries by processing outcome",
			},
			[]string{"outcome"},
		),

		WebhookSignatureRejects: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payment_webhook_signature_rejects_total",
				Help: "Webhook deliveries rejected for an invalid signature",
			},
		),

		StatusTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_status_transitions_total",
				Help: "Applied payment status transitions",
			},
			[]string{"from", "to"},
		),

		PaymentsFinishedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_finished_total",
				Help: "Payments that reached the finished status",
			},
			[]string{"plan_id"},
		),

		OrdersExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payment_orders_expired_total",
				Help: "Unpaid orders swept to expired after their TTL elapsed",
			},
		),

		GatewayCallDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_gateway_call_duration_seconds",
				Help:    "Duration of outbound gateway calls in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"outcome"},
		),
	}
}

func (m *PaymentMetrics) RecordPaymentCreated(planID, payCurrency string, amount float64) {
	m.PaymentsCreatedTotal.WithLabelValues(planID, payCurrency).Inc()
	m.PaymentsCreatedAmountTotal.WithLabelValues(planID).Add(amount)
}

func (m *PaymentMetrics) RecordCreationError(errorType string) {
	m.PaymentCreationErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *PaymentMetrics) RecordWebhook(outcome string) {
	m.WebhooksProcessedTotal.WithLabelValues(outcome).Inc()
}

func (m *PaymentMetrics) RecordSignatureReject() {
	m.WebhookSignatureRejects.Inc()
}

func (m *PaymentMetrics) RecordTransition(from, to string) {
	m.StatusTransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *PaymentMetrics) RecordFinished(planID string) {
	m.PaymentsFinishedTotal.WithLabelValues(planID).Inc()
}

func (m *PaymentMetrics) RecordExpired(count int) {
	m.OrdersExpiredTotal.Add(float64(count))
}

func (m *PaymentMetrics) RecordGatewayCall(outcome string, durationSeconds float64) {
	m.GatewayCallDuration.WithLabelValues(outcome).Observe(durationSeconds)
}
