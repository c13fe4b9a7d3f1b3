package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// SaleMetrics contadores Prometheus de la caja
type SaleMetrics struct {
	sessionsOpened  *prometheus.CounterVec
	ordersSubmitted *prometheus.CounterVec
	saleAmount      *prometheus.CounterVec
	paymentsAdded   *prometheus.CounterVec
}

// NewSaleMetrics registra los contadores en el registry por defecto
func NewSaleMetrics() *SaleMetrics {
	return &SaleMetrics{
		sessionsOpened: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_sessions_opened_total",
			Help: "Sale sessions opened, by order type",
		}, []string{"order_type"}),
		ordersSubmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_orders_submitted_total",
			Help: "Order submissions, by order type and result",
		}, []string{"order_type", "result"}),
		saleAmount: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_sale_amount_total",
			Help: "Accumulated confirmed sale amount, by currency",
		}, []string{"currency"}),
		paymentsAdded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_payments_added_total",
			Help: "Payments registered against sessions, by method",
		}, []string{"method"}),
	}
}

// SessionOpened cuenta la apertura de una sesión
func (m *SaleMetrics) SessionOpened(orderType string) {
	m.sessionsOpened.WithLabelValues(orderType).Inc()
}

// OrderSubmitted cuenta el resultado de un submit ("confirmed" o "rejected")
func (m *SaleMetrics) OrderSubmitted(orderType, result string) {
	m.ordersSubmitted.WithLabelValues(orderType, result).Inc()
}

// SaleConfirmed acumula el monto de una venta confirmada
func (m *SaleMetrics) SaleConfirmed(currency string, amount decimal.Decimal) {
	f, _ := amount.Float64()
	m.saleAmount.WithLabelValues(currency).Add(f)
}

// PaymentAdded cuenta un pago registrado
func (m *SaleMetrics) PaymentAdded(method string) {
	m.paymentsAdded.WithLabelValues(method).Inc()
}
