package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	PurchasesTotal        *prometheus.CounterVec
	PurchaseLatency       prometheus.Histogram
	ReserveLatency        prometheus.Histogram
	ReservationsFailed    *prometheus.CounterVec
	CompensationsTotal    *prometheus.CounterVec
	ResolutionsTotal      *prometheus.CounterVec
	LiabilitiesTotal      prometheus.Counter
	ReservationsSwept     prometheus.Counter
	LedgerEntriesTotal    *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestsTotal     *prometheus.CounterVec
	IdempotentReplayTotal prometheus.Counter
}

// NewMetrics registers every collector on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PurchasesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "purchases_total",
			Help: "Purchase attempts by outcome",
		}, []string{"result"}),
		PurchaseLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "purchase_latency_seconds",
			Help:    "End to end latency of the purchase saga",
			Buckets: prometheus.DefBuckets,
		}),
		ReserveLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "inventory_reserve_latency_seconds",
			Help:    "Latency of inventory reservation operations",
			Buckets: prometheus.DefBuckets,
		}),
		ReservationsFailed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "inventory_reservations_failed_total",
			Help: "Total number of failed inventory reservations",
		}, []string{"reason"}),
		CompensationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "saga_compensations_total",
			Help: "Compensating actions run by the purchase saga",
		}, []string{"step", "outcome"}),
		ResolutionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "order_resolutions_total",
			Help: "Refund and dispute resolutions applied",
		}, []string{"decision"}),
		LiabilitiesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "ledger_liabilities_total",
			Help: "Clawbacks that could not be fully collected",
		}),
		ReservationsSwept: f.NewCounter(prometheus.CounterOpts{
			Name: "reservations_swept_total",
			Help: "Orphaned reservations released by the sweeper",
		}),
		LedgerEntriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_entries_total",
			Help: "Ledger entries written by kind",
		}, []string{"kind"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		IdempotentReplayTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "http_idempotent_replays_total",
			Help: "Responses served from the idempotency cache",
		}),
	}
}

func (m *Metrics) ObservePurchase(result string, started time.Time) {
	if m == nil {
		return
	}
	m.PurchasesTotal.WithLabelValues(result).Inc()
	m.PurchaseLatency.Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveReserve(started time.Time, failure string) {
	if m == nil {
		return
	}
	m.ReserveLatency.Observe(time.Since(started).Seconds())
	if failure != "" {
		m.ReservationsFailed.WithLabelValues(failure).Inc()
	}
}

func (m *Metrics) Compensation(step string, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	m.CompensationsTotal.WithLabelValues(step, outcome).Inc()
}

func (m *Metrics) Resolution(decision string) {
	if m == nil {
		return
	}
	m.ResolutionsTotal.WithLabelValues(decision).Inc()
}

func (m *Metrics) Liability() {
	if m == nil {
		return
	}
	m.LiabilitiesTotal.Inc()
}

func (m *Metrics) Swept(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ReservationsSwept.Add(float64(n))
}

func (m *Metrics) LedgerEntry(kind string) {
	if m == nil {
		return
	}
	m.LedgerEntriesTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveHTTP(method, path, status string, started time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(started).Seconds())
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (m *Metrics) IdempotentReplay() {
	if m == nil {
		return
	}
	m.IdempotentReplayTotal.Inc()
}
