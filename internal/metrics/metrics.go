package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for household evaluations and the HTTP API.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	// Households evaluated, by outcome ("ok", "invalid")
	HouseholdsEvaluated *prometheus.CounterVec

	// Children offered to a family, by result ("accepted", "rejected")
	ChildrenAdded *prometheus.CounterVec

	// Writes dropped by an age gate, by gate ("job", "spouse")
	AgeGateRejections *prometheus.CounterVec

	// Currency conversions by source and target
	Conversions *prometheus.CounterVec

	// HTTP request latency by route and status
	RequestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance registered on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HouseholdsEvaluated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "familyfinance_households_evaluated_total",
			Help: "Total household evaluations by outcome",
		}, []string{"outcome"}),

		ChildrenAdded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "familyfinance_children_added_total",
			Help: "Total children offered to a family by result",
		}, []string{"result"}),

		AgeGateRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "familyfinance_age_gate_rejections_total",
			Help: "Total assignments silently dropped by an age gate",
		}, []string{"gate"}),

		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "familyfinance_currency_conversions_total",
			Help: "Total currency conversions by source and target currency",
		}, []string{"from", "to"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "familyfinance_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and status code",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"route", "status"}),
	}
}

// IncrementHouseholdsEvaluated records a household evaluation outcome
func (m *Metrics) IncrementHouseholdsEvaluated(outcome string) {
	if m != nil {
		m.HouseholdsEvaluated.WithLabelValues(outcome).Inc()
	}
}

// IncrementChildAdded records whether a child was accepted into a family
func (m *Metrics) IncrementChildAdded(accepted bool) {
	if m == nil {
		return
	}
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.ChildrenAdded.WithLabelValues(result).Inc()
}

// IncrementAgeGateRejection records a dropped job or spouse assignment
func (m *Metrics) IncrementAgeGateRejection(gate string) {
	if m != nil {
		m.AgeGateRejections.WithLabelValues(gate).Inc()
	}
}

// IncrementConversion records a currency conversion
func (m *Metrics) IncrementConversion(from, to string) {
	if m != nil {
		m.Conversions.WithLabelValues(from, to).Inc()
	}
}

// ObserveRequestDuration records how long an HTTP request took
func (m *Metrics) ObserveRequestDuration(route, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, status).Observe(d.Seconds())
	}
}
