package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the engine's collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	LedgerDeltas        *prometheus.CounterVec
	Transfers           *prometheus.CounterVec
	Issuances           *prometheus.CounterVec
	ReorderTransitions  *prometheus.CounterVec
	AutomaticReorders   *prometheus.CounterVec
	LockAcquireDuration prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LedgerDeltas: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kit_inventory",
			Name:      "ledger_deltas_total",
			Help:      "Ledger delta applications by movement type and result.",
		}, []string{"movement_type", "result"}),
		Transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kit_inventory",
			Name:      "transfers_total",
			Help:      "Transfers by final status.",
		}, []string{"status"}),
		Issuances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kit_inventory",
			Name:      "issuances_total",
			Help:      "Issuance attempts by result.",
		}, []string{"result"}),
		ReorderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kit_inventory",
			Name:      "reorder_transitions_total",
			Help:      "Reorder request transitions by target status.",
		}, []string{"status"}),
		AutomaticReorders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kit_inventory",
			Name:      "automatic_reorders_total",
			Help:      "Automatic reorder requests raised by priority.",
		}, []string{"priority"}),
		LockAcquireDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kit_inventory",
			Name:      "lock_acquire_seconds",
			Help:      "Time spent waiting for per-record locks.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		}),
	}
	if reg != nil {
		reg.MustRegister(m.LedgerDeltas, m.Transfers, m.Issuances, m.ReorderTransitions, m.AutomaticReorders, m.LockAcquireDuration)
	}
	return m
}

func (m *Metrics) LedgerDelta(movementType, result string) {
	if m == nil {
		return
	}
	m.LedgerDeltas.WithLabelValues(movementType, result).Inc()
}

func (m *Metrics) Transfer(status string) {
	if m == nil {
		return
	}
	m.Transfers.WithLabelValues(status).Inc()
}

func (m *Metrics) Issuance(result string) {
	if m == nil {
		return
	}
	m.Issuances.WithLabelValues(result).Inc()
}

func (m *Metrics) ReorderTransition(status string) {
	if m == nil {
		return
	}
	m.ReorderTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) AutomaticReorder(priority string) {
	if m == nil {
		return
	}
	m.AutomaticReorders.WithLabelValues(priority).Inc()
}

func (m *Metrics) ObserveLockWait(seconds float64) {
	if m == nil {
		return
	}
	m.LockAcquireDuration.Observe(seconds)
}
