package app

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "quotebook"

// Token rejection reasons.
const (
	rejectLength  = "length"
	rejectUnknown = "unknown"
)

// Metrics counts what the paginator does. A nil *Metrics records nothing.
type Metrics struct {
	refreshes       prometheus.Counter
	pagesServed     prometheus.Counter
	tokenRejections *prometheus.CounterVec
	snapshotQuotes  prometheus.Gauge
}

// NewMetrics creates the paginator metrics and registers them on reg.
// A nil reg leaves them unregistered, which tests use.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "paginator",
			Name:      "refreshes_total",
			Help:      "Snapshots reloaded from the store.",
		}),
		pagesServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "paginator",
			Name:      "pages_served_total",
			Help:      "Pages returned by the list endpoint.",
		}),
		tokenRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "paginator",
			Name:      "token_rejections_total",
			Help:      "Page tokens rejected, by reason.",
		}, []string{"reason"}),
		snapshotQuotes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "paginator",
			Name:      "snapshot_quotes",
			Help:      "Quotes held by the current snapshot.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.refreshes, m.pagesServed, m.tokenRejections, m.snapshotQuotes)
	}

	return m
}

func (m *Metrics) refreshed(quotes int) {
	if m == nil {
		return
	}
	m.refreshes.Inc()
	m.snapshotQuotes.Set(float64(quotes))
}

func (m *Metrics) served() {
	if m == nil {
		return
	}
	m.pagesServed.Inc()
}

func (m *Metrics) rejected(reason string) {
	if m == nil {
		return
	}
	m.tokenRejections.WithLabelValues(reason).Inc()
}
