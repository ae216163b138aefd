// Package metrics exposes Prometheus collectors for the guest list.
//
// A nil *Metrics is valid and records nothing, so the guest core can run
// without a registry in tests.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "guestlist"

// Metrics groups the collectors updated by the guest core.
type Metrics struct {
	guests         prometheus.Gauge
	rejections     *prometheus.CounterVec
	snapshotWrites *prometheus.CounterVec
	registry       *prometheus.Registry
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		guests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "guests",
			Help:      "Number of guests currently on the list.",
		}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_rejections_total",
			Help:      "Guest drafts rejected by validation, by reason.",
		}, []string{"reason"}),
		snapshotWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_writes_total",
			Help:      "Guest list snapshot writes, by result.",
		}, []string{"result"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SetGuests records the current list size.
func (m *Metrics) SetGuests(n int) {
	if m == nil {
		return
	}
	m.guests.Set(float64(n))
}

// ObserveRejection counts one rejected draft.
func (m *Metrics) ObserveRejection(reason string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(reason).Inc()
}

// ObserveSnapshotWrite counts one snapshot write attempt.
func (m *Metrics) ObserveSnapshotWrite(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.snapshotWrites.WithLabelValues(result).Inc()
}
