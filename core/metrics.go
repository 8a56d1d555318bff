package core

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry
	rendered *prometheus.CounterVec
	bytes    *prometheus.HistogramVec
	notFound prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ogimage",
			Name:      "cards_rendered_total",
			Help:      "Cards rendered, by template.",
		}, []string{"template"}),
		bytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ogimage",
			Name:      "card_bytes",
			Help:      "Size of rendered card bodies before compression.",
			Buckets:   prometheus.ExponentialBuckets(1024, 2, 6),
		}, []string{"template"}),
		notFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ogimage",
			Name:      "not_found_total",
			Help:      "Requests that matched no card route.",
		}),
	}
	m.registry.MustRegister(m.rendered, m.bytes, m.notFound)
	return m
}

// ObserveRender is safe to call on a nil *Metrics.
func (m *Metrics) ObserveRender(kind string, size int) {
	if m == nil {
		return
	}
	m.rendered.WithLabelValues(kind).Inc()
	m.bytes.WithLabelValues(kind).Observe(float64(size))
}

func (m *Metrics) ObserveNotFound() {
	if m == nil {
		return
	}
	m.notFound.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
