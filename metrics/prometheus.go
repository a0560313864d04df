package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusCollector struct {
	registry  *prometheus.Registry
	uploads   *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

func NewPrometheusCollector(namespace string) *PrometheusCollector {
	p := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Storage writes by media kind and outcome.",
		}, []string{"kind", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_duration_seconds",
			Help:      "Duration of storage writes by media kind.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"kind"}),
	}

	p.registry.MustRegister(p.uploads, p.durations)

	return p
}

func (p *PrometheusCollector) ObserveUpload(ctx context.Context, kind string, outcome Outcome, duration time.Duration) {
	p.uploads.WithLabelValues(kind, string(outcome)).Inc()
	p.durations.WithLabelValues(kind).Observe(duration.Seconds())
}

func (p *PrometheusCollector) Registry() *prometheus.Registry {
	return p.registry
}

// WriteToTextfile dumps the registry in the node_exporter textfile format,
// which suits one-shot runs that are gone before any scrape.
func (p *PrometheusCollector) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
