package server

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	renders        *prometheus.CounterVec
	renderDuration prometheus.Histogram
	requests       *prometheus.CounterVec
}

func newMetrics(registry prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launchdash",
			Name:      "renders_total",
			Help:      "Render events by outcome (empty, non_empty or error).",
		}, []string{"outcome"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "launchdash",
			Name:      "render_duration_seconds",
			Help:      "Time spent handling one render event.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launchdash",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}

	for _, collector := range []prometheus.Collector{m.renders, m.renderDuration, m.requests} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("registering metrics : %w", err)
		}
	}
	return m, nil
}
