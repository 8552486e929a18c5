// Package metrics expone contadores Prometheus del servicio.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los contadores del servicio sobre un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests    *prometheus.CounterVec
	GatewayErrors   *prometheus.CounterVec
	RateLimited     prometheus.Counter
	ScoresRecorded  prometheus.Counter
	CritiquesServed *prometheus.CounterVec
}

// New crea el set de metricas registrado en un registry aislado.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "critiquelab",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		GatewayErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "critiquelab",
			Name:      "gateway_errors_total",
			Help:      "LLM gateway failures by kind (rate_limited, quota, parse, other).",
		}, []string{"kind"}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "critiquelab",
			Name:      "requests_rate_limited_total",
			Help:      "Requests rejected by the fixed-window rate limiter.",
		}),
		ScoresRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "critiquelab",
			Name:      "scores_recorded_total",
			Help:      "ScoreRecords persisted.",
		}),
		CritiquesServed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "critiquelab",
			Name:      "critiques_served_total",
			Help:      "Critiques served by persona.",
		}, []string{"persona"}),
	}
}

// Handler devuelve el handler HTTP del endpoint /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
