// Package metrics exposes PassForge counters on a dedicated Prometheus registry.
// No label ever carries a password, keyword or user identifier.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "passforge"

// Metrics holds the collectors recorded by the services.
type Metrics struct {
	registry       *prometheus.Registry
	generated      *prometheus.CounterVec
	failures       *prometheus.CounterVec
	strengthChecks *prometheus.CounterVec
}

// New creates a Metrics with its own registry, including Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passwords_generated_total",
			Help:      "Passwords generated, by strength label.",
		}, []string{"label"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_failures_total",
			Help:      "Password generation requests that failed, by reason.",
		}, []string{"reason"}),
		strengthChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strength_checks_total",
			Help:      "Standalone strength checks, by strength label.",
		}, []string{"label"}),
	}

	m.registry.MustRegister(
		m.generated,
		m.failures,
		m.strengthChecks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveGenerated counts a generated password.
func (m *Metrics) ObserveGenerated(label string) {
	m.generated.WithLabelValues(label).Inc()
}

// ObserveFailure counts a failed generation.
func (m *Metrics) ObserveFailure(reason string) {
	m.failures.WithLabelValues(reason).Inc()
}

// ObserveStrengthCheck counts a standalone strength check.
func (m *Metrics) ObserveStrengthCheck(label string) {
	m.strengthChecks.WithLabelValues(label).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
