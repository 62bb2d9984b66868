package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/linear-regression/internal/model"
)

// Metrics tracks the training progress on its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// New creates and registers the training metrics.
func New() *Metrics {
	p := NewPrometheusMetrics()
	registry := prometheus.NewRegistry()
	registry.MustRegister(p.Steps, p.Loss, p.Params)
	return &Metrics{
		registry:   registry,
		prometheus: p,
	}
}

// Observe records a training step.
func (m *Metrics) Observe(loss float64, params model.Params) {
	m.prometheus.Steps.Inc()
	m.prometheus.Loss.Set(loss)
	m.prometheus.Params.WithLabelValues(params.Slope.Name).Set(params.Slope.Value)
	m.prometheus.Params.WithLabelValues(params.Intercept.Name).Set(params.Intercept.Value)
}

// Registry returns the registry holding the training metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile writes the current metrics in the text exposition format
// e.g. for the node exporter textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	err := prometheus.WriteToTextfile(path, m.registry)
	if err != nil {
		return fmt.Errorf("could not write metrics to '%s': %w", path, err)
	}
	log.Info().Str("path", path).Msg("metrics written")
	return nil
}
