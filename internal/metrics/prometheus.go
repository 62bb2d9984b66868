package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "linreg"

// Prometheus holds the prometheus collectors of a training run.
type Prometheus struct {
	Steps  prometheus.Counter
	Loss   prometheus.Gauge
	Params *prometheus.GaugeVec
}

// NewPrometheusMetrics creates the training collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Number of gradient descent steps applied.",
		}),
		Loss: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "loss",
			Help:      "Sum of squared errors before the latest step.",
		}),
		Params: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "param",
			Help:      "Current value of the model parameters.",
		}, []string{"name"}),
	}
}
