package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures notifier metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "notifier").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures notifier metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics counts notifications by kind. Custom kinds share the "custom"
// label value.
type Metrics struct {
	shown   *prometheus.CounterVec
	removed *prometheus.CounterVec
	active  prometheus.Gauge
}

// NewMetrics registers notifier metrics. Registering twice on the same
// registry panics, as with any promauto collector.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "notifier",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		shown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "notifications_shown_total",
			Help:        "Total number of notifications attached to the document",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		removed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "notifications_removed_total",
			Help:        "Total number of notifications removed, by reason",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "reason"}),

		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "notifications_active",
			Help:        "Number of notifications currently attached",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) recordShown(k Kind) {
	if m == nil {
		return
	}
	m.shown.WithLabelValues(k.metricLabel()).Inc()
	m.active.Inc()
}

func (m *Metrics) recordRemoved(k Kind, reason RemoveReason) {
	if m == nil {
		return
	}
	m.removed.WithLabelValues(k.metricLabel(), reason.String()).Inc()
	m.active.Dec()
}
