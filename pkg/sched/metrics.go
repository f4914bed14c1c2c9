package sched

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the scheduler's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "recreate").
	Namespace string

	// Subsystem is the metrics subsystem (default: "sched").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for mount duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the scheduler metrics.
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

// WithBuckets sets the mount duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "recreate",
		Subsystem: "sched",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the scheduler's Prometheus metrics. A nil *Metrics is
// valid and records nothing.
//
// Metrics collected:
//   - recreate_sched_fibers_processed_total: fibers processed
//   - recreate_sched_idle_slices_total: idle slices granted to the work loop
//   - recreate_sched_mounts_total: mount passes started
//   - recreate_sched_mount_errors_total: mount passes aborted by host errors
//   - recreate_sched_mount_duration_seconds: completed pass duration
type Metrics struct {
	fibersProcessed prometheus.Counter
	idleSlices      prometheus.Counter
	mounts          prometheus.Counter
	mountErrors     prometheus.Counter
	mountDuration   prometheus.Histogram
}

// NewMetrics creates and registers the scheduler metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		fibersProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fibers_processed_total",
			Help:        "Total number of fibers processed",
			ConstLabels: config.ConstLabels,
		}),

		idleSlices: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "idle_slices_total",
			Help:        "Total number of idle slices granted to the work loop",
			ConstLabels: config.ConstLabels,
		}),

		mounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounts_total",
			Help:        "Total number of mount passes started",
			ConstLabels: config.ConstLabels,
		}),

		mountErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mount_errors_total",
			Help:        "Total number of mount passes aborted by host errors",
			ConstLabels: config.ConstLabels,
		}),

		mountDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mount_duration_seconds",
			Help:        "Wall-clock duration of completed mount passes",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

func (m *Metrics) fiberProcessed() {
	if m != nil {
		m.fibersProcessed.Inc()
	}
}

func (m *Metrics) sliceGranted() {
	if m != nil {
		m.idleSlices.Inc()
	}
}

func (m *Metrics) mountStarted() {
	if m != nil {
		m.mounts.Inc()
	}
}

func (m *Metrics) mountFailed() {
	if m != nil {
		m.mountErrors.Inc()
	}
}

func (m *Metrics) mountCompleted(elapsed time.Duration) {
	if m != nil {
		m.mountDuration.Observe(elapsed.Seconds())
	}
}
