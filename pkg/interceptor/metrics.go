package interceptor

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wayfare-dev/wayfare/pkg/nav"
)

// MetricsConfig configures the Prometheus metrics queue.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "wayfare").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for navigation duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics queue.
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

// WithBuckets sets the histogram buckets.
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
		Namespace: "wayfare",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// navMetrics holds the Prometheus metrics for navigation.
type navMetrics struct {
	navigationsTotal   *prometheus.CounterVec
	navigationDuration *prometheus.HistogramVec
	matchFailuresTotal prometheus.Counter
}

// globalNavMetrics guards against double registration on the default
// registerer when Metrics is constructed more than once.
var (
	globalNavMetrics   *navMetrics
	globalNavMetricsMu sync.Mutex
)

// initNavMetrics initializes the Prometheus metrics.
func initNavMetrics(config MetricsConfig) *navMetrics {
	factory := promauto.With(config.Registry)

	return &navMetrics{
		navigationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of navigations by path and status",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "status"}),

		navigationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_duration_seconds",
			Help:        "Navigation duration in seconds, interceptors included",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		matchFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "match_failures_total",
			Help:        "Total number of navigations that entered recovery unmatched",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Metrics creates a queue that records Prometheus metrics for every
// navigation passing through it.
//
// Metrics collected:
//   - wayfare_navigations_total: Counter of navigations by path and status
//   - wayfare_navigation_duration_seconds: Histogram of navigation duration
//   - wayfare_match_failures_total: Counter of unmatched navigations
//
// Example:
//
//	pipe := nav.New(table, engine, outlet,
//	    nav.WithQueues(interceptor.Metrics(interceptor.WithNamespace("myapp"))),
//	)
//
//	http.Handle("/metrics", promhttp.Handler())
func Metrics(opts ...MetricsOption) nav.Queue {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	var m *navMetrics
	if config.Registry == prometheus.DefaultRegisterer {
		globalNavMetricsMu.Lock()
		if globalNavMetrics == nil {
			globalNavMetrics = initNavMetrics(config)
		}
		m = globalNavMetrics
		globalNavMetricsMu.Unlock()
	} else {
		m = initNavMetrics(config)
	}

	return nav.QueueFunc(func(ctx context.Context, prev, next *nav.State, remaining nav.Remaining) (*nav.State, error) {
		path := next.Path
		if path == "" {
			path = "/"
		}
		if !next.Matched() {
			m.matchFailuresTotal.Inc()
		}

		start := time.Now()
		state, err := remaining.Handle(ctx, next)
		m.navigationDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

		status := "success"
		if err != nil {
			status = "error"
		}
		m.navigationsTotal.WithLabelValues(path, status).Inc()

		return state, err
	})
}
