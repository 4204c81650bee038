// Package metrics exposes Prometheus metrics for video analysis.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for videos_analyzed_total.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Stage labels for stage_duration_seconds.
const (
	StageUpload     = "upload"
	StageProcessing = "processing"
	StageInvocation = "invocation"
	StageCoercion   = "coercion"
	StageBatch      = "batch"
)

// Manager owns a private registry and the analyzer's collectors. All
// recording methods are safe on a nil *Manager so callers may skip metrics.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	videosAnalyzed *prometheus.CounterVec
	analysisErrors *prometheus.CounterVec
	pollAttempts   prometheus.Histogram
	stageDuration  *prometheus.HistogramVec
	httpRequests   *prometheus.CounterVec
	batchRunning   prometheus.Gauge
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace overrides the metric namespace.
func WithNamespace(namespace string) Option {
	return func(m *Manager) { m.namespace = namespace }
}

// WithRegistry registers collectors on registry instead of a fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) { m.registry = registry }
}

// NewManager creates a Manager with its collectors registered.
func NewManager(opts ...Option) *Manager {
	m := &Manager{namespace: "adcreative"}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(m.registry)
	m.videosAnalyzed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "videos_analyzed_total",
		Help:      "Videos run through the analysis pipeline, by outcome.",
	}, []string{"outcome"})
	m.analysisErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "analysis_errors_total",
		Help:      "Analysis failures by error kind.",
	}, []string{"kind"})
	m.pollAttempts = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "poll_attempts",
		Help:      "Status fetches needed before a video left the processing state.",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 150},
	})
	m.stageDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "stage_duration_seconds",
		Help:      "Wall time spent per pipeline stage.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"stage"})
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by route and status code.",
	}, []string{"path", "code"})
	m.batchRunning = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "batch_running",
		Help:      "1 while a batch run is in progress.",
	})
	return m
}

// Registry returns the registry the collectors live on.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordVideo counts one analyzed video.
func (m *Manager) RecordVideo(outcome string) {
	if m == nil {
		return
	}
	m.videosAnalyzed.WithLabelValues(outcome).Inc()
}

// RecordError counts one failure of the given kind.
func (m *Manager) RecordError(kind string) {
	if m == nil {
		return
	}
	m.analysisErrors.WithLabelValues(kind).Inc()
}

// ObservePollAttempts records how many status fetches one video needed.
func (m *Manager) ObservePollAttempts(n int) {
	if m == nil {
		return
	}
	m.pollAttempts.Observe(float64(n))
}

// ObserveStage records the duration of a pipeline stage.
func (m *Manager) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordHTTPRequest counts one served request.
func (m *Manager) RecordHTTPRequest(path string, code int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(path, strconv.Itoa(code)).Inc()
}

// SetBatchRunning flips the batch_running gauge.
func (m *Manager) SetBatchRunning(running bool) {
	if m == nil {
		return
	}
	if running {
		m.batchRunning.Set(1)
		return
	}
	m.batchRunning.Set(0)
}
