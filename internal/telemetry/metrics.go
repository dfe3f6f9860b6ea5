package telemetry

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the workbench's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	EstimatesTotal     *prometheus.CounterVec
	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	JudgmentsTotal     *prometheus.CounterVec
	ProfileSamples     prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		EstimatesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auditor_estimates_total",
				Help: "Static complexity estimates by result kind",
			},
			[]string{"kind"},
		),
		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auditor_generations_total",
				Help: "Code generations requested from the model provider",
			},
			[]string{"provider", "strategy", "status"},
		),
		GenerationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auditor_generation_duration_seconds",
				Help:    "Latency of code generation requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		JudgmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auditor_judgments_total",
				Help: "Preference judgments appended to the log",
			},
			[]string{"choice"},
		),
		ProfileSamples: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "auditor_profile_samples_total",
				Help: "Runtime samples taken by the profiler",
			},
		),
	}

	reg.MustRegister(
		m.EstimatesTotal,
		m.GenerationsTotal,
		m.GenerationDuration,
		m.JudgmentsTotal,
		m.ProfileSamples,
	)
	return m
}

// TrackEstimate counts one estimator result. kind is "constant",
// "polynomial" or "syntax_error".
func (m *Metrics) TrackEstimate(kind string) {
	if m == nil {
		return
	}
	m.EstimatesTotal.WithLabelValues(kind).Inc()
}

// TrackGeneration counts one generation request and its latency.
func (m *Metrics) TrackGeneration(provider, strategy string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.GenerationsTotal.WithLabelValues(provider, strategy, status).Inc()
	m.GenerationDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// TrackJudgment counts one logged judgment.
func (m *Metrics) TrackJudgment(choice string) {
	if m == nil {
		return
	}
	m.JudgmentsTotal.WithLabelValues(choice).Inc()
}

// TrackProfileSample counts one profiler measurement.
func (m *Metrics) TrackProfileSample() {
	if m == nil {
		return
	}
	m.ProfileSamples.Inc()
}

var (
	metricsMu      sync.Mutex
	metricsRunning bool
)

// StartMetricsServer serves /metrics from the default gatherer on addr. It
// blocks while serving; a second call while one is running returns nil.
func StartMetricsServer(addr string) error {
	metricsMu.Lock()
	if metricsRunning {
		metricsMu.Unlock()
		return nil
	}
	metricsRunning = true
	metricsMu.Unlock()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	LogInfo("starting metrics server", "addr", addr)
	err := http.ListenAndServe(addr, mux)

	metricsMu.Lock()
	metricsRunning = false
	metricsMu.Unlock()
	if err != nil {
		return fmt.Errorf("metrics server on %s: %w", addr, err)
	}
	return nil
}
