package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the conformance watcher.
type Metrics struct {
	SuiteRuns      prometheus.Counter
	ChecksPassed   *prometheus.CounterVec
	ChecksFailed   *prometheus.CounterVec
	SuiteDuration  prometheus.Histogram
	LastRunHealthy prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SuiteRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vaxcheck_suite_runs_total",
			Help: "Total number of conformance suite runs",
		}),
		ChecksPassed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vaxcheck_checks_passed_total",
			Help: "Total number of passed checks, labeled by check name",
		}, []string{"check"}),
		ChecksFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vaxcheck_checks_failed_total",
			Help: "Total number of failed checks, labeled by check name",
		}, []string{"check"}),
		SuiteDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vaxcheck_suite_duration_seconds",
			Help:    "Duration of full suite runs in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		LastRunHealthy: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "vaxcheck_last_run_healthy",
			Help: "1 when every check passed on the most recent run, 0 otherwise",
		}),
	}
}

// RecordCheck counts one check outcome.
func (m *Metrics) RecordCheck(check string, passed bool) {
	if passed {
		m.ChecksPassed.WithLabelValues(check).Inc()
	} else {
		m.ChecksFailed.WithLabelValues(check).Inc()
	}
}

// RecordSuite counts one full suite run.
func (m *Metrics) RecordSuite(durationSeconds float64, healthy bool) {
	m.SuiteRuns.Inc()
	m.SuiteDuration.Observe(durationSeconds)
	if healthy {
		m.LastRunHealthy.Set(1)
	} else {
		m.LastRunHealthy.Set(0)
	}
}
