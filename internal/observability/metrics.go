package observability

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	apiRequests        *prometheus.CounterVec
	apiLatency         *prometheus.HistogramVec
	apiInflight        prometheus.Gauge
	assessmentsScored  prometheus.Counter
	significantRegions prometheus.Histogram
	aggregateDuration  prometheus.Histogram
	cacheLookups       *prometheus.CounterVec
	milestonesNotified *prometheus.CounterVec
}

// NewMetrics builds and registers every collector on reg. A collector that is
// already registered is skipped.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neurohealing",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "neurohealing",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "neurohealing",
			Name:      "http_requests_inflight",
			Help:      "Requests currently being served.",
		}),
		assessmentsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neurohealing",
			Name:      "assessments_scored_total",
			Help:      "Questionnaires scored into region impacts.",
		}),
		significantRegions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "neurohealing",
			Name:      "significant_regions",
			Help:      "Regions above the significance cutoff per scored assessment.",
			Buckets:   []float64{0, 1, 2, 4, 8, 12, 16, 24, 36},
		}),
		aggregateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "neurohealing",
			Name:      "healing_aggregate_duration_seconds",
			Help:      "Time spent aggregating a snapshot history.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neurohealing",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by cache and result.",
		}, []string{"cache", "result"}),
		milestonesNotified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neurohealing",
			Name:      "milestones_notified_total",
			Help:      "Newly achieved milestones published for celebration.",
		}, []string{"milestone"}),
	}
	collectors := []prometheus.Collector{
		m.apiRequests, m.apiLatency, m.apiInflight, m.assessmentsScored,
		m.significantRegions, m.aggregateDuration, m.cacheLookups, m.milestonesNotified,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return m, nil
}

// MustNewMetrics panics when registration fails.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	m, err := NewMetrics(reg)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) ObserveScore(significant int) {
	if m == nil {
		return
	}
	m.assessmentsScored.Inc()
	m.significantRegions.Observe(float64(significant))
}

func (m *Metrics) ObserveAggregate(dur time.Duration) {
	if m == nil {
		return
	}
	m.aggregateDuration.Observe(dur.Seconds())
}

func (m *Metrics) CacheLookup(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(cache, result).Inc()
}

func (m *Metrics) MilestoneNotified(key string) {
	if m == nil {
		return
	}
	m.milestonesNotified.WithLabelValues(key).Inc()
}
