package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNewMetrics(reg)

	m.ObserveScore(3)
	m.ObserveScore(0)
	m.CacheLookup("score", true)
	m.CacheLookup("score", false)
	m.CacheLookup("score", false)
	m.MilestoneNotified("first_steps")
	m.ObserveAPI("GET", "/api/catalog", "200", 10*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.assessmentsScored))
	require.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("score", "miss")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.milestonesNotified.WithLabelValues("first_steps")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "/api/catalog", "200")))
}

func TestMetricsReregisterReuses(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	require.NoError(t, err)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveScore(1)
	m.ObserveAggregate(time.Second)
	m.CacheLookup("metrics", true)
	m.MilestoneNotified("thriving")
	m.ApiInflightInc()
	m.ApiInflightDec()
}
