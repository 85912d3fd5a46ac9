package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type collector struct {
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	staleServed      *prometheus.CounterVec
	refreshFailures  *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
}

var (
	globalCollector *collector
	collectorOnce   sync.Once
)

func getCollector() *collector {
	collectorOnce.Do(func() {
		globalCollector = &collector{
			cacheHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_cache_hits_total",
					Help: "The total number of fresh cache hits",
				},
				[]string{"backend"},
			),
			cacheMisses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_cache_misses_total",
					Help: "The total number of cache misses or stale reads triggering a refresh",
				},
				[]string{"backend"},
			),
			staleServed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_cache_stale_served_total",
					Help: "The total number of stale payloads served after a refresh failure",
				},
				[]string{"backend"},
			),
			refreshFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_refresh_failures_total",
					Help: "The total number of failed refresh attempts",
				},
				[]string{"backend"},
			),
			providerDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weather_provider_request_duration_seconds",
					Help:    "Forecast provider request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"provider"},
			),
		}
	})
	return globalCollector
}

// CacheMetrics records cache outcomes for one backend.
type CacheMetrics struct {
	backend   string
	collector *collector
}

func NewCacheMetrics(backend string) *CacheMetrics {
	return &CacheMetrics{
		backend:   backend,
		collector: getCollector(),
	}
}

func (m *CacheMetrics) RecordHit() {
	m.collector.cacheHits.WithLabelValues(m.backend).Inc()
}

func (m *CacheMetrics) RecordMiss() {
	m.collector.cacheMisses.WithLabelValues(m.backend).Inc()
}

func (m *CacheMetrics) RecordStaleServed() {
	m.collector.staleServed.WithLabelValues(m.backend).Inc()
}

func (m *CacheMetrics) RecordRefreshFailure() {
	m.collector.refreshFailures.WithLabelValues(m.backend).Inc()
}

// ProviderMetrics records outbound provider call durations.
type ProviderMetrics struct {
	provider  string
	collector *collector
}

func NewProviderMetrics(provider string) *ProviderMetrics {
	return &ProviderMetrics{
		provider:  provider,
		collector: getCollector(),
	}
}

func (m *ProviderMetrics) RecordRequestDuration(seconds float64) {
	m.collector.providerDuration.WithLabelValues(m.provider).Observe(seconds)
}
