package service

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

// MetricsService instruments the key-value store and provides lightweight
// snapshots for the admin summary. It implements store.Metrics.
type MetricsService struct {
	registry      *prometheus.Registry
	handler       http.Handler
	readLatency   prometheus.Observer
	writeLatency  prometheus.Observer
	hitRatio      prometheus.Gauge
	readHits      prometheus.Counter
	readMisses    prometheus.Counter
	writeTotal    prometheus.Counter
	writeFailures *prometheus.CounterVec

	readHitCount      uint64
	readMissCount     uint64
	readDurationTotal uint64
	writeCount        uint64
	writeFailureCount uint64
}

// NewMetricsService registers the store collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	readLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "store_read_seconds",
		Help:    "Latency of key-value store reads",
		Buckets: prometheus.DefBuckets,
	})

	writeLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "store_write_seconds",
		Help:    "Latency of key-value store writes",
		Buckets: prometheus.DefBuckets,
	})

	hitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "store_read_hit_ratio",
		Help: "Ratio of reads that found a key",
	})

	readHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_read_hits_total",
		Help: "Total reads that found a key",
	})

	readMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_read_misses_total",
		Help: "Total reads of absent keys",
	})

	writeTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_writes_total",
		Help: "Total key-value store writes",
	})

	writeFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_write_failures_total",
		Help: "Store writes that failed, by error code",
	}, []string{"code"})

	registry.MustRegister(readLatency, writeLatency, hitRatio, readHits, readMisses, writeTotal, writeFailures)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:      registry,
		handler:       handler,
		readLatency:   readLatency,
		writeLatency:  writeLatency,
		hitRatio:      hitRatio,
		readHits:      readHits,
		readMisses:    readMisses,
		writeTotal:    writeTotal,
		writeFailures: writeFailures,
	}
}

// Handler exposes the Prometheus scrape handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// RecordRead observes one store read.
func (m *MetricsService) RecordRead(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.readLatency.Observe(duration.Seconds())
	if hit {
		m.readHits.Inc()
		atomic.AddUint64(&m.readHitCount, 1)
	} else {
		m.readMisses.Inc()
		atomic.AddUint64(&m.readMissCount, 1)
	}
	atomic.AddUint64(&m.readDurationTotal, uint64(duration.Nanoseconds()))

	hits := atomic.LoadUint64(&m.readHitCount)
	misses := atomic.LoadUint64(&m.readMissCount)
	if total := hits + misses; total > 0 {
		m.hitRatio.Set(float64(hits) / float64(total))
	}
}

// RecordWrite observes one store write and its outcome.
func (m *MetricsService) RecordWrite(err error, duration time.Duration) {
	if m == nil {
		return
	}
	m.writeLatency.Observe(duration.Seconds())
	m.writeTotal.Inc()
	atomic.AddUint64(&m.writeCount, 1)
	if err != nil {
		m.writeFailures.WithLabelValues(appErrors.FromError(err).Code).Inc()
		atomic.AddUint64(&m.writeFailureCount, 1)
	}
}

// Snapshot returns aggregated store metrics.
func (m *MetricsService) Snapshot() models.StorageMetrics {
	if m == nil {
		return models.StorageMetrics{}
	}
	hits := atomic.LoadUint64(&m.readHitCount)
	misses := atomic.LoadUint64(&m.readMissCount)
	readDuration := atomic.LoadUint64(&m.readDurationTotal)
	writes := atomic.LoadUint64(&m.writeCount)
	failures := atomic.LoadUint64(&m.writeFailureCount)

	var ratio float64
	total := hits + misses
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}

	var avgReadMs float64
	if total > 0 {
		avgReadMs = float64(readDuration) / float64(total) / float64(time.Millisecond)
	}

	return models.StorageMetrics{
		ReadsTotal:            total,
		ReadHits:              hits,
		ReadMisses:            misses,
		HitRatio:              ratio,
		WritesTotal:           writes,
		WriteFailures:         failures,
		AverageReadDurationMs: avgReadMs,
		GeneratedAt:           time.Now().UTC(),
	}
}
