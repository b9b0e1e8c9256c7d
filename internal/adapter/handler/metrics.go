package handler

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hive-corporation/lookout/internal/core/domain"
)

var (
	// metricsOnce ensures metrics are registered only once
	metricsOnce sync.Once

	// extractRequestsTotal tracks extraction requests by status
	extractRequestsTotal *prometheus.CounterVec

	// extractDuration tracks latency of extraction runs
	extractDuration prometheus.Histogram

	// iocsExtractedTotal tracks extracted indicators by type
	iocsExtractedTotal *prometheus.CounterVec

	// extractInputBytes tracks the size of scanned text
	extractInputBytes prometheus.Histogram
)

// InitMetrics registers all Prometheus metrics for IOC extraction.
// This should be called once at application startup.
func InitMetrics() {
	metricsOnce.Do(func() {
		extractRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ioc_extract_requests_total",
				Help: "Total number of extraction requests by status",
			},
			[]string{"status"},
		)

		extractDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ioc_extract_duration_seconds",
				Help:    "Duration of IOC extraction runs in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
		)

		iocsExtractedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iocs_extracted_total",
				Help: "Total number of extracted indicators by type",
			},
			[]string{"type"},
		)

		extractInputBytes = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ioc_extract_input_bytes",
				Help:    "Size distribution of scanned text in bytes",
				Buckets: prometheus.ExponentialBuckets(64, 4, 8),
			},
		)
	})
}

// RecordExtraction records one completed extraction run: input size and
// per-type indicator counts.
func RecordExtraction(inputBytes int, iocs domain.Set) {
	if extractRequestsTotal != nil {
		extractRequestsTotal.WithLabelValues("success").Inc()
	}
	if extractInputBytes != nil {
		extractInputBytes.Observe(float64(inputBytes))
	}
	if iocsExtractedTotal != nil {
		for ioc := range iocs {
			iocsExtractedTotal.WithLabelValues(string(ioc.Type)).Inc()
		}
	}
}

// RecordRejectedRequest records a request that never reached the extractor.
// status: "invalid_payload"
func RecordRejectedRequest(status string) {
	if extractRequestsTotal != nil {
		extractRequestsTotal.WithLabelValues(status).Inc()
	}
}

// ExtractTimer is a helper for timing extraction runs
type ExtractTimer struct {
	start time.Time
}

// StartTimer creates a new timer for measuring extraction duration
func StartTimer() *ExtractTimer {
	return &ExtractTimer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer started
func (t *ExtractTimer) ObserveDuration() {
	if t != nil && extractDuration != nil {
		extractDuration.Observe(time.Since(t.start).Seconds())
	}
}
