package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the ingestion pipeline.
type Metrics struct {
	// Document ingestion
	DocumentsIngestedTotal *prometheus.CounterVec
	IngestDuration         prometheus.Histogram
	ExtractionWarnings     prometheus.Counter

	// Background jobs
	JobsProcessedTotal *prometheus.CounterVec
	JobDuration        *prometheus.HistogramVec
	JobsPending        prometheus.Gauge

	// LLM calls
	LLMRequestsTotal *prometheus.CounterVec
	LLMDuration      prometheus.Histogram

	// Cache performance
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter

	// GitHub export
	IssuesExportedTotal   prometheus.Counter
	GithubRequestDuration prometheus.Histogram
}

// NewMetrics creates and registers Prometheus metrics for the service.
//
// This function uses sync.Once to ensure metrics are only registered once
// globally, preventing "duplicate metrics collector registration" panics.
//
// All metrics are prefixed with "notes_" for namespacing.
//
// Metrics:
//   - notes_documents_ingested_total{source} - Count of documents ingested
//   - notes_ingest_duration_seconds - Histogram of end-to-end ingest times
//   - notes_extraction_warnings_total - Count of non-fatal extraction warnings
//   - notes_jobs_processed_total{type,status} - Count of background jobs finished
//   - notes_job_duration_seconds{type} - Histogram of job execution times
//   - notes_jobs_pending - Current number of queued jobs
//   - notes_llm_requests_total{operation,status} - Count of LLM API calls
//   - notes_llm_request_duration_seconds - Histogram of LLM call latency
//   - notes_cache_hits_total - Count of cache hits
//   - notes_cache_misses_total - Count of cache misses
//   - notes_issues_exported_total - Count of GitHub issues created
//   - notes_github_request_duration_seconds - Histogram of GitHub call latency
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			DocumentsIngestedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "notes_documents_ingested_total",
					Help: "Total number of meeting documents ingested",
				},
				[]string{"source"}, // "file", "api", "audio"
			),

			IngestDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "notes_ingest_duration_seconds",
					Help:    "Duration of document ingestion in seconds",
					Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~20s
				},
			),

			ExtractionWarnings: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "notes_extraction_warnings_total",
					Help: "Total number of non-fatal extraction warnings",
				},
			),

			JobsProcessedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "notes_jobs_processed_total",
					Help: "Total number of background jobs finished",
				},
				[]string{"type", "status"}, // status is "completed" or "failed"
			),

			JobDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "notes_job_duration_seconds",
					Help:    "Duration of background job execution in seconds",
					Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~200s
				},
				[]string{"type"},
			),

			JobsPending: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "notes_jobs_pending",
					Help: "Current number of queued background jobs",
				},
			),

			LLMRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "notes_llm_requests_total",
					Help: "Total number of LLM API calls",
				},
				[]string{"operation", "status"}, // "query_plan", "answer", "reshape", "report"
			),

			LLMDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "notes_llm_request_duration_seconds",
					Help:    "Duration of LLM API calls in seconds",
					Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~100s
				},
			),

			CacheHitsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "notes_cache_hits_total",
					Help: "Total number of cache hits",
				},
			),

			CacheMissesTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "notes_cache_misses_total",
					Help: "Total number of cache misses",
				},
			),

			IssuesExportedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "notes_issues_exported_total",
					Help: "Total number of GitHub issues created from action items",
				},
			),

			GithubRequestDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "notes_github_request_duration_seconds",
					Help:    "Duration of GitHub API calls in seconds",
					Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~50s
				},
			),
		}
	})

	return globalMetrics
}

// RecordIngest records a completed document ingestion.
func (m *Metrics) RecordIngest(source string, durationSeconds float64, warnings int) {
	m.DocumentsIngestedTotal.WithLabelValues(source).Inc()
	m.IngestDuration.Observe(durationSeconds)
	m.ExtractionWarnings.Add(float64(warnings))
}

// RecordJob records a finished background job.
func (m *Metrics) RecordJob(jobType, status string, durationSeconds float64) {
	m.JobsProcessedTotal.WithLabelValues(jobType, status).Inc()
	m.JobDuration.WithLabelValues(jobType).Observe(durationSeconds)
}

// SetJobsPending updates the queued jobs gauge.
func (m *Metrics) SetJobsPending(n int64) {
	m.JobsPending.Set(float64(n))
}

// RecordLLMRequest records an LLM API call.
func (m *Metrics) RecordLLMRequest(operation, status string, durationSeconds float64) {
	m.LLMRequestsTotal.WithLabelValues(operation, status).Inc()
	m.LLMDuration.Observe(durationSeconds)
}

// RecordCacheHit records a cache hit.
func (m *Metrics) RecordCacheHit() {
	m.CacheHitsTotal.Inc()
}

// RecordCacheMiss records a cache miss.
func (m *Metrics) RecordCacheMiss() {
	m.CacheMissesTotal.Inc()
}

// RecordIssueExported records a GitHub issue created from an action item.
func (m *Metrics) RecordIssueExported() {
	m.IssuesExportedTotal.Inc()
}

// ObserveGithubRequest records the latency of one GitHub API call.
func (m *Metrics) ObserveGithubRequest(durationSeconds float64) {
	m.GithubRequestDuration.Observe(durationSeconds)
}
