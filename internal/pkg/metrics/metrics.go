// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// --- Inbound (server) metrics ---
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "route", "code"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	HTTPRequestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_errors_total",
			Help: "Total number of HTTP requests resulting in client or server errors.",
		},
		[]string{"method", "route", "code"},
	)

	// --- Outbound (client) metrics ---
	HTTPClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_client_requests_total",
			Help: "Total number of outbound HTTP requests.",
		},
		[]string{"method", "code"},
	)
	HTTPClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_client_request_duration_seconds",
			Help:    "Latency of outbound HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "code"},
	)
	HTTPClientErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_client_request_errors_total",
			Help: "Total number of outbound HTTP requests that failed or returned error status.",
		},
		[]string{"method", "code"},
	)

	// --- Analysis metrics ---
	SEOAnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_analyses_total",
			Help: "Total number of document analyses by resulting level.",
		},
		[]string{"level"},
	)
	SEOAnalysisScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seo_analysis_score",
			Help:    "Distribution of analysis scores.",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
	LinkChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "link_checks_total",
			Help: "Total number of external link checks by error category; ok for reachable links.",
		},
		[]string{"category"},
	)

	// --- Corpus metrics ---
	CorpusDocumentsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "corpus_documents_loaded",
			Help: "Number of documents loaded per collection on the last corpus load.",
		},
		[]string{"collection"},
	)
	CorpusSourceErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corpus_source_errors_total",
			Help: "Total number of collection fetches that failed and were skipped.",
		},
		[]string{"collection"},
	)
	CorpusCacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corpus_cache_requests_total",
			Help: "Total number of corpus cache lookups by result.",
		},
		[]string{"result"},
	)

	// --- Runtime metrics ---
	CPUCount = promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "process_cpu_count",
			Help: "Number of CPU cores available.",
		},
		func() float64 { return float64(runtime.NumCPU()) },
	)
)

func MetricsRegister() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		HTTPRequestsTotal,
		HTTPRequestDuration,
		HTTPRequestErrorsTotal,
		HTTPClientRequestsTotal,
		HTTPClientRequestDuration,
		HTTPClientErrorsTotal,
		SEOAnalysesTotal,
		SEOAnalysisScore,
		LinkChecksTotal,
		CorpusDocumentsLoaded,
		CorpusSourceErrorsTotal,
		CorpusCacheRequestsTotal,
		CPUCount,
	)

	return reg
}
