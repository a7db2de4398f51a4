package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce             sync.Once
	httpRequestsTotal        *prometheus.CounterVec
	httpLatencySeconds       *prometheus.HistogramVec
	httpErrorsTotal          *prometheus.CounterVec
	assessmentsTotal         *prometheus.CounterVec
	inferenceLatencySeconds  prometheus.Histogram
	untrainedIndicatorsTotal *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the service.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_latency_seconds",
			Help:    "Latency distribution for HTTP requests.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "route"})

		httpErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total number of error responses.",
		}, []string{"method", "route", "status"})

		assessmentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "assessments_total",
			Help: "Assessments processed by outcome.",
		}, []string{"verdict"})

		inferenceLatencySeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "inference_latency_seconds",
			Help:    "Time spent encoding and classifying one assessment.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		})

		untrainedIndicatorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "untrained_indicator_total",
			Help: "Active indicators dropped because the model was not trained on them.",
		}, []string{"feature"})

		prometheus.MustRegister(
			httpRequestsTotal,
			httpLatencySeconds,
			httpErrorsTotal,
			assessmentsTotal,
			inferenceLatencySeconds,
			untrainedIndicatorsTotal,
		)
	})
}

// HTTPRequests exposes the request counter.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the request latency histogram.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// HTTPErrors exposes the error response counter.
func HTTPErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return httpErrorsTotal
}

// Assessments exposes the assessment outcome counter. Outcomes are "high",
// "low", "invalid" and "error".
func Assessments() *prometheus.CounterVec {
	RegisterMetrics()
	return assessmentsTotal
}

// InferenceLatency exposes the inference histogram.
func InferenceLatency() prometheus.Histogram {
	RegisterMetrics()
	return inferenceLatencySeconds
}

// UntrainedIndicators exposes the fail-soft drop counter.
func UntrainedIndicators() *prometheus.CounterVec {
	RegisterMetrics()
	return untrainedIndicatorsTotal
}
