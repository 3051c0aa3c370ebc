// Package metrics provides Prometheus metric collection and exposure.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metric-recording interface consumed by handlers and
// middleware.
type Recorder interface {
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
	RecordEscalation()
	RecordLLMCall()
	RecordLLMFailure()
	RecordAuthRejection(reason string)
}

// Collector implements Recorder on top of Prometheus.
type Collector struct {
	httpStatus     *prometheus.CounterVec
	requestLatency prometheus.Histogram
	escalations    prometheus.Counter
	llmCalls       prometheus.Counter
	llmFailures    prometheus.Counter
	authRejections *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solace_http_status_total",
			Help: "Responses by HTTP status code",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "solace_request_latency_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		escalations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solace_crisis_escalations_total",
			Help: "Messages intercepted by the crisis-detection gate",
		}),
		llmCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solace_llm_calls_total",
			Help: "Completed LLM provider calls",
		}),
		llmFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solace_llm_failures_total",
			Help: "LLM provider calls converted to provider errors",
		}),
		authRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solace_auth_rejections_total",
			Help: "Requests rejected by the authorization gate, by reason",
		}, []string{"reason"}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.requestLatency,
		c.escalations,
		c.llmCalls,
		c.llmFailures,
		c.authRejections,
	)

	return c
}

// RecordHTTPStatus counts a response by status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency observes a request duration.
func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// RecordEscalation counts a crisis escalation.
func (c *Collector) RecordEscalation() {
	c.escalations.Inc()
}

// RecordLLMCall counts a completed provider call.
func (c *Collector) RecordLLMCall() {
	c.llmCalls.Inc()
}

// RecordLLMFailure counts a provider call that failed.
func (c *Collector) RecordLLMFailure() {
	c.llmFailures.Inc()
}

// RecordAuthRejection counts a gate rejection by reason
// (missing_token, malformed_token, expired_token, session_expired).
func (c *Collector) RecordAuthRejection(reason string) {
	c.authRejections.WithLabelValues(reason).Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
