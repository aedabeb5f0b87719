package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records service metrics using Prometheus
type Collector struct {
	questionsServed  *prometheus.CounterVec
	questionFailures *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// NewCollector creates a new Prometheus metrics collector registered on reg.
// A nil registerer falls back to the default registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		questionsServed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "theoryq_questions_served_total",
				Help: "Total number of question/solution pairs served",
			},
			[]string{"mode"},
		),
		questionFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "theoryq_question_failures_total",
				Help: "Total number of requests that could not be given a valid pair",
			},
			[]string{"mode"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "theoryq_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "theoryq_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
	}
}

// RecordQuestionServed increments the count of served pairs
func (c *Collector) RecordQuestionServed(mode string) {
	c.questionsServed.WithLabelValues(mode).Inc()
}

// RecordQuestionFailure increments the count of failed question requests
func (c *Collector) RecordQuestionFailure(mode string) {
	c.questionFailures.WithLabelValues(mode).Inc()
}

// ObserveHTTPRequest records one completed HTTP request
func (c *Collector) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// statusClass buckets status codes to keep label cardinality low
func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
