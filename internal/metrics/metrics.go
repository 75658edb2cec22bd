// Package metrics exposes Prometheus collectors for HTTP, cache and database calls.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method", "status_code"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"path", "method", "status_code"})

	cacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_requests_total",
		Help: "Total number of report cache lookups.",
	}, []string{"key", "cache_hit"})

	dbRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_request_duration_seconds",
		Help:    "Duration of database requests.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"method"})

	dbRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_requests_total",
		Help: "Total number of database requests.",
	}, []string{"method"})

	emailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_emails_total",
		Help: "Account notification emails by outcome.",
	}, []string{"outcome"})
)

func ObserveHTTPRequest(path, method string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	httpRequestDuration.WithLabelValues(path, method, code).Observe(duration.Seconds())
	httpRequestsTotal.WithLabelValues(path, method, code).Inc()
}

func ObserveCacheRequest(key string, hit bool) {
	cacheRequestsTotal.WithLabelValues(key, strconv.FormatBool(hit)).Inc()
}

// ObserveDBRequest is meant to be deferred: defer metrics.ObserveDBRequest("users.find", time.Now())
func ObserveDBRequest(method string, start time.Time) {
	dbRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	dbRequestsTotal.WithLabelValues(method).Inc()
}

func ObserveEmail(sent bool) {
	outcome := "sent"
	if !sent {
		outcome = "failed"
	}
	emailsTotal.WithLabelValues(outcome).Inc()
}
