// Package metrics exposes Prometheus collectors for the pantry server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by method, route pattern and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pantry_http_requests_total",
		Help: "HTTP requests processed, partitioned by method, route and status code.",
	}, []string{"method", "route", "status"})

	// RequestDuration observes request latency by route pattern.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pantry_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// RecipesMadeTotal counts successful consumption transactions.
	RecipesMadeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pantry_recipes_made_total",
		Help: "Successful mark-as-made transactions.",
	})
)

// Handler returns the /metrics scrape handler.
func Handler() http.Handler { return promhttp.Handler() }
