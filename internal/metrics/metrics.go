package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTP 請求相關指標
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// 影集相關指標
var (
	ShowsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "shows_total",
			Help: "Number of shows currently stored.",
		},
	)

	ShowMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "show_mutations_total",
			Help: "Total number of show create/update/delete operations.",
		},
		[]string{"type"},
	)

	FeedClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "show_feed_clients",
			Help: "Number of connected show feed websocket clients.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ShowsTotal,
		ShowMutationsTotal,
		FeedClients,
	)
}
