// Package observability provides Prometheus metrics for the admin API.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal counts all HTTP requests by method and status code.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketflow_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration records request duration in seconds by method.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ticketflow_request_duration_seconds",
			Help:    "Request duration",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method"},
	)

	// AuthRejectionsTotal counts bearer-stage rejections by reason.
	AuthRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketflow_auth_rejections_total",
			Help: "Requests rejected by the bearer authentication stage",
		},
		[]string{"reason"},
	)

	// TenantLookupsTotal counts tenant resolutions by outcome.
	TenantLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketflow_tenant_lookups_total",
			Help: "Tenant slug resolutions",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		AuthRejectionsTotal,
		TenantLookupsTotal,
	)
}
