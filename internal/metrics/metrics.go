package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Catalog request metrics
var (
	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests sent to the show catalog.",
		},
		[]string{"endpoint", "outcome"},
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of show catalog requests, including response decoding.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// Presentation metrics
var (
	SupersededTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presenter_superseded_total",
			Help: "Total number of catalog results discarded because a newer request was issued.",
		},
		[]string{"action"},
	)
)

// Outcome label values for CatalogRequestsTotal.
const (
	OutcomeSuccess   = "success"
	OutcomeNetwork   = "network_error"
	OutcomeUpstream  = "upstream_error"
	OutcomeMalformed = "malformed_response"
)

func init() {
	prometheus.MustRegister(
		CatalogRequestsTotal,
		CatalogRequestDuration,
		SupersededTotal,
	)
}
