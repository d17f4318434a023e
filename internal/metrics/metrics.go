// Package metrics holds the Prometheus collectors shared by the API server and
// the ingestion tool.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FetchRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "localdex",
		Name:      "pokeapi_requests_total",
		Help:      "Requests made to PokeAPI, by kind and result.",
	}, []string{"kind", "result"})

	FetchRetries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "localdex",
		Name:      "pokeapi_retries_total",
		Help:      "Retried PokeAPI requests, by kind.",
	}, []string{"kind"})

	IngestOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "localdex",
		Name:      "ingest_records_total",
		Help:      "Ingested ids, by kind and outcome.",
	}, []string{"kind", "outcome"})

	IngestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "localdex",
		Name:      "ingest_run_duration_seconds",
		Help:      "Duration of ingestion runs, by kind.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"kind"})

	APIWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "localdex",
		Name:      "api_writes_total",
		Help:      "Write operations served by the API, by kind, operation and status.",
	}, []string{"kind", "op", "status"})
)

func init() {
	prometheus.MustRegister(
		FetchRequests,
		FetchRetries,
		IngestOutcomes,
		IngestDuration,
		APIWrites,
	)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
