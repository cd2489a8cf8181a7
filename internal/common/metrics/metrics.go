// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChainRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "support_chain_runs_total",
			Help: "Total number of interpretation chain runs by chosen category",
		},
		[]string{"category"},
	)

	ChainRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "support_chain_run_duration_seconds",
			Help: "Duration of a full interpretation chain run in seconds",
		},
	)

	DetailsExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "support_details_extracted_total",
			Help: "Total number of detail fields extracted from queries",
		},
		[]string{"field"},
	)

	ResponsesDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "support_responses_delivered_total",
			Help: "Total number of response delivery attempts by channel and status",
		},
		[]string{"channel", "status"},
	)

	WeatherFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_fetches_total",
			Help: "Total number of weather API fetches by status",
		},
		[]string{"status"},
	)

	WeatherFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "weather_fetch_duration_seconds",
			Help: "Duration of weather API fetches in seconds",
		},
	)

	StorageUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_storage_uploads_total",
			Help: "Total number of weather payload uploads by status",
		},
		[]string{"status"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_cache_lookups_total",
			Help: "Total number of weather cache lookups by result",
		},
		[]string{"result"},
	)
)
