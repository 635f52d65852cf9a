package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results used as the "result" label.
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

var (
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datasets_lookups_total",
			Help: "Total number of example resolutions by result",
		},
		[]string{"method", "result"},
	)

	LookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "datasets_lookup_duration_seconds",
			Help:    "Example resolution duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
		[]string{"method"},
	)
)
