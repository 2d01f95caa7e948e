package metrics

import "github.com/prometheus/client_golang/prometheus"

// Match engine metrics. Registered explicitly (no init()) so tests and the
// offline rank command don't drag them in.
var (
	// MatchRequestsTotal counts match calls by outcome (ok, invalid,
	// not_ready, error).
	MatchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pawmatch",
			Name:      "match_requests_total",
			Help:      "Total number of match requests by outcome",
		},
		[]string{"outcome"},
	)

	// MatchCompatiblePool observes the compatible pool size per request.
	MatchCompatiblePool = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pawmatch",
			Name:      "match_compatible_pool_size",
			Help:      "Compatible pool size per match request",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		},
	)

	// MatchDuration observes engine latency per request.
	MatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pawmatch",
			Name:      "match_duration_seconds",
			Help:      "Match engine duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
)

// RegisterMatchMetrics registers the engine metrics with the default
// registry.
func RegisterMatchMetrics() {
	prometheus.MustRegister(MatchRequestsTotal)
	prometheus.MustRegister(MatchCompatiblePool)
	prometheus.MustRegister(MatchDuration)
}
