package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search and catalog Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Name:      "search_requests_total",
			Help:      "Total number of search evaluations",
		},
		[]string{"mode", "view"},
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketplace",
			Name:      "search_results",
			Help:      "Number of ranked hits per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
		[]string{"mode"},
	)

	SearchExcludedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Name:      "search_excluded_total",
			Help:      "Candidates dropped by the filter pipeline or the scorer",
		},
		[]string{"reason"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketplace",
			Name:      "search_duration_seconds",
			Help:      "Search evaluation duration in seconds, snapshot load included",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
		[]string{"mode"},
	)

	CatalogMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Name:      "catalog_mutations_total",
			Help:      "Catalog mutations by operation and outcome",
		},
		[]string{"op", "status"}, // status: "ok" / "error"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers the search and catalog metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(SearchExcludedTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(CatalogMutationsTotal)
	searchMetricsRegistered = true
}
