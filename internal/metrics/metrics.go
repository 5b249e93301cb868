// file: internal/metrics/metrics.go
// version: 1.0.0
// guid: e10fbe73-9087-4286-b9d5-b726e50557ef

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	searchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "beanfinder",
		Name:      "searches_total",
		Help:      "Total number of search queries served",
	})
	suggestionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "beanfinder",
		Name:      "suggestions_total",
		Help:      "Total number of suggestion queries served",
	})
	recommendationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "beanfinder",
		Name:      "recommendations_total",
		Help:      "Total number of recommendation requests served",
	})
	emptySearchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "beanfinder",
		Name:      "empty_searches_total",
		Help:      "Searches that returned no results",
	})
	searchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "beanfinder",
		Name:      "search_duration_seconds",
		Help:      "Histogram of search latencies in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2.5, 10), // 100µs up to ~1s
	})
	catalogSizeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "beanfinder",
		Name:      "catalog_products_total",
		Help:      "Current number of products in the catalog snapshot",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(searchesTotal, suggestionsTotal, recommendationsTotal,
			emptySearchesTotal, searchDuration, catalogSizeGauge)
	})
}

func IncSearches()                          { searchesTotal.Inc() }
func IncSuggestions()                       { suggestionsTotal.Inc() }
func IncRecommendations()                   { recommendationsTotal.Inc() }
func IncEmptySearches()                     { emptySearchesTotal.Inc() }
func ObserveSearchDuration(d time.Duration) { searchDuration.Observe(d.Seconds()) }
func SetCatalogSize(n int)                  { catalogSizeGauge.Set(float64(n)) }
