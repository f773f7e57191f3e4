package quicksort

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "quicksort_sorts_total",
		Help: "The total number of sorts performed",
	}, []string{"sorter"})

	elementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "quicksort_elements_total",
		Help: "The total number of elements sorted",
	}, []string{"sorter"})

	comparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "quicksort_comparisons_total",
		Help: "The total number of pivot comparisons",
	}, []string{"sorter"})

	swapsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "quicksort_swaps_total",
		Help: "The total number of element swaps",
	}, []string{"sorter"})

	recursionDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "quicksort_recursion_depth",
		Help:    "The deepest recursion level reached by each sort",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16), //nolint:mnd
	}, []string{"sorter"})
)

func recordSort(name string, elements, comparisons, swaps, depth int) {
	sortsTotal.WithLabelValues(name).Inc()
	elementsTotal.WithLabelValues(name).Add(float64(elements))
	comparisonsTotal.WithLabelValues(name).Add(float64(comparisons))
	swapsTotal.WithLabelValues(name).Add(float64(swaps))
	recursionDepth.WithLabelValues(name).Observe(float64(depth))
}
