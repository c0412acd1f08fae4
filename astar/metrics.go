package astar

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for searchTotal.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeBudget   = "budget"
	outcomeRejected = "rejected"
)

var (
	// searchTotal counts finished searches by outcome
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvroute_astar_search_total",
		Help: "Total A* searches by outcome",
	}, []string{"outcome"})

	// searchDuration tracks wall time of a search run
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvroute_astar_search_duration_seconds",
		Help:    "A* search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10µs to ~80ms
	})

	// expandedCells tracks how many cells each run finalized
	expandedCells = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvroute_astar_expanded_cells",
		Help:    "Number of cells expanded per A* search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
	})

	// pathLength tracks the step count of found routes
	pathLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvroute_astar_path_length_steps",
		Help:    "Step count of routes found by A*",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
)
