package kdgo

import (
	"github.com/hupe1980/kdgo/distance"
)

const (
	// DefaultLeafThreshold is the sub-range size below which construction
	// stops splitting and stores records in a leaf bucket.
	DefaultLeafThreshold = 30

	// MinLeafThreshold is the hard floor for the leaf threshold. Splitting
	// fewer than 3 records cannot reduce search work and risks degenerate
	// trees, so smaller values are clamped.
	MinLeafThreshold = 3
)

// Options contains configuration options for tree construction.
type Options struct {
	// LeafThreshold is the minimum sub-range size that is still split.
	// Values below MinLeafThreshold are clamped to MinLeafThreshold.
	LeafThreshold int

	// Metric selects the default distance function used by searches
	// against this tree.
	Metric distance.Metric

	// DistanceFunc takes precedence over Metric when set (e.g. for
	// distance.WeightedSquaredL2). Either way the default can be
	// overridden per search.
	//
	// The function must never report a distance smaller than the squared
	// gap on any single axis, otherwise the hyperplane pruning bound
	// silently skips valid candidates.
	DistanceFunc distance.Func

	// Logger receives structured build/search logs. Defaults to a text
	// logger on stderr at Info level; construction and searches log at
	// Debug, errors at Error.
	Logger *Logger
}

// DefaultOptions contains the default configuration options for tree construction.
var DefaultOptions = Options{
	LeafThreshold: DefaultLeafThreshold,
	Metric:        distance.MetricSquaredL2,
}

// SearchOptions contains per-search configuration options.
type SearchOptions[T any] struct {
	// DistanceFunc overrides the tree's distance function for this search.
	// The same pruning-compatibility requirement as Options.DistanceFunc applies.
	DistanceFunc distance.Func

	// Filter excludes records from the result set. Filtered records still
	// anchor splits during traversal; they are only kept out of the
	// candidate heap.
	Filter func(data T) bool
}
