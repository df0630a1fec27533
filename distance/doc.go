// Package distance provides the distance functions injected into k-d tree
// searches.
//
// The default metric is SquaredL2: squared, not rooted, because any strictly
// increasing transform preserves nearest-neighbor ordering and skipping the
// square root saves work on every comparison.
//
// # Pruning Compatibility
//
// The tree prunes subtrees by comparing the squared per-axis gap to the
// splitting hyperplane against the worst kept distance. A substituted Func
// must therefore never report a distance smaller than the squared gap on any
// single axis. SquaredL2 and WeightedSquaredL2 (with weights >= 1) satisfy
// this; metrics such as Manhattan or rooted Euclidean do not and are
// unsupported for tree search.
package distance
