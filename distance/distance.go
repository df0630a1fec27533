package distance

import "fmt"

// Func is a function type for distance calculation.
// It returns a non-negative dissimilarity between two vectors of equal
// length; checking lengths is the caller's responsibility.
type Func func(a, b []float32) float32

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Metric represents the distance metric used for record comparison.
//
// The enum is restricted to metrics compatible with the tree's hyperplane
// pruning bound; see the package documentation.
type Metric int

const (
	// MetricSquaredL2 is squared Euclidean distance, the default.
	MetricSquaredL2 Metric = iota
)

// String returns a string representation of the Metric.
func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "SquaredL2"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricSquaredL2:
		return SquaredL2, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// WeightedSquaredL2 returns a squared L2 distance with a per-axis weight.
// Assumes weights and vectors are the same length.
//
// All weights must be >= 1 for the distance to stay compatible with the
// tree's hyperplane pruning bound; smaller weights can make pruning skip
// valid candidates.
func WeightedSquaredL2(weights []float32) Func {
	return func(a, b []float32) float32 {
		var sum float32
		for i := range a {
			d := a[i] - b[i]
			sum += weights[i] * d * d
		}
		return sum
	}
}
