package kdgo

import (
	"math"
	"slices"
	"sort"

	"github.com/hupe1980/kdgo/distance"
)

// Record associates an arbitrary payload with a point in N-dimensional space.
// Once handed to New, a record is owned by the tree's backing storage.
type Record[T any] struct {
	data  T
	point []float32
}

// NewRecord creates a new record from a payload and its coordinates.
// The coordinate slice is not copied; callers must not modify it after
// the record has been handed to New.
func NewRecord[T any](data T, coordinates []float32) Record[T] {
	return Record[T]{
		data:  data,
		point: coordinates,
	}
}

// Data returns the record's payload.
func (r Record[T]) Data() T { return r.data }

// Point returns the record's coordinates.
// The returned slice aliases internal memory and must be treated as read-only.
func (r Record[T]) Point() []float32 { return r.point }

// node is one partition of the backing storage, either an internal split or
// a leaf bucket. left == nil marks a leaf; internal nodes always carry both
// children.
type node struct {
	pivot       int   // backing index of the split record (internal nodes)
	left, right *node // children (internal nodes)
	start, stop int   // backing range [start, stop), never empty (leaf nodes)
}

func (n *node) isLeaf() bool { return n.left == nil }

// KDTree is an immutable k-d tree over a reordered backing slice of records.
// The tree is built once by New and is read-only afterwards, so any number
// of searches may run against it concurrently without synchronization.
type KDTree[T any] struct {
	root      *node
	records   []Record[T]
	dimension int
	opts      Options
}

// New builds a k-d tree from the given records by recursive median split.
//
// The records slice itself is copied, but construction reorders the copy in
// place and the tree keeps it for its whole lifetime. All records must share
// the dimension of the first record; mismatches are rejected eagerly with
// ErrDimensionMismatch before any splitting happens. NaN coordinates are
// tolerated during construction (NaN sorts before every other value), though
// search results involving NaN are undefined.
//
// Inputs too small to split produce a valid tree whose root is a single leaf
// bucket, answered by brute-force scan.
//
// Median selection uses a full sort per level, giving O(n log² n)
// construction. A selection algorithm would shave this to O(n log n), but
// sorting is the simpler choice for typical input sizes.
func New[T any](records []Record[T], optFns ...func(o *Options)) (*KDTree[T], error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.LeafThreshold < MinLeafThreshold {
		opts.LeafThreshold = MinLeafThreshold
	}

	if opts.Logger == nil {
		opts.Logger = NewLogger(nil)
	}

	if opts.DistanceFunc == nil {
		fn, err := distance.Provider(opts.Metric)
		if err != nil {
			opts.Logger.LogBuild(len(records), 0, opts.LeafThreshold, err)
			return nil, err
		}
		opts.DistanceFunc = fn
	}

	if len(records) == 0 {
		opts.Logger.LogBuild(0, 0, opts.LeafThreshold, ErrEmptyInput)
		return nil, ErrEmptyInput
	}

	dim := len(records[0].point)
	if dim == 0 {
		err := &ErrInvalidDimension{Dimension: 0}
		opts.Logger.LogBuild(len(records), 0, opts.LeafThreshold, err)
		return nil, err
	}

	for _, r := range records {
		if len(r.point) != dim {
			err := &ErrDimensionMismatch{Expected: dim, Actual: len(r.point)}
			opts.Logger.LogBuild(len(records), dim, opts.LeafThreshold, err)
			return nil, err
		}
	}

	backing := slices.Clone(records)

	t := &KDTree[T]{
		root:      buildNode(backing, 0, 0, dim, opts.LeafThreshold),
		records:   backing,
		dimension: dim,
		opts:      opts,
	}

	opts.Logger.LogBuild(len(backing), dim, opts.LeafThreshold, nil)

	return t, nil
}

// buildNode recursively median-splits recs, a window of the backing slice
// starting at backing index offset, and returns the partition covering it.
// The pivot record is held by the internal node alone, so every backing
// index lands in exactly one pivot slot or one leaf range.
func buildNode[T any](recs []Record[T], offset, depth, dim, leafThreshold int) *node {
	if len(recs) < leafThreshold || len(recs) < MinLeafThreshold {
		return &node{start: offset, stop: offset + len(recs)}
	}

	axis := depth % dim

	sort.Slice(recs, func(i, j int) bool {
		return coordLess(recs[i].point[axis], recs[j].point[axis])
	})

	median := len(recs) / 2

	return &node{
		pivot: offset + median,
		left:  buildNode(recs[:median], offset, depth+1, dim, leafThreshold),
		right: buildNode(recs[median+1:], offset+median+1, depth+1, dim, leafThreshold),
	}
}

// coordLess orders coordinates with NaN before every other value, so
// construction never fails on NaN input.
func coordLess(a, b float32) bool {
	if math.IsNaN(float64(a)) {
		return !math.IsNaN(float64(b))
	}
	return a < b
}

// Len returns the number of records stored in the tree.
func (t *KDTree[T]) Len() int { return len(t.records) }

// Dimension returns the fixed point dimension of the tree.
func (t *KDTree[T]) Dimension() int { return t.dimension }
