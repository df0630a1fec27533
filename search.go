package kdgo

import (
	"sort"

	"github.com/hupe1980/kdgo/distance"
	"github.com/hupe1980/kdgo/internal/queue"
)

// Neighbor represents a search result: a payload and its distance to the
// query point.
type Neighbor[T any] struct {
	// Distance is the distance between the query point and the record,
	// in the units of the distance function used for the search.
	Distance float32

	// Data is a copy of the record's payload.
	Data T
}

// KNNSearch returns the k nearest records to q, ascending by distance.
//
// The result has length min(k, tree size); k <= 0 yields an empty result.
// Ties on distance are broken by internal storage order, which is stable
// for a given tree. A query whose dimension disagrees with the tree fails
// with ErrDimensionMismatch.
//
// Searches never mutate the tree and may run concurrently.
func (t *KDTree[T]) KNNSearch(q []float32, k int, optFns ...func(o *SearchOptions[T])) ([]Neighbor[T], error) {
	opts := SearchOptions[T]{
		DistanceFunc: t.opts.DistanceFunc,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.DistanceFunc == nil {
		opts.DistanceFunc = distance.SquaredL2
	}

	if len(q) != t.dimension {
		err := &ErrDimensionMismatch{Expected: t.dimension, Actual: len(q)}
		t.opts.Logger.LogSearch(k, 0, err)
		return nil, err
	}

	if k <= 0 {
		return []Neighbor[T]{}, nil
	}

	top := queue.NewMax(k)
	t.searchNode(t.root, q, k, 0, top, opts.DistanceFunc, opts.Filter)

	// Drain into candidates first so the final sort sees all of them;
	// heap order within equal distances is not the public tie-break.
	candidates := make([]queue.Item, 0, top.Len())
	for {
		item, ok := top.PopItem()
		if !ok {
			break
		}
		candidates = append(candidates, item)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].Index < candidates[j].Index
	})

	results := make([]Neighbor[T], len(candidates))
	for i, c := range candidates {
		results[i] = Neighbor[T]{
			Distance: c.Distance,
			Data:     t.records[c.Index].data,
		}
	}

	t.opts.Logger.LogSearch(k, len(results), nil)

	return results, nil
}

// searchNode descends the partition recursively, keeping the best k
// candidates seen so far in a bounded max-heap whose top is the worst
// kept distance.
func (t *KDTree[T]) searchNode(n *node, q []float32, k, depth int, top *queue.PriorityQueue, distFn distance.Func, filter func(data T) bool) {
	if n.isLeaf() {
		t.scanLeaf(n, q, k, top, distFn, filter)
		return
	}

	pivot := t.records[n.pivot].point

	if filter == nil || filter(t.records[n.pivot].data) {
		top.PushItemBounded(queue.Item{
			Index:    n.pivot,
			Distance: distFn(q, pivot),
		}, k)
	}

	axis := depth % t.dimension
	diff := q[axis] - pivot[axis]

	// Visit the side the query point falls on first; the pruning bound for
	// the far side is only valid once the near side has been explored.
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}

	t.searchNode(near, q, k, depth+1, top, distFn, filter)

	if top.Len() < k {
		// No valid pruning bound yet.
		t.searchNode(far, q, k, depth+1, top, distFn, filter)
		return
	}

	// The minimum distance to anything beyond the splitting hyperplane is
	// |diff|, so diff² is a safe lower bound against the worst kept squared
	// distance.
	if worst, ok := top.TopItem(); ok && diff*diff < worst.Distance {
		t.searchNode(far, q, k, depth+1, top, distFn, filter)
	}
}

// scanLeaf scores every record in the leaf bucket and merges the candidates
// into the heap.
func (t *KDTree[T]) scanLeaf(n *node, q []float32, k int, top *queue.PriorityQueue, distFn distance.Func, filter func(data T) bool) {
	candidates := make([]queue.Item, 0, n.stop-n.start)
	for i := n.start; i < n.stop; i++ {
		if filter != nil && !filter(t.records[i].data) {
			continue
		}
		candidates = append(candidates, queue.Item{
			Index:    i,
			Distance: distFn(q, t.records[i].point),
		})
	}

	// With enough remaining capacity every candidate fits without comparisons.
	if k-top.Len() >= len(candidates) {
		for _, c := range candidates {
			top.PushItem(c)
		}
		return
	}

	// Otherwise insert best first; once the heap is full and the next
	// candidate is no better than the worst kept one, the rest can only
	// be worse or tie.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})

	for _, c := range candidates {
		if top.Len() < k {
			top.PushItem(c)
			continue
		}
		worst, _ := top.TopItem()
		if c.Distance >= worst.Distance {
			break
		}
		top.PopItem()
		top.PushItem(c)
	}
}
