package kdgo

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// KNNSearchBatch runs one k-nearest-neighbor search per query point and
// returns the results in query order.
//
// The tree is immutable after construction, so the searches execute
// concurrently without synchronization, bounded by GOMAXPROCS. The first
// failing search (e.g. a dimension mismatch) cancels the remaining work and
// is returned; individual searches are not cancellable once started.
func (t *KDTree[T]) KNNSearchBatch(ctx context.Context, queries [][]float32, k int, optFns ...func(o *SearchOptions[T])) ([][]Neighbor[T], error) {
	results := make([][]Neighbor[T], len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			neighbors, err := t.KNNSearch(q, k, optFns...)
			if err != nil {
				return err
			}

			results[i] = neighbors
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
