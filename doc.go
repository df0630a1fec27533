// Package kdgo provides a generic k-d tree for exact k-nearest-neighbor search.
//
// The tree is built once from a complete set of records and is immutable
// afterwards: there is no deletion, incremental insertion, or persistence.
// Rebuilding means discarding the old tree and constructing a new one.
// Because the tree never changes after construction, any number of searches
// may run concurrently against it without synchronization.
//
// # Quick Start
//
// Build a tree and query it:
//
//	tree, err := kdgo.New([]kdgo.Record[string]{
//	    kdgo.NewRecord("Paris", []float32{48.857, 2.351}),
//	    kdgo.NewRecord("London", []float32{51.507, -0.128}),
//	    kdgo.NewRecord("Rome", []float32{41.900, 12.500}),
//	})
//	if err != nil {
//	    panic(err)
//	}
//
//	neighbors, err := tree.KNNSearch([]float32{43.6766, 4.6278}, 1)
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(neighbors[0].Data) // Paris
//
// # Small Inputs
//
// Inputs smaller than the leaf threshold (or smaller than three records)
// produce a tree whose root is a single leaf bucket. This is a valid tree:
// searches against it fall back to a brute-force scan of the bucket. Earlier
// revisions of this design rejected leaf-only roots; kdgo deliberately
// accepts them so that small datasets remain usable.
//
// # Distance Functions
//
// The default metric is squared Euclidean distance. Any metric from the
// distance package (or a custom distance.Func) may be substituted per tree
// or per search, as long as it is a monotonic function of per-axis absolute
// difference. Metrics that violate that assumption break the hyperplane
// pruning bound and are unsupported.
package kdgo
