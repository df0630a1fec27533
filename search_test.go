package kdgo

import (
	"testing"

	"github.com/hupe1980/kdgo/distance"
	"github.com/hupe1980/kdgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorRecords() []Record[string] {
	return []Record[string]{
		NewRecord("blue", []float32{0, 0, 255}),
		NewRecord("red", []float32{255, 0, 0}),
		NewRecord("navy", []float32{17, 4, 89}),
		NewRecord("purple", []float32{171, 3, 255}),
		NewRecord("light-blue", []float32{61, 118, 224}),
		NewRecord("pink", []float32{255, 3, 213}),
		NewRecord("yellow", []float32{255, 234, 0}),
		NewRecord("green", []float32{16, 145, 25}),
		NewRecord("orange", []float32{255, 106, 0}),
	}
}

func TestKNNSearch(t *testing.T) {
	t.Run("Cities", func(t *testing.T) {
		tree, err := New(cityRecords(), func(o *Options) {
			o.LeafThreshold = 1
			o.Metric = distance.MetricSquaredL2
		})
		require.NoError(t, err)

		// Arles
		neighbors, err := tree.KNNSearch([]float32{43.6766, 4.6278}, 1)
		require.NoError(t, err)
		require.Len(t, neighbors, 1)
		assert.Equal(t, "Paris", neighbors[0].Data)
	})

	t.Run("Colors", func(t *testing.T) {
		tree, err := New(colorRecords(), func(o *Options) {
			o.LeafThreshold = 1
		})
		require.NoError(t, err)

		// Light orange
		neighbors, err := tree.KNNSearch([]float32{237, 139, 69}, 2)
		require.NoError(t, err)
		require.Len(t, neighbors, 2)
		assert.Equal(t, "orange", neighbors[0].Data)
		assert.Equal(t, "yellow", neighbors[1].Data)
		assert.InDelta(t, 6174, neighbors[0].Distance, 1e-3)
		assert.InDelta(t, 14110, neighbors[1].Distance, 1e-3)
		assert.Less(t, neighbors[0].Distance, neighbors[1].Distance)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		tree, err := New(cityRecords())
		require.NoError(t, err)

		_, err = tree.KNNSearch([]float32{1, 2, 3}, 1)
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
	})

	t.Run("ZeroK", func(t *testing.T) {
		tree, err := New(cityRecords())
		require.NoError(t, err)

		neighbors, err := tree.KNNSearch([]float32{0, 0}, 0)
		require.NoError(t, err)
		assert.Empty(t, neighbors)
	})

	t.Run("KLargerThanTree", func(t *testing.T) {
		tree, err := New(cityRecords(), func(o *Options) {
			o.LeafThreshold = 1
		})
		require.NoError(t, err)

		neighbors, err := tree.KNNSearch([]float32{43.6766, 4.6278}, 100)
		require.NoError(t, err)
		require.Len(t, neighbors, 12)
		for i := 1; i < len(neighbors); i++ {
			assert.LessOrEqual(t, neighbors[i-1].Distance, neighbors[i].Distance)
		}
		assert.Equal(t, "Paris", neighbors[0].Data)
	})

	t.Run("Filter", func(t *testing.T) {
		tree, err := New(cityRecords(), func(o *Options) {
			o.LeafThreshold = 1
		})
		require.NoError(t, err)

		neighbors, err := tree.KNNSearch([]float32{43.6766, 4.6278}, 1, func(o *SearchOptions[string]) {
			o.Filter = func(data string) bool { return data != "Paris" }
		})
		require.NoError(t, err)
		require.Len(t, neighbors, 1)
		assert.Equal(t, "Rome", neighbors[0].Data)
	})

	t.Run("WeightedDistance", func(t *testing.T) {
		tree, err := New([]Record[string]{
			NewRecord("x-near", []float32{1, 10}),
			NewRecord("y-near", []float32{10, 1}),
			NewRecord("far", []float32{50, 50}),
		})
		require.NoError(t, err)

		// Penalizing the y axis makes the record with the small y coordinate win.
		neighbors, err := tree.KNNSearch([]float32{0, 0}, 1, func(o *SearchOptions[string]) {
			o.DistanceFunc = distance.WeightedSquaredL2([]float32{1, 100})
		})
		require.NoError(t, err)
		require.Len(t, neighbors, 1)
		assert.Equal(t, "y-near", neighbors[0].Data)
	})
}

func TestKNNSearchVersusBruteForce(t *testing.T) {
	rng := testutil.NewRNG(1337)

	vectors := rng.UniformRangeVectors(500, 3, -100, 100)
	records := make([]Record[int], len(vectors))
	for i, v := range vectors {
		records[i] = NewRecord(i, v)
	}

	for _, threshold := range []int{3, 10, 30} {
		tree, err := New(records, func(o *Options) {
			o.LeafThreshold = threshold
		})
		require.NoError(t, err)

		for q := 0; q < 25; q++ {
			query := rng.UniformRangeVectors(1, 3, -120, 120)[0]

			for _, k := range []int{1, 2, 7, 50, 500} {
				neighbors, err := tree.KNNSearch(query, k)
				require.NoError(t, err)

				expected := testutil.BruteForceSearch(vectors, query, k)
				require.Len(t, neighbors, len(expected))

				for i := range expected {
					assert.InDelta(t, expected[i].Distance, neighbors[i].Distance, 1e-4,
						"threshold=%d k=%d rank=%d", threshold, k, i)
				}
			}
		}
	}
}

func TestKNNSearchMonotonicK(t *testing.T) {
	rng := testutil.NewRNG(7)

	vectors := rng.UniformVectors(200, 2)
	records := make([]Record[int], len(vectors))
	for i, v := range vectors {
		records[i] = NewRecord(i, v)
	}

	tree, err := New(records, func(o *Options) {
		o.LeafThreshold = 5
	})
	require.NoError(t, err)

	query := []float32{0.5, 0.5}

	prev, err := tree.KNNSearch(query, 1)
	require.NoError(t, err)

	for k := 2; k <= 20; k++ {
		next, err := tree.KNNSearch(query, k)
		require.NoError(t, err)
		require.Len(t, next, k)

		// Growing k must keep the first k-1 distances unchanged.
		for i := range prev {
			assert.Equal(t, prev[i].Distance, next[i].Distance, "k=%d rank=%d", k, i)
		}
		prev = next
	}
}

func TestKNNSearchDeterminism(t *testing.T) {
	rng := testutil.NewRNG(99)

	vectors := rng.UniformVectors(300, 4)
	records := make([]Record[int], len(vectors))
	for i, v := range vectors {
		records[i] = NewRecord(i, v)
	}

	query := []float32{0.3, 0.8, 0.1, 0.5}

	var first []Neighbor[int]
	for run := 0; run < 3; run++ {
		tree, err := New(records, func(o *Options) {
			o.LeafThreshold = 10
		})
		require.NoError(t, err)

		neighbors, err := tree.KNNSearch(query, 15)
		require.NoError(t, err)

		if first == nil {
			first = neighbors
			continue
		}
		assert.Equal(t, first, neighbors, "run=%d", run)
	}
}
