package kdgo

import (
	"testing"

	"github.com/hupe1980/kdgo/testutil"
)

func BenchmarkNew(b *testing.B) {
	rng := testutil.NewRNG(42)
	vectors := rng.UniformVectors(10000, 8)
	records := make([]Record[int], len(vectors))
	for i, v := range vectors {
		records[i] = NewRecord(i, v)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(records); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKNNSearch(b *testing.B) {
	rng := testutil.NewRNG(42)
	vectors := rng.UniformVectors(10000, 8)
	records := make([]Record[int], len(vectors))
	for i, v := range vectors {
		records[i] = NewRecord(i, v)
	}

	tree, err := New(records)
	if err != nil {
		b.Fatal(err)
	}

	queries := rng.UniformVectors(1000, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.KNNSearch(queries[i%len(queries)], 10); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBruteForceSearch(b *testing.B) {
	rng := testutil.NewRNG(42)
	vectors := rng.UniformVectors(10000, 8)
	queries := rng.UniformVectors(1000, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testutil.BruteForceSearch(vectors, queries[i%len(queries)], 10)
	}
}
