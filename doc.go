// Package embedgo provides a fixed-precision embedding vector type and the
// linear-algebra operations used to compare high-dimensional vectors
// produced by machine-learning models:
//
//   - Construction with strict validation (dimension 1..65535, numeric input)
//   - Magnitude (L2 norm) and in-place normalization
//   - Dot product, Euclidean distance, and cosine similarity
//   - Exact top-k ranking of candidates with parallel scanning
//
// Components are stored as float32; every accumulation runs in float64 to
// bound rounding error, and cosine similarity is clamped to [-1, 1] so
// downstream consumers never observe an out-of-range score.
//
// # Quick Start
//
//	a, err := embedgo.New([]float32{1, 0})
//	if err != nil {
//	    panic(err)
//	}
//	b, _ := embedgo.New([]float32{0, 1})
//
//	sim, err := a.CosineSimilarity(b) // 0.0
//	if err != nil {
//	    panic(err)
//	}
//
// # Construction Policies
//
// The default policy is strict: New and FromValues reject empty input and
// inputs beyond MaxDim, and the resulting Embedding has a fixed dimension.
// The alternate policy is the Dynamic builder, a growable vector whose Set
// zero-fills on growth; its Embedding method snapshots through the strict
// validation path, so the two policies never silently mix.
//
// # Ranking
//
//	ranker := embedgo.NewRanker(
//	    embedgo.WithParallelism(4),
//	    embedgo.WithLogger(embedgo.NewTextLogger(slog.LevelDebug)),
//	)
//	matches, err := ranker.TopK(ctx, query, candidates, 10)
//
// The scan is exact: every candidate is scored. There is no approximate or
// indexed search in this package.
//
// # Concurrency
//
// Embedding and Dynamic are lightweight value types with no internal
// locking. Read-only operations (Dim, Get, Values, Magnitude, Dot, Distance,
// CosineSimilarity) may run concurrently on the same instance. The mutating
// operations (Set, Normalize) require exclusive access to their receiver:
// external synchronization is the caller's responsibility when an instance
// is shared across goroutines.
package embedgo
