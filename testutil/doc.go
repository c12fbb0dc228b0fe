// Package testutil provides testing utilities for embedgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible random vectors and
// embeddings.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := make([]float32, 128)
//	rng.FillUniform(vec) // uniform [0, 1)
//
//	emb := testutil.RandomEmbedding(rng, 128)
package testutil
