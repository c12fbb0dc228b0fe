// Package vmath provides scalar float32 vector kernels with float64
// accumulation. This is an internal package - external users should use the
// embedgo package.
//
// Accumulating in float64 bounds the rounding error for high-dimensional
// inputs; storage stays float32.
package vmath

import "math"

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float64 {
	var ret float64
	for i := range a {
		ret += float64(a[i]) * float64(b[i])
	}

	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float64 {
	var distance float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		distance += d * d
	}

	return distance
}

// Norm calculates the L2 norm (magnitude) of v.
func Norm(v []float32) float64 {
	return math.Sqrt(Dot(v, v))
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float32, scalar float32) {
	for i := range a {
		a[i] *= scalar
	}
}

// CosineTerms accumulates the three cosine similarity terms in a single pass
// over both vectors. Assumes vectors are the same length.
func CosineTerms(a, b []float32) (dot, normA, normB float64) {
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])

		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	return dot, normA, normB
}
