package embedgo

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/hupe1980/embedgo/internal/vmath"
)

// MaxDim is the maximum number of components an Embedding may hold.
// A safety ceiling against accidental misuse, not a mathematical limit.
const MaxDim = math.MaxUint16

// Embedding is a fixed-dimension vector of float32 components.
//
// The dimension is fixed at construction. Components are stored as float32;
// all arithmetic accumulates in float64 to bound rounding error.
//
// An Embedding owns its component slice exclusively: constructors copy their
// input and Values returns a fresh copy. Pairwise operations never mutate
// their operands; only Set and Normalize mutate the receiver and require
// external synchronization when the same instance is shared across
// goroutines (see the package documentation).
type Embedding struct {
	values []float32
}

// New creates an Embedding from a copy of values.
//
// It returns ErrEmptyInput for zero-length input and ErrDimensionTooLarge
// when len(values) exceeds MaxDim.
func New(values []float32) (*Embedding, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if len(values) > MaxDim {
		return nil, &ErrDimensionTooLarge{Dimension: len(values)}
	}

	return &Embedding{values: slices.Clone(values)}, nil
}

// FromValues creates an Embedding from a heterogeneous numeric sequence, as
// delivered by a host boundary that unmarshals into []any. Integer and float
// kinds are coerced to float32; any other element fails with
// ErrNonNumericElement naming the offending index.
func FromValues(values []any) (*Embedding, error) {
	out := make([]float32, len(values))
	for i, v := range values {
		f, ok := coerceFloat32(v)
		if !ok {
			return nil, &ErrNonNumericElement{Index: i, Value: v}
		}
		out[i] = f
	}

	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	if len(out) > MaxDim {
		return nil, &ErrDimensionTooLarge{Dimension: len(out)}
	}

	return &Embedding{values: out}, nil
}

func coerceFloat32(v any) (float32, bool) {
	switch n := v.(type) {
	case float32:
		return n, true
	case float64:
		return float32(n), true
	case int:
		return float32(n), true
	case int8:
		return float32(n), true
	case int16:
		return float32(n), true
	case int32:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint:
		return float32(n), true
	case uint8:
		return float32(n), true
	case uint16:
		return float32(n), true
	case uint32:
		return float32(n), true
	case uint64:
		return float32(n), true
	default:
		return 0, false
	}
}

// Dim returns the number of components.
func (e *Embedding) Dim() int {
	return len(e.values)
}

// Get returns the component at index i. The second return value is false for
// negative or out-of-range indices; this is safe indexing, not an error.
func (e *Embedding) Get(i int) (float32, bool) {
	if i < 0 || i >= len(e.values) {
		return 0, false
	}
	return e.values[i], true
}

// Set overwrites the component at index i. The dimension is fixed, so i must
// be in range: negative indices fail with ErrNegativeIndex and indices at or
// beyond Dim fail with ErrIndexOutOfRange.
func (e *Embedding) Set(i int, v float32) error {
	if i < 0 {
		return &ErrNegativeIndex{Index: i}
	}
	if i >= len(e.values) {
		return &ErrIndexOutOfRange{Index: i, Dim: len(e.values)}
	}
	e.values[i] = v

	return nil
}

// Values returns a copy of all components in order. Mutating the returned
// slice never affects the Embedding.
func (e *Embedding) Values() []float32 {
	return slices.Clone(e.values)
}

// Clone returns an independent copy of the Embedding.
func (e *Embedding) Clone() *Embedding {
	return &Embedding{values: slices.Clone(e.values)}
}

// Magnitude returns the L2 norm, accumulated in float64. The magnitude of a
// zero vector is exactly 0.
func (e *Embedding) Magnitude() float64 {
	return vmath.Norm(e.values)
}

// Normalize scales the Embedding to unit length in place.
//
// A zero-magnitude receiver fails with ErrZeroVector and is left unmodified;
// validation happens before any mutation, so the operation is atomic from
// the caller's perspective.
func (e *Embedding) Normalize() error {
	mag := vmath.Norm(e.values)
	if mag == 0 {
		return ErrZeroVector
	}

	vmath.ScaleInPlace(e.values, float32(1/mag))

	return nil
}

// Dot returns the dot product of e and other, accumulated in float64.
// Embeddings of different dimensions fail with ErrDimensionMismatch.
func (e *Embedding) Dot(other *Embedding) (float64, error) {
	if len(e.values) != len(other.values) {
		return 0, &ErrDimensionMismatch{Expected: len(e.values), Actual: len(other.values)}
	}

	return vmath.Dot(e.values, other.values), nil
}

// Distance returns the Euclidean (L2) distance between e and other.
// Embeddings of different dimensions fail with ErrDimensionMismatch.
func (e *Embedding) Distance(other *Embedding) (float64, error) {
	if len(e.values) != len(other.values) {
		return 0, &ErrDimensionMismatch{Expected: len(e.values), Actual: len(other.values)}
	}

	return math.Sqrt(vmath.SquaredL2(e.values, other.values)), nil
}

// CosineSimilarity returns the cosine of the angle between e and other,
// clamped to [-1, 1].
//
// The dot product and both squared norms are accumulated in a single pass
// over the two vectors. If either vector has zero magnitude the similarity
// is 0 (neutral), not an error and never NaN. Embeddings of different
// dimensions fail with ErrDimensionMismatch.
func (e *Embedding) CosineSimilarity(other *Embedding) (float64, error) {
	if len(e.values) != len(other.values) {
		return 0, &ErrDimensionMismatch{Expected: len(e.values), Actual: len(other.values)}
	}

	dot, normA, normB := vmath.CosineTerms(e.values, other.values)
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	// Clamp to absorb floating-point rounding: consumers assume [-1, 1].
	sim := dot / math.Sqrt(normA*normB)

	return min(max(sim, -1), 1), nil
}

// String returns a compact representation such as
// "Embedding(dim: 3, values: [1 2 3])". Long vectors are truncated.
func (e *Embedding) String() string {
	const maxShown = 8

	var sb strings.Builder
	fmt.Fprintf(&sb, "Embedding(dim: %d, values: [", len(e.values))
	for i, v := range e.values {
		if i == maxShown {
			sb.WriteString(" ...")
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString("])")

	return sb.String()
}
