package embedgo

import "slices"

// Dynamic is the growable construction policy: a zero-length vector whose
// storage expands on write. It is a builder, not an Embedding — call
// Embedding to snapshot it through the strict validation path. The two
// policies never mix: a Dynamic grows freely, an Embedding never does.
//
// Like Embedding, a Dynamic requires external synchronization when mutated
// while shared across goroutines.
type Dynamic struct {
	values []float32
}

// NewDynamic creates an empty, growable vector.
func NewDynamic() *Dynamic {
	return &Dynamic{}
}

// Dim returns the current number of components.
func (d *Dynamic) Dim() int {
	return len(d.values)
}

// Get returns the component at index i. The second return value is false for
// negative or out-of-range indices.
func (d *Dynamic) Get(i int) (float32, bool) {
	if i < 0 || i >= len(d.values) {
		return 0, false
	}
	return d.values[i], true
}

// Set writes the component at index i, growing the storage and zero-filling
// any intermediate slots when i is beyond the current length. Negative
// indices fail with ErrNegativeIndex.
func (d *Dynamic) Set(i int, v float32) error {
	if i < 0 {
		return &ErrNegativeIndex{Index: i}
	}
	if i >= len(d.values) {
		d.values = append(d.values, make([]float32, i+1-len(d.values))...)
	}
	d.values[i] = v

	return nil
}

// Values returns a copy of all components in order.
func (d *Dynamic) Values() []float32 {
	return slices.Clone(d.values)
}

// Embedding snapshots the current components into a fixed-dimension
// Embedding via the strict construction path, so an empty or oversized
// Dynamic is rejected with the strict policy's errors.
func (d *Dynamic) Embedding() (*Embedding, error) {
	return New(d.values)
}
