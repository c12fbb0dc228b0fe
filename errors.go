package embedgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when an embedding is constructed from a
	// zero-length input.
	ErrEmptyInput = errors.New("cannot create embedding from empty input")

	// ErrZeroVector is returned when normalizing a zero-magnitude embedding.
	ErrZeroVector = errors.New("cannot normalize zero vector")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
)

// ErrDimensionTooLarge indicates a construction input exceeding MaxDim.
type ErrDimensionTooLarge struct {
	Dimension int
}

func (e *ErrDimensionTooLarge) Error() string {
	return fmt.Sprintf("dimension too large: %d exceeds maximum %d", e.Dimension, MaxDim)
}

// ErrNonNumericElement indicates an input element that cannot be coerced to
// a number. Index identifies the offending element.
type ErrNonNumericElement struct {
	Index int
	Value any
}

func (e *ErrNonNumericElement) Error() string {
	return fmt.Sprintf("non-numeric element at index %d: %T", e.Index, e.Value)
}

// ErrNegativeIndex indicates a negative index passed to an element accessor.
type ErrNegativeIndex struct {
	Index int
}

func (e *ErrNegativeIndex) Error() string {
	return fmt.Sprintf("negative index: %d", e.Index)
}

// ErrIndexOutOfRange indicates an element write beyond the dimension of a
// fixed-dimension embedding.
type ErrIndexOutOfRange struct {
	Index int
	Dim   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for dimension %d", e.Index, e.Dim)
}

// ErrDimensionMismatch indicates two embeddings of different dimensions
// passed to a pairwise operation.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
