package kdgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when construction is given zero records.
	ErrEmptyInput = errors.New("no records provided")
)

// ErrDimensionMismatch is a named error type for dimension mismatch.
// It is returned when a record or query point disagrees with the
// dimension fixed by the first record of the input.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension is a named error type for an invalid point dimension.
type ErrInvalidDimension struct {
	Dimension int
}

// Error returns the error message for an invalid dimension.
func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
