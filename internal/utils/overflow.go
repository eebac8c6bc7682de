package utils

import (
	"fmt"
	"math"
)

// CheckMultiplyOverflow checks if multiplying two uint64 values would overflow.
// Returns an error if overflow would occur.
func CheckMultiplyOverflow(a, b uint64) error {
	if a == 0 || b == 0 {
		return nil // No overflow when either is zero
	}

	if a > math.MaxUint64/b {
		return fmt.Errorf("multiplication overflow: %d * %d exceeds uint64 max", a, b)
	}

	return nil
}

// SafeMultiply multiplies two uint64 values and returns the result if no overflow occurs.
// Returns 0 and an error if overflow would occur.
func SafeMultiply(a, b uint64) (uint64, error) {
	if err := CheckMultiplyOverflow(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// SafeAdd adds two uint64 values and returns the result if no overflow occurs.
// Returns 0 and an error if overflow would occur.
func SafeAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, fmt.Errorf("addition overflow: %d + %d exceeds uint64 max", a, b)
	}
	return a + b, nil
}

// DimensionsProduct computes the product of all dimension sizes with overflow
// checking at every step. The accumulator starts at 1, so an empty dimension
// list (a scalar) yields 1. A zero-sized dimension yields 0.
//
// The check runs before each multiplication: a later step can wrap the
// accumulator back into range and mask an earlier overflow.
func DimensionsProduct(dimensions []uint32) (uint64, error) {
	count := uint64(1)
	for i, dim := range dimensions {
		product, err := SafeMultiply(count, uint64(dim))
		if err != nil {
			return 0, fmt.Errorf("dimension product overflow at dimension %d: %w", i, err)
		}
		count = product
	}
	return count, nil
}
