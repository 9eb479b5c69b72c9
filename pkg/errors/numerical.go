package errors

import (
	"math"
)

// IsFinite32 reports whether v is neither NaN nor Inf.
func IsFinite32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// CheckScalar32 checks a single float32 value and returns a
// NumericalInstabilityError if it is NaN or Inf.
func CheckScalar32(operation string, value float32) error {
	if !IsFinite32(value) {
		return NewNumericalInstabilityError(operation, []float32{value}, 0)
	}
	return nil
}

// CheckSlice32 scans values in order and returns a NumericalInstabilityError
// describing the first non-finite value found, or nil if all values are
// finite. At most ten offending values are collected for the error message.
func CheckSlice32(operation string, values []float32) error {
	first := -1
	var bad []float32
	for i, v := range values {
		if IsFinite32(v) {
			continue
		}
		if first < 0 {
			first = i
		}
		bad = append(bad, v)
		if len(bad) >= 10 {
			break
		}
	}
	if first >= 0 {
		return NewNumericalInstabilityError(operation, bad, first)
	}
	return nil
}

// CountNonFinite32 returns how many values in the slice are NaN or Inf.
// Callers use it to report how many voxels of a batch were affected by a
// degenerate or ill-conditioned design.
func CountNonFinite32(values []float32) int {
	n := 0
	for _, v := range values {
		if !IsFinite32(v) {
			n++
		}
	}
	return n
}
