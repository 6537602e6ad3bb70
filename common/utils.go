package common

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Clamp restricts v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: the lower bound
//   - hi: the upper bound
//
// Returns:
//   - T: v limited to the range [lo, hi]
func Clamp[T int | float32 | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapIndex advances an index by delta within a cyclic range of n elements.
// Negative deltas wrap around to the end of the range.
//
// Parameters:
//   - i: the current index
//   - delta: how far to advance (may be negative)
//   - n: the number of elements in the range (must be > 0)
//
// Returns:
//   - int: the wrapped index in [0, n)
func WrapIndex(i, delta, n int) int {
	if n <= 0 {
		panic("common: WrapIndex requires a positive range")
	}
	r := (i + delta) % n
	if r < 0 {
		r += n
	}
	return r
}
