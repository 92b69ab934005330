package poolprobe

import "fmt"

const (
	// DefaultPoolSize is the number of values drawn into a pool.
	DefaultPoolSize = 100_000
	// DefaultMin is the smallest value a pool may contain.
	DefaultMin = 0
	// DefaultMax is the largest value a pool may contain (inclusive).
	DefaultMax = 1_000_000
	// DefaultProbes is the number of probe values checked, starting at 0.
	DefaultProbes = 10_000
)

// validateRange reports whether [lo, hi] is a usable inclusive range.
// The span hi-lo+1 must fit in a uint64 draw, which holds for any lo <= hi.
func validateRange(lo, hi int) error {
	if lo > hi {
		return fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRange, lo, hi)
	}
	return nil
}

// validateCount reports whether n is a usable pool size.
func validateCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	return nil
}
