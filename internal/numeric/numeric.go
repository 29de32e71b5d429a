// Package numeric collects small generic numeric helpers shared across
// packages that would otherwise each hand-duplicate a per-type
// min/max/clamp/lerp. Go's generics let every caller share one
// implementation instead.
package numeric

import "golang.org/x/exp/constraints"

// Clamp returns val bounded to [lo, hi].
func Clamp[T constraints.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Lerp linearly interpolates between a and b by factor.
func Lerp[T constraints.Float](a, b, factor T) T {
	return a + (b-a)*factor
}

// Min returns the lesser of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Square returns a*a.
func Square[T constraints.Integer | constraints.Float](a T) T {
	return a * a
}
