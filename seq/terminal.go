package seq

import (
	"cmp"
	"slices"
)

// Min returns the smallest element of xs according to cmp.
// Returns ErrEmpty when xs has no elements. Ties resolve to the first occurrence.
func Min[T any](xs []T, cmp func(a, b T) int) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return slices.MinFunc(xs, cmp), nil
}

// Max returns the largest element of xs according to cmp.
// Returns ErrEmpty when xs has no elements. Ties resolve to the first occurrence.
func Max[T any](xs []T, cmp func(a, b T) int) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return slices.MaxFunc(xs, cmp), nil
}

// MinBy returns the element of xs with the smallest key.
func MinBy[T any, K cmp.Ordered](xs []T, key func(T) K) (T, error) {
	return Min(xs, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}

// MaxBy returns the element of xs with the largest key.
func MaxBy[T any, K cmp.Ordered](xs []T, key func(T) K) (T, error) {
	return Max(xs, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}

// FindFirst returns the first element of xs satisfying pred, or ErrNotFound.
func FindFirst[T any](xs []T, pred func(T) bool) (T, error) {
	for _, x := range xs {
		if pred(x) {
			return x, nil
		}
	}
	var zero T

	return zero, ErrNotFound
}

// Count returns how many elements of xs satisfy pred.
func Count[T any](xs []T, pred func(T) bool) int {
	n := 0
	for _, x := range xs {
		if pred(x) {
			n++
		}
	}

	return n
}

// Sum adds up the elements of xs. The sum of an empty slice is zero.
func Sum[N Number](xs []N) N {
	var total N
	for _, x := range xs {
		total += x
	}

	return total
}

// SumBy adds up fn(x) for every element of xs.
func SumBy[T any, N Number](xs []T, fn func(T) N) N {
	var total N
	for _, x := range xs {
		total += fn(x)
	}

	return total
}

// Average returns the arithmetic mean of xs as float64, or ErrEmpty.
func Average[N Number](xs []N) (float64, error) {
	return AverageBy(xs, func(x N) N { return x })
}

// AverageBy returns the arithmetic mean of fn(x) over xs, or ErrEmpty.
func AverageBy[T any, N Number](xs []T, fn func(T) N) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	var total float64
	for _, x := range xs {
		total += float64(fn(x))
	}

	return total / float64(len(xs)), nil
}

// OrElse returns v when err is nil and fallback otherwise.
//
//	avg := seq.OrElse(seq.Average(ages))(0)
func OrElse[T any](v T, err error) func(fallback T) T {
	return func(fallback T) T {
		if err != nil {
			return fallback
		}
		return v
	}
}

// Reduce folds xs from the left, starting with identity.
// An empty xs yields identity.
func Reduce[T, A any](xs []T, identity A, fn func(acc A, x T) A) A {
	acc := identity
	for _, x := range xs {
		acc = fn(acc, x)
	}

	return acc
}

// ReduceOptional folds xs from the left using the first element as the seed.
// Returns ErrEmpty when xs has no elements.
func ReduceOptional[T any](xs []T, fn func(a, b T) T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return Reduce(xs[1:], xs[0], fn), nil
}
