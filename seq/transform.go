package seq

import "slices"

// Range returns the integers in [start, end). It is empty when start >= end.
// It panics with ErrRangeTooLarge when the range holds more than MaxRangeLen values.
func Range(start, end int) []int {
	if start >= end {
		return []int{}
	}

	return fill(start, end-1)
}

// RangeClosed returns the integers in [start, end]. It is empty when start > end.
// It panics with ErrRangeTooLarge when the range holds more than MaxRangeLen values.
func RangeClosed(start, end int) []int {
	if start > end {
		return []int{}
	}

	return fill(start, end)
}

// fill returns start, start+1, ..., last. Requires start <= last.
// The span is computed in uint so extreme bounds cannot overflow.
func fill(start, last int) []int {
	span := uint(last) - uint(start)
	if span >= MaxRangeLen {
		panic(ErrRangeTooLarge)
	}
	out := make([]int, int(span)+1)
	for i := range out {
		out[i] = start + i
	}

	return out
}

// Filter returns the elements of xs for which pred reports true, in input order.
func Filter[T any](xs []T, pred func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}

	return out
}

// Map applies fn to every element of xs.
func Map[T, R any](xs []T, fn func(T) R) []R {
	out := make([]R, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}

	return out
}

// FlatMap applies fn to every element of xs and concatenates the results.
func FlatMap[T, R any](xs []T, fn func(T) []R) []R {
	out := make([]R, 0, len(xs))
	for _, x := range xs {
		out = append(out, fn(x)...)
	}

	return out
}

// Distinct removes duplicates from xs, keeping the first occurrence of each value.
func Distinct[T comparable](xs []T) []T {
	return DistinctBy(xs, func(x T) T { return x })
}

// DistinctBy removes elements whose key was already seen, keeping the first occurrence.
// Two elements are duplicates when key returns equal values for them.
func DistinctBy[T any, K comparable](xs []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		k := key(x)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, x)
	}

	return out
}

// Sorted returns a stably sorted copy of xs ordered by cmp.
func Sorted[T any](xs []T, cmp func(a, b T) int) []T {
	out := slices.Clone(xs)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, cmp)

	return out
}
