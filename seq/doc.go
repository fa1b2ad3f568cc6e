// Package seq provides generic sequence operations over Go slices:
// filtering, mapping, de-duplication, ordering queries, reduction,
// grouping and summary statistics.
//
// What:
//
//   - Intermediate operations return new slices: Filter, Map, FlatMap,
//     Distinct, DistinctBy, Sorted, Range, RangeClosed.
//   - Terminal operations fold a slice into a value: Min, Max, MinBy, MaxBy,
//     FindFirst, Count, Sum, SumBy, Average, AverageBy, Reduce, ReduceOptional.
//   - Collectors build keyed results: GroupBy, CountBy, Statistics.
//   - Parallel helpers spread work across goroutines: FindAny, ParallelMap.
//
// Guarantees:
//
//   - No operation mutates or retains its input slice.
//   - Output order follows input order, except Sorted and Groups.SortedKeys.
//   - Ties in Min/Max/MinBy/MaxBy resolve to the first occurrence.
//
// Errors:
//
//   - ErrEmpty: a query that needs at least one element got none.
//   - ErrNotFound: no element satisfied the predicate.
//   - ErrInvalidWorkers: WithWorkers was given a value below 1.
//   - ErrRangeTooLarge: panic value when Range/RangeClosed would exceed MaxRangeLen values.
//
// Absent results are reported through these sentinels rather than panics;
// use OrElse to substitute a fallback value.
package seq
