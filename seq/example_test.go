// Package seq_test provides runnable examples for the seq package.
package seq_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/solidstream/seq"
)

// ExampleDistinct removes repeated values while keeping first occurrences.
func ExampleDistinct() {
	fmt.Println(seq.Distinct([]int{1, 1, 1, 1, 2, 3, 3, 3, 3, 4, 5, 55, 5, 5, 5}))
	// Output: [1 2 3 4 5 55]
}

// ExampleMin shows the ErrEmpty contract next to a normal query.
func ExampleMin() {
	lo, _ := seq.Min([]int{3, 12, 34, 5, 23, 12, 54, 65}, cmp.Compare[int])
	fmt.Println(lo)

	_, err := seq.Min([]int{}, cmp.Compare[int])
	fmt.Println(err)
	// Output:
	// 3
	// seq: empty sequence
}

// ExampleGroupBy partitions numbers by parity and prints groups in key order.
func ExampleGroupBy() {
	g := seq.GroupBy(seq.RangeClosed(1, 10), func(n int) string {
		if n%2 == 0 {
			return "Even"
		}
		return "Odd"
	})
	for _, k := range g.SortedKeys(cmp.Compare[string]) {
		members, _ := g.Get(k)
		fmt.Println(k, members)
	}
	// Output:
	// Even [2 4 6 8 10]
	// Odd [1 3 5 7 9]
}

// ExampleStatistics prints a summary of 1..5.
func ExampleStatistics() {
	s := seq.Statistics([]int{1, 2, 3, 4, 5})
	fmt.Println(s.Count, s.Sum, s.Average())
	fmt.Println(s)
	// Output:
	// 5 15 3
	// DoubleSummaryStatistics{count=5, sum=15.000000, min=1.000000, average=3.000000, max=5.000000}
}
