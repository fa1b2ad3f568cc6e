package seq_test

import (
	"cmp"
	"math"
	"strings"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/solidstream/seq"
)

//----------------------------------------------------------------------------//
// Range Tests
//----------------------------------------------------------------------------//

// TestRange checks half-open and closed integer ranges, including empty ones.
func TestRange(t *testing.T) {
	cases := []struct {
		name string
		got  []int
		want []int
	}{
		{"HalfOpen", seq.Range(0, 5), []int{0, 1, 2, 3, 4}},
		{"HalfOpenEmpty", seq.Range(3, 3), []int{}},
		{"HalfOpenReversed", seq.Range(5, 1), []int{}},
		{"Closed", seq.RangeClosed(0, 3), []int{0, 1, 2, 3}},
		{"ClosedSingle", seq.RangeClosed(7, 7), []int{7}},
		{"ClosedReversed", seq.RangeClosed(2, 1), []int{}},
		{"ClosedAtMaxInt", seq.RangeClosed(math.MaxInt-2, math.MaxInt), []int{math.MaxInt - 2, math.MaxInt - 1, math.MaxInt}},
		{"ClosedAtMinInt", seq.RangeClosed(math.MinInt, math.MinInt+1), []int{math.MinInt, math.MinInt + 1}},
		{"HalfOpenAtMaxInt", seq.Range(math.MaxInt-1, math.MaxInt), []int{math.MaxInt - 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
	assert.Len(t, seq.Range(0, 10), 10)
	assert.Len(t, seq.RangeClosed(0, 10), 11)
}

// TestRange_TooLarge panics with ErrRangeTooLarge instead of a runtime allocation failure.
func TestRange_TooLarge(t *testing.T) {
	assert.PanicsWithError(t, seq.ErrRangeTooLarge.Error(), func() {
		_ = seq.Range(math.MinInt, math.MaxInt)
	})
	assert.PanicsWithError(t, seq.ErrRangeTooLarge.Error(), func() {
		_ = seq.RangeClosed(math.MinInt, math.MaxInt)
	})
	assert.PanicsWithError(t, seq.ErrRangeTooLarge.Error(), func() {
		_ = seq.RangeClosed(0, seq.MaxRangeLen)
	})
}

//----------------------------------------------------------------------------//
// Filter / Map / FlatMap Tests
//----------------------------------------------------------------------------//

// TestFilter selects even numbers and long words, keeping input order.
func TestFilter(t *testing.T) {
	evens := seq.Filter([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, evens)

	words := []string{"apple", "banana", "orange", "pear", "grape"}
	long := seq.Filter(words, func(s string) bool { return len(s) > 5 })
	assert.Equal(t, []string{"banana", "orange"}, long)

	assert.Empty(t, seq.Filter([]int(nil), func(int) bool { return true }))
}

// TestFilter_DoesNotMutateInput ensures the input slice is left untouched.
func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := []int{5, 4, 3, 2, 1}
	_ = seq.Filter(in, func(n int) bool { return n < 3 })
	assert.Equal(t, []int{5, 4, 3, 2, 1}, in)
}

// TestMap covers type-changing and type-preserving transformations.
func TestMap(t *testing.T) {
	words := []string{"apple", "banana", "orange", "pear"}
	assert.Equal(t, []string{"APPLE", "BANANA", "ORANGE", "PEAR"}, seq.Map(words, strings.ToUpper))
	assert.Equal(t, []int{5, 6, 6, 4}, seq.Map(words, func(s string) int { return len(s) }))
	assert.Empty(t, seq.Map([]string{}, strings.ToUpper))
}

// TestFlatMap concatenates per-element results in order.
func TestFlatMap(t *testing.T) {
	got := seq.FlatMap([]string{"a b", "c", ""}, strings.Fields)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

//----------------------------------------------------------------------------//
// Distinct Tests
//----------------------------------------------------------------------------//

// TestDistinct keeps first occurrences in their original order.
func TestDistinct(t *testing.T) {
	nums := []int{1, 1, 1, 1, 2, 3, 3, 3, 3, 4, 5, 55, 5, 5, 5}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 55}, seq.Distinct(nums))

	words := []string{"apple", "banana", "apple", "orange", "banana"}
	assert.Equal(t, []string{"apple", "banana", "orange"}, seq.Distinct(words))
}

type item struct {
	Name  string
	Group string
	rank  int
}

// TestDistinctBy dedups by key and retains the first element carrying that key.
func TestDistinctBy(t *testing.T) {
	in := []item{
		{Name: "Apple", Group: "Fruit", rank: 1},
		{Name: "Banana", Group: "Fruit", rank: 2},
		{Name: "Apple", Group: "Fruit", rank: 3},
		{Name: "Mango", Group: "Fruit", rank: 4},
	}
	got := seq.DistinctBy(in, func(i item) string { return i.Name })
	want := []item{
		{Name: "Apple", Group: "Fruit", rank: 1},
		{Name: "Banana", Group: "Fruit", rank: 2},
		{Name: "Mango", Group: "Fruit", rank: 4},
	}
	if diff := gocmp.Diff(want, got, gocmp.AllowUnexported(item{})); diff != "" {
		t.Errorf("DistinctBy mismatch (-want +got):\n%s", diff)
	}
}

//----------------------------------------------------------------------------//
// Sorted Tests
//----------------------------------------------------------------------------//

// TestSorted returns a sorted copy and is stable for equal keys.
func TestSorted(t *testing.T) {
	in := []item{{Name: "b", rank: 2}, {Name: "a", rank: 1}, {Name: "c", rank: 2}}
	got := seq.Sorted(in, func(a, b item) int { return cmp.Compare(a.rank, b.rank) })
	want := []item{{Name: "a", rank: 1}, {Name: "b", rank: 2}, {Name: "c", rank: 2}}
	if diff := gocmp.Diff(want, got, gocmp.AllowUnexported(item{})); diff != "" {
		t.Errorf("Sorted mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "b", in[0].Name, "input must not be reordered")

	empty := seq.Sorted([]int(nil), cmp.Compare[int])
	if diff := gocmp.Diff([]int{}, empty, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Sorted(nil) mismatch:\n%s", diff)
	}
}
