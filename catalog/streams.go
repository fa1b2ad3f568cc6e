package catalog

import (
	"cmp"
	"context"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/solidstream/seq"
)

// RangeDemo prints 0..9 from a half-open range, then 0..10 from a closed one.
func RangeDemo(w io.Writer) error {
	p := &printer{w: w}
	for _, n := range seq.Range(0, 10) {
		p.line(n)
	}
	for _, n := range seq.RangeClosed(0, 10) {
		p.line(n)
	}

	return p.err
}

// MinDemo finds minimums with an explicit comparator, with natural order,
// by salary, by string length and by calendar date.
func MinDemo(w io.Writer) error {
	p := &printer{w: w}
	numbers := []int{3, 12, 34, 5, 23, 12, 54, 65}

	// Hand-written three-way comparator.
	if n, err := seq.Min(numbers, func(a, b int) int {
		if a == b {
			return 0
		}
		if a > b {
			return 1
		}
		return -1
	}); err == nil {
		p.line(n)
	}
	if n, err := seq.Min(numbers, cmp.Compare[int]); err == nil {
		p.line(n)
	}

	employees := []Employee{
		{Name: "John", Salary: 5000},
		{Name: "Mary", Salary: 4500},
		{Name: "Tom", Salary: 6000},
	}
	if e, err := seq.MinBy(employees, func(e Employee) float64 { return e.Salary }); err == nil {
		p.line("Lowest salary: " + formatDouble(e.Salary))
	}

	words := []string{"apple", "banana", "orange", "pear"}
	if s, err := seq.MinBy(words, func(s string) int { return len(s) }); err == nil {
		p.line(s)
	}

	dates := []time.Time{
		time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, time.June, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	if d, err := seq.Min(dates, time.Time.Compare); err == nil {
		p.line(d.Format(time.DateOnly))
	}

	return p.err
}

// DistinctDemo removes duplicate numbers, words and products.
// Products are compared by name only.
func DistinctDemo(w io.Writer) error {
	p := &printer{w: w}
	for _, n := range seq.Distinct([]int{1, 1, 1, 1, 2, 3, 3, 3, 3, 4, 5, 55, 5, 5, 5}) {
		p.line(n)
	}
	for _, s := range seq.Distinct([]string{"apple", "banana", "apple", "orange", "banana"}) {
		p.line(s)
	}

	products := []Product{
		{Name: "Apple", Category: "Fruit"},
		{Name: "Banana", Category: "Fruit"},
		{Name: "Orange", Category: "Fruit"},
		{Name: "Apple", Category: "Fruit"},
		{Name: "Mango", Category: "Fruit"},
	}
	for _, pr := range seq.DistinctBy(products, Product.Key) {
		p.line(pr)
	}

	return p.err
}

// filterPeople is shared by the filter and average demonstrations.
func filterPeople() []Person {
	return []Person{
		{Name: "John", Age: 25},
		{Name: "Mary", Age: 17},
		{Name: "Tom", Age: 32},
		{Name: "Alice", Age: 20},
	}
}

// FilterDemo selects even numbers, long words and adults.
func FilterDemo(w io.Writer) error {
	p := &printer{w: w}
	p.line(formatList(seq.Filter([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })))

	words := []string{"apple", "banana", "orange", "pear", "grape"}
	p.line(formatList(seq.Filter(words, func(s string) bool { return len(s) > 5 })))

	people := filterPeople()
	// Method expression and an inline predicate select the same people.
	p.line(formatList(seq.Filter(people, Person.IsAdult)))
	p.line(formatList(seq.Filter(people, func(x Person) bool { return x.Age >= 18 })))

	return p.err
}

// MapDemo upper-cases words, takes their lengths and extracts names.
func MapDemo(w io.Writer) error {
	p := &printer{w: w}
	words := []string{"apple", "banana", "orange", "pear"}
	for _, s := range seq.Map(words, strings.ToUpper) {
		p.line(s)
	}
	for _, n := range seq.Map(words, func(s string) int { return len(s) }) {
		p.line(n)
	}

	people := []Person{{Name: "John", Age: 25}, {Name: "Mary", Age: 30}, {Name: "Tom", Age: 35}}
	for _, name := range seq.Map(people, func(x Person) string { return x.Name }) {
		p.line(name)
	}

	return p.err
}

// AverageDemo prints the mean age, falling back to zero for no people.
func AverageDemo(w io.Writer) error {
	p := &printer{w: w}
	avg := seq.OrElse(seq.AverageBy(filterPeople(), func(x Person) int { return x.Age }))(0)
	p.line(formatDouble(avg))

	return p.err
}

// findPeople is shared by the find and count demonstrations.
func findPeople() []Person {
	return []Person{
		{Name: "John", Age: 25},
		{Name: "Mary", Age: 35},
		{Name: "Tom", Age: 40},
	}
}

// FindDemo finds any person older than 30, then the first one.
func FindDemo(ctx context.Context, w io.Writer) error {
	p := &printer{w: w}
	people := findPeople()
	over30 := func(x Person) bool { return x.Age > 30 }

	// A single worker keeps the printed match stable across runs.
	anyone, err := seq.FindAny(ctx, people, over30, seq.WithWorkers(1))
	switch {
	case err == nil:
		p.line(anyone.Name)
	case ctx.Err() != nil:
		return err
	}
	if first, err := seq.FindFirst(people, over30); err == nil {
		p.line(first.Name)
	}

	return p.err
}

// CountDemo counts people older than 30.
func CountDemo(w io.Writer) error {
	p := &printer{w: w}
	p.line(seq.Count(findPeople(), func(x Person) bool { return x.Age > 30 }))

	return p.err
}

// SumDemo sums integers, floating values and salaries.
func SumDemo(w io.Writer) error {
	p := &printer{w: w}
	p.line(seq.Sum([]int{1, 2, 3, 4, 5}))
	p.line(formatDouble(seq.Sum([]float64{1.5, 2.5, 3.5, 4.5, 5.5})))

	employees := []Employee{
		{Name: "John", Salary: 2000},
		{Name: "Mary", Salary: 3000},
		{Name: "Tom", Salary: 2500},
	}
	p.line(formatDouble(seq.SumBy(employees, func(e Employee) float64 { return e.Salary })))

	return p.err
}

// StatisticsDemo prints each summary value and the summary itself.
func StatisticsDemo(w io.Writer) error {
	p := &printer{w: w}
	stats := seq.Statistics([]int{1, 2, 3, 4, 5})
	p.line("Count: " + formatValue(stats.Count))
	p.line("Sum: " + formatDouble(stats.Sum))
	p.line("Average: " + formatDouble(stats.Average()))
	p.line("Min: " + formatDouble(stats.Min))
	p.line("Max: " + formatDouble(stats.Max))
	p.line("stats: " + stats.String())

	return p.err
}

// GroupByDemo groups people by age, counts them per age, groups words by
// length, products by category, numbers by parity and counts names.
func GroupByDemo(w io.Writer) error {
	p := &printer{w: w}
	people := []Person{
		{Name: "John", Age: 25},
		{Name: "Mary", Age: 35},
		{Name: "Tom", Age: 40},
		{Name: "Lisa", Age: 25},
	}
	age := func(x Person) int { return x.Age }
	p.line(formatGroups(seq.GroupBy(people, age)))
	p.line(formatCounts(seq.CountBy(people, age)))

	words := []string{"apple", "banana", "cat", "dog", "elephant", "frog"}
	p.line(formatGroups(seq.GroupBy(words, func(s string) int { return len(s) })))

	products := []Product{
		{Name: "iPhone", Category: "Electronics"},
		{Name: "MacBook", Category: "Electronics"},
		{Name: "Shirt", Category: "Clothing"},
		{Name: "Jeans", Category: "Clothing"},
		{Name: "Book", Category: "Books"},
	}
	p.line(formatGroups(seq.GroupBy(products, func(x Product) string { return x.Category })))

	p.line(formatGroups(seq.GroupBy(seq.RangeClosed(1, 10), func(n int) string {
		if n%2 == 0 {
			return "Even"
		}
		return "Odd"
	})))

	names := []string{"Emma", "Liam", "Hector", "Bella", "Alex", "Alex", "Emma"}
	counts := seq.CountBy(names, func(s string) string { return s })
	for _, name := range counts.SortedKeys(cmp.Compare[string]) {
		p.linef("%s : %d", name, counts.Count(name))
	}

	return p.err
}

// ReduceDemo sums with an identity, takes a maximum and concatenates words.
func ReduceDemo(w io.Writer) error {
	p := &printer{w: w}
	numbers := []int{1, 2, 3, 4, 5}
	p.line(seq.Reduce(numbers, 0, func(a, b int) int { return a + b }))
	if hi, err := seq.ReduceOptional(numbers, func(a, b int) int { return max(a, b) }); err == nil {
		p.line(hi)
	}

	words := []string{"Hello", "World", "!"}
	if s, err := seq.ReduceOptional(words, func(a, b string) string { return a + b }); err == nil {
		p.line(s)
	}
	if s, err := seq.ReduceOptional(words, func(a, b string) string { return a + " " + b }); err == nil {
		p.line(s)
	}

	return p.err
}
