package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/solidstream/solid/lsp"
	"github.com/katalvlaran/solidstream/solid/srp"
)

// ErrUnknownDemo indicates that no demonstration is registered under a name.
var ErrUnknownDemo = errors.New("catalog: unknown demo")

// RunFunc writes a demonstration's output to w.
type RunFunc func(ctx context.Context, w io.Writer) error

// Demo is one named demonstration.
type Demo struct {
	// Name is the short identifier used on the command line.
	Name string
	// Summary is a one-line description.
	Summary string
	// Run produces the output.
	Run RunFunc
}

// plain adapts a context-free writer function to RunFunc.
func plain(fn func(io.Writer) error) RunFunc {
	return func(_ context.Context, w io.Writer) error {
		return fn(w)
	}
}

// Demos returns every registered demonstration in presentation order.
// The returned slice is freshly built; callers may modify it.
func Demos() []Demo {
	return []Demo{
		{Name: "range", Summary: "half-open and closed integer ranges", Run: plain(RangeDemo)},
		{Name: "min", Summary: "minimum by natural order, by key and by date", Run: plain(MinDemo)},
		{Name: "distinct", Summary: "drop duplicates, custom equality by product name", Run: plain(DistinctDemo)},
		{Name: "filter", Summary: "select by predicate", Run: plain(FilterDemo)},
		{Name: "map", Summary: "transform each element", Run: plain(MapDemo)},
		{Name: "average", Summary: "mean of a projected field", Run: plain(AverageDemo)},
		{Name: "find", Summary: "find any and find first", Run: FindDemo},
		{Name: "count", Summary: "count matching elements", Run: plain(CountDemo)},
		{Name: "sum", Summary: "sum integers, floats and projected fields", Run: plain(SumDemo)},
		{Name: "statistics", Summary: "count, sum, min, average, max in one pass", Run: plain(StatisticsDemo)},
		{Name: "groupby", Summary: "group and count by key", Run: plain(GroupByDemo)},
		{Name: "reduce", Summary: "fold with and without identity", Run: plain(ReduceDemo)},
		{Name: "srp", Summary: "single-responsibility: repository vs service", Run: plain(srp.Demo)},
		{Name: "lsp", Summary: "Liskov substitution: violating square and its fix", Run: plain(lsp.Demo)},
	}
}

// Names returns the registered demo names in presentation order.
func Names() []string {
	demos := Demos()
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.Name
	}

	return names
}

// Lookup returns the demo registered under name, or ErrUnknownDemo.
func Lookup(name string) (Demo, error) {
	for _, d := range Demos() {
		if d.Name == name {
			return d, nil
		}
	}

	return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}
