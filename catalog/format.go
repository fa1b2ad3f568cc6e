package catalog

import (
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/solidstream/seq"
)

// printer writes lines and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(v any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, v)
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// formatDouble renders f with the shortest exact digits and at least one
// fractional digit: 23.5, 15.0, 4500.0.
func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}

	return s
}

// formatValue renders one element; floating values go through formatDouble.
func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return formatDouble(x)
	case float32:
		return formatDouble(float64(x))
	default:
		return fmt.Sprint(v)
	}
}

// formatList renders xs as "[a, b, c]".
func formatList[T any](xs []T) string {
	parts := seq.Map(xs, func(x T) string { return formatValue(x) })

	return "[" + strings.Join(parts, ", ") + "]"
}

// formatGroups renders g as "{k=[...], k2=[...]}" with ascending keys.
func formatGroups[K cmp.Ordered, T any](g *seq.Groups[K, T]) string {
	keys := g.SortedKeys(cmp.Compare[K])
	parts := seq.Map(keys, func(k K) string {
		members, _ := g.Get(k)
		return formatValue(k) + "=" + formatList(members)
	})

	return "{" + strings.Join(parts, ", ") + "}"
}

// formatCounts renders c as "{k=n, k2=m}" with ascending keys.
func formatCounts[K cmp.Ordered](c *seq.Counts[K]) string {
	keys := c.SortedKeys(cmp.Compare[K])
	parts := seq.Map(keys, func(k K) string {
		return formatValue(k) + "=" + strconv.Itoa(c.Count(k))
	})

	return "{" + strings.Join(parts, ", ") + "}"
}
