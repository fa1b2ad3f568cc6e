package seq

import "slices"

// Groups holds elements partitioned by key. Keys are kept in the order in
// which they were first seen; elements inside a group keep input order.
type Groups[K comparable, T any] struct {
	keys  []K
	items map[K][]T
}

// GroupBy partitions xs by key.
func GroupBy[T any, K comparable](xs []T, key func(T) K) *Groups[K, T] {
	g := &Groups[K, T]{items: make(map[K][]T)}
	for _, x := range xs {
		k := key(x)
		if _, ok := g.items[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.items[k] = append(g.items[k], x)
	}

	return g
}

// Len returns the number of distinct keys.
func (g *Groups[K, T]) Len() int {
	return len(g.keys)
}

// Keys returns the keys in first-occurrence order.
func (g *Groups[K, T]) Keys() []K {
	return slices.Clone(g.keys)
}

// SortedKeys returns the keys ordered by cmp.
func (g *Groups[K, T]) SortedKeys(cmp func(a, b K) int) []K {
	keys := g.Keys()
	slices.SortFunc(keys, cmp)

	return keys
}

// Get returns a copy of the group for k and whether it exists.
func (g *Groups[K, T]) Get(k K) ([]T, bool) {
	items, ok := g.items[k]
	if !ok {
		return nil, false
	}

	return slices.Clone(items), true
}

// Map returns the groups as a plain map. The slices are copies.
func (g *Groups[K, T]) Map() map[K][]T {
	out := make(map[K][]T, len(g.items))
	for k, v := range g.items {
		out[k] = slices.Clone(v)
	}

	return out
}

// Counts holds the number of elements per key, keys in first-occurrence order.
type Counts[K comparable] struct {
	keys   []K
	counts map[K]int
}

// CountBy counts the elements of xs per key.
func CountBy[T any, K comparable](xs []T, key func(T) K) *Counts[K] {
	c := &Counts[K]{counts: make(map[K]int)}
	for _, x := range xs {
		k := key(x)
		if _, ok := c.counts[k]; !ok {
			c.keys = append(c.keys, k)
		}
		c.counts[k]++
	}

	return c
}

// Len returns the number of distinct keys.
func (c *Counts[K]) Len() int {
	return len(c.keys)
}

// Keys returns the keys in first-occurrence order.
func (c *Counts[K]) Keys() []K {
	return slices.Clone(c.keys)
}

// SortedKeys returns the keys ordered by cmp.
func (c *Counts[K]) SortedKeys(cmp func(a, b K) int) []K {
	keys := c.Keys()
	slices.SortFunc(keys, cmp)

	return keys
}

// Count returns the number of elements counted under k (zero if absent).
func (c *Counts[K]) Count(k K) int {
	return c.counts[k]
}
