package seq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// errStop signals sibling workers that a match was found.
var errStop = errors.New("seq: stop")

// bounds is a half-open index range [lo, hi).
type bounds struct {
	lo, hi int
}

// chunk splits n indices into at most workers contiguous ranges.
func chunk(n, workers int) []bounds {
	if n == 0 {
		return nil
	}
	workers = min(workers, n)
	size := (n + workers - 1) / workers
	out := make([]bounds, 0, workers)
	for lo := 0; lo < n; lo += size {
		out = append(out, bounds{lo: lo, hi: min(lo+size, n)})
	}

	return out
}

// FindAny returns some element of xs satisfying pred, searching chunks of xs
// concurrently. Which match is returned is unspecified when more than one
// worker is used; with WithWorkers(1) it behaves like FindFirst.
//
// Errors:
//   - ErrInvalidWorkers: options requested fewer than one worker.
//   - ErrNotFound: no element matched.
//   - ctx.Err(): the context ended before a match was found.
//
// Complexity: O(n) total work, O(n/workers) wall time.
func FindAny[T any](ctx context.Context, xs []T, pred func(T) bool, opts ...Option) (T, error) {
	var zero T
	o, err := buildOptions(opts)
	if err != nil {
		return zero, err
	}
	if err = ctx.Err(); err != nil {
		return zero, err
	}

	var (
		once  sync.Once
		found T
		ok    bool
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, b := range chunk(len(xs), o.Workers) {
		g.Go(func() error {
			for i := b.lo; i < b.hi; i++ {
				if gctx.Err() != nil {
					return nil
				}
				if pred(xs[i]) {
					once.Do(func() {
						found, ok = xs[i], true
					})
					return errStop
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil && !errors.Is(err, errStop) {
		return zero, err
	}
	if ok {
		return found, nil
	}
	if err = ctx.Err(); err != nil {
		return zero, err
	}

	return zero, ErrNotFound
}

// ParallelMap applies fn to every element of xs using up to Workers goroutines.
// The result keeps input order. The first error cancels the context handed to
// the remaining calls and is returned wrapped with the failing index.
func ParallelMap[T, R any](ctx context.Context, xs []T, fn func(context.Context, T) (R, error), opts ...Option) ([]R, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]R, len(xs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, x := range xs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, x)
			if err != nil {
				return fmt.Errorf("seq: element %d: %w", i, err)
			}
			out[i] = r
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
