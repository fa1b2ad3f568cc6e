package seq

import (
	"errors"
	"math"
	"runtime"
)

// Sentinel errors for sequence operations.
var (
	// ErrEmpty indicates that a query requiring at least one element got an empty sequence.
	ErrEmpty = errors.New("seq: empty sequence")

	// ErrNotFound indicates that no element satisfied the predicate.
	ErrNotFound = errors.New("seq: no element matches predicate")

	// ErrInvalidWorkers indicates a worker count below 1.
	ErrInvalidWorkers = errors.New("seq: workers must be at least 1")

	// ErrRangeTooLarge is the panic value of Range and RangeClosed when the
	// requested range cannot be materialized as a slice.
	ErrRangeTooLarge = errors.New("seq: range too large")
)

// MaxRangeLen bounds the number of values Range and RangeClosed will build.
const MaxRangeLen = math.MaxInt32

// Number is the set of numeric element types accepted by Sum, Average and Statistics.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Options configures the parallel helpers FindAny and ParallelMap.
type Options struct {
	// Workers is the maximum number of goroutines used at once.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets the number of goroutines used by parallel helpers.
// Values below 1 are rejected with ErrInvalidWorkers when the helper runs.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns Options with Workers = runtime.GOMAXPROCS(0).
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// buildOptions applies opts over DefaultOptions and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		return o, ErrInvalidWorkers
	}

	return o, nil
}
