package seq

import (
	"fmt"
	"math"
)

// SummaryStatistics accumulates count, sum, min and max of float64 values.
// The zero value is not ready for use; call NewSummaryStatistics or Statistics.
type SummaryStatistics struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

// NewSummaryStatistics returns empty statistics: Min=+Inf, Max=-Inf.
func NewSummaryStatistics() SummaryStatistics {
	return SummaryStatistics{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Statistics summarizes xs.
func Statistics[N Number](xs []N) SummaryStatistics {
	s := NewSummaryStatistics()
	for _, x := range xs {
		s.Accept(float64(x))
	}

	return s
}

// Accept records v.
func (s *SummaryStatistics) Accept(v float64) {
	s.Count++
	s.Sum += v
	s.Min = math.Min(s.Min, v)
	s.Max = math.Max(s.Max, v)
}

// Combine merges other into s.
func (s *SummaryStatistics) Combine(other SummaryStatistics) {
	s.Count += other.Count
	s.Sum += other.Sum
	s.Min = math.Min(s.Min, other.Min)
	s.Max = math.Max(s.Max, other.Max)
}

// Average returns Sum/Count, or zero when nothing was recorded.
func (s SummaryStatistics) Average() float64 {
	if s.Count == 0 {
		return 0
	}

	return s.Sum / float64(s.Count)
}

// String renders the statistics with six fractional digits per value.
func (s SummaryStatistics) String() string {
	return fmt.Sprintf("DoubleSummaryStatistics{count=%d, sum=%f, min=%f, average=%f, max=%f}",
		s.Count, s.Sum, s.Min, s.Average(), s.Max)
}
