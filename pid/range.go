package pid

import (
	"fmt"
	"math"
)

// Range is a closed interval used to bound a term or output. An unset
// range is a nil *Range; a zero-width range is valid and distinct from
// unset.
type Range struct {
	Lo, Hi float64
}

// NewRange creates a clamp interval. lo must not exceed hi; the bounds
// are never silently swapped.
func NewRange(lo, hi float64) (*Range, error) {
	if lo > hi {
		return nil, fmt.Errorf("invalid range: lo %f > hi %f", lo, hi)
	}
	return &Range{Lo: lo, Hi: hi}, nil
}

// Clamp restricts x to [Lo, Hi], inclusive on both ends.
func (r *Range) Clamp(x float64) float64 {
	return math.Min(math.Max(x, r.Lo), r.Hi)
}

// clamp applies r when set and passes x through when r is nil.
func clamp(r *Range, x float64) float64 {
	if r == nil {
		return x
	}
	return r.Clamp(x)
}
