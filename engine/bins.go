package engine

// Bins partitions the domain of a continuous predictor into ordinal bins
// using an ordered list of cut points.  With n cuts there are n+1 bins,
// indexed from 0; the first and last bins are open-ended, so every value
// maps to exactly one bin.
//
// The published charts differ in which side of a cut is inclusive: the
// SCORE2 chart's top systolic band is ">=160" while the older SCORE chart
// uses ">170".  LowerInclusive reproduces that sidedness: when true, a
// value equal to a cut falls into the higher bin.
type Bins struct {
	Cuts           []float64
	LowerInclusive bool
}

// Count returns the number of bins.
func (b Bins) Count() int { return len(b.Cuts) + 1 }

// Index returns the 0-based bin for v.
func (b Bins) Index(v float64) int {
	for i, cut := range b.Cuts {
		if b.LowerInclusive {
			if v < cut {
				return i
			}
		} else {
			if v <= cut {
				return i
			}
		}
	}
	return len(b.Cuts)
}

// ClampIndex clamps i into [lo, hi].  Out-of-domain composite keys are
// clamped to the nearest valid table entry rather than extrapolated.
func ClampIndex(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
