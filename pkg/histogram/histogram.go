// Package histogram discretizes numeric series into fixed-width bins and
// expands the counts into synthetic bar series that the regular rendering
// pipeline draws unchanged.
package histogram

import (
	"math"

	"gitlab.com/tinyland/lab/termplot/pkg/series"
)

// Bin is one half-open counting interval. The last bin of a set is closed
// on both ends so the combined maximum is counted.
type Bin struct {
	Lower float64
	Upper float64
	Count int
}

// Mid returns the bin's midpoint, the x position its bar is drawn at.
func (b Bin) Mid() float64 {
	return (b.Lower + b.Upper) / 2
}

// Edges computes bins+1 equal-width bin edges spanning [lo, hi].
func Edges(lo, hi float64, bins int) []float64 {
	edges := make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi // exact, no accumulation drift
	return edges
}

// Count tallies values into the bins defined by edges. Every bin is
// [lower, upper) except the last, which also counts values equal to the
// final edge. Values outside [edges[0], edges[last]] and non-finite values
// are ignored.
func Count(values []float64, edges []float64) []Bin {
	bins := len(edges) - 1
	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Lower: edges[i], Upper: edges[i+1]}
	}

	lo := edges[0]
	hi := edges[bins]
	width := (hi - lo) / float64(bins)

	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < lo || v > hi {
			continue
		}
		idx := int((v - lo) / width)
		if idx >= bins { // v == hi lands in the closed last bin
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// BarSeries expands a bin set into the synthetic point series of its bar
// chart: for each bin, a segment rising from the baseline to the count at
// the bin midpoint and back, so that connected line drawing renders
// vertical bars.
func BarSeries(bins []Bin) series.Series {
	s := series.Series{Line: true}
	for _, b := range bins {
		mid := b.Mid()
		s.Points = append(s.Points,
			series.Point{X: mid, Y: 0},
			series.Point{X: mid, Y: float64(b.Count)},
			series.Point{X: mid, Y: 0},
		)
	}
	return s
}

// Extent returns the min and max over all finite values of all series,
// and whether any finite value exists.
func Extent(values [][]float64) (lo, hi float64, ok bool) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi, lo <= hi
}
