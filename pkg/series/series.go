// Package series normalizes raw numeric input into the paired point form
// the rest of the plotting pipeline consumes. Pairing, NaN filtering, and
// shape validation all happen here; downstream packages only ever see
// finite coordinates.
package series

import (
	"fmt"
	"math"
)

// Point is a single (x, y) observation in data space.
type Point struct {
	X float64
	Y float64
}

// Series holds the normalized points of one input series along with its
// per-series rendering attributes.
type Series struct {
	Points []Point
	Label  string // legend label, may be empty
	Line   bool   // connect consecutive points with line segments
}

// ShapeError reports an x/y length mismatch for one input series. It is
// returned before any filtering takes place.
type ShapeError struct {
	Series int // 0-based index of the offending series
	XLen   int
	YLen   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("series %d: x length %d does not match y length %d",
		e.Series, e.XLen, e.YLen)
}

// Normalize pairs each x with its y per series and drops pairs where either
// coordinate is not finite (NaN or infinite), preserving relative order
// within a series. A nil xs entry (or nil xs slice) substitutes the 0-based
// sample index. Every retained point has finite coordinates.
//
// Returns a *ShapeError if any series has mismatched x/y lengths.
func Normalize(xs, ys [][]float64) ([]Series, error) {
	out := make([]Series, 0, len(ys))

	for i, y := range ys {
		var x []float64
		if i < len(xs) {
			x = xs[i]
		}
		if x == nil {
			x = indexValues(len(y))
		}
		if len(x) != len(y) {
			return nil, &ShapeError{Series: i, XLen: len(x), YLen: len(y)}
		}

		points := make([]Point, 0, len(y))
		for j := range y {
			if !finite(x[j]) || !finite(y[j]) {
				continue
			}
			points = append(points, Point{X: x[j], Y: y[j]})
		}
		out = append(out, Series{Points: points})
	}

	return out, nil
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// indexValues returns 0, 1, ..., n-1 as float64 sample indices.
func indexValues(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i)
	}
	return v
}
