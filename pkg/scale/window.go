// Package scale maps data-space values onto the unit interval for
// rasterization. It owns the view window (the rectangular data region
// currently on screen), default bound computation with overrides, the
// linear and logarithmic forward transforms, and axis tick generation.
package scale

import (
	"fmt"
	"math"

	"gitlab.com/tinyland/lab/termplot/pkg/series"
)

// degenerateMargin is the half-width applied to an axis whose data values
// are all equal, so the transform never divides by zero.
const degenerateMargin = 0.5

// shiftFraction is the portion of the visible span a single pan step moves.
const shiftFraction = 0.25

// zoomFactor is the span ratio applied by one zoom step.
const zoomFactor = 1.25

// Window is the rectangular data-space region mapped onto the canvas.
// XMin < XMax and YMin < YMax always hold for a Window produced by
// ComputeBounds.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
	XLog, YLog bool
}

// Overrides carries explicit caller-supplied bounds. A nil field means
// "use the data default".
type Overrides struct {
	XMin, XMax *float64
	YMin, YMax *float64
}

// DomainError reports a logarithmic axis whose view window includes
// non-positive values, for which no log transform exists.
type DomainError struct {
	Axis string // "x" or "y"
	Min  float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("logarithmic %s axis requires positive values, window starts at %g",
		e.Axis, e.Min)
}

// BoundsError reports an explicit bound that inverts its axis: the
// resolved minimum is not strictly below the maximum. This happens when a
// one-sided override lies beyond the data extent on the other side.
type BoundsError struct {
	Axis     string // "x" or "y"
	Min, Max float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s axis bounds are inverted: min %g is not below max %g",
		e.Axis, e.Min, e.Max)
}

// ComputeBounds derives the view window from the normalized series. Each
// axis defaults to the min/max over all points; explicit overrides replace
// the corresponding default. An axis with no data (or a single distinct
// value) is widened symmetrically so the window is never degenerate.
//
// Returns a *BoundsError if an override inverts an axis, and a
// *DomainError if a logarithmic axis's resulting window includes
// non-positive values.
func ComputeBounds(ss []series.Series, ov Overrides, xLog, yLog bool) (Window, error) {
	xMin, xMax := axisExtent(ss, func(p series.Point) float64 { return p.X })
	yMin, yMax := axisExtent(ss, func(p series.Point) float64 { return p.Y })

	if ov.XMin != nil {
		xMin = *ov.XMin
	}
	if ov.XMax != nil {
		xMax = *ov.XMax
	}
	if ov.YMin != nil {
		yMin = *ov.YMin
	}
	if ov.YMax != nil {
		yMax = *ov.YMax
	}

	if xMin > xMax {
		return Window{}, &BoundsError{Axis: "x", Min: xMin, Max: xMax}
	}
	if yMin > yMax {
		return Window{}, &BoundsError{Axis: "y", Min: yMin, Max: yMax}
	}

	xMin, xMax = widenIfDegenerate(xMin, xMax)
	yMin, yMax = widenIfDegenerate(yMin, yMax)

	if xLog && xMin <= 0 {
		return Window{}, &DomainError{Axis: "x", Min: xMin}
	}
	if yLog && yMin <= 0 {
		return Window{}, &DomainError{Axis: "y", Min: yMin}
	}

	return Window{
		XMin: xMin, XMax: xMax,
		YMin: yMin, YMax: yMax,
		XLog: xLog, YLog: yLog,
	}, nil
}

// axisExtent returns the min and max of one coordinate across all series.
// With no points at all it falls back to the default [0, 1] window.
func axisExtent(ss []series.Series, coord func(series.Point) float64) (float64, float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, s := range ss {
		for _, p := range s.Points {
			v := coord(p)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo > hi {
		return 0, 1
	}
	return lo, hi
}

// widenIfDegenerate spreads an empty interval by a fixed margin on each side.
func widenIfDegenerate(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - degenerateMargin, hi + degenerateMargin
	}
	return lo, hi
}

// ForwardX maps an x data value to its normalized [0, 1] position.
func (w Window) ForwardX(v float64) float64 {
	return Forward(v, w.XMin, w.XMax, w.XLog)
}

// ForwardY maps a y data value to its normalized [0, 1] position.
func (w Window) ForwardY(v float64) float64 {
	return Forward(v, w.YMin, w.YMax, w.YLog)
}

// Forward maps v onto [0, 1] within [lo, hi]. Linear axes use affine
// scaling; logarithmic axes scale affinely in natural-log space. Values
// outside the window map outside [0, 1]; a non-positive value on a log
// axis maps to NaN and is skipped by the rasterizer.
func Forward(v, lo, hi float64, log bool) float64 {
	if log {
		if v <= 0 {
			return math.NaN()
		}
		return (math.Log(v) - math.Log(lo)) / (math.Log(hi) - math.Log(lo))
	}
	return (v - lo) / (hi - lo)
}

// Contains reports whether the point lies inside the window, boundaries
// included.
func (w Window) Contains(p series.Point) bool {
	return p.X >= w.XMin && p.X <= w.XMax && p.Y >= w.YMin && p.Y <= w.YMax
}

// ShiftLeft pans the view left by a quarter of the visible x span.
func (w Window) ShiftLeft() Window { return w.shiftX(-shiftFraction) }

// ShiftRight pans the view right by a quarter of the visible x span.
func (w Window) ShiftRight() Window { return w.shiftX(shiftFraction) }

// ShiftDown pans the view down by a quarter of the visible y span.
func (w Window) ShiftDown() Window { return w.shiftY(-shiftFraction) }

// ShiftUp pans the view up by a quarter of the visible y span.
func (w Window) ShiftUp() Window { return w.shiftY(shiftFraction) }

// ZoomIn narrows both axes about their centers.
func (w Window) ZoomIn() Window { return w.zoom(1 / zoomFactor) }

// ZoomOut widens both axes about their centers.
func (w Window) ZoomOut() Window { return w.zoom(zoomFactor) }

// shiftX moves the x window by frac of its span, in log space when the
// axis is logarithmic so panning feels uniform on screen.
func (w Window) shiftX(frac float64) Window {
	w.XMin, w.XMax = shiftAxis(w.XMin, w.XMax, frac, w.XLog)
	return w
}

func (w Window) shiftY(frac float64) Window {
	w.YMin, w.YMax = shiftAxis(w.YMin, w.YMax, frac, w.YLog)
	return w
}

func (w Window) zoom(ratio float64) Window {
	w.XMin, w.XMax = zoomAxis(w.XMin, w.XMax, ratio, w.XLog)
	w.YMin, w.YMax = zoomAxis(w.YMin, w.YMax, ratio, w.YLog)
	return w
}

// shiftAxis translates [lo, hi] by frac of its span.
func shiftAxis(lo, hi, frac float64, log bool) (float64, float64) {
	if log {
		llo, lhi := math.Log(lo), math.Log(hi)
		d := (lhi - llo) * frac
		return math.Exp(llo + d), math.Exp(lhi + d)
	}
	d := (hi - lo) * frac
	return lo + d, hi + d
}

// zoomAxis rescales [lo, hi] about its center by ratio.
func zoomAxis(lo, hi, ratio float64, log bool) (float64, float64) {
	if log {
		llo, lhi := math.Log(lo), math.Log(hi)
		mid := (llo + lhi) / 2
		half := (lhi - llo) / 2 * ratio
		return math.Exp(mid - half), math.Exp(mid + half)
	}
	mid := (lo + hi) / 2
	half := (hi - lo) / 2 * ratio
	return mid - half, mid + half
}
