package plot

import (
	"fmt"
	"math"

	"gitlab.com/tinyland/lab/termplot/pkg/canvas"
	"gitlab.com/tinyland/lab/termplot/pkg/scale"
	"gitlab.com/tinyland/lab/termplot/pkg/series"
)

// PlotToString renders the given series into an ordered list of text
// lines. It is the canonical entry point; every other entry point wraps
// it. xs may be nil to use the 0-based sample index per series.
//
// All validation happens before any canvas allocation: a *series.ShapeError
// for mismatched x/y lengths, a *ConfigError for invalid options, a
// *scale.BoundsError for an explicit bound that inverts its axis, and a
// *scale.DomainError for a logarithmic axis over non-positive values.
func PlotToString(xs, ys [][]float64, opts Options) ([]string, error) {
	ss, window, err := Prepare(xs, ys, opts)
	if err != nil {
		return nil, err
	}
	return RenderWindow(ss, window, opts)
}

// Plot renders like PlotToString and writes the lines to standard output.
func Plot(xs, ys [][]float64, opts Options) error {
	lines, err := PlotToString(xs, ys, opts)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// Prepare normalizes the input and computes the view window without
// rendering. Interactive drivers call this once, then mutate their copy of
// the window and re-render through RenderWindow.
func Prepare(xs, ys [][]float64, opts Options) ([]series.Series, scale.Window, error) {
	if err := opts.validate(); err != nil {
		return nil, scale.Window{}, err
	}

	ss, err := series.Normalize(xs, ys)
	if err != nil {
		return nil, scale.Window{}, err
	}
	applyLabels(ss, opts.LegendLabels)

	window, err := scale.ComputeBounds(ss, scale.Overrides{
		XMin: opts.XMin, XMax: opts.XMax,
		YMin: opts.YMin, YMax: opts.YMax,
	}, opts.XAsLog, opts.YAsLog)
	if err != nil {
		return nil, scale.Window{}, err
	}
	return ss, window, nil
}

// RenderWindow renders already-normalized series through an explicit view
// window. The window is read, never mutated; each call allocates its own
// canvas so concurrent renders are independent.
func RenderWindow(ss []series.Series, window scale.Window, opts Options) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	frame, err := newFrame(ss, window, opts)
	if err != nil {
		return nil, err
	}

	cv := canvas.New(frame.width, frame.height)
	drawGridlines(cv, window, opts)
	rasterize(cv, ss, window, opts)

	return frame.compose(cv), nil
}

// applyLabels copies legend labels onto their series.
func applyLabels(ss []series.Series, labels []string) {
	for i := range ss {
		if i < len(labels) {
			ss[i].Label = labels[i]
		}
	}
}

// drawGridlines renders reference lines into the canvas base layer before
// any series data, so data glyphs take visual precedence.
func drawGridlines(cv *canvas.Canvas, window scale.Window, opts Options) {
	for _, v := range opts.xGridlines() {
		f := window.ForwardX(v)
		if f >= 0 && f <= 1 {
			cv.GridlineVertical(subIndex(f, cv.SubWidth()))
		}
	}
	for _, v := range opts.yGridlines() {
		f := window.ForwardY(v)
		if f >= 0 && f <= 1 {
			cv.GridlineHorizontal(subIndex(f, cv.SubHeight()))
		}
	}
}

// rasterize plots every series into the canvas: in-window points always,
// plus clipped line segments between consecutive points for series with
// line mode enabled.
func rasterize(cv *canvas.Canvas, ss []series.Series, window scale.Window, opts Options) {
	subW := cv.SubWidth()
	subH := cv.SubHeight()

	for i, s := range ss {
		line := opts.lineMode(i, s.Line)

		var prevX, prevY float64
		havePrev := false

		for _, p := range s.Points {
			fx := window.ForwardX(p.X)
			fy := window.ForwardY(p.Y)

			// Log-axis values at or below zero have no position.
			if math.IsNaN(fx) || math.IsNaN(fy) {
				havePrev = false
				continue
			}

			if window.Contains(p) {
				cv.SetSubCell(subIndex(fx, subW), subIndex(fy, subH), i)
			}

			if line && havePrev {
				x0, y0, x1, y1, ok := clipUnit(prevX, prevY, fx, fy)
				if ok {
					cv.DrawLine(
						subIndex(x0, subW), subIndex(y0, subH),
						subIndex(x1, subW), subIndex(y1, subH), i)
				}
			}
			prevX, prevY = fx, fy
			havePrev = true
		}
	}
}

// subIndex buckets a normalized [0, 1] position into one of n sub-cells,
// with both boundaries included.
func subIndex(f float64, n int) int {
	idx := int(f * float64(n))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// clipUnit clips the segment (x0,y0)-(x1,y1) to the unit square using the
// Liang-Barsky parametric walk. Returns ok=false when the segment lies
// entirely outside.
func clipUnit(x0, y0, x1, y1 float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x0},    // left: x >= 0
		{dx, 1 - x0}, // right: x <= 1
		{-dy, y0},    // bottom: y >= 0
		{dy, 1 - y0}, // top: y <= 1
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
