package plot

import (
	"fmt"

	"gitlab.com/tinyland/lab/termplot/pkg/histogram"
	"gitlab.com/tinyland/lab/termplot/pkg/scale"
	"gitlab.com/tinyland/lab/termplot/pkg/series"
)

// HistogramToString bins each value series and renders the per-bin counts
// as bar charts through the regular pipeline. Only values matter; any x
// coordinates are implicit. Bin count comes from opts.Bins; the shared bin
// range spans the combined finite extent of all series unless XMin/XMax
// override it.
func HistogramToString(values [][]float64, opts Options) ([]string, error) {
	ss, window, err := PrepareHistogram(values, opts)
	if err != nil {
		return nil, err
	}
	return RenderWindow(ss, window, opts)
}

// Histogram renders like HistogramToString and writes the lines to
// standard output.
func Histogram(values [][]float64, opts Options) error {
	lines, err := HistogramToString(values, opts)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// PrepareHistogram computes the shared bins and synthetic bar series plus
// the view window, without rendering.
func PrepareHistogram(values [][]float64, opts Options) ([]series.Series, scale.Window, error) {
	if err := opts.validate(); err != nil {
		return nil, scale.Window{}, err
	}

	lo, hi, ok := histogram.Extent(values)
	if !ok {
		lo, hi = 0, 1 // no finite input: fall back to the default window
	}
	if opts.XMin != nil {
		lo = *opts.XMin
	}
	if opts.XMax != nil {
		hi = *opts.XMax
	}
	if lo >= hi {
		return nil, scale.Window{}, &ConfigError{
			Option: "x_min/x_max", Reason: "histogram range must be non-empty",
		}
	}

	edges := histogram.Edges(lo, hi, opts.bins())

	ss := make([]series.Series, 0, len(values))
	for i, vs := range values {
		bins := histogram.Count(vs, edges)
		s := histogram.BarSeries(bins)
		if i < len(opts.LegendLabels) {
			s.Label = opts.LegendLabels[i]
		}
		ss = append(ss, s)
	}

	// Bars grow from the baseline, so the view always includes y = 0 and
	// the full bin range on x.
	histOpts := opts
	histOpts.XMin = &lo
	histOpts.XMax = &hi
	if histOpts.YMin == nil && !histOpts.YAsLog {
		zero := 0.0
		histOpts.YMin = &zero
	}

	window, err := scale.ComputeBounds(ss, scale.Overrides{
		XMin: histOpts.XMin, XMax: histOpts.XMax,
		YMin: histOpts.YMin, YMax: histOpts.YMax,
	}, opts.XAsLog, opts.YAsLog)
	if err != nil {
		return nil, scale.Window{}, err
	}
	return ss, window, nil
}
