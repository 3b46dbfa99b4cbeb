// Package plot assembles the full text frame around a rasterized canvas:
// title, borders, axis tick labels, and legend. It exposes the public
// entry points of the plotting engine; every render is a pure function of
// its inputs and owns all of its working state.
package plot

import (
	"fmt"

	"gitlab.com/tinyland/lab/termplot/pkg/theme"
)

// Defaults applied for unset (zero-valued) options.
const (
	DefaultWidth  = 60
	DefaultHeight = 17
	DefaultBins   = 20
)

// minXLabelWidth is the character budget per horizontal tick label, used
// to derive the maximum x tick count from the plot width.
const minXLabelWidth = 10

// Options is the per-call configuration record. The zero value renders a
// monochrome 60x17 plot with default gridlines at 0. Options are never
// mutated by the renderer; nil pointer fields mean "unset, use the
// documented default".
type Options struct {
	// Color enables per-series palette coloring. Unset defaults to off
	// for a single series and on for two or more.
	Color *bool
	// Width and Height are the canvas dimensions in character cells
	// (excluding borders and labels). Zero means the default; negative
	// values are a ConfigError.
	Width  int
	Height int
	// LegendLabels supplies one legend entry per series, in order. Empty
	// means no legend block.
	LegendLabels []string
	// Lines enables line interpolation for all series. Unset defaults to
	// scatter points (histograms default to lines).
	Lines *bool
	// LinesPerSeries overrides Lines per series index when non-nil.
	LinesPerSeries []bool
	// LineLengthHardCap caps the total rendered line width including
	// borders and labels. Zero means no cap.
	LineLengthHardCap int
	// Title is centered above the frame, truncated with an ellipsis if
	// it exceeds the rendered width.
	Title string
	// XAsLog / YAsLog select the logarithmic axis transform.
	XAsLog bool
	YAsLog bool
	// XGridlines / YGridlines are data values to draw reference lines
	// at. Nil defaults to [0], or no gridlines if that axis is
	// logarithmic. An explicit empty slice disables gridlines.
	XGridlines []float64
	YGridlines []float64
	// Explicit view bounds. Nil fields fall back to the data extent.
	XMin, XMax *float64
	YMin, YMax *float64
	// XUnit / YUnit are appended verbatim to axis tick labels.
	XUnit string
	YUnit string
	// Bins is the histogram bin count. Zero means the default; only
	// consulted by the histogram entry points.
	Bins int
	// Palette overrides the color palette. The zero value uses the
	// default six-color palette.
	Palette theme.Palette
}

// ConfigError reports an invalid option value, detected before any canvas
// allocation.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Option, e.Reason)
}

// validate checks option values that do not depend on the data.
func (o *Options) validate() error {
	if o.Width < 0 {
		return &ConfigError{Option: "width", Reason: "must be positive"}
	}
	if o.Height < 0 {
		return &ConfigError{Option: "height", Reason: "must be positive"}
	}
	if o.Bins < 0 {
		return &ConfigError{Option: "bins", Reason: "must be positive"}
	}
	if o.LineLengthHardCap < 0 {
		return &ConfigError{Option: "line_length_hard_cap", Reason: "must be positive"}
	}
	if o.XMin != nil && o.XMax != nil && *o.XMin >= *o.XMax {
		return &ConfigError{Option: "x_min/x_max", Reason: "min must be strictly below max"}
	}
	if o.YMin != nil && o.YMax != nil && *o.YMin >= *o.YMax {
		return &ConfigError{Option: "y_min/y_max", Reason: "min must be strictly below max"}
	}
	return nil
}

// width returns the requested canvas width before hard-cap resolution.
func (o *Options) width() int {
	if o.Width == 0 {
		return DefaultWidth
	}
	return o.Width
}

// height returns the canvas height in character cells.
func (o *Options) height() int {
	if o.Height == 0 {
		return DefaultHeight
	}
	return o.Height
}

// bins returns the histogram bin count.
func (o *Options) bins() int {
	if o.Bins == 0 {
		return DefaultBins
	}
	return o.Bins
}

// colorMode resolves the color default: off for one series, on for two or
// more, unless explicitly set.
func (o *Options) colorMode(seriesCount int) bool {
	if o.Color != nil {
		return *o.Color
	}
	return seriesCount >= 2
}

// palette returns the active palette, falling back to the default set.
func (o *Options) palette() theme.Palette {
	if len(o.Palette.Codes) == 0 {
		return theme.Get("default")
	}
	return o.Palette
}

// lineMode reports whether series i is drawn with line interpolation.
// The explicit per-series flag from normalization (histogram bars) is
// honored first, then LinesPerSeries, then the global Lines option.
func (o *Options) lineMode(i int, seriesLine bool) bool {
	if seriesLine {
		return true
	}
	if o.LinesPerSeries != nil && i < len(o.LinesPerSeries) {
		return o.LinesPerSeries[i]
	}
	return o.Lines != nil && *o.Lines
}

// xGridlines returns the x gridline values, applying the [0] default.
func (o *Options) xGridlines() []float64 {
	return gridlineDefault(o.XGridlines, o.XAsLog)
}

// yGridlines returns the y gridline values, applying the [0] default.
func (o *Options) yGridlines() []float64 {
	return gridlineDefault(o.YGridlines, o.YAsLog)
}

// gridlineDefault distinguishes nil (use default) from an explicit empty
// slice (no gridlines). Logarithmic axes default to none since 0 has no
// log position.
func gridlineDefault(given []float64, log bool) []float64 {
	if given != nil {
		return given
	}
	if log {
		return nil
	}
	return []float64{0}
}
