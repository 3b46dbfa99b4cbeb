package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/termplot/pkg/canvas"
	"gitlab.com/tinyland/lab/termplot/pkg/scale"
	"gitlab.com/tinyland/lab/termplot/pkg/series"
)

// Frame border characters.
const (
	cornerTopLeft     = "┌"
	cornerTopRight    = "┐"
	cornerBottomLeft  = "└"
	cornerBottomRight = "┘"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// legendSwatch is the color sample drawn before each legend label.
const legendSwatch = "██"

// ellipsis marks truncated titles and legend entries.
const ellipsis = "…"

// frame holds everything the composer decided up front: the resolved
// canvas size, tick labels, and color mode. Canvas size is fixed here,
// before any rasterization.
type frame struct {
	width      int // canvas cells, after hard-cap resolution
	height     int
	yLabelW    int            // label column width right of the frame
	totalWidth int            // full line width: width + 2 borders + yLabelW
	yByRow     map[int]string // canvas row -> y tick label
	xTicks     []scale.Tick
	colors     []string // palette escape codes, nil in monochrome
	ss         []series.Series
	opts       Options
}

// newFrame resolves the effective dimensions and axis labels. The y label
// column width depends only on the window, so it is known before the
// hard cap is applied; the x tick count then follows from the final width.
func newFrame(ss []series.Series, window scale.Window, opts Options) (*frame, error) {
	height := opts.height()

	maxYTicks := height / 2
	if maxYTicks < 2 {
		maxYTicks = 2
	}
	yTicks := scale.Ticks(window.YMin, window.YMax, window.YLog, opts.YUnit, maxYTicks)

	yLabelW := 0
	for _, tk := range yTicks {
		if n := ansi.StringWidth(tk.Label) + 1; n > yLabelW {
			yLabelW = n
		}
	}

	width := opts.width()
	overhead := 2 + yLabelW
	if hardCap := opts.LineLengthHardCap; hardCap > 0 && width+overhead > hardCap {
		width = hardCap - overhead
		if width < 1 {
			return nil, &ConfigError{
				Option: "line_length_hard_cap",
				Reason: "too small for borders and axis labels",
			}
		}
	}

	maxXTicks := width / minXLabelWidth
	if maxXTicks < 2 {
		maxXTicks = 2
	}
	xTicks := scale.Ticks(window.XMin, window.XMax, window.XLog, opts.XUnit, maxXTicks)

	// Pin each y tick to its nearest canvas row; the first tick to claim
	// a row keeps it.
	yByRow := make(map[int]string, len(yTicks))
	for _, tk := range yTicks {
		row := height - 1 - int(math.Round(tk.Pos*float64(height-1)))
		if row < 0 || row >= height {
			continue
		}
		if _, taken := yByRow[row]; !taken {
			yByRow[row] = tk.Label
		}
	}

	var colors []string
	if opts.colorMode(len(ss)) {
		colors = opts.palette().Codes
	}

	return &frame{
		width:      width,
		height:     height,
		yLabelW:    yLabelW,
		totalWidth: width + 2 + yLabelW,
		yByRow:     yByRow,
		xTicks:     xTicks,
		colors:     colors,
		ss:         ss,
		opts:       opts,
	}, nil
}

// compose assembles the final ordered lines: title, top border, canvas
// rows with y labels, bottom border, x tick row, legend. Every line has
// the same visible width.
func (f *frame) compose(cv *canvas.Canvas) []string {
	lines := make([]string, 0, f.height+4+len(f.opts.LegendLabels))

	if f.opts.Title != "" {
		lines = append(lines, f.titleLine())
	}

	lines = append(lines, f.borderLine(cornerTopLeft, cornerTopRight))

	for row, content := range cv.Rows(f.colors) {
		var sb strings.Builder
		sb.WriteString(borderVertical)
		sb.WriteString(content)
		sb.WriteString(borderVertical)
		if label, ok := f.yByRow[row]; ok {
			sb.WriteString(" ")
			sb.WriteString(label)
		}
		lines = append(lines, padRightVis(sb.String(), f.totalWidth))
	}

	lines = append(lines, f.borderLine(cornerBottomLeft, cornerBottomRight))
	lines = append(lines, f.xTickLine())
	lines = append(lines, f.legendLines()...)

	return lines
}

// titleLine centers the title over the framed area, truncating with an
// ellipsis when it does not fit.
func (f *frame) titleLine() string {
	framed := f.width + 2
	title := f.opts.Title
	if ansi.StringWidth(title) > framed {
		title = ansi.Truncate(title, framed, ellipsis)
	}
	return padRightVis(centerVis(title, framed), f.totalWidth)
}

// borderLine builds a horizontal border padded to the full line width.
func (f *frame) borderLine(left, right string) string {
	return padRightVis(left+strings.Repeat(borderHorizontal, f.width)+right, f.totalWidth)
}

// xTickLine places x tick labels beneath the bottom border, each centered
// under its transformed column. Labels that would overlap an earlier one
// are dropped, keeping the first. All positions count visible cells, so
// double-width runes in labels cannot push the row past the line width.
func (f *frame) xTickLine() string {
	framed := f.width + 2
	var sb strings.Builder

	filled := 0 // visible cells written so far
	for _, tk := range f.xTicks {
		w := ansi.StringWidth(tk.Label)
		col := 1 + int(math.Round(tk.Pos*float64(f.width-1)))
		start := col - w/2
		if start < 0 {
			start = 0
		}
		if start+w > framed {
			start = framed - w
		}
		// Require one blank cell between labels.
		if start < 0 || (filled > 0 && start <= filled) {
			continue
		}
		sb.WriteString(strings.Repeat(" ", start-filled))
		sb.WriteString(tk.Label)
		filled = start + w
	}

	return padRightVis(sb.String(), f.totalWidth)
}

// legendLines renders one swatch+label segment per series in order,
// greedily wrapped to the line width and centered like the original's
// legend block. No legend labels means no lines at all.
func (f *frame) legendLines() []string {
	if len(f.opts.LegendLabels) == 0 {
		return nil
	}

	segments := make([]string, 0, len(f.ss))
	for i := range f.ss {
		label := f.ss[i].Label
		if label == "" && i < len(f.opts.LegendLabels) {
			label = f.opts.LegendLabels[i]
		}
		swatch := legendSwatch
		if f.colors != nil {
			swatch = f.colors[i%len(f.colors)] + legendSwatch + "\x1b[0m"
		}
		seg := swatch + " " + strings.TrimSpace(label)
		if ansi.StringWidth(seg) > f.totalWidth {
			seg = ansi.Truncate(seg, f.totalWidth, ellipsis)
		}
		segments = append(segments, seg)
	}

	var lines []string
	current := ""
	for _, seg := range segments {
		switch {
		case current == "":
			current = seg
		case ansi.StringWidth(current)+2+ansi.StringWidth(seg) <= f.totalWidth:
			current += "  " + seg
		default:
			lines = append(lines, padRightVis(centerVis(current, f.totalWidth), f.totalWidth))
			current = seg
		}
	}
	if current != "" {
		lines = append(lines, padRightVis(centerVis(current, f.totalWidth), f.totalWidth))
	}
	return lines
}

// padRightVis pads s with spaces to the given visible width.
func padRightVis(s string, width int) string {
	vis := ansi.StringWidth(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// centerVis centers s within the given visible width; the extra space of
// an odd remainder goes to the right.
func centerVis(s string, width int) string {
	vis := ansi.StringWidth(s)
	if vis >= width {
		return s
	}
	left := (width - vis) / 2
	return strings.Repeat(" ", left) + s
}
