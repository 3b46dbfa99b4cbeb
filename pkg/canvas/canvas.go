// Package canvas implements the quadrant-resolution character grid the
// rasterizer draws into. Each character cell holds a 2x2 grid of sub-cells,
// giving double the addressable resolution per axis; the four sub-cell bits
// of a cell select one Unicode quadrant-block glyph. A separate base layer
// carries gridline runes, which set quadrant bits always cover.
//
// A Canvas is owned by exactly one render call and is never shared.
package canvas

import (
	"strings"
)

// Quadrant bit assignments within one character cell.
const (
	bitUpperLeft  = 1
	bitUpperRight = 2
	bitLowerLeft  = 4
	bitLowerRight = 8
)

// quadrantGlyphs maps the set of lit quadrants to its block glyph.
// Index is the OR of the quadrant bits above.
var quadrantGlyphs = [16]rune{
	' ',
	'▘', // ▘ upper left
	'▝', // ▝ upper right
	'▀', // ▀ upper half
	'▖', // ▖ lower left
	'▌', // ▌ left half
	'▞', // ▞ anti-diagonal
	'▛', // ▛
	'▗', // ▗ lower right
	'▚', // ▚ diagonal
	'▐', // ▐ right half
	'▜', // ▜
	'▄', // ▄ lower half
	'▙', // ▙
	'▟', // ▟
	'█', // █ full block
}

// Gridline runes for the base layer.
const (
	gridVertical   = '│' // │
	gridHorizontal = '─' // ─
	gridCross      = '┼' // ┼
)

// resetCode clears ANSI styling after a colored glyph.
const resetCode = "\x1b[0m"

// noColor marks a cell no series has written to yet.
const noColor = -1

// cell is the per-character-cell state: lit quadrant bits, the color index
// of the first series that wrote to it, and the gridline base rune.
type cell struct {
	bits  uint8
	color int
	base  rune
}

// Canvas is a width x height character grid addressed in sub-cell
// coordinates with the origin at the bottom-left, matching data space.
type Canvas struct {
	width  int // character cells
	height int
	cells  [][]cell // [row][col], row 0 = top line of output
}

// New allocates an empty canvas of the given character dimensions.
// Width and height must be positive; callers validate before allocation.
func New(width, height int) *Canvas {
	cells := make([][]cell, height)
	for r := range cells {
		cells[r] = make([]cell, width)
		for col := range cells[r] {
			cells[r][col] = cell{color: noColor, base: ' '}
		}
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// SubWidth returns the number of addressable sub-cell columns.
func (c *Canvas) SubWidth() int { return c.width * 2 }

// SubHeight returns the number of addressable sub-cell rows.
func (c *Canvas) SubHeight() int { return c.height * 2 }

// SetSubCell lights the quadrant at sub-cell position (sx, sy), with sy 0
// at the bottom. The cell's quadrant bits OR-merge across writes; the color
// of the first writer is retained when series overlap (the documented
// composition policy). Out-of-range positions are ignored.
func (c *Canvas) SetSubCell(sx, sy, colorIdx int) {
	if sx < 0 || sx >= c.SubWidth() || sy < 0 || sy >= c.SubHeight() {
		return
	}
	row := c.height - 1 - sy/2
	col := sx / 2

	top := sy%2 == 1
	left := sx%2 == 0

	var bit uint8
	switch {
	case top && left:
		bit = bitUpperLeft
	case top && !left:
		bit = bitUpperRight
	case !top && left:
		bit = bitLowerLeft
	default:
		bit = bitLowerRight
	}

	cl := &c.cells[row][col]
	cl.bits |= bit
	if cl.color == noColor {
		cl.color = colorIdx
	}
}

// DrawLine walks a fixed-step digital line from (x0, y0) to (x1, y1) in
// sub-cell coordinates, lighting every intermediate sub-cell. Endpoints
// outside the canvas must be clipped by the caller first.
func (c *Canvas) DrawLine(x0, y0, x1, y1, colorIdx int) {
	dx := x1 - x0
	dy := y1 - y0
	steps := absInt(dx)
	if absInt(dy) > steps {
		steps = absInt(dy)
	}
	if steps == 0 {
		c.SetSubCell(x0, y0, colorIdx)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + roundDiv(dx*i, steps)
		y := y0 + roundDiv(dy*i, steps)
		c.SetSubCell(x, y, colorIdx)
	}
}

// GridlineVertical draws a full-height reference line in the character
// column containing sub-cell column sx. Crossings with horizontal
// gridlines become a cross rune.
func (c *Canvas) GridlineVertical(sx int) {
	if sx < 0 || sx >= c.SubWidth() {
		return
	}
	col := sx / 2
	for row := 0; row < c.height; row++ {
		mergeGridRune(&c.cells[row][col], gridVertical)
	}
}

// GridlineHorizontal draws a full-width reference line in the character
// row containing sub-cell row sy (sy 0 at the bottom).
func (c *Canvas) GridlineHorizontal(sy int) {
	if sy < 0 || sy >= c.SubHeight() {
		return
	}
	row := c.height - 1 - sy/2
	for col := 0; col < c.width; col++ {
		mergeGridRune(&c.cells[row][col], gridHorizontal)
	}
}

// mergeGridRune writes a gridline rune into the base layer, upgrading to a
// cross where perpendicular gridlines meet.
func mergeGridRune(cl *cell, r rune) {
	switch {
	case cl.base == ' ':
		cl.base = r
	case cl.base != r:
		cl.base = gridCross
	}
}

// Rows renders the canvas into one string per character row, top to
// bottom. When colors is non-nil, cells written by series i are wrapped in
// colors[i mod len(colors)] and an ANSI reset; a nil palette emits plain
// glyphs. Cells with no quadrant bits show their gridline base rune.
func (c *Canvas) Rows(colors []string) []string {
	lines := make([]string, c.height)
	for row := 0; row < c.height; row++ {
		var sb strings.Builder
		for col := 0; col < c.width; col++ {
			cl := c.cells[row][col]
			if cl.bits == 0 {
				sb.WriteRune(cl.base)
				continue
			}
			glyph := quadrantGlyphs[cl.bits]
			if colors != nil && cl.color >= 0 {
				sb.WriteString(colors[cl.color%len(colors)])
				sb.WriteRune(glyph)
				sb.WriteString(resetCode)
			} else {
				sb.WriteRune(glyph)
			}
		}
		lines[row] = sb.String()
	}
	return lines
}

// absInt returns the absolute value of an int.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// roundDiv divides a by b rounding to nearest, away from zero on ties.
func roundDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	if (a < 0) != (b < 0) {
		return -((-a*2 + b) / (2 * b))
	}
	return (a*2 + b) / (2 * b)
}
