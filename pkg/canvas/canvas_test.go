package canvas

import (
	"strings"
	"testing"
)

func TestSetSubCellQuadrants(t *testing.T) {
	tests := []struct {
		name   string
		sx, sy int
		want   rune
	}{
		{"lower left", 0, 0, '▖'},
		{"upper left", 0, 1, '▘'},
		{"lower right", 1, 0, '▗'},
		{"upper right", 1, 1, '▝'},
	}
	for _, tc := range tests {
		c := New(1, 1)
		c.SetSubCell(tc.sx, tc.sy, 0)
		row := c.Rows(nil)[0]
		if row != string(tc.want) {
			t.Errorf("%s: got %q, want %q", tc.name, row, string(tc.want))
		}
	}
}

func TestSetSubCellORMerge(t *testing.T) {
	c := New(1, 1)
	c.SetSubCell(0, 0, 0)
	c.SetSubCell(0, 1, 0)
	c.SetSubCell(1, 0, 0)
	c.SetSubCell(1, 1, 0)
	if got := c.Rows(nil)[0]; got != "█" {
		t.Errorf("all four quadrants should merge to full block, got %q", got)
	}
}

func TestFirstWriterColorWins(t *testing.T) {
	colors := []string{"\x1b[34m", "\x1b[35m"}
	c := New(1, 1)
	c.SetSubCell(0, 0, 1) // series 1 writes first
	c.SetSubCell(1, 1, 0) // series 0 merges into the same cell
	row := c.Rows(colors)[0]
	if !strings.Contains(row, "\x1b[35m") {
		t.Errorf("expected first writer's color to be retained, got %q", row)
	}
	if strings.Contains(row, "\x1b[34m") {
		t.Errorf("second writer's color should not appear, got %q", row)
	}
}

func TestRowsMonochromeHasNoEscapes(t *testing.T) {
	c := New(4, 2)
	c.SetSubCell(0, 0, 0)
	c.SetSubCell(3, 3, 1)
	for _, row := range c.Rows(nil) {
		if strings.Contains(row, "\x1b") {
			t.Errorf("monochrome output must not contain ANSI escapes: %q", row)
		}
	}
}

func TestRowsDimensions(t *testing.T) {
	c := New(10, 4)
	rows := c.Rows(nil)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if n := len([]rune(row)); n != 10 {
			t.Errorf("row %d: expected 10 runes, got %d", i, n)
		}
	}
}

func TestBottomLeftOrigin(t *testing.T) {
	c := New(2, 2)
	c.SetSubCell(0, 0, 0) // bottom-left sub-cell
	rows := c.Rows(nil)
	if rows[1][:len("▖")] != "▖" {
		t.Errorf("sub-cell (0,0) should land in the last row, got %q", rows)
	}
	if strings.TrimSpace(rows[0]) != "" {
		t.Errorf("top row should be empty, got %q", rows[0])
	}
}

func TestDrawLineCoversEverySubColumn(t *testing.T) {
	c := New(4, 4)
	c.DrawLine(0, 0, 7, 7, 0)
	rows := c.Rows(nil)
	// A corner-to-corner diagonal must light something in every row.
	for i, row := range rows {
		if strings.TrimSpace(row) == "" {
			t.Errorf("row %d empty, diagonal line has a gap: %q", i, rows)
		}
	}
}

func TestDrawLineSinglePoint(t *testing.T) {
	c := New(2, 2)
	c.DrawLine(1, 1, 1, 1, 0)
	rows := c.Rows(nil)
	joined := strings.Join(rows, "")
	if strings.TrimSpace(joined) == "" {
		t.Error("zero-length line should still plot its point")
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	c := New(4, 1)
	c.DrawLine(0, 0, 7, 0, 0)
	row := c.Rows(nil)[0]
	for i, r := range []rune(row) {
		if r != '▄' {
			t.Errorf("cell %d: expected lower half block, got %q", i, string(r))
		}
	}
}

func TestGridlines(t *testing.T) {
	c := New(3, 3)
	c.GridlineVertical(2)   // middle column
	c.GridlineHorizontal(2) // middle row
	rows := c.Rows(nil)
	if rows[0] != " │ " {
		t.Errorf("top row: got %q, want %q", rows[0], " │ ")
	}
	if rows[1] != "─┼─" {
		t.Errorf("middle row: got %q, want %q", rows[1], "─┼─")
	}
}

func TestDataCoversGridline(t *testing.T) {
	c := New(1, 1)
	c.GridlineVertical(0)
	c.SetSubCell(0, 0, 0)
	row := c.Rows(nil)[0]
	if row != "▖" {
		t.Errorf("data glyph should take precedence over gridline, got %q", row)
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	c := New(2, 2)
	c.SetSubCell(-1, 0, 0)
	c.SetSubCell(0, 99, 0)
	c.GridlineVertical(-5)
	c.GridlineHorizontal(99)
	for _, row := range c.Rows(nil) {
		if strings.TrimSpace(row) != "" {
			t.Errorf("out-of-range writes must be ignored, got %q", row)
		}
	}
}
