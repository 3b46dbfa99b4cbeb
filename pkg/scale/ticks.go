package scale

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tick is one axis tick: a normalized position inside the window and its
// formatted label.
type Tick struct {
	Pos   float64 // [0, 1], 0 = window minimum
	Label string
}

// groupPrinter formats integers with thousands grouping. The language is
// pinned so output never depends on the ambient locale.
var groupPrinter = message.NewPrinter(language.English)

// Ticks generates at most maxTicks ordered ticks for the axis [lo, hi],
// never fewer than two. The step is a "nice" value (1, 2, or 5 times a
// power of ten) chosen deterministically from maxTicks; logarithmic axes
// tick at powers of ten instead. When no nice step fits, the window bounds
// themselves are the ticks. The unit string is appended verbatim to every
// label.
func Ticks(lo, hi float64, log bool, unit string, maxTicks int) []Tick {
	if maxTicks < 2 {
		maxTicks = 2
	}

	var ticks []Tick
	if log {
		ticks = logTicks(lo, hi, unit, maxTicks)
	} else {
		ticks = linearTicks(lo, hi, unit, maxTicks)
	}

	if len(ticks) < 2 {
		ticks = []Tick{
			{Pos: 0, Label: formatValue(lo, -1) + unit},
			{Pos: 1, Label: formatValue(hi, -1) + unit},
		}
	}
	return ticks
}

// linearTicks places ticks at multiples of a nice step inside [lo, hi].
func linearTicks(lo, hi float64, unit string, maxTicks int) []Tick {
	step := niceStep((hi - lo) / float64(maxTicks-1))
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil
	}

	decimals := stepDecimals(step)
	eps := step * 1e-9

	var ticks []Tick
	for v := math.Ceil(lo/step) * step; v <= hi+eps; v += step {
		// Snap tiny float drift back onto the step grid.
		if math.Abs(v) < eps {
			v = 0
		}
		ticks = append(ticks, Tick{
			Pos:   Forward(v, lo, hi, false),
			Label: formatValue(v, decimals) + unit,
		})
	}
	return ticks
}

// logTicks places ticks at powers of ten inside [lo, hi], striding decades
// when more than maxTicks would fit.
func logTicks(lo, hi float64, unit string, maxTicks int) []Tick {
	if lo <= 0 || hi <= lo {
		return nil
	}
	first := int(math.Ceil(math.Log10(lo) - 1e-9))
	last := int(math.Floor(math.Log10(hi) + 1e-9))
	if last < first {
		return nil
	}

	stride := 1
	for (last-first)/stride+1 > maxTicks {
		stride++
	}

	var ticks []Tick
	for e := first; e <= last; e += stride {
		v := math.Pow(10, float64(e))
		ticks = append(ticks, Tick{
			Pos:   Forward(v, lo, hi, true),
			Label: formatValue(v, -1) + unit,
		})
	}
	return ticks
}

// niceStep rounds raw up to the nearest 1, 2, or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch frac := raw / mag; {
	case frac <= 1:
		return mag
	case frac <= 2:
		return 2 * mag
	case frac <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// stepDecimals returns the number of decimal places needed to print
// multiples of step exactly.
func stepDecimals(step float64) int {
	if step >= 1 {
		return 0
	}
	d := int(math.Ceil(-math.Log10(step) - 1e-9))
	if d < 0 {
		d = 0
	}
	if d > 10 {
		d = 10
	}
	return d
}

// formatValue renders a tick value. Integral values get thousands grouping;
// fractional values print with the given decimal count (or compact %g when
// decimals is negative), trimmed of trailing zeros.
func formatValue(v float64, decimals int) string {
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return groupPrinter.Sprintf("%d", int64(v))
	}
	var s string
	if decimals < 0 {
		s = strconv.FormatFloat(v, 'g', 6, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', decimals, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimRight(s, ".")
		}
	}
	return s
}
