package terminal

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// Size is the terminal dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal dimensions. It tries multiple
// strategies in order:
//  1. TIOCGWINSZ ioctl on stdout
//  2. TIOCGWINSZ ioctl on stderr (in case stdout is redirected)
//  3. COLUMNS/LINES environment variables
//  4. Fallback to 80x24
func GetSize() Size {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s, ok := getSizeFromIoctl(fd); ok {
			return s
		}
	}
	return getSizeFromEnv()
}

// PlotSize returns the canvas dimensions that fit the current terminal,
// leaving room for borders, axis labels, and a line of shell prompt.
// Margins match what the frame composer adds around the canvas.
func PlotSize() (width, height int) {
	s := GetSize()
	width = s.Cols - 12
	height = s.Rows - 6
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// getSizeFromIoctl queries the terminal size via TIOCGWINSZ.
func getSizeFromIoctl(fd uintptr) (Size, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return Size{}, false
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}, true
}

// getSizeFromEnv reads terminal dimensions from COLUMNS/LINES, falling
// back to 80x24 defaults.
func getSizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", 80),
		Rows: envInt("LINES", 24),
	}
}

// envInt reads a positive integer from the named environment variable,
// returning the fallback if the variable is unset or malformed.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
