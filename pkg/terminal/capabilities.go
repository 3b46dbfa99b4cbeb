// Package terminal answers the two questions the renderer cannot answer
// for itself: how big is the output surface, and is it safe to emit ANSI
// color. Everything here reads process state only; nothing writes to the
// terminal.
package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities is the cached capability summary for the current session.
type Capabilities struct {
	Size      Size
	IsTTY     bool // stdout is attached to a terminal
	Color     bool // ANSI color output is safe
	TrueColor bool // 24-bit color support
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex // guards ForceRefresh reset
)

// DetectCapabilities performs detection once and caches the result. Safe
// to call from multiple goroutines.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// ForceRefresh re-detects capabilities, replacing the cached value. Use
// after a terminal change such as a window resize.
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()

	detectOnce = sync.Once{}
	cached = detect()
	return cached
}

func detect() *Capabilities {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	profile := termenv.EnvColorProfile()

	// NO_COLOR and redirected output both disable color; termenv already
	// honors NO_COLOR and CLICOLOR_FORCE in EnvColorProfile.
	color := tty && profile != termenv.Ascii

	return &Capabilities{
		Size:      GetSize(),
		IsTTY:     tty,
		Color:     color,
		TrueColor: profile == termenv.TrueColor,
	}
}
