// Package theme provides the color palettes series are drawn with. A
// palette is an immutable ordered list of ANSI escape prefixes; series i
// renders in entry i mod N. Built-in palettes are registered once at init
// and the registry is read-only afterwards, so concurrent renders never
// share mutable state.
package theme

import (
	"sort"
	"strings"
)

// Palette is an ordered list of ANSI color escape prefixes assigned to
// series by index.
type Palette struct {
	Name  string
	Codes []string
}

// ColorFor returns the escape prefix for series index i, cycling through
// the palette.
func (p Palette) ColorFor(i int) string {
	if len(p.Codes) == 0 {
		return ""
	}
	return p.Codes[i%len(p.Codes)]
}

var registry = map[string]Palette{}

func init() {
	for _, p := range []Palette{defaultPalette(), brightPalette()} {
		registry[strings.ToLower(p.Name)] = p
	}
}

// Get returns a named built-in palette, falling back to the default
// palette for unknown names.
func Get(name string) Palette {
	if p, ok := registry[strings.ToLower(name)]; ok {
		return p
	}
	return registry["default"]
}

// Names returns all built-in palette names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultPalette is the fixed six-color set: blue, magenta, green, yellow,
// cyan, red.
func defaultPalette() Palette {
	return Palette{
		Name: "default",
		Codes: []string{
			"\x1b[34m", // blue
			"\x1b[35m", // magenta
			"\x1b[32m", // green
			"\x1b[33m", // yellow
			"\x1b[36m", // cyan
			"\x1b[31m", // red
		},
	}
}

// brightPalette uses the high-intensity variants of the same six colors.
func brightPalette() Palette {
	return Palette{
		Name: "bright",
		Codes: []string{
			"\x1b[94m",
			"\x1b[95m",
			"\x1b[92m",
			"\x1b[93m",
			"\x1b[96m",
			"\x1b[91m",
		},
	}
}
