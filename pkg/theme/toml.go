package theme

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"
)

// tomlPalette is the TOML-serializable palette definition: a name plus a
// list of #RRGGBB hex colors, rendered as true-color escapes.
type tomlPalette struct {
	Name   string   `toml:"name"`
	Colors []string `toml:"colors"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML palette definition from raw bytes. The result
// is returned to the caller and never registered globally.
func LoadFromTOML(data []byte) (Palette, error) {
	var tp tomlPalette
	if err := toml.Unmarshal(data, &tp); err != nil {
		return Palette{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if tp.Name == "" {
		return Palette{}, fmt.Errorf("theme: missing required field %q", "name")
	}
	if len(tp.Colors) == 0 {
		return Palette{}, fmt.Errorf("theme: palette %q has no colors", tp.Name)
	}

	codes := make([]string, 0, len(tp.Colors))
	for _, hex := range tp.Colors {
		if !hexColorRegex.MatchString(hex) {
			return Palette{}, fmt.Errorf("theme: invalid hex color %q (expected #RRGGBB)", hex)
		}
		codes = append(codes, trueColorCode(hex))
	}

	return Palette{Name: tp.Name, Codes: codes}, nil
}

// LoadFile reads a palette definition from a TOML file.
func LoadFile(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, err
	}
	return LoadFromTOML(data)
}

// trueColorCode converts a validated "#RRGGBB" string to a 24-bit ANSI
// foreground escape.
func trueColorCode(hex string) string {
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}
