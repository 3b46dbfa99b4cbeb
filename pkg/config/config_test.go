package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Plot.Palette != "default" {
		t.Errorf("default palette = %q, want %q", cfg.Plot.Palette, "default")
	}
	if cfg.Plot.Color != "auto" {
		t.Errorf("default color = %q, want %q", cfg.Plot.Color, "auto")
	}
	if cfg.Live.Interval.Duration != time.Second {
		t.Errorf("default live interval = %v, want 1s", cfg.Live.Interval.Duration)
	}
}

func TestLoadFromReader(t *testing.T) {
	input := `
[plot]
width = 100
palette = "bright"
y_unit = "ms"
y_gridlines = [0.0, 50.0]

[live]
interval = "250ms"
window = 60

[preset.bench]
height = 30
`
	cfg, err := LoadFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}

	if cfg.Plot.Width != 100 {
		t.Errorf("width = %d, want 100", cfg.Plot.Width)
	}
	if cfg.Plot.Palette != "bright" {
		t.Errorf("palette = %q, want bright", cfg.Plot.Palette)
	}
	if cfg.Plot.YUnit != "ms" {
		t.Errorf("y_unit = %q, want ms", cfg.Plot.YUnit)
	}
	if len(cfg.Plot.YGridlines) != 2 || cfg.Plot.YGridlines[1] != 50 {
		t.Errorf("y_gridlines = %v, want [0 50]", cfg.Plot.YGridlines)
	}
	if cfg.Live.Interval.Duration != 250*time.Millisecond {
		t.Errorf("interval = %v, want 250ms", cfg.Live.Interval.Duration)
	}
	if cfg.Live.Window != 60 {
		t.Errorf("window = %d, want 60", cfg.Live.Window)
	}

	p := cfg.PlotPreset("bench")
	if p.Height != 30 {
		t.Errorf("preset height = %d, want 30", p.Height)
	}
	if p.Width != 100 {
		t.Errorf("preset should inherit base width 100, got %d", p.Width)
	}
}

func TestLoadFromReaderBadDuration(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader(`
[live]
interval = "soon"
`))
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TERMPLOT_PALETTE", "bright")
	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Plot.Palette != "bright" {
		t.Errorf("env override palette = %q, want bright", cfg.Plot.Palette)
	}
}

func TestBuiltinPresets(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"compact", 50, 10},
		{"wide", 120, 25},
		{"detail", 80, 40},
	}
	for _, tt := range tests {
		p := cfg.PlotPreset(tt.name)
		if p.Width != tt.width || p.Height != tt.height {
			t.Errorf("preset %q = %dx%d, want %dx%d",
				tt.name, p.Width, p.Height, tt.width, tt.height)
		}
	}

	if p := cfg.PlotPreset("nope"); !reflect.DeepEqual(p, cfg.Plot) {
		t.Errorf("unknown preset should return base settings, got %+v", p)
	}
}

func TestDurationNegativeRejected(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("-5s")); err == nil {
		t.Fatal("expected error for negative duration")
	}
}
