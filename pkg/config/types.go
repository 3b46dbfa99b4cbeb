// Package config provides TOML-based configuration for termplot.
package config

// Config is the full configuration file contents.
type Config struct {
	Plot   PlotConfig            `toml:"plot"`
	Live   LiveConfig            `toml:"live"`
	Themes []ThemeFileConfig     `toml:"themes"`
	Preset map[string]PlotConfig `toml:"preset"`
}

// PlotConfig holds default rendering options. Zero values mean "use the
// built-in default"; the CLI only applies fields the user set.
type PlotConfig struct {
	Width      int       `toml:"width"`
	Height     int       `toml:"height"`
	Palette    string    `toml:"palette"`
	Color      string    `toml:"color"` // "auto", "always", "never"
	XUnit      string    `toml:"x_unit"`
	YUnit      string    `toml:"y_unit"`
	XGridlines []float64 `toml:"x_gridlines"`
	YGridlines []float64 `toml:"y_gridlines"`
	Bins       int       `toml:"bins"`
}

// LiveConfig controls the live system-metrics mode.
type LiveConfig struct {
	Interval Duration `toml:"interval"` // sample period
	Window   int      `toml:"window"`   // samples kept on screen
}

// ThemeFileConfig points at an external TOML palette file to load.
type ThemeFileConfig struct {
	Path string `toml:"path"`
}
