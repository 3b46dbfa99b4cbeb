package config

// PlotPreset returns the plot settings for a named preset, checking the
// user's [preset.<name>] tables first and falling back to the built-ins.
// An unknown name returns the config's base plot settings.
func (c *Config) PlotPreset(name string) PlotConfig {
	if p, ok := c.Preset[name]; ok {
		return merged(c.Plot, p)
	}
	if p, ok := builtinPresets[name]; ok {
		return merged(c.Plot, p)
	}
	return c.Plot
}

// builtinPresets are always available, even with no config file.
var builtinPresets = map[string]PlotConfig{
	// Narrow output that fits an 80-column terminal next to a prompt.
	"compact": {Width: 50, Height: 10},
	// Full-width output for modern wide terminals.
	"wide": {Width: 120, Height: 25},
	// Tall canvas for inspecting fine y-axis detail.
	"detail": {Width: 80, Height: 40},
}

// merged overlays the preset's set fields on top of the base settings.
func merged(base, over PlotConfig) PlotConfig {
	out := base
	if over.Width != 0 {
		out.Width = over.Width
	}
	if over.Height != 0 {
		out.Height = over.Height
	}
	if over.Palette != "" {
		out.Palette = over.Palette
	}
	if over.Color != "" {
		out.Color = over.Color
	}
	if over.XUnit != "" {
		out.XUnit = over.XUnit
	}
	if over.YUnit != "" {
		out.YUnit = over.YUnit
	}
	if over.XGridlines != nil {
		out.XGridlines = over.XGridlines
	}
	if over.YGridlines != nil {
		out.YGridlines = over.YGridlines
	}
	if over.Bins != 0 {
		out.Bins = over.Bins
	}
	return out
}
