// termplot renders numeric series as Unicode plots in the terminal.
//
// It reads whitespace- or comma-separated columns from stdin or files and
// draws them as scatter plots, line plots, or histograms at quadrant
// sub-character resolution. An interactive mode pans and zooms the view,
// and a live mode streams system metrics into a scrolling plot.
//
// Usage:
//
//	termplot [flags] [file ...]
//
// Flags:
//
//	-title string        Plot title
//	-width int           Canvas width in cells (0 = default 60)
//	-height int          Canvas height in cells (0 = default 17)
//	-lines               Connect points with lines
//	-color string        Color mode: auto|always|never (default auto)
//	-palette string      Palette name (default "default")
//	-legend string       Comma-separated legend labels
//	-x-log, -y-log       Logarithmic axis
//	-x-min, -x-max       Fixed x view bounds
//	-y-min, -y-max       Fixed y view bounds
//	-x-unit, -y-unit     Unit suffix for axis labels
//	-x-gridlines string  Comma-separated x gridline values ("none" disables)
//	-y-gridlines string  Comma-separated y gridline values ("none" disables)
//	-first-col-x         Treat the first input column as shared x values
//	-hist                Render a histogram of the input values
//	-bins int            Histogram bin count (0 = default 20)
//	-hard-cap int        Maximum rendered line width including labels
//	-interactive         Pan and zoom with the keyboard
//	-live string         Plot a live system metric (cpu|mem|load)
//	-interval duration   Live sampling period (default from config)
//	-preset string       Named size preset from config (compact|wide|detail)
//	-config string       Path to configuration file
//	-verbose             Enable verbose logging
//	-version             Print version and exit
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/termplot/pkg/config"
	"gitlab.com/tinyland/lab/termplot/pkg/interactive"
	"gitlab.com/tinyland/lab/termplot/pkg/metrics"
	"gitlab.com/tinyland/lab/termplot/pkg/plot"
	"gitlab.com/tinyland/lab/termplot/pkg/terminal"
	"gitlab.com/tinyland/lab/termplot/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		title       = flag.String("title", "", "Plot title")
		width       = flag.Int("width", 0, "Canvas width in cells (0 = default)")
		height      = flag.Int("height", 0, "Canvas height in cells (0 = default)")
		lines       = flag.Bool("lines", false, "Connect points with lines")
		colorMode   = flag.String("color", "", "Color mode: auto|always|never")
		paletteName = flag.String("palette", "", "Palette name")
		legend      = flag.String("legend", "", "Comma-separated legend labels")
		xLog        = flag.Bool("x-log", false, "Logarithmic x axis")
		yLog        = flag.Bool("y-log", false, "Logarithmic y axis")
		xMin        = flag.String("x-min", "", "Fixed minimum x view bound")
		xMax        = flag.String("x-max", "", "Fixed maximum x view bound")
		yMin        = flag.String("y-min", "", "Fixed minimum y view bound")
		yMax        = flag.String("y-max", "", "Fixed maximum y view bound")
		xUnit       = flag.String("x-unit", "", "Unit suffix for x axis labels")
		yUnit       = flag.String("y-unit", "", "Unit suffix for y axis labels")
		xGrid       = flag.String("x-gridlines", "", `Comma-separated x gridline values ("none" disables)`)
		yGrid       = flag.String("y-gridlines", "", `Comma-separated y gridline values ("none" disables)`)
		firstColX   = flag.Bool("first-col-x", false, "Treat the first input column as shared x values")
		hist        = flag.Bool("hist", false, "Render a histogram of the input values")
		bins        = flag.Int("bins", 0, "Histogram bin count (0 = default)")
		hardCap     = flag.Int("hard-cap", 0, "Maximum rendered line width including labels")
		interact    = flag.Bool("interactive", false, "Pan and zoom with the keyboard")
		live        = flag.String("live", "", "Plot a live system metric (cpu|mem|load)")
		interval    = flag.Duration("interval", 0, "Live sampling period")
		preset      = flag.String("preset", "", "Named size preset from config")
		configPath  = flag.String("config", "", "Path to configuration file")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("termplot %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	base := cfg.Plot
	if *preset != "" {
		base = cfg.PlotPreset(*preset)
	}

	opts, err := buildOptions(cfg, base, flagState{
		title: *title, width: *width, height: *height,
		lines: *lines, colorMode: *colorMode, paletteName: *paletteName,
		legend: *legend, xLog: *xLog, yLog: *yLog,
		xMin: *xMin, xMax: *xMax, yMin: *yMin, yMax: *yMax,
		xUnit: *xUnit, yUnit: *yUnit, xGrid: *xGrid, yGrid: *yGrid,
		bins: *bins, hardCap: *hardCap,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	switch {
	case *live != "":
		sampleEvery := cfg.Live.Interval.Duration
		if *interval > 0 {
			sampleEvery = *interval
		}
		if err := runLive(*live, sampleEvery, cfg.Live.Window, opts, logger); err != nil {
			logger.Error("live mode failed", "metric", *live, "error", err)
			os.Exit(1)
		}

	default:
		xs, ys, err := readInput(flag.Args(), *firstColX)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read input: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("parsed input", "series", len(ys))

		switch {
		case *hist:
			values := ys
			err = plot.Histogram(values, opts)
		case *interact:
			err = interactive.Run(xs, ys, opts)
		default:
			err = plot.Plot(xs, ys, opts)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
}

// loadConfig loads the given file, or searches the standard paths when no
// path was given.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// flagState carries the parsed flag values into option resolution.
type flagState struct {
	title, colorMode, paletteName, legend string
	xMin, xMax, yMin, yMax                string
	xUnit, yUnit, xGrid, yGrid            string
	width, height, bins, hardCap          int
	lines, xLog, yLog                     bool
}

// buildOptions merges config file settings and command line flags into the
// render options. Flags win over config values.
func buildOptions(cfg *config.Config, base config.PlotConfig, fs flagState) (plot.Options, error) {
	opts := plot.Options{
		Title:             fs.title,
		Width:             base.Width,
		Height:            base.Height,
		XAsLog:            fs.xLog,
		YAsLog:            fs.yLog,
		XUnit:             base.XUnit,
		YUnit:             base.YUnit,
		XGridlines:        base.XGridlines,
		YGridlines:        base.YGridlines,
		Bins:              base.Bins,
		LineLengthHardCap: fs.hardCap,
	}
	if fs.width != 0 {
		opts.Width = fs.width
	}
	if fs.height != 0 {
		opts.Height = fs.height
	}
	if fs.lines {
		opts.Lines = &fs.lines
	}
	if fs.xUnit != "" {
		opts.XUnit = fs.xUnit
	}
	if fs.yUnit != "" {
		opts.YUnit = fs.yUnit
	}
	if fs.bins != 0 {
		opts.Bins = fs.bins
	}
	if fs.legend != "" {
		opts.LegendLabels = strings.Split(fs.legend, ",")
	}

	var err error
	if opts.XMin, err = parseBound(fs.xMin, "x-min"); err != nil {
		return opts, err
	}
	if opts.XMax, err = parseBound(fs.xMax, "x-max"); err != nil {
		return opts, err
	}
	if opts.YMin, err = parseBound(fs.yMin, "y-min"); err != nil {
		return opts, err
	}
	if opts.YMax, err = parseBound(fs.yMax, "y-max"); err != nil {
		return opts, err
	}
	if fs.xGrid != "" {
		if opts.XGridlines, err = parseGridlines(fs.xGrid, "x-gridlines"); err != nil {
			return opts, err
		}
	}
	if fs.yGrid != "" {
		if opts.YGridlines, err = parseGridlines(fs.yGrid, "y-gridlines"); err != nil {
			return opts, err
		}
	}

	mode := fs.colorMode
	if mode == "" {
		mode = base.Color
	}
	switch mode {
	case "", "auto":
		if !terminal.DetectCapabilities().Color {
			off := false
			opts.Color = &off
		}
	case "always":
		on := true
		opts.Color = &on
	case "never":
		off := false
		opts.Color = &off
	default:
		return opts, fmt.Errorf("invalid -color %q (want auto, always, or never)", mode)
	}

	name := fs.paletteName
	if name == "" {
		name = base.Palette
	}
	opts.Palette = resolvePalette(cfg, name)

	return opts, nil
}

// resolvePalette checks user theme files from the config before the
// built-in registry. Unloadable files are skipped with a warning.
func resolvePalette(cfg *config.Config, name string) theme.Palette {
	for _, tf := range cfg.Themes {
		p, err := theme.LoadFile(tf.Path)
		if err != nil {
			slog.Warn("skipping theme file", "path", tf.Path, "error", err)
			continue
		}
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return theme.Get(name)
}

// parseBound parses an optional float flag; an empty string means unset.
func parseBound(s, name string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid -%s %q: %w", name, s, err)
	}
	return &v, nil
}

// parseGridlines parses a comma-separated value list. "none" returns an
// empty non-nil slice, which disables the default gridlines.
func parseGridlines(s, name string) ([]float64, error) {
	if s == "none" {
		return []float64{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid -%s %q: %w", name, s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// readInput parses numeric columns from the named files, or stdin when no
// files were given. Column j of the input becomes series j; with firstColX
// the first column supplies the x value for every other column.
func readInput(files []string, firstColX bool) (xs, ys [][]float64, err error) {
	readers := []io.Reader{}
	if len(files) == 0 {
		readers = append(readers, os.Stdin)
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		readers = append(readers, f)
	}
	return parseColumns(io.MultiReader(readers...), firstColX)
}

// parseColumns reads rows of numbers, splitting on commas and whitespace.
// Rows may be ragged; each column collects values from the rows that have
// it. Unparseable fields become NaN so the normalizer drops the pair
// instead of shifting later values.
func parseColumns(r io.Reader, firstColX bool) (xs, ys [][]float64, err error) {
	var cols [][]float64
	var colXs [][]float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})

		var x float64
		hasX := false
		start := 0
		if firstColX && len(fields) > 0 {
			if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
				x = v
				hasX = true
			}
			start = 1
		}

		for j, f := range fields[start:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				continue // header row or stray text
			}
			for len(cols) <= j {
				cols = append(cols, nil)
				colXs = append(colXs, nil)
			}
			cols[j] = append(cols[j], v)
			if firstColX {
				if hasX {
					colXs[j] = append(colXs[j], x)
				} else {
					colXs[j] = append(colXs[j], math.NaN())
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("no numeric data found")
	}

	if firstColX {
		return colXs, cols, nil
	}
	return nil, cols, nil
}

// runLive samples a system metric on a fixed cadence and streams the ring
// contents into the interactive viewer.
func runLive(metric string, every time.Duration, window int, opts plot.Options, logger *slog.Logger) error {
	sampler, err := metrics.NewSampler(metric)
	if err != nil {
		return err
	}
	if every <= 0 {
		every = time.Second
	}
	if opts.Title == "" {
		opts.Title = sampler.Name()
	}
	on := true
	opts.Lines = &on

	m, err := interactive.NewModel(nil, [][]float64{{}}, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ring := metrics.NewRing(window)
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				v, err := sampler.Sample(ctx)
				if err != nil {
					logger.Debug("sample failed", "metric", metric, "error", err)
					continue
				}
				ring.Push(v)
				p.Send(interactive.DataMsg{Ys: [][]float64{ring.Values()}})
			}
		}
	}()

	_, err = p.Run()
	return err
}
