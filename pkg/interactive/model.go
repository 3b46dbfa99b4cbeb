// Package interactive drives the redraw loop around the pure render
// function. A bubbletea model owns the caller-side view window, mutates it
// on pan/zoom keys, and re-invokes the renderer with the updated window;
// the rendering core itself stays stateless between frames.
package interactive

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termplot/pkg/plot"
	"gitlab.com/tinyland/lab/termplot/pkg/scale"
	"gitlab.com/tinyland/lab/termplot/pkg/series"
)

// Margins reserved for borders, axis labels, and the help footer when
// fitting the canvas to the terminal.
const (
	widthMargin  = 12
	heightMargin = 6
)

// helpStyle renders the keybinding footer dimmed so it reads as chrome,
// not data.
var helpStyle = lipgloss.NewStyle().Faint(true)

// DataMsg replaces the plotted series, used by live data sources. The
// view window follows the new data extent unless the user has panned or
// zoomed away from the home view.
type DataMsg struct {
	Xs [][]float64
	Ys [][]float64
}

// Model is the bubbletea model of the interactive viewer.
type Model struct {
	ss     []series.Series
	opts   plot.Options
	home   scale.Window // reset target, recomputed on new data
	window scale.Window
	keys   KeyMap
	pinned bool // user moved away from the home view
	err    error
}

// NewModel prepares the series and initial view window. All input
// validation happens here, before the program starts.
func NewModel(xs, ys [][]float64, opts plot.Options) (Model, error) {
	ss, window, err := plot.Prepare(xs, ys, opts)
	if err != nil {
		return Model{}, err
	}
	return Model{
		ss:     ss,
		opts:   opts,
		home:   window,
		window: window,
		keys:   DefaultKeyMap(),
	}, nil
}

// Window returns the current view window, for tests and callers that
// persist the view across sessions.
func (m Model) Window() scale.Window { return m.window }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model: pan/zoom keys mutate the view window,
// resize events refit the canvas, and DataMsg swaps the series.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.window = m.window.ShiftLeft()
			m.pinned = true
		case key.Matches(msg, m.keys.Right):
			m.window = m.window.ShiftRight()
			m.pinned = true
		case key.Matches(msg, m.keys.Up):
			m.window = m.window.ShiftUp()
			m.pinned = true
		case key.Matches(msg, m.keys.Down):
			m.window = m.window.ShiftDown()
			m.pinned = true
		case key.Matches(msg, m.keys.ZoomIn):
			m.window = m.window.ZoomIn()
			m.pinned = true
		case key.Matches(msg, m.keys.ZoomOut):
			m.window = m.window.ZoomOut()
			m.pinned = true
		case key.Matches(msg, m.keys.Reset):
			m.window = m.home
			m.pinned = false
		}

	case tea.WindowSizeMsg:
		if w := msg.Width - widthMargin; w > 0 {
			m.opts.Width = w
		}
		if h := msg.Height - heightMargin; h > 0 {
			m.opts.Height = h
		}

	case DataMsg:
		ss, window, err := plot.Prepare(msg.Xs, msg.Ys, m.opts)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.ss = ss
		m.home = window
		if !m.pinned {
			m.window = window
		}
		m.err = nil
	}

	return m, nil
}

// View implements tea.Model: one full frame plus the help footer.
func (m Model) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}
	lines, err := plot.RenderWindow(m.ss, m.window, m.opts)
	if err != nil {
		return "error: " + err.Error() + "\n"
	}
	help := helpStyle.Render("h/j/k/l pan · u/n zoom · r reset · q quit")
	return strings.Join(lines, "\n") + "\n" + help + "\n"
}

// Run starts the interactive viewer and blocks until the user quits.
func Run(xs, ys [][]float64, opts plot.Options) error {
	m, err := NewModel(xs, ys, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
