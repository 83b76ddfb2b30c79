// Package tui is the terminal frontend: the brush chart drawn on a braille
// canvas, brushed with the mouse.
package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/brush"
	"github.com/san-kum/brushchart/internal/chart"
	"github.com/san-kum/brushchart/internal/export"
	"github.com/san-kum/brushchart/internal/viz"
)

const (
	headerLines = 2
	axisWidth   = 6
	xAxisLines  = 2
	childLines  = 9
	helpLines   = 1
	minCols     = 10
	minRows     = 4
)

type Model struct {
	app    *app.App
	theme  viz.Theme
	styles viz.Styles
	keys   keyMap
	help   help.Model
	zones  *zone.Manager
	zoneID string
	outDir string

	width, height int
	cols, rows    int
	frame         chart.Frame[app.ChildView]
	status        string
}

// New builds the model. zones may be nil, in which case mouse positions are
// resolved from the fixed layout.
func New(a *app.App, theme viz.Theme, zones *zone.Manager) Model {
	m := Model{
		app:    a,
		theme:  theme,
		styles: viz.NewStyles(theme),
		keys:   defaultKeys(),
		help:   help.New(),
		zones:  zones,
		outDir: ".",
		width:  80,
		height: 24,
	}
	if zones != nil {
		m.zoneID = zones.NewPrefix() + "chart"
	}
	m.layout()
	m.frame = a.Render()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		if cmd != nil {
			return m, cmd
		}
	case tea.MouseMsg:
		x, y, ok := m.chartPos(msg)
		if !ok {
			return m, nil
		}
		m.pointer(msg, x, y)
	default:
		return m, nil
	}
	m.frame = m.app.Render()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		v := m.app.AddSample()
		m.status = fmt.Sprintf("added %g", v)
	case key.Matches(msg, m.keys.Reset):
		m.app.ResetSelection()
		m.status = "selection reset"
	case key.Matches(msg, m.keys.Cancel):
		m.app.Chart().Brush().Cancel()
	case key.Matches(msg, m.keys.Theme):
		m.theme = viz.NextTheme(m.theme.Name)
		m.styles = viz.NewStyles(m.theme)
		m.status = "theme " + m.theme.Name
	case key.Matches(msg, m.keys.Save):
		m.status = m.save("svg", export.FrameToSVG(m.frame, m.theme))
	case key.Matches(msg, m.keys.Snapshot):
		canvas := viz.Plot(m.frame, m.cols, m.rows)
		m.status = m.save("terminal.svg", export.CanvasToSVG(canvas, 4, m.theme))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) save(suffix, content string) string {
	path := filepath.Join(m.outDir, fmt.Sprintf("brushchart-%d.%s", time.Now().UnixNano(), suffix))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		log.Printf("save %s: %v", path, err)
		return "save failed: " + err.Error()
	}
	return "saved " + path
}

// layout sizes the canvas from the window and reports the new pixel size
// to the chart's observer.
func (m *Model) layout() {
	m.cols = max(m.width-axisWidth-2, minCols)
	m.rows = max(m.height-headerLines-xAxisLines-childLines-helpLines, minRows)
	m.app.Observer().Observe(float64(m.cols*2-1), float64(m.rows*4-1))
}

// chartPos converts a mouse position to cell coordinates relative to the
// chart's top left corner. Presses must land on the chart; drags may leave it
// and are clamped by the brush.
func (m Model) chartPos(msg tea.MouseMsg) (int, int, bool) {
	ox, oy := axisWidth, headerLines
	if m.zones != nil {
		if z := m.zones.Get(m.zoneID); z != nil && !z.IsZero() {
			ox, oy = z.StartX, z.StartY
		}
	}
	x, y := msg.X-ox, msg.Y-oy
	if msg.Action == tea.MouseActionPress && (x < 0 || y < 0 || x >= m.cols || y >= m.rows) {
		return 0, 0, false
	}
	return x, y, true
}

func (m Model) pointer(msg tea.MouseMsg, x, y int) {
	b := m.app.Chart().Brush()
	px, py := float64(x*2), float64(y*4)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if b.Press(px, py) {
			log.Printf("brush press at %v,%v", px, py)
		}
	case tea.MouseActionMotion:
		if b.State() == brush.Dragging {
			b.Drag(px)
		}
	case tea.MouseActionRelease:
		if b.State() == brush.Dragging {
			b.Release(px)
			log.Printf("brush release, selection %+v", m.app.Chart().Selection())
		}
	}
}

// Frame is the frame the last update produced.
func (m Model) Frame() chart.Frame[app.ChildView] {
	return m.frame
}
