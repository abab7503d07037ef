// Package tui is the terminal front end: a bubbletea program that maps
// cell-grid mouse tracking onto the session's world coordinates and renders
// the demonstration on a braille canvas.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/eigshow/internal/engine"
	"github.com/san-kum/eigshow/internal/matrices"
	"github.com/san-kum/eigshow/internal/vec"
	"github.com/san-kum/eigshow/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	blue   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

type state int

const (
	stateMenu state = iota
	stateDemo
)

// Canvas position within the rendered frame, in cells. Mouse coordinates
// arrive frame-relative and are shifted by these before world mapping.
const (
	canvasTop  = 3
	canvasLeft = 3
)

type model struct {
	state   state
	cursor  int
	choices []string

	session *engine.Session
	changes int // observer notification count, shown in the status line

	canvas *viz.Canvas
	width  int
	height int
}

func newModel(catalog *matrices.Catalog, seed uint64) *model {
	m := &model{
		choices: catalog.Names(),
		width:   80,
		height:  24,
	}
	m.session = engine.NewSession(catalog, seed, engine.ObserverFunc(func(*engine.Session) {
		m.changes++
	}))
	m.resize()
	return m
}

func (m *model) resize() {
	rows := m.height - canvasTop - 4
	if rows < 12 {
		rows = 12
	}
	cols := rows * 2 // braille cells are 2x4 sub-pixels; square world needs 2:1
	if cols > m.width-canvasLeft-2 && m.width > canvasLeft+26 {
		cols = m.width - canvasLeft - 2
		rows = cols / 2
	}
	m.canvas = viz.NewCanvas(cols, rows, engine.Threshold)
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.MouseMsg:
		if m.state == stateDemo {
			m.handleMouse(msg)
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	wx, wy := m.canvas.World(msg.X-canvasLeft, msg.Y-canvasTop)
	p := vec.Vec2{X: wx, Y: wy}

	// Every raw event is forwarded; the session's router decides what is a
	// no-op (out-of-range positions, button presses).
	switch msg.Action {
	case tea.MouseActionMotion:
		m.session.Handle(engine.PointerMoved{P: p})
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.session.Handle(engine.ButtonPressed{})
		}
	case tea.MouseActionRelease:
		m.session.Handle(engine.ButtonReleased{P: p})
	}
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateMenu {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.session.Handle(engine.MatrixSelected{Choice: m.choices[m.cursor]})
			m.state = stateDemo
			return m, tea.ClearScreen
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		return m, tea.ClearScreen
	case "m":
		m.session.Handle(engine.ModeToggled{Paired: !m.session.YVisible()})
	case "r":
		m.session.Handle(engine.MatrixSelected{Choice: matrices.Random})
	case "left", "h":
		m.cycleChoice(-1)
	case "right", "l":
		m.cycleChoice(1)
	}
	return m, nil
}

func (m *model) cycleChoice(delta int) {
	cur := m.session.ChoiceName()
	idx := 0
	for i, name := range m.choices {
		if name == cur {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(m.choices)) % len(m.choices)
	m.session.Handle(engine.MatrixSelected{Choice: m.choices[idx]})
}

func (m *model) View() string {
	if m.state == stateMenu {
		return m.viewMenu()
	}
	return m.viewDemo()
}

func (m *model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("e i g s h o w") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, name := range m.choices {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(name) + "\n")
		} else {
			b.WriteString("        " + dim.Render(name) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter start   q quit") + "\n")
	return b.String()
}

func (m *model) viewDemo() string {
	s := m.session
	c := m.canvas
	c.Clear()

	c.Axes()
	c.Circle(1)

	for _, sample := range s.Trace(engine.TrackX) {
		c.Plot(sample.Image.X, sample.Image.Y)
	}
	if s.YVisible() {
		for _, sample := range s.Trace(engine.TrackY) {
			c.Plot(sample.Image.X, sample.Image.Y)
		}
	}

	for _, mk := range s.Markers(engine.TrackX) {
		plotMarker(c, mk.V)
		plotMarker(c, mk.Image)
	}

	c.Arrow(s.X().X, s.X().Y)
	c.Arrow(s.ImageX().X, s.ImageX().Y)
	if s.YVisible() {
		c.Arrow(s.Y().X, s.Y().Y)
		c.Arrow(s.ImageY().X, s.ImageY().Y)
	}

	var b strings.Builder
	b.WriteString("\n   " + cyan.Render(s.Mode().Label()) +
		"   " + dim.Render(fmt.Sprintf("A = %s  (%s)", s.Matrix(), s.ChoiceName())) + "\n\n")

	margin := strings.Repeat(" ", canvasLeft)
	for _, line := range strings.Split(strings.TrimRight(c.String(), "\n"), "\n") {
		b.WriteString(margin + line + "\n")
	}

	b.WriteString("\n   " +
		white.Render(fmt.Sprintf("x=%s", s.X())) + "  " +
		yellow.Render(fmt.Sprintf("Ax=%s", s.ImageX())))
	if s.YVisible() {
		b.WriteString("  " + blue.Render(fmt.Sprintf("y=%s", s.Y())) + "  " +
			blue.Render(fmt.Sprintf("Ay=%s", s.ImageY())))
	}
	b.WriteString("\n   " + dim.Render(fmt.Sprintf("trace %d  markers %d  updates %d",
		len(s.Trace(engine.TrackX)), len(s.Markers(engine.TrackX)), m.changes)) + "\n")
	b.WriteString(dim.Render("   drag to move x  click to mark  m mode  ←→ matrix  r random  esc menu  q quit") + "\n")
	return b.String()
}

func plotMarker(c *viz.Canvas, v vec.Vec2) {
	const d = 0.03
	c.Plot(v.X, v.Y)
	c.Plot(v.X-d, v.Y)
	c.Plot(v.X+d, v.Y)
	c.Plot(v.X, v.Y-d)
	c.Plot(v.X, v.Y+d)
}

// Run starts the terminal demonstrator over the given catalog.
func Run(catalog *matrices.Catalog, seed uint64) error {
	p := tea.NewProgram(newModel(catalog, seed), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
