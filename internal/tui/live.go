// Package tui renders published simulation snapshots in the terminal.
// It is a consumer of the scheduler's snapshot: it drives the session
// with a frame clock and never mutates the bodies it draws.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/crittersim/internal/sim"
	"github.com/san-kum/crittersim/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	border = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238"))
)

type tickMsg time.Time

// Model is the bubbletea model for the live viewer. The tea event
// loop is the per-frame clock: every tickMsg steps the session once.
type Model struct {
	session   *sim.Session
	frameRate int
	paused    bool
	err       error

	width  int
	height int
}

func NewModel(session *sim.Session, frameRate int) Model {
	return Model{
		session:   session,
		frameRate: frameRate,
		width:     80,
		height:    24,
	}
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return m.frame() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.paused {
			if err := m.session.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, m.frame()
	}
	return m, nil
}

func (m Model) View() string {
	params := m.session.Params()
	canvasW := m.width - 4
	canvasH := m.height - 5
	if canvasW < 10 || canvasH < 5 {
		return "terminal too small"
	}

	snapshot := m.session.Snapshot()
	view := viz.NewView(canvasW, canvasH, params.ViewW, params.ViewH)
	view.DrawBodies(snapshot)

	status := fmt.Sprintf(" tick %s  population %s  cap %s  %s",
		cyan.Render(fmt.Sprintf("%d", m.session.Tick())),
		green.Render(fmt.Sprintf("%d", len(snapshot))),
		yellow.Render(fmt.Sprintf("%d", params.MaxObjects)),
		dim.Render("space pause · q quit"))

	return border.Render(strings.TrimRight(view.String(), "\n")) + "\n" + status
}

// Err returns the error that ended the viewer, if any.
func (m Model) Err() error { return m.err }
