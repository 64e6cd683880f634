package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-trainer/internal/app"
	"github.com/vovakirdan/tui-trainer/internal/core"
	"github.com/vovakirdan/tui-trainer/internal/games/reaction"
)

// helpRows is the space kept below the play field for the key help.
const helpRows = 1

// minTargetRadius is the smallest aim target. Below it a cell is too
// coarse for every drawn target to be clickable.
var minTargetRadius = float64(reaction.Hard.Radius())

// Model is the Bubble Tea model driving one trainer session.
// Input messages are queued as they arrive; each tick drains the queue
// into exactly one App frame.
type Model struct {
	app           *app.App
	screen        *core.Screen
	queue         *core.EventQueue
	keys          *KeyMapper
	help          help.Model
	styler        *Styler
	screenshotDir string
	quitting      bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithRenderer styles output for a specific lipgloss renderer, such as
// one bound to an SSH session.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) { m.styler = NewStyler(r) }
}

// WithScreenshotDir enables ctrl+s screenshots into dir.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.screenshotDir = dir }
}

// NewModel creates a model for the given App and terminal size.
func NewModel(a *app.App, width, height int, opts ...ModelOption) Model {
	rc := a.Runtime()
	m := Model{
		app:    a,
		screen: core.NewScreen(width, max(height-helpRows, 1), rc.FieldW, rc.FieldH),
		queue:  &core.EventQueue{},
		keys:   NewKeyMapper(),
		help:   help.New(),
		styler: NewStyler(nil),
	}
	m.help.Width = width
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.app.FrameRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.tooSmall() {
			return m, nil
		}
		if ev, ok := MapMouse(msg, m.screen); ok {
			m.queue.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues keyboard input for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}
	for _, ev := range m.keys.MapKey(msg) {
		m.queue.Push(ev)
	}
	return m, nil
}

// handleResize processes window resize events.
// The logical field is fixed, so only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// tooSmall reports whether the terminal cells are too coarse to hit the
// smallest target reliably.
func (m Model) tooSmall() bool {
	return m.screen.CellReach() > minTargetRadius
}

// handleTick runs one frame with everything queued since the last one.
func (m Model) handleTick(time.Time) (tea.Model, tea.Cmd) {
	m.app.Step(m.app.Now(), m.queue.PollEvents())
	if m.app.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.app.FrameRate())
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}

	// Render current state
	m.app.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	// Generate filename with timestamp
	name := m.app.ActiveID()
	if name == "" {
		name = "menu"
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", name, timestamp))

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return fmt.Sprintf("Terminal too small (%dx%d).\nEnlarge the window to continue.",
			m.screen.Width(), m.screen.Height()+helpRows) + "\n" + m.help.View(m.keys.Keys())
	}

	m.app.Render(m.screen)
	return m.styler.RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program for a and blocks until the session ends.
func Run(a *app.App, width, height int, opts ...ModelOption) error {
	model := NewModel(a, width, height, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses become pointer events
	)

	_, err := p.Run()
	return err
}
