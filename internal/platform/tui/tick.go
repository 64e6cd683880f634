// Package tui provides the Bubble Tea integration for the trainer.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-trainer/internal/core"
)

// TickMsg is sent to trigger one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick after one
// frame interval at the specified rate.
func tickCmd(hz int) tea.Cmd {
	return tea.Tick(core.FrameInterval(hz), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
