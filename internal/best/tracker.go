// Package best holds the session-best scores shown on every screen.
//
// A Tracker lives for the lifetime of one trainer session and is injected
// into both activities; nothing is persisted.
package best

import (
	"fmt"

	"github.com/vovakirdan/tui-trainer/internal/core"
)

// Bests is a snapshot of the tracked values. A nil pointer means no run of
// that kind has completed yet.
type Bests struct {
	ReactionMs *float64 // Lowest average reaction time
	WPM        *float64 // Highest typing speed
}

// Tracker stores the best average reaction time and the best WPM seen so far.
// It is mutated only from the frame loop, so it carries no lock.
type Tracker struct {
	reaction    float64
	hasReaction bool
	wpm         float64
	hasWPM      bool
}

// NewTracker returns a tracker with no data yet.
func NewTracker() *Tracker {
	return &Tracker{}
}

// ReportReaction records an average reaction time in milliseconds.
// It replaces the stored best only when it is lower.
// Returns true if the value became the new best.
func (t *Tracker) ReportReaction(avgMs float64) bool {
	if t.hasReaction && avgMs >= t.reaction {
		return false
	}
	t.reaction = avgMs
	t.hasReaction = true
	return true
}

// ReportTyping records a words-per-minute result.
// It replaces the stored best only when it is higher.
// Returns true if the value became the new best.
func (t *Tracker) ReportTyping(wpm float64) bool {
	if t.hasWPM && wpm <= t.wpm {
		return false
	}
	t.wpm = wpm
	t.hasWPM = true
	return true
}

// Bests returns the current values. It never mutates the tracker.
func (t *Tracker) Bests() Bests {
	var b Bests
	if t.hasReaction {
		v := t.reaction
		b.ReactionMs = &v
	}
	if t.hasWPM {
		v := t.wpm
		b.WPM = &v
	}
	return b
}

// Lines returns the panel text, e.g. "Best Reaction: 231 ms".
// Values are truncated toward zero for display.
func (b Bests) Lines() []string {
	reaction := "Best Reaction: N/A"
	if b.ReactionMs != nil {
		reaction = fmt.Sprintf("Best Reaction: %d ms", int(*b.ReactionMs))
	}
	typing := "Best Typing: N/A"
	if b.WPM != nil {
		typing = fmt.Sprintf("Best Typing: %d WPM", int(*b.WPM))
	}
	return []string{reaction, typing}
}

// panelPadding is the gap between the panel and the field's top-right corner.
const panelPadding = 10

// DrawPanel renders the best-scores panel right-aligned in the top-right
// corner of a field of the given width.
func DrawPanel(dst core.Renderer, t *Tracker, fieldW float64, theme core.Theme) {
	fg := theme.Foreground()
	x := fieldW - panelPadding
	y := float64(panelPadding)
	for _, line := range t.Bests().Lines() {
		r := dst.DrawText(line, core.Pt(x, y), core.AnchorTopRight, fg)
		y += r.H + 5
	}
}
