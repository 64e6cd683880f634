// Package menu implements the click-to-choose prompt used by the root menu
// and by the activities' setup screens.
//
// A Selector is a small state machine: it starts Prompting and moves to
// Resolved on the first pointer press that lands on an option. Callers drive
// it one frame at a time with Step and Render and read Choice once resolved.
package menu

import (
	"fmt"

	"github.com/vovakirdan/tui-trainer/internal/core"
)

// Layout constants in logical units.
const (
	TitleY        = 100 // Vertical position of the title
	DefaultStartY = 200 // Vertical position of the first option
	OptionSpacing = 60  // Vertical distance between options
)

// State is the selector's position in its lifecycle.
type State int

const (
	StatePrompting State = iota
	StateResolved
	StateQuit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePrompting:
		return "Prompting"
	case StateResolved:
		return "Resolved"
	case StateQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// button is an option label with the region it occupied when last drawn.
type button struct {
	label  string
	region core.Rect
}

// Selector turns an ordered list of labels into one chosen label.
type Selector struct {
	title   string
	titleY  float64
	startY  float64
	buttons []button
	state   State
	choice  string
}

// Option customizes a Selector.
type Option func(*Selector)

// WithStartY moves the first option to the given vertical offset.
func WithStartY(y float64) Option {
	return func(s *Selector) { s.startY = y }
}

// WithTitleY moves the title to the given vertical offset.
func WithTitleY(y float64) Option {
	return func(s *Selector) { s.titleY = y }
}

// New creates a selector over the given options.
// Labels must be distinct. An empty list could never resolve, so it is
// rejected.
func New(title string, options []string, opts ...Option) (*Selector, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("menu %q: no options: %w", title, core.ErrInvalidConfiguration)
	}

	s := &Selector{
		title:   title,
		titleY:  TitleY,
		startY:  DefaultStartY,
		buttons: make([]button, len(options)),
	}
	seen := make(map[string]bool, len(options))
	for i, label := range options {
		if seen[label] {
			return nil, fmt.Errorf("menu %q: duplicate option %q: %w", title, label, core.ErrInvalidConfiguration)
		}
		seen[label] = true
		s.buttons[i] = button{label: label}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Title returns the prompt title.
func (s *Selector) Title() string {
	return s.title
}

// Options returns the labels in display order.
func (s *Selector) Options() []string {
	out := make([]string, len(s.buttons))
	for i, b := range s.buttons {
		out[i] = b.label
	}
	return out
}

// State returns the current lifecycle state.
func (s *Selector) State() State {
	return s.state
}

// Choice returns the selected label once the selector is resolved.
func (s *Selector) Choice() (string, bool) {
	if s.state != StateResolved {
		return "", false
	}
	return s.choice, true
}

// Step processes one frame of input against the regions from the most
// recent Render. The first qualifying press wins; if regions overlap, the
// option listed first wins. A quit event ends the prompt immediately.
func (s *Selector) Step(events []core.Event) State {
	if s.state != StatePrompting {
		return s.state
	}

	for _, ev := range events {
		switch ev.Kind {
		case core.EventQuit:
			s.state = StateQuit
			return s.state
		case core.EventPointerDown:
			if label, ok := s.hit(ev.Pos); ok {
				s.choice = label
				s.state = StateResolved
				return s.state
			}
		}
	}
	return s.state
}

// hit returns the first option whose region contains p.
func (s *Selector) hit(p core.Point) (string, bool) {
	for _, b := range s.buttons {
		if b.region.Contains(p) {
			return b.label, true
		}
	}
	return "", false
}

// Render draws the title and options centred on the field and remembers
// each option's region for the next Step.
func (s *Selector) Render(dst core.Renderer, fieldW float64, theme core.Theme) {
	fg := theme.Foreground()
	cx := fieldW / 2

	dst.DrawText(s.title, core.Pt(cx, s.titleY), core.AnchorCenter, fg)
	for i := range s.buttons {
		y := s.startY + float64(i)*OptionSpacing
		s.buttons[i].region = dst.DrawText(s.buttons[i].label, core.Pt(cx, y), core.AnchorCenter, fg)
	}
}

// Region returns the last rendered region of the option with the given label.
func (s *Selector) Region(label string) (core.Rect, bool) {
	for _, b := range s.buttons {
		if b.label == label {
			return b.region, true
		}
	}
	return core.Rect{}, false
}
