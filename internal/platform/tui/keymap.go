package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-trainer/internal/core"
)

// KeyMap defines the non-printable key bindings.
// Printable keys are never bound so that every character stays typable.
type KeyMap struct {
	Quit       key.Binding
	Back       key.Binding
	Erase      key.Binding
	Confirm    key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Erase, k.Confirm},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea input messages to trainer events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// IsScreenshot reports whether the key requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MapKey translates a key message to events. Pasted text yields one event
// per rune, in order.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Event {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return []core.Event{core.QuitEvent()}
	case key.Matches(msg, km.keys.Back):
		return []core.Event{core.KeyDown(core.KeyEscape)}
	case key.Matches(msg, km.keys.Erase):
		return []core.Event{core.KeyDown(core.KeyBackspace)}
	case key.Matches(msg, km.keys.Confirm):
		return []core.Event{core.KeyDown(core.KeyEnter)}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []core.Event{core.CharDown(' ')}
	case tea.KeyRunes:
		events := make([]core.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, core.CharDown(r))
		}
		return events
	}
	return nil
}

// MapMouse translates a button press to a pointer event at the logical
// position of the cell's centre. Releases, motion and wheel events are
// dropped.
func MapMouse(msg tea.MouseMsg, scr *core.Screen) (core.Event, bool) {
	ev := tea.MouseEvent(msg)
	if ev.Action != tea.MouseActionPress || ev.IsWheel() {
		return core.Event{}, false
	}
	p := scr.ToLogical(ev.X, ev.Y)
	return core.PointerDown(p.X, p.Y), true
}
