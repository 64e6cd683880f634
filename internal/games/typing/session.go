package typing

import (
	"strings"
	"time"
	"unicode"
)

// minElapsed stands in for the elapsed time when nothing was typed or the
// clock did not advance, so WPM stays finite.
const minElapsed = 100 * time.Microsecond

// Session tracks typed text against a prompt and measures typing speed.
type Session struct {
	prompt  string
	typed   []rune
	start   time.Time
	started bool
	done    bool
}

// NewSession starts a session for the given prompt.
func NewSession(prompt string) *Session {
	return &Session{prompt: prompt}
}

// Type appends a printable rune. The first accepted rune starts the clock.
// Non-printable runes are ignored and false is returned.
func (s *Session) Type(r rune, now time.Time) bool {
	if s.done || !unicode.IsPrint(r) {
		return false
	}
	if !s.started {
		s.start = now
		s.started = true
	}
	s.typed = append(s.typed, r)
	return true
}

// Backspace removes the last typed rune, if any. The start time is kept.
func (s *Session) Backspace() {
	if s.done || len(s.typed) == 0 {
		return
	}
	s.typed = s.typed[:len(s.typed)-1]
}

// Confirm completes the session if the typed text matches the prompt exactly.
func (s *Session) Confirm() bool {
	if !s.done && string(s.typed) == s.prompt {
		s.done = true
	}
	return s.done
}

// Prompt returns the text to type.
func (s *Session) Prompt() string {
	return s.prompt
}

// Typed returns the text typed so far.
func (s *Session) Typed() string {
	return string(s.typed)
}

// Done reports whether the prompt was confirmed.
func (s *Session) Done() bool {
	return s.done
}

// Started reports whether a rune has been accepted, and when.
func (s *Session) Started() (time.Time, bool) {
	return s.start, s.started
}

// Words returns the number of whitespace-separated words in the prompt.
func (s *Session) Words() int {
	return len(strings.Fields(s.prompt))
}

// WPM computes words per minute for a session ending at end.
func (s *Session) WPM(end time.Time) float64 {
	elapsed := minElapsed
	if s.started {
		if d := end.Sub(s.start); d > 0 {
			elapsed = d
		}
	}
	return float64(s.Words()) / elapsed.Minutes()
}
