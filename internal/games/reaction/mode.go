package reaction

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-trainer/internal/core"
)

// Difficulty selects the target radius.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// Difficulties lists every difficulty in menu order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

// String returns the menu label.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Radius returns the target radius in logical units.
func (d Difficulty) Radius() int {
	switch d {
	case Easy:
		return 50
	case Normal:
		return 30
	case Hard:
		return 15
	default:
		return 0
	}
}

// ParseDifficulty maps a menu label back to a Difficulty.
func ParseDifficulty(label string) (Difficulty, error) {
	for _, d := range Difficulties {
		if d.String() == label {
			return d, nil
		}
	}
	return 0, fmt.Errorf("reaction: unknown difficulty %q: %w", label, core.ErrInvalidConfiguration)
}

// ModeKind distinguishes the two ways a run can end.
type ModeKind int

const (
	ModeClicks    ModeKind = iota // End after a fixed number of hits
	ModeTimeLimit                 // End after a fixed number of seconds
)

// Menu labels for the mode selector.
const (
	LabelClicksMode    = "Clicks Mode"
	LabelTimeLimitMode = "Time Limit Mode"
)

// Parameter options offered for each mode.
var (
	ClickCounts = []int{10, 50, 100}
	TimeLimits  = []int{10, 30, 60}
)

// Mode is the termination rule of a run. Exactly one of Targets or
// Seconds is meaningful, chosen by Kind.
type Mode struct {
	Kind    ModeKind
	Targets int
	Seconds int
}

// ClicksMode returns a mode ending after n hits.
func ClicksMode(n int) (Mode, error) {
	if n <= 0 {
		return Mode{}, fmt.Errorf("reaction: target count must be positive, got %d: %w", n, core.ErrInvalidConfiguration)
	}
	return Mode{Kind: ModeClicks, Targets: n}, nil
}

// TimeLimitMode returns a mode ending after the given number of seconds.
func TimeLimitMode(seconds int) (Mode, error) {
	if seconds <= 0 {
		return Mode{}, fmt.Errorf("reaction: time limit must be positive, got %d: %w", seconds, core.ErrInvalidConfiguration)
	}
	return Mode{Kind: ModeTimeLimit, Seconds: seconds}, nil
}

// Limit returns the time limit as a duration.
func (m Mode) Limit() time.Duration {
	return time.Duration(m.Seconds) * time.Second
}

// Validate checks the mode's parameter.
func (m Mode) Validate() error {
	var err error
	switch m.Kind {
	case ModeClicks:
		_, err = ClicksMode(m.Targets)
	case ModeTimeLimit:
		_, err = TimeLimitMode(m.Seconds)
	default:
		err = fmt.Errorf("reaction: unknown mode %d: %w", m.Kind, core.ErrInvalidConfiguration)
	}
	return err
}

// String describes the mode, e.g. "10 targets" or "30 s".
func (m Mode) String() string {
	if m.Kind == ModeTimeLimit {
		return strconv.Itoa(m.Seconds) + " s"
	}
	return strconv.Itoa(m.Targets) + " targets"
}

// labels converts option values to menu labels.
func labels(values []int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}
