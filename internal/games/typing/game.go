// Package typing implements the typing trainer: the player copies a short
// prompt and the time from the first keystroke to a confirmed exact match
// gives a words-per-minute score.
package typing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-trainer/internal/best"
	"github.com/vovakirdan/tui-trainer/internal/core"
	"github.com/vovakirdan/tui-trainer/internal/registry"
)

// ID is the registry identifier of the typing trainer.
const ID = "typing"

// Prompts is the fixed corpus a prompt is drawn from.
var Prompts = []string{
	"still leave each other and want to be first.",
	"Typing speed is a useful skill.",
	"Practice makes perfect.",
	"Python is a great programming language.",
}

// Screen layout in logical units.
const (
	titleY      = 50
	marginX     = 50
	promptLabel = 120
	promptY     = 160
	inputLabel  = 230
	inputY      = 270
)

type phase int

const (
	phaseTyping phase = iota
	phaseResult
	phaseDone
)

// Game is one typing run followed by its result screen.
type Game struct {
	tracker *best.Tracker
	cfg     core.RuntimeConfig
	rng     *rand.Rand

	session    *Session
	phase      phase
	wpm        float64
	dwellUntil time.Time
	state      core.GameState
}

// New creates a typing trainer reporting to the environment's tracker.
func New(env registry.Env) *Game {
	return &Game{tracker: env.Tracker()}
}

func init() {
	registry.Register(ID, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Typing Game"
}

// Reset picks a new prompt.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(Prompts[g.rng.Intn(len(Prompts))])
	g.phase = phaseTyping
	g.wpm = 0
	g.dwellUntil = time.Time{}
	g.state = core.GameState{}
}

// Step advances the game by one frame.
func (g *Game) Step(now time.Time, events []core.Event) core.StepResult {
	switch g.phase {
	case phaseTyping:
		return g.stepTyping(now, events)
	case phaseResult:
		g.stepResult(now, events)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepTyping(now time.Time, events []core.Event) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range events {
		switch ev.Kind {
		case core.EventQuit:
			g.end(true)
			return core.StepResult{State: g.State()}
		case core.EventKeyDown:
			switch ev.Key {
			case core.KeyEscape:
				g.end(false)
				return core.StepResult{State: g.State()}
			case core.KeyBackspace:
				g.session.Backspace()
			case core.KeyEnter:
				if g.session.Confirm() {
					return g.finish(now)
				}
			case core.KeyNone:
				g.session.Type(ev.Rune, now)
			}
		}
	}
	return core.StepResult{State: g.State()}
}

// finish computes the speed, reports it and shows the result.
func (g *Game) finish(now time.Time) core.StepResult {
	g.wpm = g.session.WPM(now)
	g.tracker.ReportTyping(g.wpm)
	g.dwellUntil = now.Add(g.cfg.ResultDwell)
	g.phase = phaseResult

	return core.StepResult{
		State: g.State(),
		Result: &core.Result{
			GameID:  ID,
			Value:   g.wpm,
			Unit:    "wpm",
			Samples: g.session.Words(),
			Detail:  g.session.Prompt(),
		},
	}
}

func (g *Game) stepResult(now time.Time, events []core.Event) {
	for _, ev := range events {
		if ev.Kind == core.EventQuit {
			g.end(true)
			return
		}
	}
	if !now.Before(g.dwellUntil) {
		g.end(false)
	}
}

func (g *Game) end(quit bool) {
	g.phase = phaseDone
	g.state.Done = true
	g.state.Quit = quit
}

// Render draws the prompt and the typed text, or the result.
func (g *Game) Render(dst core.Renderer, theme core.Theme) {
	if g.session == nil {
		return
	}
	fg := theme.Foreground()

	switch g.phase {
	case phaseTyping:
		dst.DrawText("Typing Trainer", core.Pt(g.cfg.FieldW/2, titleY), core.AnchorCenter, fg)
		dst.DrawText("Type this:", core.Pt(marginX, promptLabel), core.AnchorTopLeft, fg)
		dst.DrawText(g.session.Prompt(), core.Pt(marginX, promptY), core.AnchorTopLeft, fg)
		dst.DrawText("Your input:", core.Pt(marginX, inputLabel), core.AnchorTopLeft, fg)
		dst.DrawText(g.session.Typed(), core.Pt(marginX, inputY), core.AnchorTopLeft, fg)
	case phaseResult:
		msg := fmt.Sprintf("Done! Your typing speed: %d WPM", int(g.wpm))
		dst.DrawText(msg, core.Pt(g.cfg.FieldW/2, g.cfg.FieldH/2), core.AnchorCenter, fg)
	default:
		return
	}
	best.DrawPanel(dst, g.tracker, g.cfg.FieldW, theme)
}

// State returns the current game state. Score is the number of typed runes.
func (g *Game) State() core.GameState {
	s := g.state
	if g.session != nil {
		s.Score = len([]rune(g.session.Typed()))
	}
	return s
}

// FrameRate returns the gameplay rate.
func (g *Game) FrameRate() int {
	return g.cfg.TickRate
}

// Session returns the current typing session.
func (g *Game) Session() *Session {
	return g.session
}
