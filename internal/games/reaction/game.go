// Package reaction implements the aim game: targets appear at random
// positions after a random delay and the player clicks them as fast as
// possible. The average time from appearance to hit is the run's result.
package reaction

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-trainer/internal/best"
	"github.com/vovakirdan/tui-trainer/internal/core"
	"github.com/vovakirdan/tui-trainer/internal/menu"
	"github.com/vovakirdan/tui-trainer/internal/registry"
)

// ID is the registry identifier of the aim game.
const ID = "aim"

// phase is the screen the game is currently showing.
type phase int

const (
	phaseDifficulty phase = iota
	phaseMode
	phaseParam
	phasePlay
	phaseResult
	phaseDone
)

// HUD positions in logical units.
const (
	hudX      = 10
	hudScoreY = 10
	hudLineY  = 40
)

// Game walks through three setup selectors and then runs a Session.
type Game struct {
	tracker *best.Tracker
	cfg     core.RuntimeConfig
	delayLo time.Duration
	delayHi time.Duration
	rng     *rand.Rand

	phase      phase
	selector   *menu.Selector
	difficulty Difficulty
	modeKind   ModeKind
	session    *Session

	average    float64
	dwellUntil time.Time
	now        time.Time
	state      core.GameState
	err        error
}

// New creates an aim game reporting to the environment's tracker.
func New(env registry.Env) *Game {
	lo, hi := env.Config.Reaction.SpawnDelay()
	return &Game{
		tracker: env.Tracker(),
		delayLo: lo,
		delayHi: hi,
	}
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
	return "Aim Game"
}

// Reset returns to the difficulty selector.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = nil
	g.average = 0
	g.dwellUntil = time.Time{}
	g.state = core.GameState{}
	g.err = nil
	g.enter(phaseDifficulty)
}

// enter switches phase and prepares the selector it needs, if any.
func (g *Game) enter(p phase) {
	g.phase = p

	var (
		title   string
		options []string
	)
	switch p {
	case phaseDifficulty:
		title = "Select Difficulty"
		for _, d := range Difficulties {
			options = append(options, d.String())
		}
	case phaseMode:
		title = "Choose Game Mode"
		options = []string{LabelClicksMode, LabelTimeLimitMode}
	case phaseParam:
		if g.modeKind == ModeClicks {
			title, options = "Number of targets", labels(ClickCounts)
		} else {
			title, options = "Time limit in seconds", labels(TimeLimits)
		}
	default:
		g.selector = nil
		return
	}

	sel, err := menu.New(title, options)
	if err != nil {
		g.fail(err)
		return
	}
	g.selector = sel
}

// fail ends the run without a result.
func (g *Game) fail(err error) {
	g.err = err
	g.phase = phaseDone
	g.selector = nil
	g.state.Done = true
}

// Step advances the game by one frame.
func (g *Game) Step(now time.Time, events []core.Event) core.StepResult {
	g.now = now

	switch g.phase {
	case phaseDifficulty, phaseMode, phaseParam:
		g.stepSetup(now, events)
	case phasePlay:
		return g.stepPlay(now, events)
	case phaseResult:
		g.stepResult(now, events)
	}
	return core.StepResult{State: g.State()}
}

// stepSetup feeds the active selector and applies its choice.
func (g *Game) stepSetup(now time.Time, events []core.Event) {
	if g.selector == nil {
		return
	}
	for _, ev := range events {
		if ev.Kind == core.EventKeyDown && ev.Key == core.KeyEscape {
			g.phase = phaseDone
			g.selector = nil
			g.state.Done = true
			return
		}
	}

	switch g.selector.Step(events) {
	case menu.StateQuit:
		g.state.Quit = true
		g.state.Done = true
		g.phase = phaseDone
		return
	case menu.StatePrompting:
		return
	}

	choice, _ := g.selector.Choice()
	switch g.phase {
	case phaseDifficulty:
		d, err := ParseDifficulty(choice)
		if err != nil {
			g.fail(err)
			return
		}
		g.difficulty = d
		g.enter(phaseMode)
	case phaseMode:
		if choice == LabelTimeLimitMode {
			g.modeKind = ModeTimeLimit
		} else {
			g.modeKind = ModeClicks
		}
		g.enter(phaseParam)
	case phaseParam:
		g.startSession(now, choice)
	}
}

// startSession builds the session from the chosen parameter.
func (g *Game) startSession(now time.Time, choice string) {
	n, err := strconv.Atoi(choice)
	if err != nil {
		g.fail(fmt.Errorf("reaction: bad parameter %q: %w", choice, core.ErrInvalidConfiguration))
		return
	}

	var mode Mode
	if g.modeKind == ModeTimeLimit {
		mode, err = TimeLimitMode(n)
	} else {
		mode, err = ClicksMode(n)
	}
	if err != nil {
		g.fail(err)
		return
	}

	s, err := NewSession(Params{
		FieldW:        g.cfg.FieldW,
		FieldH:        g.cfg.FieldH,
		Difficulty:    g.difficulty,
		Mode:          mode,
		SpawnDelayMin: g.delayLo,
		SpawnDelayMax: g.delayHi,
	}, now, g.rng)
	if err != nil {
		g.fail(err)
		return
	}
	g.session = s
	g.enter(phasePlay)
}

// stepPlay runs one session frame and handles the end of the run.
func (g *Game) stepPlay(now time.Time, events []core.Event) core.StepResult {
	switch g.session.Advance(now, events) {
	case StatusQuit:
		g.state.Quit = true
		g.state.Done = true
		g.phase = phaseDone
		return core.StepResult{State: g.State()}
	case StatusRunning:
		return core.StepResult{State: g.State()}
	}

	avg, ok := g.session.Average()
	if !ok {
		g.phase = phaseDone
		g.state.Done = true
		return core.StepResult{State: g.State()}
	}

	g.average = avg
	g.tracker.ReportReaction(avg)
	g.dwellUntil = now.Add(g.cfg.ResultDwell)
	g.phase = phaseResult

	return core.StepResult{
		State: g.State(),
		Result: &core.Result{
			GameID:  ID,
			Value:   avg,
			Unit:    "ms",
			Samples: g.session.Score(),
			Detail:  fmt.Sprintf("%s, %s", g.difficulty, g.session.Mode()),
		},
	}
}

// stepResult keeps the result on screen until the dwell time has passed.
// Only a quit signal cuts it short.
func (g *Game) stepResult(now time.Time, events []core.Event) {
	for _, ev := range events {
		if ev.Kind == core.EventQuit {
			g.state.Quit = true
			g.state.Done = true
			g.phase = phaseDone
			return
		}
	}
	if !now.Before(g.dwellUntil) {
		g.phase = phaseDone
		g.state.Done = true
	}
}

// Render draws the current screen.
func (g *Game) Render(dst core.Renderer, theme core.Theme) {
	fg := theme.Foreground()

	switch g.phase {
	case phaseDifficulty, phaseMode, phaseParam:
		if g.selector != nil {
			g.selector.Render(dst, g.cfg.FieldW, theme)
		}
	case phasePlay:
		if c, ok := g.session.Target(); ok {
			dst.DrawFilledCircle(c, float64(g.session.Radius()), core.ColorRed)
		}
		dst.DrawText(fmt.Sprintf("Score: %d", g.session.Score()), core.Pt(hudX, hudScoreY), core.AnchorTopLeft, fg)
		dst.DrawText(g.session.Progress(g.now), core.Pt(hudX, hudLineY), core.AnchorTopLeft, fg)
		best.DrawPanel(dst, g.tracker, g.cfg.FieldW, theme)
	case phaseResult:
		msg := fmt.Sprintf("Average Reaction Time: %d ms", int(g.average))
		dst.DrawText(msg, core.Pt(g.cfg.FieldW/2, g.cfg.FieldH/2), core.AnchorCenter, fg)
		best.DrawPanel(dst, g.tracker, g.cfg.FieldW, theme)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.state
	if g.session != nil {
		s.Score = g.session.Score()
	}
	return s
}

// FrameRate returns 30 Hz on the setup screens and 60 Hz otherwise.
func (g *Game) FrameRate() int {
	switch g.phase {
	case phaseDifficulty, phaseMode, phaseParam:
		return g.cfg.MenuRate
	default:
		return g.cfg.TickRate
	}
}

// Err returns the configuration error that ended the run, if any.
func (g *Game) Err() error {
	return g.err
}

// Session returns the running session, nil before setup completes.
func (g *Game) Session() *Session {
	return g.session
}
