// Package app is the trainer's root menu. It owns the per-session state
// (theme, best scores, run journal) and dispatches frames to whichever
// screen is active: the root menu, an activity, or the history view.
package app

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-trainer/internal/best"
	"github.com/vovakirdan/tui-trainer/internal/config"
	"github.com/vovakirdan/tui-trainer/internal/core"
	"github.com/vovakirdan/tui-trainer/internal/menu"
	"github.com/vovakirdan/tui-trainer/internal/registry"
	"github.com/vovakirdan/tui-trainer/internal/storage"

	// Activities offered by the root menu
	_ "github.com/vovakirdan/tui-trainer/internal/games/reaction"
	_ "github.com/vovakirdan/tui-trainer/internal/games/typing"
)

// Root menu labels.
const (
	LabelHistory = "History"
	LabelQuit    = "Quit"
	themePrefix  = "Theme"
)

// Root menu layout in logical units.
const (
	rootTitleY = 80
	rootStartY = 180
)

type screen int

const (
	screenRoot screen = iota
	screenActivity
	screenHistory
)

// Options configures a new App.
type Options struct {
	Config config.Config
	Seed   int64       // 0 picks a time-based seed
	Logger *log.Logger // nil discards logs
	Clock  core.Clock  // nil uses the system clock
}

// App is one user's trainer session.
type App struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	env     registry.Env
	tracker *best.Tracker
	journal *storage.Store
	logger  *log.Logger
	clock   core.Clock
	rng     *rand.Rand

	activities []registry.GameInfo
	theme      core.Theme

	screen  screen
	root    *menu.Selector
	active  registry.Game
	history *historyView
	quit    bool
}

// New creates an App showing the root menu.
func New(opts Options) (*App, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	journal, err := storage.OpenMemory()
	if err != nil {
		return nil, fmt.Errorf("app: cannot open run journal: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tracker := best.NewTracker()
	a := &App{
		cfg:        opts.Config,
		runtime:    opts.Config.Runtime(seed),
		env:        registry.Env{Bests: tracker, Config: opts.Config},
		tracker:    tracker,
		journal:    journal,
		logger:     logger,
		clock:      clock,
		rng:        rand.New(rand.NewSource(seed)),
		activities: registry.List(),
		theme:      opts.Config.StartTheme(),
	}
	if err := a.enterRoot(); err != nil {
		journal.Close()
		return nil, err
	}
	return a, nil
}

// Close releases the run journal.
func (a *App) Close() error {
	return a.journal.Close()
}

// Now reads the App's clock.
func (a *App) Now() time.Time {
	return a.clock.Now()
}

// Theme returns the current theme.
func (a *App) Theme() core.Theme {
	return a.theme
}

// Tracker returns the session-best tracker.
func (a *App) Tracker() *best.Tracker {
	return a.tracker
}

// Journal returns the run journal.
func (a *App) Journal() *storage.Store {
	return a.journal
}

// Runtime returns the runtime configuration handed to activities.
func (a *App) Runtime() core.RuntimeConfig {
	return a.runtime
}

// Quit reports whether the session has ended.
func (a *App) Quit() bool {
	return a.quit
}

// ActiveID returns the running activity's ID, or "" outside an activity.
func (a *App) ActiveID() string {
	if a.screen != screenActivity || a.active == nil {
		return ""
	}
	return a.active.ID()
}

// FrameRate returns the pacing the current screen wants, in Hz.
func (a *App) FrameRate() int {
	if a.screen == screenActivity && a.active != nil {
		return a.active.FrameRate()
	}
	return a.runtime.MenuRate
}

// rootOptions lists the root menu labels in display order.
func (a *App) rootOptions() []string {
	opts := make([]string, 0, len(a.activities)+3)
	for _, info := range a.activities {
		opts = append(opts, info.Title)
	}
	return append(opts,
		LabelHistory,
		fmt.Sprintf("%s (%s)", themePrefix, a.theme.Name()),
		LabelQuit,
	)
}

func (a *App) enterRoot() error {
	sel, err := menu.New("Welcome!", a.rootOptions(),
		menu.WithTitleY(rootTitleY), menu.WithStartY(rootStartY))
	if err != nil {
		return fmt.Errorf("app: cannot build root menu: %w", err)
	}
	a.root = sel
	a.active = nil
	a.history = nil
	a.screen = screenRoot
	return nil
}

// Launch starts the activity with the given ID.
func (a *App) Launch(id string) error {
	g, err := registry.Create(id, a.env)
	if err != nil {
		return err
	}

	rc := a.runtime
	rc.Seed = a.rng.Int63()
	g.Reset(rc)

	a.active = g
	a.screen = screenActivity
	a.logger.Debug("activity started", "game", id, "seed", rc.Seed)
	return nil
}

// Step advances the session by one frame.
func (a *App) Step(now time.Time, events []core.Event) {
	if a.quit {
		return
	}

	switch a.screen {
	case screenRoot:
		a.stepRoot(events)
	case screenActivity:
		a.stepActivity(now, events)
	case screenHistory:
		a.stepHistory(events)
	}
}

func (a *App) stepRoot(events []core.Event) {
	switch a.root.Step(events) {
	case menu.StateQuit:
		a.quit = true
		return
	case menu.StatePrompting:
		return
	}

	choice, _ := a.root.Choice()
	switch {
	case choice == LabelQuit:
		a.quit = true
	case choice == LabelHistory:
		a.enterHistory()
	case strings.HasPrefix(choice, themePrefix):
		a.theme = a.theme.Toggled()
		a.logger.Debug("theme changed", "theme", a.theme.Name())
		a.resetRoot()
	default:
		for _, info := range a.activities {
			if info.Title == choice {
				if err := a.Launch(info.ID); err != nil {
					a.logger.Error("cannot launch activity", "game", info.ID, "err", err)
					a.resetRoot()
				}
				return
			}
		}
		a.resetRoot()
	}
}

// resetRoot rebuilds the root menu; its labels are static apart from the
// theme, so failure means the registry itself is broken.
func (a *App) resetRoot() {
	if err := a.enterRoot(); err != nil {
		a.logger.Error("root menu unavailable", "err", err)
		a.quit = true
	}
}

func (a *App) stepActivity(now time.Time, events []core.Event) {
	out := a.active.Step(now, events)

	if r := out.Result; r != nil {
		a.logger.Info("run finished", "game", r.GameID, "value", r.Value, "unit", r.Unit, "samples", r.Samples)
		if _, err := a.journal.RecordRun(*r, now); err != nil {
			a.logger.Warn("run not journaled", "err", err)
		}
	}

	if out.State.Quit {
		a.quit = true
		return
	}
	if out.State.Done {
		if f, ok := a.active.(interface{ Err() error }); ok && f.Err() != nil {
			a.logger.Error("activity ended", "game", a.active.ID(), "err", f.Err())
		} else {
			a.logger.Debug("activity ended", "game", a.active.ID())
		}
		a.resetRoot()
	}
}

func (a *App) enterHistory() {
	v, err := newHistoryView(a.journal, a.activities, a.runtime.FieldH)
	if err != nil {
		a.logger.Error("history unavailable", "err", err)
		a.resetRoot()
		return
	}
	a.history = v
	a.screen = screenHistory
}

func (a *App) stepHistory(events []core.Event) {
	switch a.history.Step(events) {
	case menu.StateQuit:
		a.quit = true
	case menu.StateResolved:
		if a.history.Choice() == LabelClear {
			a.clearHistory()
			return
		}
		a.resetRoot()
	}
}

// clearHistory empties the run journal and redraws the History screen.
// Session bests are kept.
func (a *App) clearHistory() {
	for _, info := range a.activities {
		if err := a.journal.ClearRuns(info.ID); err != nil {
			a.logger.Warn("history not cleared", "game", info.ID, "err", err)
		}
	}
	a.logger.Debug("history cleared")
	a.enterHistory()
}

// Render draws the current frame onto dst.
func (a *App) Render(dst core.Renderer) {
	dst.Clear(a.theme.Background())

	switch a.screen {
	case screenRoot:
		a.root.Render(dst, a.runtime.FieldW, a.theme)
		best.DrawPanel(dst, a.tracker, a.runtime.FieldW, a.theme)
	case screenActivity:
		a.active.Render(dst, a.theme)
	case screenHistory:
		a.history.Render(dst, a.runtime.FieldW, a.theme)
		best.DrawPanel(dst, a.tracker, a.runtime.FieldW, a.theme)
	}

	dst.Present()
}
