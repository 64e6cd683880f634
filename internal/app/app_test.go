package app

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-trainer/internal/config"
	"github.com/vovakirdan/tui-trainer/internal/core"
	"github.com/vovakirdan/tui-trainer/internal/games/typing"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newApp(t *testing.T) (*App, *core.Screen) {
	t.Helper()
	a, err := New(Options{Config: config.Default(), Seed: 99})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a, core.NewScreen(90, 24, 900, 600)
}

// click renders the current frame and presses the centre of the text label.
func click(t *testing.T, a *App, scr *core.Screen, now time.Time, label string) {
	t.Helper()
	a.Render(scr)

	var sel interface {
		Region(string) (core.Rect, bool)
	}
	switch a.screen {
	case screenRoot:
		sel = a.root
	case screenHistory:
		sel = a.history.back
	default:
		t.Fatalf("no selector on screen %d", a.screen)
	}

	r, ok := sel.Region(label)
	if !ok || r.Empty() {
		t.Fatalf("label %q not rendered", label)
	}
	c := r.Center()
	a.Step(now, []core.Event{core.PointerDown(c.X, c.Y)})
}

func TestRootMenuOptions(t *testing.T) {
	a, scr := newApp(t)
	want := []string{"Aim Game", "Typing Game", "History", "Theme (Dark)", "Quit"}
	got := a.root.Options()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("root options = %v, expected %v", got, want)
	}

	a.Render(scr)
	out := scr.String()
	for _, s := range []string{"Welcome!", "Best Reaction: N/A", "Best Typing: N/A"} {
		if !strings.Contains(out, s) {
			t.Errorf("root screen missing %q", s)
		}
	}
	if scr.Presented() != 1 {
		t.Errorf("Render should present once, got %d", scr.Presented())
	}
	if a.FrameRate() != 30 {
		t.Errorf("menu FrameRate() = %d, expected 30", a.FrameRate())
	}
}

func TestThemeToggle(t *testing.T) {
	a, scr := newApp(t)
	click(t, a, scr, t0, "Theme (Dark)")

	if a.Theme().Dark {
		t.Fatal("theme should be light after toggling")
	}
	if _, ok := a.root.Region("Theme (Light)"); !ok {
		t.Error("root menu should offer Theme (Light)")
	}

	a.Render(scr)
	if bg := scr.GetCell(0, 0).BG; bg != core.ColorLightBG {
		t.Errorf("background = %v, expected light", bg)
	}
	if fg := scr.GetCell(scr.Width()/2, 3).FG; fg != core.ColorBlack {
		t.Errorf("title colour = %v, expected black on light", fg)
	}

	click(t, a, scr, t0, "Theme (Light)")
	if !a.Theme().Dark {
		t.Error("second toggle should restore dark")
	}
}

func TestQuitOption(t *testing.T) {
	a, scr := newApp(t)
	click(t, a, scr, t0, "Quit")
	if !a.Quit() {
		t.Error("Quit option should end the session")
	}
}

func TestQuitEventOnRoot(t *testing.T) {
	a, _ := newApp(t)
	a.Step(t0, []core.Event{core.QuitEvent()})
	if !a.Quit() {
		t.Error("quit event should end the session")
	}
}

func TestTypingRunIsTrackedAndJournaled(t *testing.T) {
	a, scr := newApp(t)
	click(t, a, scr, t0, "Typing Game")

	if a.ActiveID() != typing.ID {
		t.Fatalf("ActiveID() = %q, expected typing", a.ActiveID())
	}
	if a.FrameRate() != 60 {
		t.Errorf("activity FrameRate() = %d, expected 60", a.FrameRate())
	}

	g := a.active.(*typing.Game)
	var events []core.Event
	for _, r := range g.Session().Prompt() {
		events = append(events, core.CharDown(r))
	}
	a.Step(t0, events)
	a.Step(t0.Add(time.Minute), []core.Event{core.KeyDown(core.KeyEnter)})

	if b := a.Tracker().Bests(); b.WPM == nil {
		t.Fatal("tracker should hold a WPM")
	}
	runs, err := a.Journal().RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].GameID != typing.ID {
		t.Fatalf("journal = %+v", runs)
	}

	// Result dwell, then back to the root menu.
	a.Step(t0.Add(time.Minute+3*time.Second), nil)
	if a.screen != screenRoot {
		t.Fatalf("expected root menu after the dwell, got screen %d", a.screen)
	}

	click(t, a, scr, t0.Add(2*time.Minute), "History")
	if a.screen != screenHistory {
		t.Fatal("History option should open the history view")
	}
	lines := strings.Join(a.history.Lines(), "\n")
	if !strings.Contains(lines, "Typing Game: 1 run, best") {
		t.Errorf("history missing typing stats:\n%s", lines)
	}
	if !strings.Contains(lines, "Aim Game: no runs yet") {
		t.Errorf("history missing aim placeholder:\n%s", lines)
	}

	click(t, a, scr, t0.Add(2*time.Minute), "Back")
	if a.screen != screenRoot {
		t.Error("Back should return to the root menu")
	}
}

func TestEscapeLeavesActivity(t *testing.T) {
	a, scr := newApp(t)
	click(t, a, scr, t0, "Aim Game")
	if a.ActiveID() != "aim" {
		t.Fatalf("ActiveID() = %q", a.ActiveID())
	}

	a.Step(t0, []core.Event{core.KeyDown(core.KeyEscape)})
	if a.screen != screenRoot || a.Quit() {
		t.Errorf("escape should return to the root menu, screen %d quit %v", a.screen, a.Quit())
	}
}

func TestQuitInsideActivity(t *testing.T) {
	a, scr := newApp(t)
	click(t, a, scr, t0, "Aim Game")
	a.Step(t0, []core.Event{core.QuitEvent()})
	if !a.Quit() {
		t.Error("quit inside an activity should end the session")
	}
}

func TestHistoryEscape(t *testing.T) {
	a, scr := newApp(t)
	click(t, a, scr, t0, "History")
	if got := a.history.Lines(); got[len(got)-1] != "No runs yet this session." {
		t.Errorf("empty history lines = %v", got)
	}
	a.Step(t0, []core.Event{core.KeyDown(core.KeyEscape)})
	if a.screen != screenRoot {
		t.Error("escape should leave the history view")
	}
}

func TestHistoryClear(t *testing.T) {
	a, scr := newApp(t)
	a.Journal().RecordRun(core.Result{GameID: "aim", Value: 250, Unit: "ms", Samples: 10}, t0)
	a.Journal().RecordRun(core.Result{GameID: "typing", Value: 40, Unit: "wpm", Samples: 3}, t0)

	click(t, a, scr, t0, "History")
	if lines := strings.Join(a.history.Lines(), "\n"); !strings.Contains(lines, "Aim Game: 1 run, best 250 ms") {
		t.Fatalf("history missing aim stats:\n%s", lines)
	}

	click(t, a, scr, t0, "Clear History")
	if a.screen != screenHistory {
		t.Fatalf("clearing should stay on the history view, got screen %d", a.screen)
	}
	got := a.history.Lines()
	if got[0] != "Aim Game: no runs yet" || got[len(got)-1] != "No runs yet this session." {
		t.Errorf("history after clearing = %v", got)
	}
	if runs, _ := a.Journal().RecentRuns(10); len(runs) != 0 {
		t.Errorf("journal should be empty, got %d runs", len(runs))
	}

	click(t, a, scr, t0, "Back")
	if a.screen != screenRoot {
		t.Error("Back should return to the root menu")
	}
}

func TestLaunchUnknown(t *testing.T) {
	a, _ := newApp(t)
	if err := a.Launch("chess"); err == nil {
		t.Error("expected an error for an unknown activity")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.FrameRate.Game = 0
	if _, err := New(Options{Config: cfg}); err == nil {
		t.Error("expected invalid config to be rejected")
	}
}
