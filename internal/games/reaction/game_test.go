package reaction

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-trainer/internal/best"
	"github.com/vovakirdan/tui-trainer/internal/config"
	"github.com/vovakirdan/tui-trainer/internal/core"
	"github.com/vovakirdan/tui-trainer/internal/registry"
)

func newGame(t *testing.T) (*Game, *best.Tracker, *core.Screen) {
	t.Helper()
	tr := best.NewTracker()
	g := New(registry.Env{Bests: tr, Config: config.Default()})
	cfg := config.Default().Runtime(42)
	g.Reset(cfg)
	return g, tr, core.NewScreen(90, 24, cfg.FieldW, cfg.FieldH)
}

// choose renders the current selector and clicks the given option.
func choose(t *testing.T, g *Game, scr *core.Screen, now time.Time, label string) core.StepResult {
	t.Helper()
	scr.Clear(core.ColorDarkBG)
	g.Render(scr, core.DefaultTheme())
	if g.selector == nil {
		t.Fatalf("no selector showing while choosing %q", label)
	}
	r, ok := g.selector.Region(label)
	if !ok || r.Empty() {
		t.Fatalf("option %q not rendered", label)
	}
	c := r.Center()
	return g.Step(now, []core.Event{core.PointerDown(c.X, c.Y)})
}

func TestGameSetupFlow(t *testing.T) {
	g, _, scr := newGame(t)

	if g.FrameRate() != 30 {
		t.Errorf("setup FrameRate() = %d, expected 30", g.FrameRate())
	}
	if g.selector.Title() != "Select Difficulty" {
		t.Fatalf("first screen = %q", g.selector.Title())
	}

	choose(t, g, scr, t0, "Hard")
	if g.selector.Title() != "Choose Game Mode" {
		t.Fatalf("second screen = %q", g.selector.Title())
	}

	choose(t, g, scr, t0, "Time Limit Mode")
	if g.selector.Title() != "Time limit in seconds" {
		t.Fatalf("third screen = %q", g.selector.Title())
	}

	choose(t, g, scr, t0, "30")
	s := g.Session()
	if s == nil {
		t.Fatal("session should start after the last choice")
	}
	if s.Radius() != 15 || s.Mode().Kind != ModeTimeLimit || s.Mode().Seconds != 30 {
		t.Errorf("session = radius %d, mode %+v", s.Radius(), s.Mode())
	}
	if g.FrameRate() != 60 {
		t.Errorf("play FrameRate() = %d, expected 60", g.FrameRate())
	}
}

func TestGameReportsAverage(t *testing.T) {
	g, tr, scr := newGame(t)
	choose(t, g, scr, t0, "Easy")
	choose(t, g, scr, t0, "Clicks Mode")
	choose(t, g, scr, t0, "10")

	now := t0
	var res *core.Result
	for i := 0; i < 10; i++ {
		now = now.Add(2 * time.Second)
		g.Step(now, nil)
		c, ok := g.Session().Target()
		if !ok {
			t.Fatalf("hit %d: no target", i)
		}
		now = now.Add(200 * time.Millisecond)
		out := g.Step(now, []core.Event{core.PointerDown(c.X, c.Y)})
		if out.Result != nil {
			res = out.Result
		}
	}

	if res == nil {
		t.Fatal("the tenth hit should produce a result")
	}
	if res.GameID != ID || res.Value != 200 || res.Samples != 10 {
		t.Errorf("Result = %+v", res)
	}
	if b := tr.Bests(); b.ReactionMs == nil || *b.ReactionMs != 200 {
		t.Errorf("tracker not updated: %+v", b)
	}

	scr.Clear(core.ColorDarkBG)
	g.Render(scr, core.DefaultTheme())
	if !strings.Contains(scr.String(), "Average Reaction Time: 200 ms") {
		t.Errorf("result screen missing average:\n%s", scr.String())
	}

	// Result stays up for the dwell time.
	if g.Step(now.Add(time.Second), nil).State.Done {
		t.Error("result should still be showing after 1s")
	}
	if !g.Step(now.Add(3*time.Second), nil).State.Done {
		t.Error("game should be done after the dwell")
	}
}

func TestGameHUD(t *testing.T) {
	g, _, scr := newGame(t)
	choose(t, g, scr, t0, "Normal")
	choose(t, g, scr, t0, "Clicks Mode")
	choose(t, g, scr, t0, "50")

	g.Step(t0, nil)
	scr.Clear(core.ColorDarkBG)
	g.Render(scr, core.DefaultTheme())

	out := scr.String()
	for _, want := range []string{"Score: 0", "Target: 0/50", "Best Reaction: N/A", "Best Typing: N/A"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
}

func TestGameEscapeWithoutHits(t *testing.T) {
	g, tr, scr := newGame(t)
	choose(t, g, scr, t0, "Easy")
	choose(t, g, scr, t0, "Time Limit Mode")
	choose(t, g, scr, t0, "10")

	g.Step(t0, nil)
	out := g.Step(t0.Add(time.Second), []core.Event{core.KeyDown(core.KeyEscape)})
	if !out.State.Done || out.State.Quit {
		t.Errorf("escape should end the run without quitting: %+v", out.State)
	}
	if out.Result != nil {
		t.Error("no hits means no result")
	}
	if tr.Bests().ReactionMs != nil {
		t.Error("tracker should be untouched")
	}
}

func TestGameEscapeInSetup(t *testing.T) {
	g, _, _ := newGame(t)
	out := g.Step(t0, []core.Event{core.KeyDown(core.KeyEscape)})
	if !out.State.Done || out.State.Quit {
		t.Errorf("escape in setup should return to the menu: %+v", out.State)
	}
}

func TestGameQuit(t *testing.T) {
	g, _, scr := newGame(t)
	choose(t, g, scr, t0, "Easy")

	out := g.Step(t0, []core.Event{core.QuitEvent()})
	if !out.State.Quit || !out.State.Done {
		t.Errorf("quit should end everything: %+v", out.State)
	}
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create(ID, registry.Env{Config: config.Default()})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Aim Game" {
		t.Errorf("Title() = %q", g.Title())
	}
}
