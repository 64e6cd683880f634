package menu

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-trainer/internal/core"
)

// stubRenderer hands out preset regions in draw order.
type stubRenderer struct {
	regions []core.Rect
	drawn   []string
}

func (r *stubRenderer) Clear(core.Color) {}

func (r *stubRenderer) DrawText(text string, _ core.Point, _ core.Anchor, _ core.Color) core.Rect {
	r.drawn = append(r.drawn, text)
	i := len(r.drawn) - 1
	if i < len(r.regions) {
		return r.regions[i]
	}
	return core.Rect{}
}

func (r *stubRenderer) DrawFilledCircle(core.Point, float64, core.Color) {}

func (r *stubRenderer) Present() {}

func newScreen() *core.Screen {
	return core.NewScreen(90, 24, 900, 600)
}

func TestNewRejectsEmptyOptions(t *testing.T) {
	_, err := New("Choose", nil)
	if !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestNewRejectsDuplicateOptions(t *testing.T) {
	_, err := New("Choose", []string{"10", "10"})
	if !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestSelectorResolvesOnClick(t *testing.T) {
	s, err := New("Select Difficulty", []string{"Easy", "Normal", "Hard"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	scr := newScreen()
	s.Render(scr, 900, core.DefaultTheme())

	region, ok := s.Region("Normal")
	if !ok || region.Empty() {
		t.Fatalf("Normal should have a rendered region, got %+v", region)
	}

	c := region.Center()
	state := s.Step([]core.Event{core.PointerDown(c.X, c.Y)})
	if state != StateResolved {
		t.Fatalf("state = %v, expected Resolved", state)
	}
	if choice, ok := s.Choice(); !ok || choice != "Normal" {
		t.Errorf("Choice() = %q, %v; expected Normal", choice, ok)
	}
}

func TestSelectorIgnoresMissesAndKeys(t *testing.T) {
	s, _ := New("Choose Game Mode", []string{"Clicks Mode", "Time Limit Mode"})
	s.Render(newScreen(), 900, core.DefaultTheme())

	state := s.Step([]core.Event{
		core.PointerDown(5, 590),
		core.KeyDown(core.KeyEnter),
		core.CharDown('x'),
	})
	if state != StatePrompting {
		t.Fatalf("state = %v, expected Prompting", state)
	}
	if _, ok := s.Choice(); ok {
		t.Error("Choice() should be unset while prompting")
	}
}

func TestSelectorQuit(t *testing.T) {
	s, _ := New("Choose", []string{"A"})
	s.Render(newScreen(), 900, core.DefaultTheme())

	region, _ := s.Region("A")
	c := region.Center()
	// Quit arrives first, so the later click is never considered.
	state := s.Step([]core.Event{core.QuitEvent(), core.PointerDown(c.X, c.Y)})
	if state != StateQuit {
		t.Fatalf("state = %v, expected Quit", state)
	}
	if _, ok := s.Choice(); ok {
		t.Error("quit selector should have no choice")
	}
}

func TestSelectorFirstPressWins(t *testing.T) {
	s, _ := New("Number of targets", []string{"10", "50", "100"})
	s.Render(newScreen(), 900, core.DefaultTheme())

	r50, _ := s.Region("50")
	r100, _ := s.Region("100")
	state := s.Step([]core.Event{
		core.PointerDown(r100.Center().X, r100.Center().Y),
		core.PointerDown(r50.Center().X, r50.Center().Y),
	})
	if state != StateResolved {
		t.Fatalf("state = %v, expected Resolved", state)
	}
	if choice, _ := s.Choice(); choice != "100" {
		t.Errorf("first press should win, got %q", choice)
	}
}

func TestSelectorOverlapPrefersListOrder(t *testing.T) {
	s, _ := New("Overlap", []string{"first", "second"})
	// Title first, then two overlapping option regions.
	r := &stubRenderer{regions: []core.Rect{
		{},
		core.NewRect(100, 100, 50, 50),
		core.NewRect(120, 120, 50, 50),
	}}
	s.Render(r, 900, core.DefaultTheme())

	s.Step([]core.Event{core.PointerDown(130, 130)})
	if choice, _ := s.Choice(); choice != "first" {
		t.Errorf("overlap should resolve to the first option, got %q", choice)
	}
}

func TestSelectorLayout(t *testing.T) {
	s, _ := New("Welcome!", []string{"A", "B"}, WithTitleY(80), WithStartY(180))
	r := &stubRenderer{}
	s.Render(r, 900, core.DefaultTheme())

	if len(r.drawn) != 3 || r.drawn[0] != "Welcome!" || r.drawn[2] != "B" {
		t.Errorf("unexpected draw order: %v", r.drawn)
	}
	if got := s.Options(); len(got) != 2 || got[0] != "A" {
		t.Errorf("Options() = %v", got)
	}
}

func TestSelectorStaysResolved(t *testing.T) {
	s, _ := New("Choose", []string{"A", "B"})
	s.Render(newScreen(), 900, core.DefaultTheme())
	ra, _ := s.Region("A")
	rb, _ := s.Region("B")

	s.Step([]core.Event{core.PointerDown(ra.Center().X, ra.Center().Y)})
	s.Step([]core.Event{core.PointerDown(rb.Center().X, rb.Center().Y)})

	if choice, _ := s.Choice(); choice != "A" {
		t.Errorf("resolved selector should keep its first choice, got %q", choice)
	}
}
