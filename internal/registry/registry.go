// Package registry provides a global registry for activity factories.
// Activities register themselves in init() functions, allowing the app
// and the CLI to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-trainer/internal/best"
	"github.com/vovakirdan/tui-trainer/internal/config"
	"github.com/vovakirdan/tui-trainer/internal/core"
)

// Game is the interface every trainer activity implements.
// Activities contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and presentation.
type Game interface {
	// ID returns a unique identifier (e.g., "aim", "typing").
	// Used for CLI commands and the run journal.
	ID() string

	// Title returns the label shown in the root menu (e.g., "Aim Game").
	Title() string

	// Reset starts a fresh run from the activity's first screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances the activity by one frame. now is the frame's clock
	// reading; events are the inputs received since the previous frame,
	// in delivery order.
	Step(now time.Time, events []core.Event) core.StepResult

	// Render draws the current frame. The surface is pre-cleared with the
	// theme's background before this call.
	Render(dst core.Renderer, theme core.Theme)

	// State returns the current activity state.
	State() core.GameState

	// FrameRate returns the pacing the current screen wants, in Hz.
	FrameRate() int
}

// Env carries the per-session collaborators injected into every activity.
type Env struct {
	Bests  *best.Tracker
	Config config.Config
}

// Tracker returns the session tracker, creating a throwaway one when the
// environment has none.
func (e Env) Tracker() *best.Tracker {
	if e.Bests == nil {
		return best.NewTracker()
	}
	return e.Bests
}

// GameInfo contains metadata about a registered activity.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of an activity.
type Factory func(env Env) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an activity factory to the registry.
// Typically called from an activity's init() function.
// Panics if an activity with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(Env{Config: config.Default()})
	titles[id] = g.Title()
}

// List returns information about all registered activities, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new activity by its ID.
// Returns an error if the ID is not registered.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(env), nil
}

// Exists checks if an activity with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
