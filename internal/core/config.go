package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	FieldW      float64       // Logical play-field width
	FieldH      float64       // Logical play-field height
	TickRate    int           // Gameplay frames per second (default 60)
	MenuRate    int           // Menu frames per second (default 30)
	ResultDwell time.Duration // How long result screens stay up
	Seed        int64         // RNG seed; 0 means use current time in platform layer
}

// GameState represents the current state of an activity.
type GameState struct {
	Score int  // Hits or characters, depending on the activity
	Done  bool // Activity finished; control returns to the root menu
	Quit  bool // A quit signal was observed; the whole session ends
}

// Result is the outcome of a completed activity run.
type Result struct {
	GameID  string
	Value   float64 // Average reaction ms or WPM
	Unit    string  // "ms" or "wpm"
	Samples int     // Number of hits, or words in the prompt
	Detail  string  // Short human description (difficulty, mode, prompt)
}

// StepResult is returned by Game.Step() after each frame.
// Result is non-nil only on the frame a run produced an outcome.
type StepResult struct {
	State  GameState
	Result *Result
}
