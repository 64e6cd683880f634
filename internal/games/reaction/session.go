package reaction

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-trainer/internal/core"
)

// Status reports whether a session is still accepting frames.
type Status int

const (
	StatusRunning  Status = iota
	StatusFinished        // Mode limit reached or ended early with Escape
	StatusQuit            // Quit signal observed
)

// Params configures a Session.
type Params struct {
	FieldW, FieldH float64
	Difficulty     Difficulty
	Mode           Mode
	SpawnDelayMin  time.Duration
	SpawnDelayMax  time.Duration
}

// Session is one run of the aim game: it spawns targets, scores hits and
// collects reaction samples. It has no notion of rendering or wall time;
// every call is handed the frame's clock reading.
type Session struct {
	width, height int
	radius        int
	mode          Mode
	delayMin      time.Duration
	delayMax      time.Duration
	rng           *rand.Rand

	score   int
	samples []float64 // Milliseconds, in hit order

	visible    bool
	target     core.Point
	appearedAt time.Time
	nextSpawn  time.Time
	start      time.Time

	status Status
}

// NewSession validates p and starts a session at start. The first target
// spawns on the first frame at or after start.
func NewSession(p Params, start time.Time, rng *rand.Rand) (*Session, error) {
	r := p.Difficulty.Radius()
	w, h := int(p.FieldW), int(p.FieldH)
	if r <= 0 {
		return nil, fmt.Errorf("reaction: radius must be positive: %w", core.ErrInvalidConfiguration)
	}
	if 2*r > w || 2*r > h {
		return nil, fmt.Errorf("reaction: radius %d does not fit a %dx%d field: %w", r, w, h, core.ErrInvalidConfiguration)
	}
	if err := p.Mode.Validate(); err != nil {
		return nil, err
	}
	if p.SpawnDelayMin < 0 || p.SpawnDelayMax < p.SpawnDelayMin {
		return nil, fmt.Errorf("reaction: invalid spawn delay range [%v, %v]: %w",
			p.SpawnDelayMin, p.SpawnDelayMax, core.ErrInvalidConfiguration)
	}

	return &Session{
		width:     w,
		height:    h,
		radius:    r,
		mode:      p.Mode,
		delayMin:  p.SpawnDelayMin,
		delayMax:  p.SpawnDelayMax,
		rng:       rng,
		start:     start,
		nextSpawn: start,
	}, nil
}

// Advance runs one frame: spawn, input, termination.
func (s *Session) Advance(now time.Time, events []core.Event) Status {
	if s.status != StatusRunning {
		return s.status
	}

	if !s.visible && !now.Before(s.nextSpawn) {
		s.spawn(now)
	}

	for _, ev := range events {
		switch ev.Kind {
		case core.EventQuit:
			s.status = StatusQuit
			return s.status
		case core.EventKeyDown:
			if ev.Key == core.KeyEscape {
				s.status = StatusFinished
				return s.status
			}
		case core.EventPointerDown:
			if s.visible && s.isHit(ev.Pos) {
				s.recordHit(now)
			}
		}
	}

	switch s.mode.Kind {
	case ModeTimeLimit:
		if now.Sub(s.start) > s.mode.Limit() {
			s.status = StatusFinished
		}
	case ModeClicks:
		if s.score >= s.mode.Targets {
			s.status = StatusFinished
		}
	}
	return s.status
}

// spawn places a new target with its whole disc inside the field.
func (s *Session) spawn(now time.Time) {
	r := s.radius
	x := r + s.rng.Intn(s.width-2*r+1)
	y := r + s.rng.Intn(s.height-2*r+1)
	s.target = core.Pt(float64(x), float64(y))
	s.visible = true
	s.appearedAt = now
}

// isHit tests p against the target disc, boundary included.
func (s *Session) isHit(p core.Point) bool {
	r := float64(s.radius)
	return p.DistSq(s.target) <= r*r
}

func (s *Session) recordHit(now time.Time) {
	ms := float64(now.Sub(s.appearedAt)) / float64(time.Millisecond)
	s.samples = append(s.samples, ms)
	s.score++
	s.visible = false
	s.nextSpawn = now.Add(s.spawnDelay())
}

// spawnDelay draws uniformly from [delayMin, delayMax].
func (s *Session) spawnDelay() time.Duration {
	span := int64(s.delayMax - s.delayMin)
	return s.delayMin + time.Duration(s.rng.Int63n(span+1))
}

// Score returns the number of hits.
func (s *Session) Score() int {
	return s.score
}

// Samples returns a copy of the reaction times in milliseconds.
func (s *Session) Samples() []float64 {
	out := make([]float64, len(s.samples))
	copy(out, s.samples)
	return out
}

// Average returns the mean reaction time, or false when nothing was hit.
func (s *Session) Average() (float64, bool) {
	if len(s.samples) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range s.samples {
		sum += v
	}
	return sum / float64(len(s.samples)), true
}

// Target returns the visible target's centre.
func (s *Session) Target() (core.Point, bool) {
	return s.target, s.visible
}

// Radius returns the target radius.
func (s *Session) Radius() int {
	return s.radius
}

// NextSpawn returns the earliest time the next target may appear.
func (s *Session) NextSpawn() time.Time {
	return s.nextSpawn
}

// Status returns the session status.
func (s *Session) Status() Status {
	return s.status
}

// Mode returns the termination rule.
func (s *Session) Mode() Mode {
	return s.mode
}

// Progress returns the second HUD line: "Target: n/N" or "Time Left: Ns".
// Remaining seconds round up and never go below zero.
func (s *Session) Progress(now time.Time) string {
	if s.mode.Kind == ModeClicks {
		return fmt.Sprintf("Target: %d/%d", s.score, s.mode.Targets)
	}
	left := s.mode.Limit() - now.Sub(s.start)
	secs := int(math.Ceil(left.Seconds()))
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("Time Left: %ds", secs)
}
