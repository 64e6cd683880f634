package core

import "time"

// Clock provides monotonic time to the frame loop.
// time.Time values from time.Now carry a monotonic reading, so Sub between
// two of them is immune to wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FrameInterval converts a frame rate into the wait between frames.
// Non-positive rates fall back to 60 Hz.
func FrameInterval(hz int) time.Duration {
	if hz <= 0 {
		hz = 60
	}
	return time.Second / time.Duration(hz)
}
