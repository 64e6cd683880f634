package core

// EventKind identifies the variant carried by an Event.
type EventKind int

const (
	EventNone        EventKind = iota
	EventQuit                  // Window closed / Ctrl+C - ends the whole session
	EventPointerDown           // Mouse button pressed at Pos
	EventKeyDown               // Key pressed; either Key or Rune is set
)

// Key is a logical, non-printable key.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyBackspace
	KeyEnter
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyBackspace:
		return "Backspace"
	case KeyEnter:
		return "Enter"
	default:
		return "Unknown"
	}
}

// Event is a single discrete input event delivered to a frame.
type Event struct {
	Kind EventKind
	Pos  Point // Logical position, EventPointerDown only
	Key  Key   // Logical key, EventKeyDown only
	Rune rune  // Printable character, EventKeyDown only (Key == KeyNone)
}

// QuitEvent returns a quit signal.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// PointerDown returns a pointer press at the given logical position.
func PointerDown(x, y float64) Event {
	return Event{Kind: EventPointerDown, Pos: Point{X: x, Y: y}}
}

// KeyDown returns a press of a logical key.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// CharDown returns a press of a printable character.
func CharDown(r rune) Event {
	return Event{Kind: EventKeyDown, Rune: r}
}

// InputSource yields the events queued since the previous poll.
// It must never block.
type InputSource interface {
	PollEvents() []Event
}

// EventQueue is an InputSource fed by the platform as input arrives.
// Events are returned in delivery order.
type EventQueue struct {
	pending []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.pending = append(q.pending, e)
}

// PollEvents drains and returns all queued events.
func (q *EventQueue) PollEvents() []Event {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.pending)
}
