package lockpattern

import "github.com/gogpu/gg"

// EventKind identifies an input event delivered to a Widget.
type EventKind uint8

const (
	// EventQuit asks the host to stop.
	EventQuit EventKind = iota

	// EventPointerDown is a primary button press at Pos.
	EventPointerDown

	// EventPointerMove is a pointer movement to Pos, with or without
	// the primary button held.
	EventPointerMove

	// EventPointerUp is a primary button release at Pos.
	EventPointerUp
)

// String returns the event kind name for debugging.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "Quit"
	case EventPointerDown:
		return "PointerDown"
	case EventPointerMove:
		return "PointerMove"
	case EventPointerUp:
		return "PointerUp"
	default:
		return "Unknown"
	}
}

// Event is a host-independent input event.
// Host adapters translate toolkit events into Events so the widget never
// sees toolkit types. Pos is ignored for EventQuit.
type Event struct {
	Kind EventKind
	Pos  gg.Point
}

// Quit returns an EventQuit.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// Down returns an EventPointerDown at (x, y).
func Down(x, y float64) Event {
	return Event{Kind: EventPointerDown, Pos: gg.Pt(x, y)}
}

// Move returns an EventPointerMove to (x, y).
func Move(x, y float64) Event {
	return Event{Kind: EventPointerMove, Pos: gg.Pt(x, y)}
}

// Up returns an EventPointerUp at (x, y).
func Up(x, y float64) Event {
	return Event{Kind: EventPointerUp, Pos: gg.Pt(x, y)}
}
