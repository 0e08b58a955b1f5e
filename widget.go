package lockpattern

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// ErrWidgetClosed is returned when drawing a widget after Close.
var ErrWidgetClosed = errors.New("lockpattern: widget is closed")

// Widget drives a Grid from a stream of Events and draws it.
//
// A pattern attempt starts with EventPointerDown, grows on every
// EventPointerMove while the button is held and ends on EventPointerUp,
// which clears the grid.
//
// Widget is NOT safe for concurrent use. Hosts that receive input on
// another goroutine should feed it through a queue owned by the loop
// (see package host).
type Widget struct {
	grid      *Grid
	caption   *captioner
	pointer   gg.Point
	held      bool
	quit      bool
	closed    bool
	onPattern func(pattern []int)
}

// NewWidget creates a widget around g.
// When g's configuration enables the caption, the caption font is loaded
// here and released by Close.
func NewWidget(g *Grid) (*Widget, error) {
	if g == nil {
		return nil, errors.New("lockpattern: nil grid")
	}
	w := &Widget{grid: g}
	if cfg := g.Config(); cfg.Caption {
		c, err := newCaptioner(cfg.Language, cfg.DotRadius*captionScale)
		if err != nil {
			return nil, err
		}
		w.caption = c
	}
	return w, nil
}

// Grid returns the grid driven by the widget.
func (w *Widget) Grid() *Grid {
	return w.grid
}

// Pointer returns the last known pointer position.
func (w *Widget) Pointer() gg.Point {
	return w.pointer
}

// Held reports whether the primary button is down.
func (w *Widget) Held() bool {
	return w.held
}

// Done reports whether an EventQuit has been handled.
func (w *Widget) Done() bool {
	return w.quit
}

// OnPattern registers fn to receive the selected dot indices each time a
// drag ends with a non-empty selection. fn owns the slice.
func (w *Widget) OnPattern(fn func(pattern []int)) {
	w.onPattern = fn
}

// Handle applies ev to the widget and reports whether the host should keep
// running. After an EventQuit every call returns false and does nothing.
func (w *Widget) Handle(ev Event) bool {
	if w.quit {
		return false
	}
	log := Logger()
	log.Debug("lockpattern: event dispatched", "kind", ev.Kind, "pos", ev.Pos, "held", w.held)

	switch ev.Kind {
	case EventQuit:
		w.quit = true
		log.Debug("lockpattern: quit requested")
		return false

	case EventPointerDown:
		w.pointer = ev.Pos
		w.held = true
		w.drag()

	case EventPointerMove:
		w.pointer = ev.Pos
		if w.held {
			w.drag()
		}

	case EventPointerUp:
		w.pointer = ev.Pos
		w.held = false
		w.release()

	default:
		log.Warn("lockpattern: unknown event dropped", "kind", ev.Kind)
	}
	return true
}

func (w *Widget) drag() {
	started := w.grid.State() == Idle
	added := w.grid.Drag(w.pointer)
	if len(added) == 0 {
		return
	}
	log := Logger()
	if started {
		log.Info("lockpattern: pattern started", "dot", added[0])
	}
	log.Debug("lockpattern: dots selected", "added", added, "pointer", w.pointer)
}

func (w *Widget) release() {
	pattern := w.grid.Selection()
	w.grid.ClearSelection()
	if len(pattern) == 0 {
		return
	}
	Logger().Info("lockpattern: pattern completed", "pattern", pattern)
	if w.onPattern != nil {
		w.onPattern(pattern)
	}
}

// Primitives returns the display list for the current state.
func (w *Widget) Primitives() []Primitive {
	return w.grid.Primitives(w.pointer)
}

// Caption returns the status line text, or "" when the caption is
// disabled or no pattern is in progress.
func (w *Widget) Caption() string {
	if w.caption == nil {
		return ""
	}
	return w.caption.text(len(w.grid.stack))
}

// DrawFrame clears dc to the background color and draws the widget.
func (w *Widget) DrawFrame(dc *gg.Context) error {
	if w.closed {
		return ErrWidgetClosed
	}
	dc.ClearWithColor(w.grid.cfg.Palette.Background)
	if err := Draw(dc, w.Primitives()); err != nil {
		return err
	}
	if w.caption != nil {
		w.caption.draw(dc, w.grid, w.Caption())
	}
	return nil
}

// Close releases the caption font. It is safe to call more than once.
func (w *Widget) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.caption != nil {
		if err := w.caption.close(); err != nil {
			return fmt.Errorf("lockpattern: close caption: %w", err)
		}
	}
	return nil
}
