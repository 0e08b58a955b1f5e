// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuinput

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/lockpattern"
)

// Pusher accepts translated events. host.Queue implements it.
type Pusher interface {
	Push(ev lockpattern.Event) error
}

// Translate maps a pointer event to a widget event.
// It reports false for events that do not affect the pattern: secondary
// pointers, non-primary buttons, enter and leave.
func Translate(ev gpucontext.PointerEvent) (lockpattern.Event, bool) {
	if !ev.IsPrimary {
		return lockpattern.Event{}, false
	}
	pos := gg.Pt(ev.X, ev.Y)

	switch ev.Type {
	case gpucontext.PointerDown:
		if ev.Button != gpucontext.ButtonLeft {
			return lockpattern.Event{}, false
		}
		return lockpattern.Event{Kind: lockpattern.EventPointerDown, Pos: pos}, true
	case gpucontext.PointerUp:
		if ev.Button != gpucontext.ButtonLeft {
			return lockpattern.Event{}, false
		}
		return lockpattern.Event{Kind: lockpattern.EventPointerUp, Pos: pos}, true
	case gpucontext.PointerMove:
		return lockpattern.Event{Kind: lockpattern.EventPointerMove, Pos: pos}, true
	case gpucontext.PointerCancel:
		return lockpattern.Event{Kind: lockpattern.EventPointerUp, Pos: pos}, true
	default:
		return lockpattern.Event{}, false
	}
}

// Attach registers callbacks on src that push translated events into p.
// Sources implementing gpucontext.PointerEventSource use pointer events;
// others fall back to mouse press, move and release callbacks.
func Attach(src gpucontext.EventSource, p Pusher) {
	if pes, ok := src.(gpucontext.PointerEventSource); ok {
		pes.OnPointer(func(ev gpucontext.PointerEvent) {
			if out, ok := Translate(ev); ok {
				push(p, out)
			}
		})
		return
	}

	src.OnMousePress(func(b gpucontext.MouseButton, x, y float64) {
		if b == gpucontext.MouseButtonLeft {
			push(p, lockpattern.Down(x, y))
		}
	})
	src.OnMouseMove(func(x, y float64) {
		push(p, lockpattern.Move(x, y))
	})
	src.OnMouseRelease(func(b gpucontext.MouseButton, x, y float64) {
		if b == gpucontext.MouseButtonLeft {
			push(p, lockpattern.Up(x, y))
		}
	})
}

func push(p Pusher, ev lockpattern.Event) {
	if err := p.Push(ev); err != nil {
		lockpattern.Logger().Warn("gpuinput: event dropped", "kind", ev.Kind, "err", err)
	}
}
