// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuinput

import (
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/lockpattern"
)

// Viewport places a fixed-size canvas inside a window that may be resized,
// and moves pointer positions from window space into canvas space before
// forwarding them.
//
// Place is called from the draw callback and Push from input callbacks,
// possibly on different goroutines.
type Viewport struct {
	next Pusher

	mu     sync.Mutex
	origin gg.Point
}

// NewViewport returns a viewport that forwards events to next.
func NewViewport(next Pusher) *Viewport {
	return &Viewport{next: next}
}

// Place centers a canvas of cw×ch pixels in a window of ww×wh pixels and
// returns the canvas origin in window coordinates. On an axis where the
// window is smaller than the canvas, the canvas is pinned to the top or
// left edge.
func (v *Viewport) Place(cw, ch, ww, wh int) gg.Point {
	o := gg.Pt(float64(max(ww-cw, 0)/2), float64(max(wh-ch, 0)/2))
	v.mu.Lock()
	v.origin = o
	v.mu.Unlock()
	return o
}

// Origin returns the canvas origin set by the last Place.
func (v *Viewport) Origin() gg.Point {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.origin
}

// Push translates ev into canvas coordinates and forwards it.
func (v *Viewport) Push(ev lockpattern.Event) error {
	if ev.Kind != lockpattern.EventQuit {
		ev.Pos = ev.Pos.Sub(v.Origin())
	}
	return v.next.Push(ev)
}
