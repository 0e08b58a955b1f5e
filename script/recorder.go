// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package script

import (
	"github.com/gogpu/lockpattern"
	"github.com/gogpu/lockpattern/host"
)

// Recorder wraps a host.Source and records every event it yields, with the
// tick it arrived on, so a live session can be replayed later.
// It implements host.Source.
type Recorder struct {
	src   host.Source
	tick  int
	first int // tick of the first recorded event
	last  int // tick of the most recent recorded event
	steps []Step
}

// NewRecorder records the events polled from src.
func NewRecorder(src host.Source) *Recorder {
	return &Recorder{src: src}
}

// Poll polls the wrapped source and records what it returns.
func (r *Recorder) Poll(dst []lockpattern.Event) []lockpattern.Event {
	start := len(dst)
	dst = r.src.Poll(dst)
	for _, ev := range dst[start:] {
		if n := len(r.steps); n > 0 {
			r.steps[n-1].Ticks = r.tick - r.last
		} else {
			r.first = r.tick
		}
		r.steps = append(r.steps, Step{Event: ev, Ticks: 1})
		r.last = r.tick
	}
	r.tick++
	return dst
}

// Script returns the events recorded so far. Idle ticks before the first
// event become the script's Delay.
func (r *Recorder) Script() *Script {
	steps := make([]Step, len(r.steps))
	copy(steps, r.steps)
	return &Script{Delay: r.first, Steps: steps}
}
