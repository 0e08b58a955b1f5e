// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package script

import "github.com/gogpu/lockpattern"

// Player replays a script one tick per Poll. It implements host.Source.
//
// Once every step has been delivered the player emits a single quit event
// on the following tick, unless the script already ended with one.
type Player struct {
	steps []Step
	next  int // index of the next step to deliver
	wait  int // ticks left before steps[next] is due
	quit  bool
}

// NewPlayer creates a player for s. s must not be modified while playing.
func NewPlayer(s *Script) *Player {
	return &Player{steps: s.Steps, wait: s.Delay}
}

// Poll appends the events due on this tick to dst and advances one tick.
func (p *Player) Poll(dst []lockpattern.Event) []lockpattern.Event {
	if p.wait > 0 {
		p.wait--
		return dst
	}
	for p.next < len(p.steps) {
		st := p.steps[p.next]
		p.next++
		dst = append(dst, st.Event)
		if st.Event.Kind == lockpattern.EventQuit {
			p.quit = true
			p.next = len(p.steps)
			return dst
		}
		if st.Ticks > 0 {
			p.wait = st.Ticks - 1
			return dst
		}
	}
	if !p.quit {
		p.quit = true
		dst = append(dst, lockpattern.Quit())
	}
	return dst
}

// Done reports whether the quit event has been delivered.
func (p *Player) Done() bool {
	return p.quit
}
