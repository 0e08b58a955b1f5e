// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package script reads, plays back and records timed input event scripts
// for the lock pattern widget.
//
// A script is a TOML document with one [[event]] table per event:
//
//	delay = 0       # optional: idle ticks before the first event
//
//	[[event]]
//	kind = "down"   # down | move | up | quit
//	x = 100
//	y = 100
//	ticks = 1       # ticks until the next event; 0 = same tick
//
// Scripts drive headless renders (cmd/lockpattern-render) and are what a
// Recorder writes.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/lockpattern"
	"github.com/pelletier/go-toml/v2"
)

// ErrUnknownEventKind is returned when a script names an event kind other
// than down, move, up or quit.
var ErrUnknownEventKind = errors.New("script: unknown event kind")

// ErrInvalidTicks is returned for a negative tick count or delay.
var ErrInvalidTicks = errors.New("script: negative ticks")

// Step is one scripted event and the number of ticks until the next one.
type Step struct {
	Event lockpattern.Event
	Ticks int
}

// Script is an ordered list of steps. Delay is the number of idle ticks
// before the first step.
type Script struct {
	Delay int
	Steps []Step
}

type fileScript struct {
	Delay  int         `toml:"delay,omitempty"`
	Events []fileEvent `toml:"event"`
}

type fileEvent struct {
	Kind  string  `toml:"kind"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Ticks *int    `toml:"ticks,omitempty"`
}

var kindNames = map[string]lockpattern.EventKind{
	"quit": lockpattern.EventQuit,
	"down": lockpattern.EventPointerDown,
	"move": lockpattern.EventPointerMove,
	"up":   lockpattern.EventPointerUp,
}

func kindName(k lockpattern.EventKind) (string, bool) {
	for name, kind := range kindNames {
		if kind == k {
			return name, true
		}
	}
	return "", false
}

// Decode reads a script from r. Unknown keys are an error. A missing
// ticks value means 1.
func Decode(r io.Reader) (*Script, error) {
	var fs fileScript
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&fs); err != nil {
		return nil, fmt.Errorf("script: decode: %w", err)
	}

	if fs.Delay < 0 {
		return nil, fmt.Errorf("%w: delay %d", ErrInvalidTicks, fs.Delay)
	}
	s := &Script{Delay: fs.Delay, Steps: make([]Step, 0, len(fs.Events))}
	for i, fe := range fs.Events {
		kind, ok := kindNames[fe.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: event %d: %q", ErrUnknownEventKind, i, fe.Kind)
		}
		ticks := 1
		if fe.Ticks != nil {
			ticks = *fe.Ticks
		}
		if ticks < 0 {
			return nil, fmt.Errorf("%w: event %d: %d", ErrInvalidTicks, i, ticks)
		}
		s.Steps = append(s.Steps, Step{
			Event: lockpattern.Event{Kind: kind, Pos: gg.Pt(fe.X, fe.Y)},
			Ticks: ticks,
		})
	}
	return s, nil
}

// Load reads a script file. See Decode.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: open: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes s to w in the format Decode reads.
func (s *Script) Encode(w io.Writer) error {
	fs := fileScript{Delay: s.Delay, Events: make([]fileEvent, 0, len(s.Steps))}
	for i, st := range s.Steps {
		name, ok := kindName(st.Event.Kind)
		if !ok {
			return fmt.Errorf("%w: step %d: %v", ErrUnknownEventKind, i, st.Event.Kind)
		}
		fe := fileEvent{Kind: name, X: st.Event.Pos.X, Y: st.Event.Pos.Y}
		if st.Ticks != 1 {
			ticks := st.Ticks
			fe.Ticks = &ticks
		}
		fs.Events = append(fs.Events, fe)
	}
	if err := toml.NewEncoder(w).Encode(fs); err != nil {
		return fmt.Errorf("script: encode: %w", err)
	}
	return nil
}

// Duration returns the number of ticks the script spans, delay included.
func (s *Script) Duration() int {
	n := s.Delay
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}
