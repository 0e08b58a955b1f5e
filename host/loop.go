// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/lockpattern"
)

// DefaultRate is the default number of ticks per second.
const DefaultRate = 60

// Sink receives each rendered frame. n counts frames from zero.
// dc is reused by the next tick, so a sink must copy what it keeps.
type Sink func(n int, dc *gg.Context) error

// Option configures a Loop during creation.
type Option func(*Loop)

// WithRate sets the tick rate. A rate of 0 disables pacing: ticks run
// back to back.
func WithRate(ticksPerSecond int) Option {
	return func(l *Loop) {
		l.rate = ticksPerSecond
	}
}

// WithSink sets the frame sink. The default discards frames.
func WithSink(s Sink) Option {
	return func(l *Loop) {
		l.sink = s
	}
}

// WithContext draws into dc instead of a context sized to the grid canvas.
func WithContext(dc *gg.Context) Option {
	return func(l *Loop) {
		l.dc = dc
	}
}

// Loop is a fixed-rate tick loop that owns a widget.
//
// Loop is NOT safe for concurrent use.
type Loop struct {
	widget *lockpattern.Widget
	source Source
	dc     *gg.Context
	sink   Sink
	rate   int
	frames int
	buf    []lockpattern.Event
}

// New creates a loop that feeds events from src into w.
func New(w *lockpattern.Widget, src Source, opts ...Option) (*Loop, error) {
	if w == nil {
		return nil, errors.New("host: nil widget")
	}
	if src == nil {
		return nil, errors.New("host: nil source")
	}
	l := &Loop{
		widget: w,
		source: src,
		rate:   DefaultRate,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.rate < 0 {
		return nil, fmt.Errorf("host: negative tick rate %d", l.rate)
	}
	if l.dc == nil {
		cfg := w.Grid().Config()
		l.dc = gg.NewContext(cfg.Width, cfg.Height)
	}
	return l, nil
}

// Context returns the drawing context frames are rendered into.
func (l *Loop) Context() *gg.Context {
	return l.dc
}

// Frames returns the number of frames rendered so far.
func (l *Loop) Frames() int {
	return l.frames
}

// Tick runs one iteration: poll and dispatch events, draw, hand the frame
// to the sink. It reports false once the widget has handled a quit event;
// the frame of that tick is still rendered.
func (l *Loop) Tick() (bool, error) {
	l.buf = l.source.Poll(l.buf[:0])
	running := !l.widget.Done()
	for _, ev := range l.buf {
		if !l.widget.Handle(ev) {
			running = false
			break
		}
	}
	clear(l.buf)

	if err := l.widget.DrawFrame(l.dc); err != nil {
		return false, fmt.Errorf("host: draw frame %d: %w", l.frames, err)
	}
	if l.sink != nil {
		if err := l.sink(l.frames, l.dc); err != nil {
			return false, fmt.Errorf("host: sink frame %d: %w", l.frames, err)
		}
	}
	l.frames++
	return running, nil
}

// Run ticks until the widget quits, ctx is done or a tick fails.
// It returns nil after a quit and ctx.Err() after cancellation.
func (l *Loop) Run(ctx context.Context) error {
	log := lockpattern.Logger()
	log.Debug("host: loop started", "rate", l.rate)

	var tick <-chan time.Time
	if l.rate > 0 {
		t := time.NewTicker(time.Second / time.Duration(l.rate))
		defer t.Stop()
		tick = t.C
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		running, err := l.Tick()
		if err != nil {
			log.Warn("host: loop stopped", "err", err)
			return err
		}
		if !running {
			log.Debug("host: loop finished", "frames", l.frames)
			return nil
		}
		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
}
