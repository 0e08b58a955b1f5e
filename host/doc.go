// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host runs a lock pattern widget in a fixed-rate tick loop.
//
// Each tick polls a Source for input events, dispatches them to the widget
// in order, draws the widget onto a gg.Context and hands the frame to a
// Sink. The loop then waits for the next tick (60 ticks per second by
// default).
//
//	q := host.NewQueue()
//	loop, err := host.New(widget, q, host.WithSink(func(n int, dc *gg.Context) error {
//	    return nil
//	}))
//	...
//	go feedInput(q)
//	err = loop.Run(ctx)
//
// # Thread Safety
//
// The loop owns the widget: only the goroutine calling Run or Tick touches
// it. Queue is safe for concurrent use and is the way to deliver input
// from other goroutines.
package host
