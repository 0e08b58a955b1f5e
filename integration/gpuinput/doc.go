// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuinput translates gogpu window input into lock pattern events.
//
// The widget only understands lockpattern.Event. This package maps
// gpucontext pointer events (W3C Pointer Events) or, on sources without
// them, the legacy mouse callbacks onto that enum and pushes the result
// into a queue drained by the host loop:
//
//	q := host.NewQueue()
//	gpuinput.Attach(app.EventSource(), q)
//
// Only the primary button of the primary pointer drives the pattern.
// A cancelled pointer ends the drag like a release.
package gpuinput
