// Package lockpattern implements an Android-style lock pattern widget.
//
// # Overview
//
// A lock pattern is an N×N grid of dots. The user presses the primary
// pointer button on a dot and drags across other dots; each dot touched
// joins the pattern in order, and a line follows the pointer from the last
// selected dot. Dots that the drag line crosses are captured even if the
// pointer never hovers them (pass-through). Releasing the button clears
// the pattern.
//
// # Quick Start
//
//	g, err := lockpattern.NewGrid(lockpattern.WithGridSize(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, _ := lockpattern.NewWidget(g)
//
//	w.Handle(lockpattern.Down(100, 100))
//	w.Handle(lockpattern.Move(800, 100))
//
//	dc := gg.NewContext(900, 900)
//	_ = w.DrawFrame(dc)
//	_ = dc.SavePNG("pattern.png")
//
// # Architecture
//
// The package is organized into:
//   - Geometry: Distance, PointToSegmentDistance on gg.Point
//   - Grid: dots, the selection stack, HitTest, ExtendSelection, ClearSelection
//   - Render data: a display list of Primitive values, executed by Draw
//   - Widget: dispatch of host-independent Events onto a Grid
//
// Host integration lives in sub-packages: host (fixed-rate tick loop and
// event queue), script (TOML event scripts) and integration/gpuinput
// (gogpu pointer events).
//
// # Coordinate System
//
// Same as gg: origin at top-left, X increases right, Y increases down,
// units are pixels of the configured canvas.
//
// # Thread Safety
//
// Grid and Widget are NOT safe for concurrent use. One goroutine owns the
// widget; input from other goroutines goes through host.Queue.
package lockpattern
