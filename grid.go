package lockpattern

import (
	"fmt"
	"slices"

	"github.com/gogpu/gg"
)

// NoDot is passed to ExtendSelection when no dot is under the pointer.
// ExtendSelection treats every negative index the same way.
const NoDot = -1

// State is the drag state of a Grid.
type State uint8

const (
	// Idle means no pattern is being drawn.
	Idle State = iota

	// Dragging means at least one dot has been selected.
	Dragging
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Grid is an N×N lock pattern: a fixed set of dots and the ordered stack
// of dots selected by the current drag.
//
// The stack stores dot indices, not dots, so a dot has exactly one owner.
//
// Grid is NOT safe for concurrent use.
type Grid struct {
	cfg    Config
	layout Layout
	dots   []Dot
	stack  []int
	onSet  []bool // index -> on stack
}

// NewGrid creates a grid from DefaultConfig with opts applied.
func NewGrid(opts ...Option) (*Grid, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewGridFromConfig(cfg)
}

// NewGridFromConfig creates a grid from cfg.
// Returns an error wrapping ErrInvalidConfig if cfg fails Validate.
func NewGridFromConfig(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.GridSize
	layout := cfg.ResolvedLayout()
	g := &Grid{
		cfg:    cfg,
		layout: layout,
		dots:   make([]Dot, n*n),
		stack:  make([]int, 0, n*n),
		onSet:  make([]bool, n*n),
	}
	for i := range g.dots {
		g.dots[i] = Dot{
			Position: gg.Pt(
				layout.Origin.X+layout.Gap*float64(i%n),
				layout.Origin.Y+layout.Gap*float64(i/n),
			),
			Radius: cfg.DotRadius,
			color:  Unselected,
		}
	}

	Logger().Debug("lockpattern: grid created",
		"size", n, "origin", layout.Origin, "gap", layout.Gap)
	return g, nil
}

// MustNewGrid is like NewGrid but panics on error.
// Use only when the options are constants.
func MustNewGrid(opts ...Option) *Grid {
	g, err := NewGrid(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Config returns the configuration the grid was built with.
func (g *Grid) Config() Config {
	return g.cfg
}

// Layout returns the resolved dot layout.
func (g *Grid) Layout() Layout {
	return g.layout
}

// Len returns the number of dots (N²).
func (g *Grid) Len() int {
	return len(g.dots)
}

// Dot returns the dot at index i.
func (g *Grid) Dot(i int) Dot {
	return g.dots[i]
}

// Dots returns a copy of all dots in construction order.
func (g *Grid) Dots() []Dot {
	return slices.Clone(g.dots)
}

// Selection returns a copy of the selection stack as dot indices,
// in selection order.
func (g *Grid) Selection() []int {
	return slices.Clone(g.stack)
}

// State reports whether a pattern is in progress.
func (g *Grid) State() State {
	if len(g.stack) == 0 {
		return Idle
	}
	return Dragging
}

// HitTest returns the index of the first dot, in construction order,
// whose distance to p is strictly less than DotRadius + HitTolerance.
//
// When hit regions overlap the earliest dot wins, not the closest one.
// HitTest does not change the grid.
func (g *Grid) HitTest(p gg.Point) (int, bool) {
	reach := g.cfg.DotRadius + g.cfg.HitTolerance
	for i := range g.dots {
		if Distance(p, g.dots[i].Position) < reach {
			return i, true
		}
	}
	return NoDot, false
}

// ExtendSelection grows the selection stack for one tick of a held
// pointer. hit is the dot under the pointer, or a negative value such as
// NoDot when the pointer is over no dot.
//
// Dots crossed by the segment from the last selected dot to pointer are
// appended first, in construction order, followed by hit itself. The
// segment start is fixed for the whole call, so a dot appended by
// pass-through does not start a new segment until the next call.
//
// ExtendSelection returns the appended indices in append order, or nil.
// It panics if hit is not less than Len.
func (g *Grid) ExtendSelection(hit int, pointer gg.Point) []int {
	if hit >= len(g.dots) {
		panic(fmt.Sprintf("lockpattern: dot index %d out of range [0, %d)", hit, len(g.dots)))
	}

	var added []int
	if len(g.stack) > 0 {
		last := g.dots[g.stack[len(g.stack)-1]].Position
		for i := range g.dots {
			if g.onSet[i] || i == hit {
				continue
			}
			d := &g.dots[i]
			if PointToSegmentDistance(d.Position, last, pointer) < d.Radius {
				g.push(i)
				added = append(added, i)
			}
		}
	}

	if hit >= 0 && !g.onSet[hit] {
		g.push(hit)
		added = append(added, hit)
	}
	return added
}

// Drag hit-tests pointer and extends the selection with the result.
// It is the per-tick step while the primary button is held.
func (g *Grid) Drag(pointer gg.Point) []int {
	hit, _ := g.HitTest(pointer)
	return g.ExtendSelection(hit, pointer)
}

// ClearSelection unselects every dot and empties the stack.
// Afterwards the grid is in its post-construction state.
func (g *Grid) ClearSelection() {
	for i := range g.dots {
		g.dots[i].reset()
		g.onSet[i] = false
	}
	g.stack = g.stack[:0]
}

func (g *Grid) push(i int) {
	g.stack = append(g.stack, i)
	g.onSet[i] = true
	g.dots[i].mark()
}
