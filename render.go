package lockpattern

import (
	"fmt"

	"github.com/gogpu/gg"
)

// PrimitiveKind identifies a draw command in a display list.
type PrimitiveKind uint8

const (
	// Line is a stroked segment From -> To.
	Line PrimitiveKind = iota

	// Circle is a filled disc at Center.
	Circle
)

// String returns the kind name for debugging.
func (k PrimitiveKind) String() string {
	switch k {
	case Line:
		return "Line"
	case Circle:
		return "Circle"
	default:
		return "Unknown"
	}
}

// Primitive is one draw command. Lines use From, To and Thickness;
// circles use Center and Radius.
type Primitive struct {
	Kind      PrimitiveKind
	From, To  gg.Point
	Thickness float64
	Center    gg.Point
	Radius    float64
	Color     gg.RGBA
}

// Primitives returns the display list for the current selection with the
// live segment ending at pointer.
func (g *Grid) Primitives(pointer gg.Point) []Primitive {
	return g.AppendPrimitives(make([]Primitive, 0, len(g.stack)+len(g.dots)), pointer)
}

// AppendPrimitives appends the display list to dst and returns it.
//
// With a non-empty stack the list starts with one line per consecutive
// pair of selected dots and a final line from the last selected dot to
// pointer. One circle per dot follows, so dots are drawn over lines.
func (g *Grid) AppendPrimitives(dst []Primitive, pointer gg.Point) []Primitive {
	pal := g.cfg.Palette
	if n := len(g.stack); n > 0 {
		for i := 0; i < n-1; i++ {
			dst = append(dst, g.line(g.dots[g.stack[i]].Position, g.dots[g.stack[i+1]].Position))
		}
		dst = append(dst, g.line(g.dots[g.stack[n-1]].Position, pointer))
	}
	for i := range g.dots {
		d := &g.dots[i]
		dst = append(dst, Primitive{
			Kind:   Circle,
			Center: d.Position,
			Radius: d.Radius,
			Color:  pal.DotColor(d.color),
		})
	}
	return dst
}

func (g *Grid) line(from, to gg.Point) Primitive {
	return Primitive{
		Kind:      Line,
		From:      from,
		To:        to,
		Thickness: g.cfg.LineThickness,
		Color:     g.cfg.Palette.Line,
	}
}

// Draw executes prims on dc in list order.
// Lines are stroked with round caps; circles are filled.
func Draw(dc *gg.Context, prims []Primitive) error {
	dc.SetLineCap(gg.LineCapRound)
	for _, p := range prims {
		dc.SetColor(p.Color)
		switch p.Kind {
		case Line:
			dc.SetLineWidth(p.Thickness)
			dc.DrawLine(p.From.X, p.From.Y, p.To.X, p.To.Y)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("lockpattern: stroke line: %w", err)
			}
		case Circle:
			dc.DrawCircle(p.Center.X, p.Center.Y, p.Radius)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("lockpattern: fill circle: %w", err)
			}
		default:
			return fmt.Errorf("lockpattern: unknown primitive kind %d", p.Kind)
		}
	}
	return nil
}
