package lockpattern

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// captionScale is the caption font size relative to the dot radius.
const captionScale = 0.6

// captioner draws the status line under the grid.
type captioner struct {
	printer *message.Printer
	source  *text.FontSource
	face    text.Face
}

func newCaptioner(lang string, size float64) (*captioner, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: caption language %q: %w", ErrInvalidConfig, lang, err)
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("lockpattern: load caption font: %w", err)
	}
	return &captioner{
		printer: message.NewPrinter(tag),
		source:  source,
		face:    source.Face(size),
	}, nil
}

// text returns the caption for a selection of n dots.
// An idle grid has no caption.
func (c *captioner) text(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return c.printer.Sprintf("%d dot", n)
	default:
		return c.printer.Sprintf("%d dots", n)
	}
}

// draw centers s horizontally on the canvas, midway between the bottom
// row of dots and the bottom edge.
func (c *captioner) draw(dc *gg.Context, g *Grid, s string) {
	if s == "" {
		return
	}
	cfg := g.cfg
	layout := g.layout
	bottom := layout.Origin.Y + layout.Gap*float64(cfg.GridSize-1) + cfg.DotRadius
	y := bottom + (float64(cfg.Height)-bottom)/2

	dc.SetFont(c.face)
	dc.SetColor(cfg.Palette.Line)
	dc.DrawStringAnchored(s, float64(cfg.Width)/2, y, 0.5, 0.5)
}

func (c *captioner) close() error {
	return c.source.Close()
}
