package lockpattern

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
)

// ErrInvalidConfig is returned when a grid is built from a configuration
// that cannot produce a usable grid.
var ErrInvalidConfig = errors.New("lockpattern: invalid configuration")

// Default configuration values.
const (
	DefaultCanvasSize    = 900
	DefaultGridSize      = 3
	DefaultDotRadius     = 50
	DefaultHitTolerance  = DefaultDotRadius
	DefaultLineThickness = 10
	DefaultLanguage      = "en"
)

// Palette holds the colors used to draw the widget.
type Palette struct {
	Unselected gg.RGBA
	Selected   gg.RGBA
	Line       gg.RGBA
	Background gg.RGBA
}

// DefaultPalette returns black dots turning brown when selected,
// joined by blue lines on a white background.
func DefaultPalette() Palette {
	return Palette{
		Unselected: gg.RGB(0, 0, 0),
		Selected:   gg.RGB(150.0/255, 75.0/255, 0),
		Line:       gg.RGB(0, 0, 1),
		Background: gg.RGB(1, 1, 1),
	}
}

// DotColor returns the palette color for a dot state.
func (p Palette) DotColor(c DotColor) gg.RGBA {
	if c == Selected {
		return p.Selected
	}
	return p.Unselected
}

// Layout places the first dot at Origin and spaces the rest Gap apart.
type Layout struct {
	Origin gg.Point
	Gap    float64
}

// Config holds the construction-time settings of a Grid.
// There is no runtime reconfiguration: build a new Grid instead.
type Config struct {
	// Width and Height are the canvas size in pixels.
	Width, Height int

	// GridSize is N for an N×N grid.
	GridSize int

	DotRadius float64

	// HitTolerance is added to DotRadius when hit-testing the pointer.
	HitTolerance float64

	LineThickness float64

	// Layout overrides the layout derived from the canvas size.
	// Nil means derived: margin of 1/9 of the canvas and a gap of
	// 7/6 of the canvas width divided by GridSize.
	Layout *Layout

	Palette Palette

	// Caption enables the status line drawn under the grid.
	Caption bool

	// Language is the BCP 47 tag used to format the caption.
	Language string
}

// DefaultConfig returns a 3×3 grid on a 900×900 canvas.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultCanvasSize,
		Height:        DefaultCanvasSize,
		GridSize:      DefaultGridSize,
		DotRadius:     DefaultDotRadius,
		HitTolerance:  DefaultHitTolerance,
		LineThickness: DefaultLineThickness,
		Palette:       DefaultPalette(),
		Language:      DefaultLanguage,
	}
}

// Validate reports whether c can produce a grid.
// The returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid size %d, must be positive", ErrInvalidConfig, c.GridSize)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.DotRadius <= 0 || math.IsNaN(c.DotRadius):
		return fmt.Errorf("%w: dot radius %v", ErrInvalidConfig, c.DotRadius)
	case c.HitTolerance < 0 || math.IsNaN(c.HitTolerance):
		return fmt.Errorf("%w: hit tolerance %v", ErrInvalidConfig, c.HitTolerance)
	case c.LineThickness <= 0 || math.IsNaN(c.LineThickness):
		return fmt.Errorf("%w: line thickness %v", ErrInvalidConfig, c.LineThickness)
	case c.Layout != nil && (c.Layout.Gap < 0 || math.IsNaN(c.Layout.Gap)):
		return fmt.Errorf("%w: layout gap %v", ErrInvalidConfig, c.Layout.Gap)
	}
	if c.Caption {
		if _, err := language.Parse(c.Language); err != nil {
			return fmt.Errorf("%w: caption language %q: %w", ErrInvalidConfig, c.Language, err)
		}
	}
	return nil
}

// ResolvedLayout returns the explicit layout if one is set, otherwise the
// layout derived from the canvas size.
func (c Config) ResolvedLayout() Layout {
	if c.Layout != nil {
		return *c.Layout
	}
	return Layout{
		Origin: gg.Pt(float64(c.Width/9), float64(c.Height/9)),
		Gap:    math.Floor(7.0 / 6.0 * float64(c.Width) / float64(c.GridSize)),
	}
}

// Option configures a Grid during creation.
//
// Example:
//
//	g, err := lockpattern.NewGrid(
//	    lockpattern.WithGridSize(4),
//	    lockpattern.WithCanvasSize(600, 600),
//	)
type Option func(*Config)

// WithCanvasSize sets the canvas size the layout is derived from.
func WithCanvasSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithGridSize sets N for an N×N grid.
func WithGridSize(n int) Option {
	return func(c *Config) {
		c.GridSize = n
	}
}

// WithDotRadius sets the dot radius. The hit tolerance is not changed.
func WithDotRadius(r float64) Option {
	return func(c *Config) {
		c.DotRadius = r
	}
}

// WithHitTolerance sets the extra radius allowed when hit-testing.
func WithHitTolerance(t float64) Option {
	return func(c *Config) {
		c.HitTolerance = t
	}
}

// WithLineThickness sets the width of pattern lines.
func WithLineThickness(t float64) Option {
	return func(c *Config) {
		c.LineThickness = t
	}
}

// WithLayout places the first dot at origin and spaces dots gap apart,
// overriding the layout derived from the canvas size.
func WithLayout(origin gg.Point, gap float64) Option {
	return func(c *Config) {
		c.Layout = &Layout{Origin: origin, Gap: gap}
	}
}

// WithPalette sets the drawing colors.
func WithPalette(p Palette) Option {
	return func(c *Config) {
		c.Palette = p
	}
}

// WithCaption enables the status line, formatted for the given language tag.
// An empty tag keeps the current language.
func WithCaption(lang string) Option {
	return func(c *Config) {
		c.Caption = true
		if lang != "" {
			c.Language = lang
		}
	}
}
