package lockpattern

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the TOML form of Config. Colors are hex strings.
type fileConfig struct {
	Width         int         `toml:"width"`
	Height        int         `toml:"height"`
	GridSize      int         `toml:"grid_size"`
	DotRadius     float64     `toml:"dot_radius"`
	HitTolerance  float64     `toml:"hit_tolerance"`
	LineThickness float64     `toml:"line_thickness"`
	Caption       bool        `toml:"caption"`
	Language      string      `toml:"language"`
	Layout        *fileLayout `toml:"layout"`
	Palette       filePalette `toml:"palette"`
}

type fileLayout struct {
	OriginX float64 `toml:"origin_x"`
	OriginY float64 `toml:"origin_y"`
	Gap     float64 `toml:"gap"`
}

type filePalette struct {
	Unselected string `toml:"unselected"`
	Selected   string `toml:"selected"`
	Line       string `toml:"line"`
	Background string `toml:"background"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Width:         DefaultCanvasSize,
		Height:        DefaultCanvasSize,
		GridSize:      DefaultGridSize,
		DotRadius:     DefaultDotRadius,
		HitTolerance:  DefaultHitTolerance,
		LineThickness: DefaultLineThickness,
		Language:      DefaultLanguage,
		Palette: filePalette{
			Unselected: "#000000",
			Selected:   "#964b00",
			Line:       "#0000ff",
			Background: "#ffffff",
		},
	}
}

// DecodeConfig reads a TOML configuration from r. Keys missing from the
// document keep their DefaultConfig values; unknown keys are an error.
// The result is validated.
func DecodeConfig(r io.Reader) (Config, error) {
	fc := defaultFileConfig()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&fc); err != nil {
		return Config{}, fmt.Errorf("lockpattern: decode config: %w", err)
	}

	cfg := Config{
		Width:         fc.Width,
		Height:        fc.Height,
		GridSize:      fc.GridSize,
		DotRadius:     fc.DotRadius,
		HitTolerance:  fc.HitTolerance,
		LineThickness: fc.LineThickness,
		Caption:       fc.Caption,
		Language:      fc.Language,
	}
	if fc.Layout != nil {
		cfg.Layout = &Layout{
			Origin: gg.Pt(fc.Layout.OriginX, fc.Layout.OriginY),
			Gap:    fc.Layout.Gap,
		}
	}

	colors := []struct {
		name string
		hex  string
		dst  *gg.RGBA
	}{
		{"unselected", fc.Palette.Unselected, &cfg.Palette.Unselected},
		{"selected", fc.Palette.Selected, &cfg.Palette.Selected},
		{"line", fc.Palette.Line, &cfg.Palette.Line},
		{"background", fc.Palette.Background, &cfg.Palette.Background},
	}
	for _, c := range colors {
		if !isHexColor(c.hex) {
			return Config{}, fmt.Errorf("%w: palette.%s %q is not a hex color", ErrInvalidConfig, c.name, c.hex)
		}
		*c.dst = gg.Hex(c.hex)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a TOML configuration file. See DecodeConfig.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("lockpattern: open config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// isHexColor reports whether s is in a form gg.Hex accepts:
// an optional '#' followed by 3, 4, 6 or 8 hex digits.
func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
