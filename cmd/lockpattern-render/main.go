// Command lockpattern-render replays an input script through the lock
// pattern widget and writes the rendered frames as PNG files.
//
// Without -script it replays a drag along the top row and down the
// diagonal of the default 3×3 grid.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/lockpattern"
	"github.com/gogpu/lockpattern/host"
	"github.com/gogpu/lockpattern/script"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		scriptPath = flag.String("script", "", "TOML event script (default: built-in demo)")
		output     = flag.String("out", "pattern.png", "PNG of the last frame with a pattern in progress")
		framesDir  = flag.String("frames", "", "directory for one PNG per tick")
		rate       = flag.Int("rate", host.DefaultRate, "ticks per second, 0 = unpaced")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		lockpattern.SetLogger(l)
		gg.SetLogger(l)
	}

	cfg := lockpattern.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = lockpattern.LoadConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	s := demoScript(cfg)
	if *scriptPath != "" {
		var err error
		if s, err = script.Load(*scriptPath); err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
	}

	grid, err := lockpattern.NewGridFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to create grid: %v", err)
	}
	widget, err := lockpattern.NewWidget(grid)
	if err != nil {
		log.Fatalf("Failed to create widget: %v", err)
	}
	defer widget.Close()

	widget.OnPattern(func(p []int) {
		log.Printf("Pattern: %v", p)
	})

	if *framesDir != "" {
		if err := os.MkdirAll(*framesDir, 0o755); err != nil {
			log.Fatalf("Failed to create frames directory: %v", err)
		}
	}

	var last bytes.Buffer
	sink := func(n int, dc *gg.Context) error {
		if *framesDir != "" {
			path := filepath.Join(*framesDir, fmt.Sprintf("frame-%04d.png", n))
			if err := dc.SavePNG(path); err != nil {
				return err
			}
		}
		if grid.State() == lockpattern.Dragging {
			last.Reset()
			return dc.EncodePNG(&last)
		}
		return nil
	}

	loop, err := host.New(widget, script.NewPlayer(s), host.WithRate(*rate), host.WithSink(sink))
	if err != nil {
		log.Fatalf("Failed to create loop: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := loop.Run(ctx); err != nil {
		log.Fatalf("Replay failed: %v", err)
	}

	if last.Len() == 0 {
		log.Printf("No pattern drawn in %d frames, %s not written", loop.Frames(), *output)
		return
	}
	if err := os.WriteFile(*output, last.Bytes(), 0o644); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Replayed %d frames, pattern saved to %s (%dx%d)", loop.Frames(), *output, cfg.Width, cfg.Height)
}

// demoScript drags from the first dot along the top row, then down the
// diagonal back to the bottom-left corner, and releases.
func demoScript(cfg lockpattern.Config) *script.Script {
	layout := cfg.ResolvedLayout()
	n := float64(cfg.GridSize - 1)
	at := func(col, row float64) gg.Point {
		return gg.Pt(layout.Origin.X+layout.Gap*col, layout.Origin.Y+layout.Gap*row)
	}

	first, topRight, bottomLeft := at(0, 0), at(n, 0), at(0, n)
	const steps = 20
	s := &script.Script{}
	s.Steps = append(s.Steps, script.Step{Event: lockpattern.Down(first.X, first.Y), Ticks: 1})
	for _, seg := range [][2]gg.Point{{first, topRight}, {topRight, bottomLeft}} {
		for i := 1; i <= steps; i++ {
			p := seg[0].Lerp(seg[1], float64(i)/steps)
			s.Steps = append(s.Steps, script.Step{Event: lockpattern.Move(p.X, p.Y), Ticks: 1})
		}
	}
	s.Steps = append(s.Steps, script.Step{Event: lockpattern.Up(bottomLeft.X, bottomLeft.Y), Ticks: 1})
	return s
}
