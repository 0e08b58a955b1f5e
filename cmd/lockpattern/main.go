// Command lockpattern opens a window with an interactive lock pattern.
//
// Press the left mouse button on a dot and drag across the grid; releasing
// the button clears the pattern. With -record the session is written as a
// TOML event script on exit, ready for lockpattern-render -script.
//
// The canvas keeps the configured size. When the window is resized it stays
// centered and pointer positions are shifted to match.
//
// Architecture:
//
//	gogpu events → gpuinput.Viewport → host.Queue → host.Loop → ggcanvas.Canvas → Window
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/lockpattern"
	"github.com/gogpu/lockpattern/host"
	"github.com/gogpu/lockpattern/integration/gpuinput"
	"github.com/gogpu/lockpattern/script"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		record     = flag.String("record", "", "write the session as a TOML event script")
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

	grid, err := lockpattern.NewGridFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to create grid: %v", err)
	}
	widget, err := lockpattern.NewWidget(grid)
	if err != nil {
		log.Fatalf("Failed to create widget: %v", err)
	}
	widget.OnPattern(func(p []int) {
		log.Printf("Pattern: %v", p)
	})

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("Lock Pattern").
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(true))

	queue := host.NewQueue()
	viewport := gpuinput.NewViewport(queue)
	gpuinput.Attach(app.EventSource(), viewport)

	var src host.Source = queue
	var recorder *script.Recorder
	if *record != "" {
		recorder = script.NewRecorder(queue)
		src = recorder
	}

	var (
		canvas *ggcanvas.Canvas
		loop   *host.Loop
	)
	app.OnDraw(func(dc *gogpu.Context) {
		if widget.Done() {
			return
		}
		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			if canvas, err = ggcanvas.New(provider, cfg.Width, cfg.Height); err != nil {
				log.Fatalf("Failed to create canvas: %v", err)
			}
			if loop, err = host.New(widget, src, host.WithContext(canvas.Context())); err != nil {
				log.Fatalf("Failed to create loop: %v", err)
			}
			log.Printf("Canvas created: %dx%d", cfg.Width, cfg.Height)
		}

		if _, err := loop.Tick(); err != nil {
			log.Printf("Tick error: %v", err)
		}
		canvas.MarkDirty()

		origin := viewport.Place(cfg.Width, cfg.Height, dc.Width(), dc.Height())
		if err := canvas.RenderToPosition(dc.AsTextureDrawer(), float32(origin.X), float32(origin.Y)); err != nil {
			log.Printf("Frame %d: RenderToPosition error: %v", loop.Frames(), err)
		}
	})

	app.OnClose(func() {
		queue.Close()
		widget.Handle(lockpattern.Quit())
		if err := widget.Close(); err != nil {
			log.Printf("Close error: %v", err)
		}
		// Release GPU session resources while the device is alive.
		if a := gg.Accelerator(); a != nil {
			a.Close()
		}
		if recorder != nil {
			saveScript(*record, recorder.Script())
		}
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

func saveScript(path string, s *script.Script) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("Failed to save script: %v", err)
		return
	}
	defer f.Close()
	if err := s.Encode(f); err != nil {
		log.Printf("Failed to save script: %v", err)
		return
	}
	log.Printf("Recorded %d events to %s", len(s.Steps), path)
}
