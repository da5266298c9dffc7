// Command viewer opens a window showing a lit cube over a ground plane.
//
// Drag with the middle mouse button to orbit (or pan, in freeform mode), scroll to zoom
// and press Escape to quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Carmen-Shannon/oxy-viewer/engine"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/config"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
)

// options holds the command-line flags. Zero values mean "not given".
type options struct {
	configPath string
	width      int
	height     int
	mode       string
	profile    bool
	watch      bool

	// set records which flags appeared on the command line.
	set map[string]bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("viewer: %v", err)
	}
}

// parseFlags parses args into options.
func parseFlags(args []string) (options, error) {
	var opts options
	fset := flag.NewFlagSet("viewer", flag.ContinueOnError)
	fset.StringVar(&opts.configPath, "config", config.DefaultPath, "path to the YAML config file (optional)")
	fset.IntVar(&opts.width, "width", 0, "initial window width, overrides the config")
	fset.IntVar(&opts.height, "height", 0, "initial window height, overrides the config")
	fset.StringVar(&opts.mode, "mode", "", "camera mode: orbit or freeform, overrides the config")
	fset.BoolVar(&opts.profile, "profile", false, "log frame statistics once per second")
	fset.BoolVar(&opts.watch, "watch", false, "reload camera tuning when the config file changes")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	opts.set = make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// loadConfig reads the config file, falling back to the defaults when it does not exist,
// then layers the flags on top and validates the result.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("[Config] %s not found, using defaults", opts.configPath)
		cfg = config.Default()
	case err != nil:
		return config.Config{}, err
	}

	if opts.set["width"] {
		cfg.Window.Width = opts.width
	}
	if opts.set["height"] {
		cfg.Window.Height = opts.height
	}
	if opts.set["mode"] {
		cfg.Camera.Mode = opts.mode
	}
	if opts.set["profile"] {
		cfg.Profiling = opts.profile
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// presentMode maps the configured present mode name onto the renderer's.
func presentMode(name string) renderer.PresentMode {
	if name == config.PresentUncapped {
		return renderer.PresentModeUncapped
	}
	return renderer.PresentModeVSync
}

// rendererOptions translates the renderer and scene sections of the config.
func rendererOptions(cfg config.Config, logger *log.Logger) []renderer.RendererBuilderOption {
	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(presentMode(cfg.Renderer.PresentMode)),
		renderer.WithMSAA(renderer.MSAASampleCount(cfg.Renderer.MSAA)),
		renderer.WithClearColor(cfg.Renderer.ClearColor),
		renderer.WithLight(cfg.Scene.Light.Light()),
		renderer.WithMaterial(cfg.Scene.Material.Material()),
		renderer.WithLogger(logger),
	}
}

// engineOptions builds the engine's camera, dispatcher and projection from the config.
// The viewport comes from the window's framebuffer, not the config, so high-DPI sizes are honoured.
func engineOptions(cfg config.Config, width, height int, logger *log.Logger) []engine.EngineBuilderOption {
	cam := camera.NewCamera(
		camera.WithState(cfg.Camera.State()),
		camera.WithTuning(cfg.Camera.Tuning()),
	)
	dispatcher := input.NewDispatcher(
		input.WithDragButton(cfg.Input.DragButtonCode()),
	)
	return []engine.EngineBuilderOption{
		engine.WithLogger(logger),
		engine.WithCamera(cam),
		engine.WithDispatcher(dispatcher),
		engine.WithViewport(width, height),
		engine.WithProjection(engine.ProjectionSettings{
			FovBase: cfg.Projection.FovRadians(),
			Near:    cfg.Projection.Near,
			Far:     cfg.Projection.Far,
		}),
		engine.WithProfiling(cfg.Profiling),
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := log.Default()

	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithMinSize(1, 1),
	)
	if err != nil {
		return err
	}
	defer win.Close()

	width, height := win.Width(), win.Height()
	logger.Printf("[Viewer] framebuffer %d x %d", width, height)

	r, err := renderer.NewRenderer(win.SurfaceDescriptor(), width, height, rendererOptions(cfg, logger)...)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer r.Release()

	engineOpts := engineOptions(cfg, width, height, logger)
	if opts.watch {
		watcher, err := config.NewWatcher(opts.configPath, logger)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		defer watcher.Close()
		engineOpts = append(engineOpts, engine.WithConfigUpdates(watcher.Updates()))
	}

	eng := engine.NewEngine(win, r, engineOpts...)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			eng.Quit()
		}
	}()

	eng.Run()
	return nil
}
