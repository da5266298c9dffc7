package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/config"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/go-gl/mathgl/mgl32"
)

// EventSource pumps the platform event loop and hands back everything that arrived since the last call.
type EventSource interface {
	// PollEvents processes pending platform events and returns them in arrival order.
	//
	// Returns:
	//   - []input.Event: the events, possibly empty
	PollEvents() []input.Event
}

// FrameRenderer draws the scene for one frame.
type FrameRenderer interface {
	// SetViewport sets the framebuffer rectangle (0, 0, width, height) used by subsequent draws.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	SetViewport(width, height int)

	// Draw renders the scene with the given view and OpenGL-convention projection matrices.
	//
	// Parameters:
	//   - view: the world to camera transform
	//   - projection: the camera to clip transform (clip depth [-1, 1])
	//
	// Returns:
	//   - error: error if the frame could not be drawn
	Draw(view, projection mgl32.Mat4) error
}

// engine implements the Engine interface.
// Everything runs on the calling goroutine: poll, dispatch, compute matrices, draw.
type engine struct {
	source   EventSource
	renderer FrameRenderer
	logger   *log.Logger

	camera     camera.Camera
	dispatcher *input.Dispatcher

	viewport   Viewport
	settings   ProjectionSettings
	projection mgl32.Mat4
	view       mgl32.Mat4

	configUpdates <-chan config.Config

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	frames           uint64

	quit atomic.Bool
}

// Engine is the frame driver. It owns the camera, the drag dispatcher and the viewport,
// and turns platform events into camera changes and draws.
type Engine interface {
	// Camera returns the camera the engine drives.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Dispatcher returns the input dispatcher.
	//
	// Returns:
	//   - *input.Dispatcher: the dispatcher
	Dispatcher() *input.Dispatcher

	// Viewport returns the current viewport.
	//
	// Returns:
	//   - Viewport: the last viewport applied
	Viewport() Viewport

	// ProjectionSettings returns the active perspective parameters.
	//
	// Returns:
	//   - ProjectionSettings: the settings
	ProjectionSettings() ProjectionSettings

	// SetProjectionSettings replaces the perspective parameters and recomputes the projection.
	//
	// Parameters:
	//   - s: the new settings
	SetProjectionSettings(s ProjectionSettings)

	// Projection returns the projection matrix used for the most recent frame.
	//
	// Returns:
	//   - mgl32.Mat4: the projection
	Projection() mgl32.Mat4

	// View returns the view matrix used for the most recent frame.
	//
	// Returns:
	//   - mgl32.Mat4: the view
	View() mgl32.Mat4

	// Resize applies a new viewport to the renderer and recomputes the projection.
	// A non-positive height keeps the previous projection.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// Frame runs one iteration: apply config updates, poll and dispatch events, then draw.
	//
	// Returns:
	//   - bool: false once the engine has been asked to stop
	Frame() bool

	// Frames returns the number of frames drawn so far.
	//
	// Returns:
	//   - uint64: the count
	Frames() uint64

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Run calls Frame until it returns false. Blocks on the calling goroutine.
	Run()

	// Quit asks the loop to stop after the current frame.
	// Safe to call from any goroutine and more than once.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine that reads events from source and draws through renderer.
// The dispatcher's resize and close handlers are replaced so they feed the engine.
//
// Parameters:
//   - source: where platform events come from
//   - renderer: what draws each frame
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(source EventSource, renderer FrameRenderer, options ...EngineBuilderOption) Engine {
	if source == nil || renderer == nil {
		panic("engine: source and renderer must not be nil")
	}

	e := &engine{
		source:   source,
		renderer: renderer,
		logger:   log.Default(),
		settings: DefaultProjectionSettings(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.camera == nil {
		e.camera = camera.NewCamera()
	}
	if e.dispatcher == nil {
		e.dispatcher = input.NewDispatcher()
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}
	e.dispatcher.SetResizeHandler(e.Resize)
	e.dispatcher.SetCloseHandler(e.Quit)

	e.recomputeProjection()
	e.view = e.camera.ViewMatrix()
	return e
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Dispatcher() *input.Dispatcher {
	return e.dispatcher
}

func (e *engine) Viewport() Viewport {
	return e.viewport
}

func (e *engine) ProjectionSettings() ProjectionSettings {
	return e.settings
}

func (e *engine) SetProjectionSettings(s ProjectionSettings) {
	e.settings = s
	e.recomputeProjection()
}

func (e *engine) Projection() mgl32.Mat4 {
	return e.projection
}

func (e *engine) View() mgl32.Mat4 {
	return e.view
}

func (e *engine) Frames() uint64 {
	return e.frames
}

func (e *engine) Resize(width, height int) {
	e.logger.Printf("[Engine] resized to %d x %d", width, height)
	e.viewport = Viewport{Width: width, Height: height}
	e.renderer.SetViewport(width, height)
	e.recomputeProjection()
}

// recomputeProjection rebuilds the projection for the current viewport.
// While the viewport has no area the previous matrix stays in place.
func (e *engine) recomputeProjection() {
	aspect, ok := e.viewport.AspectRatio()
	if !ok {
		return
	}
	e.projection = e.settings.Projection(aspect)
}

func (e *engine) Frame() bool {
	if e.quit.Load() {
		return false
	}
	start := time.Now()

	e.applyConfigUpdates()
	e.dispatcher.DispatchAll(e.camera, e.source.PollEvents())
	if e.quit.Load() {
		return false
	}

	e.view = e.camera.ViewMatrix()
	if err := e.renderer.Draw(e.view, e.projection); err != nil {
		e.logger.Printf("[Engine] frame skipped: %v", err)
	} else {
		e.frames++
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
	return true
}

// applyConfigUpdates drains pending config reloads without blocking.
// Only camera tuning and projection settings are live; everything else needs a restart.
func (e *engine) applyConfigUpdates() {
	for e.configUpdates != nil {
		select {
		case cfg, ok := <-e.configUpdates:
			if !ok {
				e.configUpdates = nil
				return
			}
			e.camera.SetTuning(cfg.Camera.Tuning())
			e.SetProjectionSettings(ProjectionSettings{
				FovBase: cfg.Projection.FovRadians(),
				Near:    cfg.Projection.Near,
				Far:     cfg.Projection.Far,
			})
			e.logger.Printf("[Engine] applied config reload")
		default:
			return
		}
	}
}

func (e *engine) Run() {
	for e.Frame() {
	}
	e.logger.Printf("[Engine] stopped after %d frames", e.frames)
}

func (e *engine) Quit() {
	e.quit.Store(true)
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}
