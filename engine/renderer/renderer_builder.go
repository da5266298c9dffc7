package renderer

import (
	"log"

	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/material"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the renderer.
// When not specified, MSAA is off.
//
// Parameters:
//   - count: the MSAASampleCount to use (MSAAOff or MSAA4x)
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.msaa = count
	}
}

// WithClearColor sets the colour the frame is cleared to before drawing.
//
// Parameters:
//   - rgba: red, green, blue and alpha in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear colour option to a renderer
func WithClearColor(rgba [4]float64) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = wgpu.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithDebugObserver sets the receiver of GPU driver messages. The default logs them with a "[GPU]" prefix.
//
// Parameters:
//   - observer: the observer to install
//
// Returns:
//   - RendererBuilderOption: a function that applies the debug observer option to a renderer
func WithDebugObserver(observer DebugObserver) RendererBuilderOption {
	return func(r *renderer) {
		r.debugObserver = observer
	}
}

// WithDebugLevel sets the least severe driver message delivered to the observer. The default is DebugLevelWarn.
//
// Parameters:
//   - level: the severity threshold
//
// Returns:
//   - RendererBuilderOption: a function that applies the debug level option to a renderer
func WithDebugLevel(level DebugLevel) RendererBuilderOption {
	return func(r *renderer) {
		r.debugLevel = level
	}
}

// WithLogger sets the logger used for renderer diagnostics and the default debug observer.
//
// Parameters:
//   - logger: the destination logger
//
// Returns:
//   - RendererBuilderOption: a function that applies the logger option to a renderer
func WithLogger(logger *log.Logger) RendererBuilderOption {
	return func(r *renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLight sets the scene's point light. The default is light.NewLight().
//
// Parameters:
//   - l: the light to upload
//
// Returns:
//   - RendererBuilderOption: a function that applies the light option to a renderer
func WithLight(l light.Light) RendererBuilderOption {
	return func(r *renderer) {
		r.light = l
	}
}

// WithMaterial sets the surface material of the scene. The default is material.NewMaterial().
//
// Parameters:
//   - m: the material to upload
//
// Returns:
//   - RendererBuilderOption: a function that applies the material option to a renderer
func WithMaterial(m material.Material) RendererBuilderOption {
	return func(r *renderer) {
		r.material = m
	}
}
