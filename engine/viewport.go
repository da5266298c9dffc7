package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default projection parameters.
const (
	DefaultFovBase float32 = 90 * math.Pi / 180
	DefaultNear    float32 = 0.1
	DefaultFar     float32 = 1000
)

// Viewport is the framebuffer rectangle (0, 0, Width, Height) the scene is drawn into.
type Viewport struct {
	Width  int
	Height int
}

// AspectRatio returns Width / Height. ok is false when either dimension is not positive,
// which happens while the window is minimised.
//
// Returns:
//   - float32: the aspect ratio
//   - bool: false if the ratio is undefined
func (v Viewport) AspectRatio() (ratio float32, ok bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, false
	}
	return float32(v.Width) / float32(v.Height), true
}

// ProjectionSettings holds the perspective parameters.
// FovBase is divided by the aspect ratio before use, so wider viewports get a narrower vertical field of view.
type ProjectionSettings struct {
	FovBase float32 // radians
	Near    float32
	Far     float32
}

// DefaultProjectionSettings returns a 90° base field of view with planes at 0.1 and 1000.
func DefaultProjectionSettings() ProjectionSettings {
	return ProjectionSettings{
		FovBase: DefaultFovBase,
		Near:    DefaultNear,
		Far:     DefaultFar,
	}
}

// VerticalFov returns the vertical field of view actually handed to the perspective matrix.
//
// Parameters:
//   - aspect: the viewport aspect ratio
//
// Returns:
//   - float32: FovBase / aspect, in radians
func (p ProjectionSettings) VerticalFov(aspect float32) float32 {
	return p.FovBase / aspect
}

// Projection builds a right-handed OpenGL-convention perspective matrix (clip depth [-1, 1]).
//
// Parameters:
//   - aspect: the viewport aspect ratio
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func (p ProjectionSettings) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(p.VerticalFov(aspect), aspect, p.Near, p.Far)
}
