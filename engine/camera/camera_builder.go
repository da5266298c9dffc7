package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithState sets the initial positional representation. Phi is clamped like SetState.
//
// Parameters:
//   - s: the initial SphericalOrbit or Freeform state
//
// Returns:
//   - CameraBuilderOption: functional option to set the state
func WithState(s State) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetState(s)
	}
}

// WithOrbit starts the camera as a SphericalOrbit around origin.
//
// Parameters:
//   - origin: pivot point
//   - radius: distance from the pivot
//   - theta: azimuth in radians
//   - phi: elevation in radians, clamped to [MinPhi, MaxPhi]
//
// Returns:
//   - CameraBuilderOption: functional option to set an orbit state
func WithOrbit(origin mgl32.Vec3, radius, theta, phi float32) CameraBuilderOption {
	return WithState(SphericalOrbit{Origin: origin, Radius: radius, Theta: theta, Phi: phi})
}

// WithFreeform starts the camera as a Freeform at position looking at lookAt.
//
// Parameters:
//   - position: eye position
//   - lookAt: aim point
//
// Returns:
//   - CameraBuilderOption: functional option to set a freeform state
func WithFreeform(position, lookAt mgl32.Vec3) CameraBuilderOption {
	return WithState(Freeform{Position: position, LookAt: lookAt})
}

// WithTuning replaces all scale factors at once.
func WithTuning(t Tuning) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.tuning = t
	}
}

// WithZoomSpeed sets the zoom scale factor.
//
// Parameters:
//   - speed: radius change per scroll unit
//
// Returns:
//   - CameraBuilderOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.tuning.ZoomSpeed = speed
	}
}

// WithOrbitSpeeds sets the horizontal and vertical orbit scale factors.
//
// Parameters:
//   - horizontal: theta change per cursor unit
//   - vertical: phi change per cursor unit
//
// Returns:
//   - CameraBuilderOption: functional option to set orbit speeds
func WithOrbitSpeeds(horizontal, vertical float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.tuning.OrbitSpeedH = horizontal
		c.tuning.OrbitSpeedV = vertical
	}
}

// WithPanSpeed sets the freeform pan scale factor.
//
// Parameters:
//   - speed: world units per cursor unit
//
// Returns:
//   - CameraBuilderOption: functional option to set pan speed
func WithPanSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.tuning.PanSpeed = speed
	}
}
