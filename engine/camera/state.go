package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPhi is the largest elevation a SphericalOrbit may hold. MinPhi is its negation.
const (
	MaxPhi float32 = math.Pi / 2
	MinPhi float32 = -MaxPhi
)

// State is the camera's positional representation. It is a closed sum type: the only
// implementations are SphericalOrbit and Freeform, and every consumer switches over both.
type State interface {
	isState()
}

// SphericalOrbit places the camera on a sphere around Origin.
// Theta is the azimuth and is unbounded. Phi is the elevation and is kept within [MinPhi, MaxPhi]
// by every Camera mutator. Radius has no lower bound.
type SphericalOrbit struct {
	Origin mgl32.Vec3
	Radius float32
	Theta  float32
	Phi    float32
}

// Freeform places the camera directly at Position, aimed at LookAt.
type Freeform struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
}

func (SphericalOrbit) isState() {}
func (Freeform) isState()       {}

var (
	_ State = SphericalOrbit{}
	_ State = Freeform{}
)

// Eye returns the world-space camera position for the orbit parameters:
// Origin + Radius * (cosθ·cosφ, sinφ, sinθ·cosφ).
//
// Returns:
//   - mgl32.Vec3: the camera position in world space
func (s SphericalOrbit) Eye() mgl32.Vec3 {
	return s.Origin.Add(sphericalDirection(s.Theta, s.Phi).Mul(s.Radius))
}

// sphericalDirection returns the unit vector for the given azimuth and elevation.
func sphericalDirection(theta, phi float32) mgl32.Vec3 {
	st, ct := math.Sincos(float64(theta))
	sp, cp := math.Sincos(float64(phi))
	return mgl32.Vec3{
		float32(ct * cp),
		float32(sp),
		float32(st * cp),
	}
}

// clampPhi restricts an elevation angle to [MinPhi, MaxPhi].
func clampPhi(phi float32) float32 {
	return mgl32.Clamp(phi, MinPhi, MaxPhi)
}
