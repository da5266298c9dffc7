package camera

import (
	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Default tuning constants. Scroll and cursor deltas arrive in window units and are scaled by these.
const (
	DefaultZoomSpeed   float32 = 0.1
	DefaultOrbitSpeedH float32 = 0.002
	DefaultOrbitSpeedV float32 = 0.008
	DefaultPanSpeed    float32 = 0.002
)

// Tuning holds the scale factors applied by the camera mutators.
type Tuning struct {
	// ZoomSpeed scales scroll deltas into radius changes.
	ZoomSpeed float32
	// OrbitSpeedH scales horizontal cursor deltas into theta changes.
	OrbitSpeedH float32
	// OrbitSpeedV scales vertical cursor deltas into phi changes.
	OrbitSpeedV float32
	// PanSpeed scales cursor deltas into freeform translations.
	PanSpeed float32
}

// DefaultTuning returns the tuning used when no options override it.
//
// Returns:
//   - Tuning: the default scale factors
func DefaultTuning() Tuning {
	return Tuning{
		ZoomSpeed:   DefaultZoomSpeed,
		OrbitSpeedH: DefaultOrbitSpeedH,
		OrbitSpeedV: DefaultOrbitSpeedV,
		PanSpeed:    DefaultPanSpeed,
	}
}

// DefaultState is the orbit the viewer starts in: three units out on the +Z side of the origin.
func DefaultState() State {
	return SphericalOrbit{
		Origin: mgl32.Vec3{0, 0, 0},
		Radius: 3,
		Theta:  3.14 / 2,
		Phi:    0,
	}
}

type cameraImpl struct {
	state  State
	tuning Tuning
}

// Camera holds exactly one positional State and derives a view matrix from it.
// Every mutator is total: a call that does not apply to the active variant is a silent no-op,
// which lets input handling invoke all of them without checking the variant first.
// A Camera is not safe for concurrent use; the engine touches it from one goroutine only.
type Camera interface {
	// State returns the active positional representation.
	//
	// Returns:
	//   - State: either a SphericalOrbit or a Freeform value
	State() State

	// SetState replaces the positional representation. A SphericalOrbit has its Phi clamped
	// into [MinPhi, MaxPhi] on the way in.
	//
	// Parameters:
	//   - s: the new state (nil is ignored)
	SetState(s State)

	// Tuning returns the current scale factors.
	//
	// Returns:
	//   - Tuning: zoom, orbit and pan scale factors
	Tuning() Tuning

	// SetTuning replaces the scale factors. Positional state is untouched.
	//
	// Parameters:
	//   - t: the new scale factors
	SetTuning(t Tuning)

	// Eye returns the world-space camera position for the active state.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// ViewMatrix derives a right-handed look-at matrix from the active state with world-up (0,1,0).
	//
	// For a Freeform state the eye is Position and the target is LookAt.
	// For a SphericalOrbit state the eye is Origin + Radius*(cosθcosφ, sinφ, sinθcosφ) and the
	// value passed as the look-at target is the negated unit vector from Origin to the eye, a
	// direction rather than a point. With the origin at zero this still faces the origin; with any
	// other origin it does not.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// Zoom decreases the orbit radius by delta*ZoomSpeed. The radius is not clamped and may go
	// negative. No-op for Freeform.
	//
	// Parameters:
	//   - delta: scroll amount (positive moves closer)
	Zoom(delta float32)

	// Orbit rotates a SphericalOrbit by one axis only. When |ref.X| > |ref.Y| theta advances by
	// dx*OrbitSpeedH; otherwise phi advances by dy*OrbitSpeedV and is clamped. No-op for Freeform.
	//
	// Parameters:
	//   - dx, dy: cursor movement since the previous move event
	//   - ref: cumulative cursor offset since the drag began, used to pick the axis
	Orbit(dx, dy float32, ref mgl32.Vec2)

	// Pan translates a Freeform's Position and LookAt by (-dx, dy, 0)*PanSpeed, leaving the view
	// direction unchanged. No-op for SphericalOrbit.
	//
	// Parameters:
	//   - dx, dy: cursor movement since the previous move event
	Pan(dx, dy float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera in DefaultState with DefaultTuning, then applies the options.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		state:  DefaultState(),
		tuning: DefaultTuning(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) State() State {
	return c.state
}

func (c *cameraImpl) SetState(s State) {
	switch st := s.(type) {
	case SphericalOrbit:
		st.Phi = clampPhi(st.Phi)
		c.state = st
	case Freeform:
		c.state = st
	}
}

func (c *cameraImpl) Tuning() Tuning {
	return c.tuning
}

func (c *cameraImpl) SetTuning(t Tuning) {
	c.tuning = t
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	switch st := c.state.(type) {
	case SphericalOrbit:
		return st.Eye()
	case Freeform:
		return st.Position
	}
	return mgl32.Vec3{}
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	switch st := c.state.(type) {
	case Freeform:
		return mgl32.LookAtV(st.Position, st.LookAt, common.WorldUp)
	case SphericalOrbit:
		eye := st.Eye()
		forward := eye.Sub(st.Origin).Normalize().Mul(-1)
		return mgl32.LookAtV(eye, forward, common.WorldUp)
	}
	return mgl32.Ident4()
}

func (c *cameraImpl) Zoom(delta float32) {
	st, ok := c.state.(SphericalOrbit)
	if !ok {
		return
	}
	st.Radius -= delta * c.tuning.ZoomSpeed
	c.state = st
}

func (c *cameraImpl) Orbit(dx, dy float32, ref mgl32.Vec2) {
	st, ok := c.state.(SphericalOrbit)
	if !ok {
		return
	}
	if abs32(ref.X()) > abs32(ref.Y()) {
		st.Theta += dx * c.tuning.OrbitSpeedH
	} else {
		st.Phi = clampPhi(st.Phi + dy*c.tuning.OrbitSpeedV)
	}
	c.state = st
}

func (c *cameraImpl) Pan(dx, dy float32) {
	st, ok := c.state.(Freeform)
	if !ok {
		return
	}
	offset := mgl32.Vec3{-dx, dy, 0}.Mul(c.tuning.PanSpeed)
	st.Position = st.Position.Add(offset)
	st.LookAt = st.LookAt.Add(offset)
	c.state = st
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
