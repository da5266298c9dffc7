package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = common.DefaultEpsilon

func orbitAt(origin mgl32.Vec3, radius, theta, phi float32) Camera {
	return NewCamera(WithOrbit(origin, radius, theta, phi))
}

func TestViewMatrixOrbitEyePosition(t *testing.T) {
	c := orbitAt(mgl32.Vec3{}, 3, math.Pi/2, 0)

	want := mgl32.Vec3{0, 0, 3}
	if got := c.Eye(); !common.ApproxEqualVec3(got, want, eps) {
		t.Fatalf("Eye() = %v, want %v", got, want)
	}

	// The eye must land on the camera-space origin.
	view := c.ViewMatrix()
	p := view.Mul4x1(want.Vec4(1))
	if !common.ApproxEqualVec3(p.Vec3(), mgl32.Vec3{}, eps) {
		t.Fatalf("view * eye = %v, want origin", p)
	}

	// And the inverse view carries the eye in its translation column.
	if got := view.Inv().Col(3).Vec3(); !common.ApproxEqualVec3(got, want, eps) {
		t.Fatalf("inverse view translation = %v, want %v", got, want)
	}
}

// The orbit view is built by passing the negated eye-from-origin direction where LookAtV expects
// a target point. This is kept as-is. For an origin at zero it still faces the origin; for any
// other origin it produces a different matrix than aiming at the origin would.
func TestViewMatrixOrbitPassesDirectionAsTarget(t *testing.T) {
	origin := mgl32.Vec3{10, 0, 0}
	c := orbitAt(origin, 3, 0, 0.3)
	st := c.State().(SphericalOrbit)
	eye := st.Eye()

	forward := eye.Sub(origin).Normalize().Mul(-1)
	want := mgl32.LookAtV(eye, forward, common.WorldUp)
	if got := c.ViewMatrix(); !approxEqualMat4(got, want, eps) {
		t.Fatalf("ViewMatrix() = %v, want %v", got, want)
	}

	aimed := mgl32.LookAtV(eye, origin, common.WorldUp)
	if approxEqualMat4(c.ViewMatrix(), aimed, eps) {
		t.Fatalf("ViewMatrix() unexpectedly aims at the origin point for a non-zero origin")
	}
}

func TestViewMatrixOrbitAtZeroOriginFacesOrigin(t *testing.T) {
	c := orbitAt(mgl32.Vec3{}, 5, 1.1, -0.4)
	eye := c.Eye()
	want := mgl32.LookAtV(eye, mgl32.Vec3{}, common.WorldUp)
	if got := c.ViewMatrix(); !approxEqualMat4(got, want, eps) {
		t.Fatalf("ViewMatrix() = %v, want %v", got, want)
	}
}

func TestViewMatrixFreeform(t *testing.T) {
	pos := mgl32.Vec3{1, 2, 5}
	look := mgl32.Vec3{0, 1, 0}
	c := NewCamera(WithFreeform(pos, look))

	want := mgl32.LookAtV(pos, look, common.WorldUp)
	if got := c.ViewMatrix(); !approxEqualMat4(got, want, eps) {
		t.Fatalf("ViewMatrix() = %v, want %v", got, want)
	}
	if got := c.Eye(); got != pos {
		t.Fatalf("Eye() = %v, want %v", got, pos)
	}
}

func TestOrbitAxisDominance(t *testing.T) {
	cases := []struct {
		name       string
		dx, dy     float32
		ref        mgl32.Vec2
		wantTheta  bool
		wantPhi    bool
		thetaDelta float32
		phiDelta   float32
	}{
		{"horizontal", 5, 1, mgl32.Vec2{5, 1}, true, false, 5 * DefaultOrbitSpeedH, 0},
		{"vertical", 1, 5, mgl32.Vec2{1, 5}, false, true, 0, 5 * DefaultOrbitSpeedV},
		{"tie_goes_vertical", 3, 3, mgl32.Vec2{3, -3}, false, true, 0, 3 * DefaultOrbitSpeedV},
		{"reference_not_delta", 1, 5, mgl32.Vec2{-40, 2}, true, false, 1 * DefaultOrbitSpeedH, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := orbitAt(mgl32.Vec3{}, 3, 1, 0.2)
			before := c.State().(SphericalOrbit)

			c.Orbit(tc.dx, tc.dy, tc.ref)
			after := c.State().(SphericalOrbit)

			if tc.wantTheta {
				if !common.ApproxEqual(after.Theta-before.Theta, tc.thetaDelta, 1e-6) {
					t.Fatalf("theta delta = %v, want %v", after.Theta-before.Theta, tc.thetaDelta)
				}
			} else if after.Theta != before.Theta {
				t.Fatalf("theta changed from %v to %v", before.Theta, after.Theta)
			}

			if tc.wantPhi {
				if !common.ApproxEqual(after.Phi-before.Phi, tc.phiDelta, 1e-6) {
					t.Fatalf("phi delta = %v, want %v", after.Phi-before.Phi, tc.phiDelta)
				}
			} else if after.Phi != before.Phi {
				t.Fatalf("phi changed from %v to %v", before.Phi, after.Phi)
			}

			if after.Radius != before.Radius || after.Origin != before.Origin {
				t.Fatalf("orbit touched radius or origin: %+v -> %+v", before, after)
			}
		})
	}
}

func TestOrbitKeepsPhiInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewCamera(WithOrbitSpeeds(0.01, 0.05))

	for i := 0; i < 5000; i++ {
		dx := rng.Float32()*400 - 200
		dy := rng.Float32()*400 - 200
		ref := mgl32.Vec2{rng.Float32()*800 - 400, rng.Float32()*800 - 400}
		c.Orbit(dx, dy, ref)

		phi := c.State().(SphericalOrbit).Phi
		if phi < MinPhi || phi > MaxPhi {
			t.Fatalf("step %d: phi = %v outside [%v, %v]", i, phi, MinPhi, MaxPhi)
		}
	}
}

func TestOrbitClampsAtPoles(t *testing.T) {
	c := orbitAt(mgl32.Vec3{}, 3, 0, 1.5)
	c.Orbit(0, 1000, mgl32.Vec2{0, 1000})
	if phi := c.State().(SphericalOrbit).Phi; phi != MaxPhi {
		t.Fatalf("phi = %v, want %v", phi, MaxPhi)
	}
	c.Orbit(0, -5000, mgl32.Vec2{0, -5000})
	if phi := c.State().(SphericalOrbit).Phi; phi != MinPhi {
		t.Fatalf("phi = %v, want %v", phi, MinPhi)
	}
}

func TestSetStateClampsPhi(t *testing.T) {
	c := NewCamera()
	c.SetState(SphericalOrbit{Radius: 2, Phi: 4})
	if phi := c.State().(SphericalOrbit).Phi; phi != MaxPhi {
		t.Fatalf("phi = %v, want %v", phi, MaxPhi)
	}

	c = NewCamera(WithOrbit(mgl32.Vec3{}, 2, 0, -9))
	if phi := c.State().(SphericalOrbit).Phi; phi != MinPhi {
		t.Fatalf("phi = %v, want %v", phi, MinPhi)
	}
}

func TestZoom(t *testing.T) {
	c := orbitAt(mgl32.Vec3{}, 3, 0, 0)
	c.Zoom(2)
	if r := c.State().(SphericalOrbit).Radius; !common.ApproxEqual(r, 3-2*DefaultZoomSpeed, 1e-6) {
		t.Fatalf("radius = %v, want %v", r, 3-2*DefaultZoomSpeed)
	}

	// Radius has no lower bound.
	c.Zoom(100)
	if r := c.State().(SphericalOrbit).Radius; r >= 0 {
		t.Fatalf("radius = %v, want negative after zooming past the origin", r)
	}
}

func TestMismatchedVariantCallsAreNoOps(t *testing.T) {
	t.Run("zoom_freeform", func(t *testing.T) {
		c := NewCamera(WithFreeform(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}))
		before := c.State()
		c.Zoom(12.5)
		if c.State() != before {
			t.Fatalf("state changed: %+v -> %+v", before, c.State())
		}
	})

	t.Run("orbit_freeform", func(t *testing.T) {
		c := NewCamera(WithFreeform(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}))
		before := c.State()
		c.Orbit(10, 10, mgl32.Vec2{10, 1})
		if c.State() != before {
			t.Fatalf("state changed: %+v -> %+v", before, c.State())
		}
	})

	t.Run("pan_orbit", func(t *testing.T) {
		c := NewCamera()
		before := c.State()
		c.Pan(30, -4)
		if c.State() != before {
			t.Fatalf("state changed: %+v -> %+v", before, c.State())
		}
	})
}

func TestPanPreservesViewDirection(t *testing.T) {
	p := mgl32.Vec3{0.5, -1, 4}
	l := mgl32.Vec3{0, 0, 0}
	c := NewCamera(WithFreeform(p, l))

	c.Pan(50, -20)
	st := c.State().(Freeform)

	if got, want := st.Position.Sub(st.LookAt), p.Sub(l); !common.ApproxEqualVec3(got, want, eps) {
		t.Fatalf("position-lookAt = %v, want %v", got, want)
	}

	wantOffset := mgl32.Vec3{-50, -20, 0}.Mul(DefaultPanSpeed)
	if got := st.Position.Sub(p); !common.ApproxEqualVec3(got, wantOffset, eps) {
		t.Fatalf("pan offset = %v, want %v", got, wantOffset)
	}
}

func TestSetTuningLeavesState(t *testing.T) {
	c := NewCamera()
	before := c.State()
	c.SetTuning(Tuning{ZoomSpeed: 1, OrbitSpeedH: 1, OrbitSpeedV: 1, PanSpeed: 1})
	if c.State() != before {
		t.Fatalf("SetTuning changed state")
	}
	c.Zoom(1)
	if r := c.State().(SphericalOrbit).Radius; !common.ApproxEqual(r, 2, 1e-6) {
		t.Fatalf("radius = %v, want 2 with ZoomSpeed 1", r)
	}
}

func TestGPUCameraUniformLayout(t *testing.T) {
	u := GPUCameraUniform{
		View:       mgl32.Translate3D(1, 2, 3),
		Projection: mgl32.Scale3D(4, 5, 6),
	}
	if u.Size() != 128 {
		t.Fatalf("Size() = %d, want 128", u.Size())
	}
	buf := u.Marshal()
	if len(buf) != 128 {
		t.Fatalf("len(Marshal()) = %d, want 128", len(buf))
	}
	// u_view translation x sits at float index 12; u_proj scale x at float index 16.
	if got := math.Float32frombits(le32(buf[12*4:])); got != 1 {
		t.Fatalf("u_view[12] = %v, want 1", got)
	}
	if got := math.Float32frombits(le32(buf[16*4:])); got != 4 {
		t.Fatalf("u_proj[0] = %v, want 4", got)
	}
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// approxEqualMat4 compares matrices element-wise with an absolute tolerance.
func approxEqualMat4(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if !common.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}
