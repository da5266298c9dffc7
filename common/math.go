package common

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultEpsilon is the tolerance used when comparing floating point camera values.
const DefaultEpsilon = 1e-4

// WorldUp is the world-space up vector shared by every view matrix in the engine.
var WorldUp = mgl32.Vec3{0, 1, 0}

// webGPUClipCorrection remaps OpenGL clip-space depth [-1, 1] into WebGPU's [0, 1].
// Column-major: z' = 0.5*z + 0.5*w.
var webGPUClipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// WebGPUProjection converts an OpenGL-convention projection matrix into one whose clip-space
// depth range matches WebGPU. X and Y are untouched.
//
// Parameters:
//   - proj: a projection matrix built with mgl32.Perspective (depth range [-1, 1])
//
// Returns:
//   - mgl32.Mat4: the corrected projection matrix (depth range [0, 1])
func WebGPUProjection(proj mgl32.Mat4) mgl32.Mat4 {
	return webGPUClipCorrection.Mul4(proj)
}

// PutMat4 writes a column-major 4x4 matrix into buf as 16 little-endian float32 values.
// buf must hold at least 64 bytes.
//
// Parameters:
//   - buf: destination byte slice
//   - m: the matrix to serialize
func PutMat4(buf []byte, m mgl32.Mat4) {
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(m[i]))
	}
}

// ApproxEqual reports whether a and b differ by no more than eps.
//
// Parameters:
//   - a, b: the values to compare
//   - eps: the allowed absolute difference
//
// Returns:
//   - bool: true if |a-b| <= eps
func ApproxEqual(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

// ApproxEqualVec3 reports whether every component of a and b differs by no more than eps.
func ApproxEqualVec3(a, b mgl32.Vec3, eps float32) bool {
	return ApproxEqual(a[0], b[0], eps) && ApproxEqual(a[1], b[1], eps) && ApproxEqual(a[2], b[2], eps)
}
