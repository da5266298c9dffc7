package model

// quadUVs are the texture coordinates of a face's four corners, in corner order.
var quadUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// cubeFaces lists each face's normal and its corners, counter-clockwise seen from outside.
var cubeFaces = []struct {
	normal  [3]float32
	corners [4][3]float32
}{
	{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
	{[3]float32{1, 0, 0}, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
	{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
	{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
	{[3]float32{0, 0, -1}, [4][3]float32{{-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}}},
}

// Ground plane placement.
const (
	GroundHeight     float32 = -1.5
	GroundHalfExtent float32 = 10.5
)

// appendQuad adds four corners as two triangles (0,1,2) and (2,3,0).
func appendQuad(vertices []GPUVertex, indices []uint32, normal [3]float32, corners [4][3]float32) ([]GPUVertex, []uint32) {
	base := uint32(len(vertices))
	for i, c := range corners {
		vertices = append(vertices, GPUVertex{Position: c, Normal: normal, TexCoord: quadUVs[i]})
	}
	indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	return vertices, indices
}

// Cube returns a unit cube centred on the origin with per-face normals: 24 vertices, 36 indices.
//
// Returns:
//   - Model: the cube mesh
func Cube() Model {
	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range cubeFaces {
		vertices, indices = appendQuad(vertices, indices, f.normal, f.corners)
	}
	return NewModel(WithName("Cube"), WithVertices(vertices), WithIndices(indices))
}

// GroundPlane returns an upward-facing square at height y spanning [-halfExtent, halfExtent] in x and z.
//
// Parameters:
//   - y: the plane height
//   - halfExtent: half the side length
//
// Returns:
//   - Model: the plane mesh (4 vertices, 6 indices)
func GroundPlane(y, halfExtent float32) Model {
	h := halfExtent
	vertices, indices := appendQuad(nil, nil, [3]float32{0, 1, 0}, [4][3]float32{
		{-h, y, -h}, {h, y, -h}, {h, y, h}, {-h, y, h},
	})
	return NewModel(WithName("Ground"), WithVertices(vertices), WithIndices(indices))
}

// Scene returns the viewer's fixed scene: the unit cube and the ground plane merged into one mesh
// of 28 vertices and 42 indices.
//
// Returns:
//   - Model: the scene mesh
func Scene() Model {
	return Merge("Scene", Cube(), GroundPlane(GroundHeight, GroundHalfExtent))
}
