package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSceneCounts(t *testing.T) {
	cases := []struct {
		name              string
		m                 Model
		vertices, indices int
	}{
		{"cube", Cube(), 24, 36},
		{"plane", GroundPlane(GroundHeight, GroundHalfExtent), 4, 6},
		{"scene", Scene(), 28, 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(tc.m.Vertices()); got != tc.vertices {
				t.Fatalf("vertices = %d, want %d", got, tc.vertices)
			}
			if got := tc.m.IndexCount(); got != tc.indices {
				t.Fatalf("IndexCount() = %d, want %d", got, tc.indices)
			}
			if got := len(tc.m.VertexData()); got != tc.vertices*32 {
				t.Fatalf("len(VertexData()) = %d, want %d", got, tc.vertices*32)
			}
			if got := len(tc.m.IndexData()); got != tc.indices*4 {
				t.Fatalf("len(IndexData()) = %d, want %d", got, tc.indices*4)
			}
			for _, idx := range tc.m.Indices() {
				if int(idx) >= tc.vertices {
					t.Fatalf("index %d out of range", idx)
				}
			}
			if tc.m.MeshProvider() == nil {
				t.Fatalf("MeshProvider() = nil")
			}
		})
	}
}

func TestSceneIndicesRebasedForPlane(t *testing.T) {
	idx := Scene().Indices()
	want := []uint32{24, 25, 26, 26, 27, 24}
	got := idx[36:]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("plane indices = %v, want %v", got, want)
		}
	}
}

func TestCubeWindingMatchesNormals(t *testing.T) {
	m := Cube()
	v := m.Vertices()
	idx := m.Indices()
	for tri := 0; tri < len(idx); tri += 3 {
		a := mgl32.Vec3(v[idx[tri]].Position)
		b := mgl32.Vec3(v[idx[tri+1]].Position)
		c := mgl32.Vec3(v[idx[tri+2]].Position)
		n := mgl32.Vec3(v[idx[tri]].Normal)
		if face := b.Sub(a).Cross(c.Sub(a)); face.Dot(n) <= 0 {
			t.Fatalf("triangle %d winds against its normal %v", tri/3, n)
		}
	}
}

func TestGroundPlaneHeight(t *testing.T) {
	for _, vert := range GroundPlane(GroundHeight, GroundHalfExtent).Vertices() {
		if vert.Position[1] != -1.5 {
			t.Fatalf("vertex y = %v, want -1.5", vert.Position[1])
		}
		if math.Abs(float64(vert.Position[0])) != 10.5 || math.Abs(float64(vert.Position[2])) != 10.5 {
			t.Fatalf("vertex %v not on a ±10.5 corner", vert.Position)
		}
	}
}

func TestGPUVertexLayout(t *testing.T) {
	g := GPUVertex{Position: [3]float32{1, 2, 3}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0.25, 0.75}}
	if g.Size() != 32 {
		t.Fatalf("Size() = %d, want 32", g.Size())
	}
	buf := g.Marshal()
	at := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	if at(0) != 1 || at(8) != 3 || at(16) != 1 || at(28) != 0.75 {
		t.Fatalf("Marshal() produced unexpected layout")
	}

	layout := GPUVertexLayout()
	if layout.ArrayStride != uint64(g.Size()) {
		t.Fatalf("ArrayStride = %d, want %d", layout.ArrayStride, g.Size())
	}
	for i, attr := range layout.Attributes {
		if attr.ShaderLocation != uint32(i) {
			t.Fatalf("attribute %d at location %d", i, attr.ShaderLocation)
		}
	}
}
