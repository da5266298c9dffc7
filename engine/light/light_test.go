package light

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()
	if l.Position() != [3]float32{0, 2, 1} {
		t.Fatalf("Position() = %v, want (0, 2, 1)", l.Position())
	}
	if l.Color() != [3]float32{1, 1, 1} || l.Intensity() != 1 {
		t.Fatalf("Color() = %v, Intensity() = %v", l.Color(), l.Intensity())
	}
}

func TestLightOptions(t *testing.T) {
	cases := []struct {
		name string
		opts []LightBuilderOption
		want GPULight
	}{
		{"position", []LightBuilderOption{WithPosition(1, 2, 3)}, GPULight{Position: [3]float32{1, 2, 3}, Intensity: 1, Color: [3]float32{1, 1, 1}}},
		{"color", []LightBuilderOption{WithColor(1, 0.5, 0)}, GPULight{Position: [3]float32{0, 2, 1}, Intensity: 1, Color: [3]float32{1, 0.5, 0}}},
		{"negative intensity", []LightBuilderOption{WithIntensity(-2)}, GPULight{Position: [3]float32{0, 2, 1}, Intensity: 0, Color: [3]float32{1, 1, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewLight(tc.opts...).GPU(); got != tc.want {
				t.Fatalf("GPU() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestGPULightMarshal(t *testing.T) {
	g := GPULight{Position: [3]float32{0, 2, 1}, Intensity: 0.75, Color: [3]float32{0.1, 0.2, 0.3}}
	if g.Size() != 32 {
		t.Fatalf("Size() = %d, want 32", g.Size())
	}
	buf := g.Marshal()
	at := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	if at(4) != 2 || at(12) != 0.75 || at(24) != 0.3 || at(28) != 0 {
		t.Fatalf("Marshal() layout mismatch")
	}
}
