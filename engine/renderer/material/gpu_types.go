package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMaterialSource is the canonical WGSL definition of the Material struct.
// Matches GPUMaterial layout exactly (32 bytes).
//
//go:embed assets/material.wgsl
var GPUMaterialSource string

// GPUMaterial is the GPU-aligned uniform holding the surface colour and Blinn-Phong terms.
// Matches the WGSL Material struct layout exactly (see GPUMaterialSource).
// Size: 32 bytes, no padding required.
type GPUMaterial struct {
	BaseColor [4]float32 // offset  0: RGBA surface color
	Ambient   float32    // offset 16: ambient coefficient
	Diffuse   float32    // offset 20: diffuse coefficient
	Specular  float32    // offset 24: specular coefficient
	Shininess float32    // offset 28: specular exponent
}

// Size returns the size of the GPUMaterial struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMaterial) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterial struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUMaterial) Marshal() []byte {
	fields := [8]float32{
		g.BaseColor[0], g.BaseColor[1], g.BaseColor[2], g.BaseColor[3],
		g.Ambient, g.Diffuse, g.Specular, g.Shininess,
	}
	buf := make([]byte, 32)
	for i, f := range fields {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}
