package bind_group_provider

import "testing"

func TestNewBindGroupProviderKeepsLabel(t *testing.T) {
	p := NewBindGroupProvider("Camera")
	if p.Label() != "Camera" {
		t.Fatalf("Label() = %q, want %q", p.Label(), "Camera")
	}
	if p.BindGroup() != nil || p.BindGroupLayout() != nil || p.Buffer(0) != nil {
		t.Fatalf("fresh provider holds GPU resources")
	}
}

func TestReleaseWithoutGPUResources(t *testing.T) {
	p := NewBindGroupProvider("Scene Mesh", WithBuffer(0, nil))
	p.SetIndexCount(42)
	p.Release()
	if p.IndexCount() != 0 {
		t.Fatalf("IndexCount() = %d after Release, want 0", p.IndexCount())
	}
	if p.VertexBuffer() != nil || p.IndexBuffer() != nil {
		t.Fatalf("mesh buffers survived Release")
	}
}
