package shader

import (
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestParseAnnotation(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		wantNil bool
		wantErr bool
	}{
		{"plain wgsl", "let x = 1.0;", true, false},
		{"ordinary comment", "// lighting in view space", true, false},
		{"include", "//@oxy:include camera", false, false},
		{"include indented", "    // @oxy:include vertex", false, false},
		{"group", "//@oxy:group 0 0 storage_uniform camera camera", false, false},
		{"empty", "//@oxy:", false, true},
		{"unknown type", "//@oxy:provider 0 0 camera", false, true},
		{"include light", "//@oxy:include light", false, false},
		{"unknown struct", "//@oxy:include texture", false, true},
		{"bad group number", "//@oxy:group x 0 storage_uniform camera camera", false, true},
		{"bad address space", "//@oxy:group 0 0 push camera camera", false, true},
		{"short group", "//@oxy:group 0 0 storage_uniform camera", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := parseAnnotation(tc.line, 7)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil {
				if !strings.Contains(err.Error(), "line 7") {
					t.Fatalf("error %q missing line number", err)
				}
				return
			}
			if (a == nil) != tc.wantNil {
				t.Fatalf("annotation = %+v, wantNil %v", a, tc.wantNil)
			}
		})
	}
}

func TestPreProcessorInjectsStructsAndBindings(t *testing.T) {
	src := strings.Join([]string{
		"//@oxy:include camera",
		"//@oxy:include vertex",
		"//@oxy:group 0 0 storage_uniform camera camera",
		"@vertex fn vs_main(v: VertexInput) -> @builtin(position) vec4<f32> { return camera.u_proj * vec4<f32>(v.position, 1.0); }",
	}, "\n")

	pp := NewPreProcessor()
	out, err := pp.Process(src)
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	for _, want := range []string{
		"struct CameraUniform",
		"struct VertexInput",
		"@group(0) @binding(0) var<uniform> camera: CameraUniform;",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, annotationPrefix) {
		t.Fatalf("annotation left in output:\n%s", out)
	}
	if got := len(pp.Declarations()); got != 1 {
		t.Fatalf("len(Declarations()) = %d, want 1", got)
	}
	if got := pp.StructSize(AnnotationArgCamera); got != 128 {
		t.Fatalf("StructSize(camera) = %d, want 128", got)
	}
}

func TestNewShaderLayouts(t *testing.T) {
	s, err := NewShader("test", "//@oxy:include camera\n//@oxy:group 0 0 storage_uniform camera camera\n")
	if err != nil {
		t.Fatalf("NewShader() error: %v", err)
	}
	desc := s.BindGroupLayoutDescriptor(0)
	if len(desc.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(desc.Entries))
	}
	e := desc.Entries[0]
	if e.Buffer.Type != wgpu.BufferBindingTypeUniform || e.Buffer.MinBindingSize != 128 {
		t.Fatalf("entry = %+v", e)
	}
	if e.Visibility&wgpu.ShaderStageVertex == 0 {
		t.Fatalf("camera binding not visible to the vertex stage")
	}
	if len(s.BindGroupLayoutDescriptor(1).Entries) != 0 {
		t.Fatalf("unused group has entries")
	}
}

func TestNewShaderReportsKey(t *testing.T) {
	_, err := NewShader("broken", "//@oxy:include nothing")
	if err == nil || !strings.Contains(err.Error(), "broken") {
		t.Fatalf("err = %v, want error naming the shader", err)
	}
}
