package config

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  width: 800
camera:
  mode: freeform
  freeform:
    position: [1, 2, 3]
    look_at: [0, 1, 0]
  pan_speed: 0.01
input:
  drag_button: left
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 1080 {
		t.Fatalf("window = %+v, want width 800 and default height 1080", cfg.Window)
	}
	if cfg.Camera.ZoomSpeed != camera.DefaultZoomSpeed {
		t.Fatalf("zoom_speed = %v, want default %v", cfg.Camera.ZoomSpeed, camera.DefaultZoomSpeed)
	}
	if cfg.Input.DragButtonCode() != common.MouseButtonLeft {
		t.Fatalf("DragButtonCode() = %d, want left", cfg.Input.DragButtonCode())
	}

	st, ok := cfg.Camera.State().(camera.Freeform)
	if !ok {
		t.Fatalf("State() = %T, want camera.Freeform", cfg.Camera.State())
	}
	if st.Position != (mgl32.Vec3{1, 2, 3}) || st.LookAt != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("freeform = %+v", st)
	}
	if cfg.Camera.Tuning().PanSpeed != 0.01 {
		t.Fatalf("PanSpeed = %v, want 0.01", cfg.Camera.Tuning().PanSpeed)
	}
}

func TestDefaultCameraMatchesStartupOrbit(t *testing.T) {
	st, ok := Default().Camera.State().(camera.SphericalOrbit)
	if !ok {
		t.Fatalf("default state is not an orbit")
	}
	if st != camera.DefaultState() {
		t.Fatalf("State() = %+v, want %+v", st, camera.DefaultState())
	}
	if got := Default().Projection.FovRadians(); !common.ApproxEqual(got, mgl32.DegToRad(90), 1e-6) {
		t.Fatalf("FovRadians() = %v", got)
	}
}

func TestSceneConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
scene:
  light:
    position: [4, 5, 6]
  material:
    base_color: [1, 0, 0, 1]
    shininess: 32
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	l := cfg.Scene.Light.Light()
	if l.Position() != [3]float32{4, 5, 6} || l.Color() != light.DefaultColor || l.Intensity() != 1 {
		t.Fatalf("light = %+v", l.GPU())
	}
	m := cfg.Scene.Material.Material()
	if m.BaseColor() != [4]float32{1, 0, 0, 1} || m.Shininess() != 32 || m.Ambient() != material.DefaultAmbient {
		t.Fatalf("material = %+v", m.GPU())
	}
}

func TestDefaultSceneMatchesBuiltins(t *testing.T) {
	scene := Default().Scene
	if scene.Light.Light().GPU() != light.NewLight().GPU() {
		t.Fatalf("default light differs from light.NewLight()")
	}
	if scene.Material.Material().GPU() != material.NewMaterial().GPU() {
		t.Fatalf("default material differs from material.NewMaterial()")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero_width", "window: {width: 0}"},
		{"bad_mode", "camera: {mode: fly}"},
		{"fov_too_wide", "projection: {fov_degrees: 180}"},
		{"near_zero", "projection: {near: 0}"},
		{"far_before_near", "projection: {near: 5, far: 1}"},
		{"bad_present", "renderer: {present_mode: mailbox}"},
		{"bad_msaa", "renderer: {msaa: 3}"},
		{"bad_button", "input: {drag_button: thumb}"},
		{"negative_intensity", "scene: {light: {intensity: -1}}"},
		{"negative_ambient", "scene: {material: {ambient: -0.1}}"},
		{"dull_shininess", "scene: {material: {shininess: 0.5}}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Parse() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("window: [unterminated"))
	if err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Parse() error = %v, want a yaml error", err)
	}
}

func TestLoadEmptyPathReadsDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile(DefaultPath, []byte("window: {width: 640}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window.Width != 640 {
		t.Fatalf("Window.Width = %d, want 640 from %s", cfg.Window.Width, DefaultPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	if err := os.WriteFile(path, []byte("profiling: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Profiling {
		t.Fatalf("Profiling = false, want true")
	}
}

func TestWatcherPublishesReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")
	if err := os.WriteFile(path, []byte("camera: {zoom_speed: 0.1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("camera: {zoom_speed: 0.5}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Camera.ZoomSpeed == 0.5 {
				return
			}
		case <-deadline:
			t.Fatalf("no reload with zoom_speed 0.5 observed")
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	w, err := NewWatcher(path, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	_ = w.Close()
	if _, ok := <-w.Updates(); ok {
		t.Fatalf("Updates() still open after Close")
	}
}
