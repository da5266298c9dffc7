// Package config loads viewer settings from YAML and watches the file for tuning changes.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the file Load reads when given an empty path.
const DefaultPath = "viewer.yaml"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Camera modes.
const (
	ModeOrbit    = "orbit"
	ModeFreeform = "freeform"
)

// Drag buttons.
const (
	ButtonLeft   = "left"
	ButtonRight  = "right"
	ButtonMiddle = "middle"
)

// Present modes.
const (
	PresentVSync    = "vsync"
	PresentUncapped = "uncapped"
)

// Config is the full viewer configuration.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Projection ProjectionConfig `yaml:"projection"`
	Input      InputConfig      `yaml:"input"`
	Renderer   RendererConfig   `yaml:"renderer"`
	Scene      SceneConfig      `yaml:"scene"`
	Profiling  bool             `yaml:"profiling"`
}

// WindowConfig describes the initial window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CameraConfig selects the starting camera representation and its tuning.
type CameraConfig struct {
	Mode        string         `yaml:"mode"`
	Orbit       OrbitConfig    `yaml:"orbit"`
	Freeform    FreeformConfig `yaml:"freeform"`
	ZoomSpeed   float32        `yaml:"zoom_speed"`
	OrbitSpeedH float32        `yaml:"orbit_speed_h"`
	OrbitSpeedV float32        `yaml:"orbit_speed_v"`
	PanSpeed    float32        `yaml:"pan_speed"`
}

// OrbitConfig is the starting SphericalOrbit.
type OrbitConfig struct {
	Origin [3]float32 `yaml:"origin"`
	Radius float32    `yaml:"radius"`
	Theta  float32    `yaml:"theta"`
	Phi    float32    `yaml:"phi"`
}

// FreeformConfig is the starting Freeform.
type FreeformConfig struct {
	Position [3]float32 `yaml:"position"`
	LookAt   [3]float32 `yaml:"look_at"`
}

// ProjectionConfig holds the perspective parameters. FovDegrees is the base field of view
// before the engine divides it by the aspect ratio.
type ProjectionConfig struct {
	FovDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// InputConfig holds the input bindings.
type InputConfig struct {
	DragButton string `yaml:"drag_button"`
}

// RendererConfig holds GPU presentation settings.
type RendererConfig struct {
	PresentMode string     `yaml:"present_mode"`
	MSAA        int        `yaml:"msaa"`
	ClearColor  [4]float64 `yaml:"clear_color"`
}

// SceneConfig holds the lighting of the fixed scene.
type SceneConfig struct {
	Light    LightConfig    `yaml:"light"`
	Material MaterialConfig `yaml:"material"`
}

// LightConfig is the point light, in world space.
type LightConfig struct {
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
}

// MaterialConfig is the Blinn-Phong surface of every scene mesh.
type MaterialConfig struct {
	BaseColor [4]float32 `yaml:"base_color"`
	Ambient   float32    `yaml:"ambient"`
	Diffuse   float32    `yaml:"diffuse"`
	Specular  float32    `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// Default returns the configuration used when no file is present.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	tuning := camera.DefaultTuning()
	return Config{
		Window: WindowConfig{
			Title:  "Hello this is window",
			Width:  1600,
			Height: 1080,
		},
		Camera: CameraConfig{
			Mode: ModeOrbit,
			Orbit: OrbitConfig{
				Radius: 3,
				Theta:  3.14 / 2,
			},
			Freeform: FreeformConfig{
				Position: [3]float32{0, 0, 1},
			},
			ZoomSpeed:   tuning.ZoomSpeed,
			OrbitSpeedH: tuning.OrbitSpeedH,
			OrbitSpeedV: tuning.OrbitSpeedV,
			PanSpeed:    tuning.PanSpeed,
		},
		Projection: ProjectionConfig{
			FovDegrees: 90,
			Near:       0.1,
			Far:        1000,
		},
		Input: InputConfig{
			DragButton: ButtonMiddle,
		},
		Renderer: RendererConfig{
			PresentMode: PresentVSync,
			MSAA:        1,
			ClearColor:  [4]float64{0.1, 0.1, 0.1, 1},
		},
		Scene: SceneConfig{
			Light: LightConfig{
				Position:  light.DefaultPosition,
				Color:     light.DefaultColor,
				Intensity: light.DefaultIntensity,
			},
			Material: MaterialConfig{
				BaseColor: material.DefaultBaseColor,
				Ambient:   material.DefaultAmbient,
				Diffuse:   material.DefaultDiffuse,
				Specular:  material.DefaultSpecular,
				Shininess: material.DefaultShininess,
			},
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
// Keys missing from the file keep their default values.
//
// Parameters:
//   - path: the file to read; empty means DefaultPath
//
// Returns:
//   - Config: the merged configuration
//   - error: a read error (wrapping fs.ErrNotExist when missing), a parse error, or ErrInvalidConfig
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
//
// Parameters:
//   - data: YAML document bytes
//
// Returns:
//   - Config: the merged configuration
//   - error: a parse error or ErrInvalidConfig
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
//
// Returns:
//   - error: nil, or an error wrapping ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Camera.Mode != ModeOrbit && c.Camera.Mode != ModeFreeform:
		return fmt.Errorf("%w: camera.mode %q (want %q or %q)", ErrInvalidConfig, c.Camera.Mode, ModeOrbit, ModeFreeform)
	case c.Projection.FovDegrees <= 0 || c.Projection.FovDegrees >= 180:
		return fmt.Errorf("%w: projection.fov_degrees %v must be in (0, 180)", ErrInvalidConfig, c.Projection.FovDegrees)
	case c.Projection.Near <= 0:
		return fmt.Errorf("%w: projection.near %v must be positive", ErrInvalidConfig, c.Projection.Near)
	case c.Projection.Far <= c.Projection.Near:
		return fmt.Errorf("%w: projection.far %v must exceed near %v", ErrInvalidConfig, c.Projection.Far, c.Projection.Near)
	case c.Renderer.PresentMode != PresentVSync && c.Renderer.PresentMode != PresentUncapped:
		return fmt.Errorf("%w: renderer.present_mode %q", ErrInvalidConfig, c.Renderer.PresentMode)
	case c.Renderer.MSAA != 1 && c.Renderer.MSAA != 4:
		return fmt.Errorf("%w: renderer.msaa %d (want 1 or 4)", ErrInvalidConfig, c.Renderer.MSAA)
	case c.Scene.Light.Intensity < 0:
		return fmt.Errorf("%w: scene.light.intensity %v must not be negative", ErrInvalidConfig, c.Scene.Light.Intensity)
	case c.Scene.Material.Ambient < 0 || c.Scene.Material.Diffuse < 0 || c.Scene.Material.Specular < 0:
		return fmt.Errorf("%w: scene.material coefficients must not be negative", ErrInvalidConfig)
	case c.Scene.Material.Shininess < 1:
		return fmt.Errorf("%w: scene.material.shininess %v must be at least 1", ErrInvalidConfig, c.Scene.Material.Shininess)
	}
	if _, ok := dragButtons[c.Input.DragButton]; !ok {
		return fmt.Errorf("%w: input.drag_button %q", ErrInvalidConfig, c.Input.DragButton)
	}
	return nil
}

var dragButtons = map[string]int{
	ButtonLeft:   common.MouseButtonLeft,
	ButtonRight:  common.MouseButtonRight,
	ButtonMiddle: common.MouseButtonMiddle,
}

// State builds the starting camera state for the configured mode.
//
// Returns:
//   - camera.State: a SphericalOrbit or Freeform value
func (c CameraConfig) State() camera.State {
	if c.Mode == ModeFreeform {
		return camera.Freeform{
			Position: mgl32.Vec3(c.Freeform.Position),
			LookAt:   mgl32.Vec3(c.Freeform.LookAt),
		}
	}
	return camera.SphericalOrbit{
		Origin: mgl32.Vec3(c.Orbit.Origin),
		Radius: c.Orbit.Radius,
		Theta:  c.Orbit.Theta,
		Phi:    c.Orbit.Phi,
	}
}

// Tuning returns the camera scale factors.
func (c CameraConfig) Tuning() camera.Tuning {
	return camera.Tuning{
		ZoomSpeed:   c.ZoomSpeed,
		OrbitSpeedH: c.OrbitSpeedH,
		OrbitSpeedV: c.OrbitSpeedV,
		PanSpeed:    c.PanSpeed,
	}
}

// FovRadians returns the base field of view in radians.
func (p ProjectionConfig) FovRadians() float32 {
	return p.FovDegrees * math.Pi / 180
}

// DragButtonCode maps the configured drag button name to its mouse button code.
// Unknown names fall back to the middle button.
func (i InputConfig) DragButtonCode() int {
	if code, ok := dragButtons[i.DragButton]; ok {
		return code
	}
	return common.MouseButtonMiddle
}

// Light builds the scene's point light.
//
// Returns:
//   - light.Light: the configured light
func (l LightConfig) Light() light.Light {
	return light.NewLight(
		light.WithPosition(l.Position[0], l.Position[1], l.Position[2]),
		light.WithColor(l.Color[0], l.Color[1], l.Color[2]),
		light.WithIntensity(l.Intensity),
	)
}

// Material builds the scene's surface material.
//
// Returns:
//   - material.Material: the configured material
func (m MaterialConfig) Material() material.Material {
	return material.NewMaterial(
		material.WithName("Scene"),
		material.WithBaseColor(m.BaseColor),
		material.WithCoefficients(m.Ambient, m.Diffuse, m.Specular),
		material.WithShininess(m.Shininess),
	)
}
