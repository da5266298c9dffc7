package renderer

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// sceneShaderSource is the annotated WGSL for the lit scene pipeline.
//
//go:embed assets/scene.wgsl
var sceneShaderSource string

// Scene uniforms share group 0.
const (
	scenePipelineKey = "Scene"
	uniformGroup     = 0
	cameraBinding    = 0
	lightBinding     = 1
	materialBinding  = 2
)

var (
	// ErrNoAdapter is returned when no GPU adapter is compatible with the window surface.
	ErrNoAdapter = errors.New("renderer: no compatible GPU adapter")

	// ErrShaderCompile is returned when the scene shader fails to pre-process or compile.
	ErrShaderCompile = errors.New("renderer: shader compile failed")
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu      *sync.Mutex
	backend RendererBackend
	logger  *log.Logger

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
	clearColor           wgpu.Color
	debugObserver        DebugObserver
	debugLevel           DebugLevel
	light                light.Light
	material             material.Material

	scene           model.Model
	scenePipeline   pipeline.Pipeline
	uniformProvider bind_group_provider.BindGroupProvider

	width, height int
	// surfaceReady is false while the viewport has a zero dimension.
	surfaceReady bool
}

// Renderer draws the fixed scene (a unit cube over a ground plane) from the camera matrices it is given,
// lit by one point light. It satisfies the engine's FrameRenderer.
type Renderer interface {
	// SetViewport sets the framebuffer rectangle (0, 0, width, height) and reconfigures the surface to match.
	// A zero or negative dimension suspends drawing until a valid size arrives.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	SetViewport(width, height int)

	// Viewport returns the size last passed to SetViewport.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Viewport() (int, int)

	// Draw uploads view and projection to the camera uniform and draws one frame.
	// The projection uses OpenGL clip depth; it is remapped to WebGPU's [0, 1] before upload.
	// While drawing is suspended Draw returns nil without touching the GPU.
	//
	// Parameters:
	//   - view: the world to camera transform (u_view)
	//   - projection: the camera to clip transform (u_proj)
	//
	// Returns:
	//   - error: a swapchain or submission error; the frame was not presented
	Draw(view, projection mgl32.Mat4) error

	// Scene returns the mesh being drawn.
	//
	// Returns:
	//   - model.Model: the scene mesh
	Scene() model.Model

	// Light returns the point light uploaded at creation.
	//
	// Returns:
	//   - light.Light: the scene light
	Light() light.Light

	// Material returns the surface material uploaded at creation.
	//
	// Returns:
	//   - material.Material: the scene material
	Material() material.Material

	// Release frees every GPU resource held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates the GPU device for a window surface, configures the surface at the given size,
// uploads the scene with its light and material, and builds the scene pipeline.
//
// Parameters:
//   - surfaceDescriptor: the window's WebGPU surface descriptor
//   - width: initial framebuffer width in pixels, must be positive
//   - height: initial framebuffer height in pixels, must be positive
//   - options: a variadic list of RendererBuilderOption functions
//
// Returns:
//   - Renderer: the ready renderer
//   - error: ErrNoAdapter, ErrShaderCompile, or a wrapped device or surface error
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(options...)
	if !r.msaa.Valid() {
		return nil, fmt.Errorf("renderer: unsupported msaa sample count %d", r.msaa)
	}

	installDebugObserver(r.debugObserver, r.debugLevel)

	backend, err := newWGPURendererBackend(surfaceDescriptor, r.forceFallbackAdapter, r.msaa, r.clearColor)
	if err != nil {
		return nil, err
	}
	r.backend = backend

	if err := r.init(width, height); err != nil {
		r.Release()
		return nil, err
	}
	return r, nil
}

// newRenderer applies options over the defaults without touching the GPU.
func newRenderer(options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		logger:      log.Default(),
		presentMode: PresentModeVSync,
		msaa:        MSAAOff,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		debugLevel:  DebugLevelWarn,
	}
	for _, opt := range options {
		opt(r)
	}
	if r.debugObserver == nil {
		r.debugObserver = LogDebugObserver(r.logger)
	}
	if r.light == nil {
		r.light = light.NewLight()
	}
	if r.material == nil {
		r.material = material.NewMaterial()
	}
	return r
}

// init configures the surface and creates the scene's GPU resources on r.backend.
func (r *renderer) init(width, height int) error {
	r.backend.SetPresentMode(r.presentMode)
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	r.width, r.height = width, height
	r.surfaceReady = true

	sceneShader, err := shader.NewShader(scenePipelineKey, sceneShaderSource)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrShaderCompile, err)
	}

	r.uniformProvider = bind_group_provider.NewBindGroupProvider("Scene Uniforms")
	if err := r.backend.InitBindGroup(r.uniformProvider, sceneShader.BindGroupLayoutDescriptor(uniformGroup)); err != nil {
		return fmt.Errorf("renderer: uniform bind group: %w", err)
	}
	gpuLight := r.light.GPU()
	gpuMaterial := r.material.GPU()
	r.backend.WriteBuffers([]bind_group_provider.BufferWrite{
		{Provider: r.uniformProvider, Binding: lightBinding, Data: gpuLight.Marshal()},
		{Provider: r.uniformProvider, Binding: materialBinding, Data: gpuMaterial.Marshal()},
	})

	r.scene = model.Scene()
	if err := r.backend.InitMeshBuffers(r.scene.MeshProvider(), r.scene.VertexData(), r.scene.IndexData(), r.scene.IndexCount()); err != nil {
		return fmt.Errorf("renderer: scene buffers: %w", err)
	}

	r.scenePipeline = pipeline.NewPipeline(scenePipelineKey,
		pipeline.WithSource(sceneShader.Source()),
		pipeline.WithVertexLayouts(model.GPUVertexLayout()),
		pipeline.WithBindGroupLayouts(r.uniformProvider.BindGroupLayout()),
		pipeline.WithCullMode(wgpu.CullModeNone),
		pipeline.WithDepthTestEnabled(true),
	)
	if err := r.backend.RegisterRenderPipeline(r.scenePipeline); err != nil {
		return fmt.Errorf("%w: %v", ErrShaderCompile, err)
	}
	return nil
}

func (r *renderer) SetViewport(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.width, r.height = width, height
	if width <= 0 || height <= 0 {
		r.surfaceReady = false
		return
	}
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		r.logger.Printf("[Renderer] surface configuration failed: %v", err)
		r.surfaceReady = false
		return
	}
	r.surfaceReady = true
}

func (r *renderer) Viewport() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) Draw(view, projection mgl32.Mat4) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.surfaceReady {
		return nil
	}

	uniform := camera.GPUCameraUniform{
		View:       view,
		Projection: common.WebGPUProjection(projection),
	}
	r.backend.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: r.uniformProvider,
		Binding:  cameraBinding,
		Data:     uniform.Marshal(),
	}})

	if err := r.backend.BeginFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	r.backend.SetFrameViewport(r.width, r.height)
	r.backend.DrawCall(r.scenePipeline, r.scene.MeshProvider(), []bind_group_provider.BindGroupProvider{r.uniformProvider})
	if err := r.backend.EndFrame(); err != nil {
		return fmt.Errorf("end frame: %w", err)
	}
	r.backend.Present()
	return nil
}

func (r *renderer) Scene() model.Model {
	return r.scene
}

func (r *renderer) Light() light.Light {
	return r.light
}

func (r *renderer) Material() material.Material {
	return r.material
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.scenePipeline != nil {
		r.scenePipeline.Release()
	}
	if r.scene != nil {
		r.scene.MeshProvider().Release()
	}
	if r.uniformProvider != nil {
		r.uniformProvider.Release()
	}
	if r.backend != nil {
		r.backend.Release()
		r.backend = nil
	}
	r.surfaceReady = false
}
