package material

// material is the implementation of the Material interface.
type material struct {
	name      string
	baseColor [4]float32
	ambient   float32
	diffuse   float32
	specular  float32
	shininess float32
}

// Material describes how the scene surface responds to light under the Blinn-Phong model.
// Surface properties are fixed at construction and read-only through this interface.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the RGBA surface color. The ambient term scales it directly.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// Ambient retrieves the ambient coefficient.
	//
	// Returns:
	//   - float32: the ambient coefficient
	Ambient() float32

	// Diffuse retrieves the diffuse coefficient.
	//
	// Returns:
	//   - float32: the diffuse coefficient
	Diffuse() float32

	// Specular retrieves the specular coefficient.
	//
	// Returns:
	//   - float32: the specular coefficient
	Specular() float32

	// Shininess retrieves the specular exponent.
	//
	// Returns:
	//   - float32: the exponent applied to the halfway-vector term
	Shininess() float32

	// GPU returns the material packed for the uniform buffer.
	//
	// Returns:
	//   - GPUMaterial: the GPU representation
	GPU() GPUMaterial
}

var _ Material = &material{}

// Default surface: mid grey with equal light response terms.
const (
	DefaultAmbient   float32 = 0.3
	DefaultDiffuse   float32 = 0.3
	DefaultSpecular  float32 = 0.3
	DefaultShininess float32 = 16
)

// DefaultBaseColor is the base color used when none is given.
var DefaultBaseColor = [4]float32{0.5, 0.5, 0.5, 1}

// NewMaterial creates a new Material instance with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the Material
//
// Returns:
//   - Material: a new instance of Material configured with the provided options
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		name:      "Default",
		baseColor: DefaultBaseColor,
		ambient:   DefaultAmbient,
		diffuse:   DefaultDiffuse,
		specular:  DefaultSpecular,
		shininess: DefaultShininess,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *material) Ambient() float32 {
	return m.ambient
}

func (m *material) Diffuse() float32 {
	return m.diffuse
}

func (m *material) Specular() float32 {
	return m.specular
}

func (m *material) Shininess() float32 {
	return m.shininess
}

func (m *material) GPU() GPUMaterial {
	return GPUMaterial{
		BaseColor: m.baseColor,
		Ambient:   m.ambient,
		Diffuse:   m.diffuse,
		Specular:  m.specular,
		Shininess: m.shininess,
	}
}
