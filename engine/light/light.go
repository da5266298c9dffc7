package light

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position  [3]float32
	color     [3]float32
	intensity float32
}

// Light is a point light. The scene shader transforms its position into view space and
// shades with Blinn-Phong; the light does not attenuate with distance.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// GPU returns the light packed for the uniform buffer.
	//
	// Returns:
	//   - GPULight: the GPU representation
	GPU() GPULight
}

var _ Light = &lightImpl{}

// Default light placement: above and in front of the origin, white, unit intensity.
var (
	DefaultPosition = [3]float32{0, 2, 1}
	DefaultColor    = [3]float32{1, 1, 1}
)

// DefaultIntensity is the intensity used when none is given.
const DefaultIntensity float32 = 1

// NewLight creates a point light with the provided options.
//
// Parameters:
//   - options: a variadic list of LightBuilderOption functions
//
// Returns:
//   - Light: the configured light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		position:  DefaultPosition,
		color:     DefaultColor,
		intensity: DefaultIntensity,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) GPU() GPULight {
	return GPULight{
		Position:  l.position,
		Intensity: l.intensity,
		Color:     l.color,
	}
}
