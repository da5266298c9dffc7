package material

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor is an option builder that sets the RGBA surface color of the material.
//
// Parameters:
//   - color: the base color as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = color
	}
}

// WithCoefficients is an option builder that sets the ambient, diffuse and specular coefficients.
// Negative values are clamped to zero.
//
// Parameters:
//   - ambient: the ambient coefficient
//   - diffuse: the diffuse coefficient
//   - specular: the specular coefficient
//
// Returns:
//   - MaterialBuilderOption: a function that applies the coefficients to a material
func WithCoefficients(ambient, diffuse, specular float32) MaterialBuilderOption {
	return func(m *material) {
		m.ambient = max(ambient, 0)
		m.diffuse = max(diffuse, 0)
		m.specular = max(specular, 0)
	}
}

// WithShininess is an option builder that sets the specular exponent.
// Values below 1 are clamped to 1.
//
// Parameters:
//   - shininess: the specular exponent
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess option to a material
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = max(shininess, 1)
	}
}
