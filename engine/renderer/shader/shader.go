package shader

import (
	"fmt"
	"sort"

	"github.com/cogentcore/webgpu/wgpu"
)

// shader is the implementation of the Shader interface.
type shader struct {
	key                        string
	source                     string
	declarations               []Annotation
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
}

// Shader is a pre-processed WGSL module with the bind group layouts its declarations describe.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for labels.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the pre-processed WGSL source code.
	//
	// Returns:
	//   - string: plain WGSL ready for CreateShaderModule
	Source() string

	// Declarations retrieves the binding declarations found in the source.
	//
	// Returns:
	//   - []Annotation: the group annotations
	Declarations() []Annotation

	// BindGroupLayoutDescriptors retrieves the layout descriptors derived from the declarations.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupLayoutDescriptor retrieves the layout descriptor for one group.
	//
	// Parameters:
	//   - group: the group index
	//
	// Returns:
	//   - wgpu.BindGroupLayoutDescriptor: the descriptor, or an empty descriptor if the group is unused
	BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor
}

var _ Shader = &shader{}

// NewShader pre-processes annotated WGSL and derives its bind group layouts.
// Every declared binding is a buffer visible to both the vertex and fragment stages.
//
// Parameters:
//   - key: the shader identifier
//   - source: annotated WGSL
//
// Returns:
//   - Shader: the processed shader
//   - error: a pre-processing error wrapped with the key
func NewShader(key, source string) (Shader, error) {
	pp := NewPreProcessor()
	processed, err := pp.Process(source)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", key, err)
	}

	s := &shader{
		key:                        key,
		source:                     processed,
		declarations:               append([]Annotation(nil), pp.Declarations()...),
		bindGroupLayoutDescriptors: make(map[int]wgpu.BindGroupLayoutDescriptor),
	}

	for _, decl := range s.declarations {
		bindingType := wgpu.BufferBindingTypeUniform
		if decl.Args[0] == annotationArgStorageTypeRead {
			bindingType = wgpu.BufferBindingTypeReadOnlyStorage
		}
		desc := s.bindGroupLayoutDescriptors[*decl.Group]
		desc.Label = fmt.Sprintf("%s Group %d", key, *decl.Group)
		desc.Entries = append(desc.Entries, wgpu.BindGroupLayoutEntry{
			Binding:    uint32(*decl.Binding),
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           bindingType,
				MinBindingSize: pp.StructSize(decl.Args[2]),
			},
		})
		s.bindGroupLayoutDescriptors[*decl.Group] = desc
	}
	for g, desc := range s.bindGroupLayoutDescriptors {
		sort.Slice(desc.Entries, func(i, j int) bool { return desc.Entries[i].Binding < desc.Entries[j].Binding })
		s.bindGroupLayoutDescriptors[g] = desc
	}

	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) Declarations() []Annotation {
	return s.declarations
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors[group]
}
