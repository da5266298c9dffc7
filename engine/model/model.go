package model

import (
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/bind_group_provider"
)

// model is the implementation of the Model interface.
type model struct {
	name         string
	vertices     []GPUVertex
	indices      []uint32
	meshProvider bind_group_provider.BindGroupProvider
}

// Model is an indexed triangle mesh ready for upload.
// The renderer stores its GPU buffers on the MeshProvider.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices retrieves the mesh vertices.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices retrieves the triangle list indices.
	//
	// Returns:
	//   - []uint32: the indices, three per triangle
	Indices() []uint32

	// VertexData returns the vertices packed for GPU upload.
	//
	// Returns:
	//   - []byte: the raw vertex bytes
	VertexData() []byte

	// IndexData returns the indices packed for GPU upload.
	//
	// Returns:
	//   - []byte: the raw index bytes
	IndexData() []byte

	// IndexCount returns the number of indices to draw.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// MeshProvider retrieves the BindGroupProvider that holds the vertex and index buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider
}

var _ Model = &model{}

// NewModel creates a new Model instance with the provided options.
// A mesh provider labelled with the model name is created if none is given.
//
// Parameters:
//   - options: variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	if m.meshProvider == nil {
		m.meshProvider = bind_group_provider.NewBindGroupProvider(m.name + " Mesh")
	}
	return m
}

// Merge concatenates meshes into one, rebasing each mesh's indices past the vertices before it.
// The result draws with a single indexed draw call.
//
// Parameters:
//   - name: the merged model name
//   - models: the meshes to merge, in order
//
// Returns:
//   - Model: the merged model
func Merge(name string, models ...Model) Model {
	var vertices []GPUVertex
	var indices []uint32
	for _, m := range models {
		base := uint32(len(vertices))
		vertices = append(vertices, m.Vertices()...)
		for _, idx := range m.Indices() {
			indices = append(indices, base+idx)
		}
	}
	return NewModel(WithName(name), WithVertices(vertices), WithIndices(indices))
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	return MarshalVertices(m.vertices)
}

func (m *model) IndexData() []byte {
	return MarshalIndices(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}
