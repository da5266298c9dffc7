// pre_processor.go scans WGSL source for @oxy: annotations, replaces them with injected
// struct sources or generated binding declarations, and collects the declarations the
// renderer uses to build bind group layouts.
package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/material"
)

// registryEntry pairs a WGSL struct source string (embedded from a .wgsl asset file)
// with its WGSL type name and byte size.
type registryEntry struct {
	// Source is the raw WGSL struct definition text injected by @oxy:include.
	Source string

	// Type is the WGSL type name emitted in @oxy:group declarations.
	Type string

	// Size is the struct size in bytes, used as the binding's minimum size.
	Size uint64
}

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	structRegistry       map[AnnotationArg]registryEntry
	addressSpaceRegistry map[AnnotationArg]string
	declarations         []Annotation
}

// PreProcessor rewrites annotated WGSL into plain WGSL and records binding declarations.
type PreProcessor interface {
	// Process replaces every annotation line in source and returns the resulting WGSL.
	// Declarations from a previous call are discarded.
	//
	// Parameters:
	//   - source: annotated WGSL
	//
	// Returns:
	//   - string: plain WGSL
	//   - error: a malformed or unknown annotation, with its line number
	Process(source string) (string, error)

	// Declarations returns the group annotations collected by the last Process call.
	//
	// Returns:
	//   - []Annotation: the binding declarations in source order
	Declarations() []Annotation

	// StructSize returns the registered byte size of a struct type key.
	//
	// Parameters:
	//   - arg: the struct type key
	//
	// Returns:
	//   - uint64: the size in bytes, or 0 if unknown
	StructSize(arg AnnotationArg) uint64
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the engine's GPU struct types registered.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor() PreProcessor {
	cameraSize := (&camera.GPUCameraUniform{}).Size()
	vertexSize := (&model.GPUVertex{}).Size()
	lightSize := (&light.GPULight{}).Size()
	materialSize := (&material.GPUMaterial{}).Size()
	return &preProcessor{
		structRegistry: map[AnnotationArg]registryEntry{
			AnnotationArgCamera:   {Source: camera.GPUCameraUniformSource, Type: "CameraUniform", Size: uint64(cameraSize)},
			AnnotationArgVertex:   {Source: model.GPUVertexSource, Type: "VertexInput", Size: uint64(vertexSize)},
			AnnotationArgLight:    {Source: light.GPULightSource, Type: "Light", Size: uint64(lightSize)},
			AnnotationArgMaterial: {Source: material.GPUMaterialSource, Type: "Material", Size: uint64(materialSize)},
		},
		addressSpaceRegistry: map[AnnotationArg]string{
			annotationArgStorageTypeUniform: "var<uniform>",
			annotationArgStorageTypeRead:    "var<storage, read>",
		},
	}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = p.declarations[:0]

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case annotationTypeInclude:
			entry, ok := p.structRegistry[a.Args[0]]
			if !ok {
				return "", fmt.Errorf("line %d: unknown @oxy:include argument %q", i+1, a.Args[0])
			}
			out = append(out, entry.Source)
		case AnnotationTypeBindingGroup:
			addrSpace := p.addressSpaceRegistry[a.Args[0]]
			entry := p.structRegistry[a.Args[2]]
			out = append(out, fmt.Sprintf("@group(%d) @binding(%d) %s %s: %s;", *a.Group, *a.Binding, addrSpace, a.Args[1], entry.Type))
			p.declarations = append(p.declarations, *a)
		default:
			return "", fmt.Errorf("line %d: unknown annotation type %q", i+1, a.Type)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}

func (p *preProcessor) StructSize(arg AnnotationArg) uint64 {
	return p.structRegistry[arg].Size
}
