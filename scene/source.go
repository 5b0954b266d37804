package scene

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Source describes where a Mesh comes from. It is implemented by FileSource and ShapeSource only.
type Source interface {
	fmt.Stringer
	build() (*Mesh, error)
}

// FileSource loads geometry from a file on disk.
type FileSource struct {
	Path string
}

// ShapeSource generates a procedural shape.
type ShapeSource struct {
	Kind    ShapeKind
	Options ShapeOptions
}

func (s FileSource) String() string  { return "file:" + s.Path }
func (s ShapeSource) String() string { return "shape:" + s.Kind.String() }

func (s FileSource) build() (*Mesh, error)  { return LoadFile(s.Path) }
func (s ShapeSource) build() (*Mesh, error) { return GenerateShapeWith(s.Kind, s.Options) }

// Build produces a validated Mesh from any Source.
func Build(src Source) (*Mesh, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrMalformedAsset)
	}
	m, err := src.build()
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("build %v: %w", src, err)
	}
	return m, nil
}

// LoadFile picks a loader from the file extension.
func LoadFile(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	}
	return nil, fmt.Errorf("%w: unknown geometry format %q", ErrMalformedAsset, path)
}
