package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF opens a .glb or .gltf file and expands the triangle primitives of its
// first mesh into one Mesh, following the same policy as LoadOBJ: every index
// reference becomes its own vertex and no index buffer is kept.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: gltf open %q: %w", ErrMalformedAsset, path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return expandGLTF(doc, name)
}

func expandGLTF(doc *gltf.Document, name string) (*Mesh, error) {
	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("%w: %s has no meshes", ErrMalformedAsset, name)
	}

	var (
		positions []mgl32.Vec3
		normals   []mgl32.Vec3
		uvs       []mgl32.Vec2
		withUVs   = true
		declPos   int
		declNorm  int
	)

	for pi, prim := range doc.Meshes[0].Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posIdx, ok := prim.Attributes["POSITION"]
		if !ok {
			return nil, fmt.Errorf("%w: %s primitive %d has no POSITION", ErrMalformedAsset, name, pi)
		}
		pos, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %s positions: %v", ErrMalformedAsset, name, err)
		}
		declPos += len(pos)

		var norms [][3]float32
		if idx, ok := prim.Attributes["NORMAL"]; ok {
			norms, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
			if err != nil {
				return nil, fmt.Errorf("%w: %s normals: %v", ErrMalformedAsset, name, err)
			}
		}
		declNorm += len(norms)

		var tcs [][2]float32
		if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
			tcs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
			if err != nil {
				return nil, fmt.Errorf("%w: %s texcoords: %v", ErrMalformedAsset, name, err)
			}
		}
		if len(tcs) < 2 {
			withUVs = false
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("%w: %s indices: %v", ErrMalformedAsset, name, err)
			}
		} else {
			indices = make([]uint32, len(pos))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		if len(norms) == 0 {
			continue
		}
		for _, idx := range indices {
			if int(idx) >= len(pos) || int(idx) >= len(norms) {
				return nil, fmt.Errorf("%w: %s primitive %d index %d out of range",
					ErrMalformedAsset, name, pi, idx)
			}
			positions = append(positions, mgl32.Vec3(pos[idx]))
			normals = append(normals, mgl32.Vec3(norms[idx]))
			if int(idx) < len(tcs) {
				uvs = append(uvs, mgl32.Vec2(tcs[idx]))
			}
		}
	}

	if declPos < 2 {
		return nil, fmt.Errorf("%w: %s declares %d positions, need at least 2", ErrMalformedAsset, name, declPos)
	}
	if declNorm < 2 {
		return nil, fmt.Errorf("%w: %s declares %d normals, need at least 2", ErrMalformedAsset, name, declNorm)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: %s has no triangle primitives", ErrMalformedAsset, name)
	}
	if !withUVs || len(uvs) != len(positions) {
		warnNoTexCoords(name)
		uvs = nil
	}
	return NewMesh(name, positions, normals, uvs, nil), nil
}
