package scene

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds CPU-side attribute streams.
// GPU upload is managed by the opengl backend; a Mesh is never modified by it.
type Mesh struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2 // nil when the source had none
	Indices   []uint16     // nil for expanded meshes

	// Count is the number of indices when indexed, otherwise the number of vertices.
	Count int
}

// NewMesh builds a Mesh from the given streams and derives Count.
func NewMesh(name string, positions, normals []mgl32.Vec3, texCoords []mgl32.Vec2, indices []uint16) *Mesh {
	m := &Mesh{
		Name:      name,
		Positions: positions,
		Normals:   normals,
		TexCoords: texCoords,
		Indices:   indices,
	}
	if len(indices) > 0 {
		m.Count = len(indices)
	} else {
		m.Indices = nil
		m.Count = len(positions)
	}
	if len(texCoords) == 0 {
		m.TexCoords = nil
	}
	return m
}

// Indexed reports whether the mesh draws through an index buffer.
func (m *Mesh) Indexed() bool { return len(m.Indices) > 0 }

// HasTexCoords reports whether the mesh carries a texcoord stream.
func (m *Mesh) HasTexCoords() bool { return len(m.TexCoords) > 0 }

// VertexCount returns the number of entries in each attribute stream.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// TriangleCount returns the number of triangles a draw of the mesh emits.
func (m *Mesh) TriangleCount() int { return m.Count / 3 }

// Validate checks the stream invariants every mesh must satisfy before upload.
func (m *Mesh) Validate() error {
	if len(m.Positions) == 0 {
		return fmt.Errorf("%w: %s has no positions", ErrInvalidMesh, m.Name)
	}
	if len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%w: %s has %d normals for %d positions",
			ErrInvalidMesh, m.Name, len(m.Normals), len(m.Positions))
	}
	if m.HasTexCoords() && len(m.TexCoords) != len(m.Positions) {
		return fmt.Errorf("%w: %s has %d texcoords for %d positions",
			ErrInvalidMesh, m.Name, len(m.TexCoords), len(m.Positions))
	}
	if m.Indexed() {
		if m.Count != len(m.Indices) {
			return fmt.Errorf("%w: %s count %d != %d indices", ErrInvalidMesh, m.Name, m.Count, len(m.Indices))
		}
		for i, idx := range m.Indices {
			if int(idx) >= len(m.Positions) {
				return fmt.Errorf("%w: %s index %d at %d out of range (%d vertices)",
					ErrInvalidMesh, m.Name, idx, i, len(m.Positions))
			}
		}
	} else if m.Count != len(m.Positions) {
		return fmt.Errorf("%w: %s count %d != %d vertices", ErrInvalidMesh, m.Name, m.Count, len(m.Positions))
	}
	return nil
}

// Bounds returns the local-space AABB of the mesh positions.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for c := 0; c < 3; c++ {
			if p[c] < min[c] {
				min[c] = p[c]
			}
			if p[c] > max[c] {
				max[c] = p[c]
			}
		}
	}
	return min, max
}

// warnNoTexCoords reports a mesh that will render without texture coordinates.
func warnNoTexCoords(name string) {
	slog.Warn("mesh loaded without texture coordinates", "mesh", name)
}
