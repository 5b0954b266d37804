package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const normalTolerance = 1e-4

func TestCube(t *testing.T) {
	m, err := GenerateShape(ShapeCube)
	require.NoError(t, err)

	assert.Len(t, m.Positions, 24)
	assert.Len(t, m.Normals, 24)
	assert.Len(t, m.TexCoords, 24)
	assert.Len(t, m.Indices, 36)
	assert.Equal(t, 36, m.Count)
	assert.True(t, m.Indexed())

	for face := 0; face < 6; face++ {
		n := m.Normals[4*face]
		assert.InDelta(t, 1, n.Len(), normalTolerance)
		axes := 0
		for c := 0; c < 3; c++ {
			if n[c] != 0 {
				axes++
			}
		}
		assert.Equal(t, 1, axes, "face %d normal %v is axis aligned", face, n)
		for v := 1; v < 4; v++ {
			assert.Equal(t, n, m.Normals[4*face+v], "face %d shares one normal", face)
		}
		base := uint16(4 * face)
		assert.Equal(t, []uint16{base, base + 1, base + 2, base, base + 2, base + 3}, m.Indices[6*face:6*face+6])
	}

	lo, hi := m.Bounds()
	assert.Equal(t, mgl32.Vec3{-0.5, -0.5, -0.5}, lo)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, hi)
}

func TestCubeFacesPointOutward(t *testing.T) {
	m := GenCube(2, 4, 6)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Positions[m.Indices[i]], m.Positions[m.Indices[i+1]], m.Positions[m.Indices[i+2]]
		winding := b.Sub(a).Cross(c.Sub(a)).Normalize()
		assert.InDelta(t, 1, winding.Dot(m.Normals[m.Indices[i]]), normalTolerance, "triangle %d", i/3)
	}
}

func TestSphere(t *testing.T) {
	m, err := GenerateShape(ShapeSphere)
	require.NoError(t, err)

	assert.Len(t, m.Positions, 81)
	assert.Len(t, m.Normals, 81)
	assert.Nil(t, m.TexCoords)
	assert.Equal(t, len(m.Indices), m.Count)
	assert.Zero(t, m.Count%3)
	// The top and bottom rows of cells each lose one degenerate triangle per slice.
	assert.Equal(t, 3*(2*8*8-2*8), m.Count)

	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Positions))
	}
	for i, p := range m.Positions {
		assert.InDelta(t, 1, p.Len(), normalTolerance, "vertex %d on unit sphere", i)
		if m.Normals[i].Len() > 0 {
			assert.Greater(t, m.Normals[i].Dot(p), float32(0.7), "vertex %d normal points outward", i)
		}
	}
}

func TestPlane(t *testing.T) {
	logs := captureLogs(t)
	m, err := GenerateShape(ShapePlane)
	require.NoError(t, err)

	assert.Len(t, m.Positions, 4)
	assert.Equal(t, 6, m.Count)
	assert.Nil(t, m.TexCoords)
	assert.Contains(t, logs.String(), "mesh=Plane")
	for _, n := range m.Normals {
		assert.InDelta(t, 1, n.Z(), normalTolerance)
	}
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), 4)
	}
}

func TestGenerateShapeWithOptions(t *testing.T) {
	m, err := GenerateShapeWith(ShapePlane, ShapeOptions{Slices: 3, Stacks: 2})
	require.NoError(t, err)
	assert.Len(t, m.Positions, 12)
	assert.Equal(t, 3*2*6, m.Count)
}

func TestGenerateShapeErrors(t *testing.T) {
	_, err := GenerateShape(ShapeKind(7))
	assert.ErrorIs(t, err, ErrUnsupportedShape)

	_, err = GenerateShapeWith(ShapeSphere, ShapeOptions{Slices: 256, Stacks: 256})
	assert.ErrorIs(t, err, ErrIndexOverflow)

	m, err := GenerateShapeWith(ShapeSphere, ShapeOptions{Slices: 255, Stacks: 255})
	require.NoError(t, err)
	assert.Len(t, m.Positions, 65536)
}

func TestParseShapeKind(t *testing.T) {
	for _, kind := range []ShapeKind{ShapePlane, ShapeCube, ShapeSphere} {
		got, err := ParseShapeKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}
	_, err := ParseShapeKind("torus")
	assert.ErrorIs(t, err, ErrUnsupportedShape)
}
