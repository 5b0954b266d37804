package scene

import (
	"fmt"
	stdmath "math"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind selects a procedural shape.
type ShapeKind int

const (
	ShapePlane ShapeKind = iota
	ShapeCube
	ShapeSphere
)

func (k ShapeKind) String() string {
	switch k {
	case ShapePlane:
		return "plane"
	case ShapeCube:
		return "cube"
	case ShapeSphere:
		return "sphere"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// ParseShapeKind maps "plane", "cube" or "sphere" to its ShapeKind.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plane":
		return ShapePlane, nil
	case "cube":
		return ShapeCube, nil
	case "sphere":
		return ShapeSphere, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedShape, s)
}

// ShapeOptions controls the subdivision of parametric shapes. Zero values pick the defaults.
type ShapeOptions struct {
	Slices int
	Stacks int
}

const (
	defaultPlaneSlices  = 1
	defaultPlaneStacks  = 1
	defaultSphereSlices = 8
	defaultSphereStacks = 8

	maxShortVertices = stdmath.MaxUint16 + 1

	// squared cross-product length below which a triangle is treated as degenerate
	degenerateEpsilon = 1e-12
)

// GenerateShape synthesizes a Mesh of the given kind with default subdivision.
func GenerateShape(kind ShapeKind) (*Mesh, error) {
	return GenerateShapeWith(kind, ShapeOptions{})
}

// GenerateShapeWith synthesizes a Mesh of the given kind without file I/O.
// Plane and sphere come from the parametric generator and carry no texture coordinates;
// the cube is the hardcoded 24-vertex table.
func GenerateShapeWith(kind ShapeKind, opts ShapeOptions) (*Mesh, error) {
	switch kind {
	case ShapePlane:
		slices, stacks := withDefaults(opts, defaultPlaneSlices, defaultPlaneStacks, 1)
		return parametric("Plane", slices, stacks, planePoint)
	case ShapeSphere:
		slices, stacks := withDefaults(opts, defaultSphereSlices, defaultSphereStacks, 3)
		return parametric("Sphere", slices, stacks, spherePoint)
	case ShapeCube:
		return GenCube(1, 1, 1), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedShape, kind)
}

func withDefaults(opts ShapeOptions, slices, stacks, min int) (int, int) {
	if opts.Slices > 0 {
		slices = opts.Slices
	}
	if opts.Stacks > 0 {
		stacks = opts.Stacks
	}
	if slices < min {
		slices = min
	}
	if stacks < min {
		stacks = min
	}
	return slices, stacks
}

// planePoint maps uv onto the unit square in the XY plane.
func planePoint(u, v float32) mgl32.Vec3 {
	return mgl32.Vec3{u, v, 0}
}

// spherePoint maps uv onto the unit sphere: phi sweeps pole to pole, theta around the Z axis.
func spherePoint(u, v float32) mgl32.Vec3 {
	phi := u * math32.Pi
	theta := v * 2 * math32.Pi
	return mgl32.Vec3{
		math32.Cos(theta) * math32.Sin(phi),
		math32.Sin(theta) * math32.Sin(phi),
		math32.Cos(phi),
	}
}

// parametric evaluates fn over a (stacks+1)x(slices+1) grid, emits two triangles per
// cell, drops degenerate triangles and computes vertex normals afterwards.
func parametric(name string, slices, stacks int, fn func(u, v float32) mgl32.Vec3) (*Mesh, error) {
	npoints := (slices + 1) * (stacks + 1)
	if npoints > maxShortVertices {
		return nil, fmt.Errorf("%w: %s needs %d vertices", ErrIndexOverflow, name, npoints)
	}

	positions := make([]mgl32.Vec3, 0, npoints)
	for stack := 0; stack <= stacks; stack++ {
		u := float32(stack) / float32(stacks)
		for slice := 0; slice <= slices; slice++ {
			v := float32(slice) / float32(slices)
			positions = append(positions, fn(u, v))
		}
	}

	indices := make([]uint16, 0, 6*slices*stacks)
	row := 0
	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			next := slice + 1
			indices = append(indices,
				uint16(row+slice+slices+1), uint16(row+next), uint16(row+slice),
				uint16(row+slice+slices+1), uint16(row+next+slices+1), uint16(row+next))
		}
		row += slices + 1
	}

	indices = removeDegenerate(positions, indices)
	normals := computeNormals(positions, indices)

	warnNoTexCoords(name)
	return NewMesh(name, positions, normals, nil, indices), nil
}

// removeDegenerate drops triangles whose area is effectively zero, such as the
// collapsed triangles at a sphere's poles.
func removeDegenerate(positions []mgl32.Vec3, indices []uint16) []uint16 {
	out := indices[:0]
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := positions[indices[i]], positions[indices[i+1]], positions[indices[i+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Dot(n) < degenerateEpsilon {
			continue
		}
		out = append(out, indices[i], indices[i+1], indices[i+2])
	}
	return out
}

// computeNormals sums the unit face normal of every triangle into its three
// vertices and normalizes the result.
func computeNormals(positions []mgl32.Vec3, indices []uint16) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		p0, p1, p2 := positions[i0], positions[i1], positions[i2]
		n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		normals[i0] = normals[i0].Add(n)
		normals[i1] = normals[i1].Add(n)
		normals[i2] = normals[i2].Add(n)
	}
	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		}
	}
	return normals
}

// cubeTexCoords repeats a unit square per face.
var cubeTexCoords = [24]mgl32.Vec2{
	{0, 0}, {1, 0}, {1, 1}, {0, 1},
	{1, 0}, {1, 1}, {0, 1}, {0, 0},
	{0, 1}, {0, 0}, {1, 0}, {1, 1},
	{1, 1}, {0, 1}, {0, 0}, {1, 0},
	{1, 0}, {1, 1}, {0, 1}, {0, 0},
	{0, 0}, {1, 0}, {1, 1}, {0, 1},
}

// cubeFaceNormals holds the outward normal of each face in vertex-table order:
// front, back, top, bottom, right, left.
var cubeFaceNormals = [6]mgl32.Vec3{
	{0, 0, 1},
	{0, 0, -1},
	{0, 1, 0},
	{0, -1, 0},
	{1, 0, 0},
	{-1, 0, 0},
}

// GenCube builds an axis-aligned box centred on the origin with 4 vertices per face,
// so every face carries its own flat normal and texcoord quad.
func GenCube(width, height, length float32) *Mesh {
	w, h, l := width/2, height/2, length/2

	positions := []mgl32.Vec3{
		// Front face
		{-w, -h, l}, {w, -h, l}, {w, h, l}, {-w, h, l},
		// Back face
		{-w, -h, -l}, {-w, h, -l}, {w, h, -l}, {w, -h, -l},
		// Top face
		{-w, h, -l}, {-w, h, l}, {w, h, l}, {w, h, -l},
		// Bottom face
		{-w, -h, -l}, {w, -h, -l}, {w, -h, l}, {-w, -h, l},
		// Right face
		{w, -h, -l}, {w, h, -l}, {w, h, l}, {w, -h, l},
		// Left face
		{-w, -h, -l}, {-w, -h, l}, {-w, h, l}, {-w, h, -l},
	}

	normals := make([]mgl32.Vec3, 24)
	for i := range normals {
		normals[i] = cubeFaceNormals[i/4]
	}

	texCoords := make([]mgl32.Vec2, 24)
	copy(texCoords, cubeTexCoords[:])

	indices := make([]uint16, 0, 36)
	for face := uint16(0); face < 6; face++ {
		base := 4 * face
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return NewMesh("Cube", positions, normals, texCoords, indices)
}
