package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Color struct {
	R, G, B float32
}

var (
	ColorWhite = Color{1, 1, 1}
	ColorBlack = Color{0, 0, 0}
	ColorRed   = Color{1, 0, 0}
	ColorGreen = Color{0, 1, 0}
	ColorBlue  = Color{0, 0, 1}
)

func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Lerp interpolates between two vectors; t=0 gives a, t=1 gives b.
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix composes scale, then rotation, then translation.
func (t Transform) Matrix() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotation := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translation.Mul4(rotation).Mul4(scale)
}

// Interpolate lerps scale and translation and slerps rotation.
func (t Transform) Interpolate(other Transform, a float32) Transform {
	return Transform{
		Position: Lerp(t.Position, other.Position, a),
		Rotation: mgl32.QuatSlerp(t.Rotation, other.Rotation, a),
		Scale:    Lerp(t.Scale, other.Scale, a),
	}
}

// NormalMatrix returns the inverse-transpose of the upper 3x3 of world.
func NormalMatrix(world mgl32.Mat4) mgl32.Mat3 {
	return world.Mat3().Inv().Transpose()
}
