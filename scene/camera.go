package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection selects the camera's projection model.
type Projection int

const (
	Orthographic Projection = iota
	Perspective
)

// KeyQuery reports whether a key is currently held.
type KeyQuery interface {
	IsKeyDown(key int) bool
}

// FlyControls maps movement directions to key codes.
type FlyControls struct {
	Forward, Back, Left, Right, Up, Down int
}

// FlyCamera is a free-look camera driven by pitch/yaw angles in degrees.
type FlyCamera struct {
	Position   mgl32.Vec3
	Pitch      float32
	Yaw        float32
	Speed      float32 // units per second
	MouseScale float32 // degrees per pixel
	MouseLook  bool

	Projection Projection
	FOV        float32 // radians
	Near, Far  float32
	// Orthographic bounds
	Left, Right, Bottom, Top float32

	Controls FlyControls
}

// NewFlyCamera returns a perspective camera at position looking down -Z.
// fov is in radians.
func NewFlyCamera(position mgl32.Vec3, fov, near, far float32) *FlyCamera {
	return &FlyCamera{
		Position:   position,
		Speed:      10,
		MouseScale: 1,
		Projection: Perspective,
		FOV:        fov,
		Near:       near,
		Far:        far,
		Left:       -1,
		Right:      1,
		Bottom:     -1,
		Top:        1,
	}
}

// Rotation returns the camera orientation.
func (c *FlyCamera) Rotation() mgl32.Quat {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(c.Yaw), mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(mgl32.DegToRad(c.Pitch), mgl32.Vec3{1, 0, 0})
	return yaw.Mul(pitch).Normalize()
}

// Basis returns the camera's right, up and forward axes. The camera looks along -forward.
func (c *FlyCamera) Basis() (right, up, forward mgl32.Vec3) {
	q := c.Rotation()
	return q.Rotate(mgl32.Vec3{1, 0, 0}), q.Rotate(mgl32.Vec3{0, 1, 0}), q.Rotate(mgl32.Vec3{0, 0, 1})
}

// Update applies one frame of mouse look and keyboard movement.
func (c *FlyCamera) Update(keys KeyQuery, mouseDX, mouseDY, dt float32) {
	if !c.MouseLook {
		return
	}
	c.Yaw -= mouseDX * c.MouseScale
	c.Pitch -= mouseDY * c.MouseScale
	c.Pitch = mgl32.Clamp(c.Pitch, -89, 89)

	right, up, forward := c.Basis()
	delta := c.Speed * dt
	move := mgl32.Vec3{}
	if keys.IsKeyDown(c.Controls.Forward) {
		move = move.Sub(forward)
	}
	if keys.IsKeyDown(c.Controls.Back) {
		move = move.Add(forward)
	}
	if keys.IsKeyDown(c.Controls.Left) {
		move = move.Sub(right)
	}
	if keys.IsKeyDown(c.Controls.Right) {
		move = move.Add(right)
	}
	if keys.IsKeyDown(c.Controls.Up) {
		move = move.Add(up)
	}
	if keys.IsKeyDown(c.Controls.Down) {
		move = move.Sub(up)
	}
	c.Position = c.Position.Add(move.Mul(delta))
}

// View returns the world-to-view matrix.
func (c *FlyCamera) View() mgl32.Mat4 {
	_, up, forward := c.Basis()
	return mgl32.LookAtV(c.Position, c.Position.Sub(forward), up)
}

// ProjectionMatrix returns the current projection for the given aspect ratio.
func (c *FlyCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if c.Projection == Orthographic {
		return mgl32.Ortho(c.Left*aspect, c.Right*aspect, c.Bottom, c.Top, c.Near, c.Far)
	}
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// ToggleProjection switches between orthographic and perspective.
func (c *FlyCamera) ToggleProjection() {
	if c.Projection == Perspective {
		c.Projection = Orthographic
	} else {
		c.Projection = Perspective
	}
}
