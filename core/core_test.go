package core

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputEdges(t *testing.T) {
	in := NewInput()
	assert.True(t, in.IsKeyUp(KeyF))
	assert.False(t, in.IsKeyPressed(KeyF))

	in.SetKey(KeyF, true)
	assert.True(t, in.IsKeyDown(KeyF))
	assert.True(t, in.IsKeyPressed(KeyF), "pressed on the first frame")

	in.Advance()
	assert.True(t, in.IsKeyDown(KeyF))
	assert.False(t, in.IsKeyPressed(KeyF), "held key is not pressed again")

	in.SetKey(KeyF, false)
	assert.True(t, in.IsKeyUp(KeyF))
	assert.False(t, in.IsKeyPressed(KeyF))

	in.Advance()
	in.SetKey(KeyF, true)
	assert.True(t, in.IsKeyPressed(KeyF))
}

func TestInputOutOfRange(t *testing.T) {
	in := NewInput()
	for _, key := range []int{-1, maxKeys, 10000} {
		in.SetKey(key, true)
		assert.False(t, in.IsKeyDown(key))
		assert.True(t, in.IsKeyUp(key))
		assert.False(t, in.IsKeyPressed(key))
	}
}

func TestInputCursor(t *testing.T) {
	in := NewInput()
	in.SetCursor(100, 50)
	assert.Zero(t, in.MouseDeltaX, "first sample has no delta")

	in.SetCursor(110, 45)
	assert.Equal(t, 10.0, in.MouseDeltaX)
	assert.Equal(t, -5.0, in.MouseDeltaY)

	in.Advance()
	assert.Zero(t, in.MouseDeltaX)
	assert.Zero(t, in.MouseDeltaY)
}

func TestDecodeConfig(t *testing.T) {
	cfg := DefaultConfig()
	src := `
log_level = "debug"

[window]
width = 800
height = 600
title = "demo"

[assets]
meshes = ["a.obj", "b.glb"]
texture = "wood.jpg"
watch = false

[camera]
fov = 60.0
position = [1.0, 2.0, 3.0]

[shapes]
sphere_slices = 16
`
	require.NoError(t, DecodeConfig(strings.NewReader(src), &cfg))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.True(t, cfg.Window.VSync, "unset keys keep their defaults")
	assert.Equal(t, []string{"a.obj", "b.glb"}, cfg.Assets.Meshes)
	assert.Equal(t, "assets/shaders", cfg.Assets.ShaderDir)
	assert.Equal(t, "wood.jpg", cfg.Assets.Texture)
	assert.False(t, cfg.Assets.Watch)
	assert.Equal(t, float32(60), cfg.Camera.FOV)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, 16, cfg.Shapes.SphereSlices)
	assert.Equal(t, 8, cfg.Shapes.SphereStacks)
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":   "[window]\ncolour = 3\n",
		"bad size":      "[window]\nwidth = 0\n",
		"near past far": "[camera]\nnear = 10.0\nfar = 1.0\n",
		"no layers":     "[shapes]\nloop_layers = 0\n",
		"syntax":        "[window\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			assert.Error(t, DecodeConfig(strings.NewReader(src), &cfg))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(dir, "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[camera]\nspeed = 3.5\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), cfg.Camera.Speed)
}

func TestSetupLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, SetupLoggingTo(&buf, "warn"))
	slog.Info("hidden")
	slog.Warn("shown", "mesh", "plane")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "mesh=plane")
	assert.Equal(t, slog.LevelWarn, UserLevel.Level())

	assert.Error(t, SetupLoggingTo(&buf, "loud"))
}

func TestTransformInterpolate(t *testing.T) {
	a := NewTransform()
	b := Transform{
		Position: mgl32.Vec3{2, 0, 0},
		Rotation: mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}),
		Scale:    mgl32.Vec3{3, 3, 3},
	}

	mid := a.Interpolate(b, 0.5)
	assert.True(t, mid.Position.ApproxEqual(mgl32.Vec3{1, 0, 0}))
	assert.True(t, mid.Scale.ApproxEqual(mgl32.Vec3{2, 2, 2}))
	want := mgl32.QuatRotate(mgl32.DegToRad(45), mgl32.Vec3{0, 1, 0})
	assert.True(t, mid.Rotation.ApproxEqualThreshold(want, 1e-5), "slerp halfway: %v", mid.Rotation)

	end := a.Interpolate(b, 1)
	p := end.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{2, 0, -3}, 1e-4), "got %v", p)
}

func TestColorLerp(t *testing.T) {
	c := ColorRed.Lerp(ColorBlue, 0.25)
	assert.InDelta(t, 0.75, c.R, 1e-6)
	assert.InDelta(t, 0.25, c.B, 1e-6)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, ColorWhite.Vec3())
}

func TestNormalMatrix(t *testing.T) {
	world := mgl32.Scale3D(2, 1, 1)
	n := NormalMatrix(world).Mul3x1(mgl32.Vec3{1, 0, 0})
	assert.True(t, n.ApproxEqual(mgl32.Vec3{0.5, 0, 0}))
}
