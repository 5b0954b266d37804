package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the demo configuration, read from a TOML file.
type Config struct {
	LogLevel string       `toml:"log_level"`
	Window   WindowConfig `toml:"window"`
	Assets   AssetsConfig `toml:"assets"`
	Camera   CameraConfig `toml:"camera"`
	Shapes   ShapesConfig `toml:"shapes"`
}

// AssetsConfig lists the files the demo loads at startup.
type AssetsConfig struct {
	Meshes    []string `toml:"meshes"`
	ShaderDir string   `toml:"shader_dir"`
	// Texture is sampled by the cube and the loaded meshes. A checker is
	// generated when it is empty or fails to load.
	Texture   string   `toml:"texture"`
	Watch     bool     `toml:"watch"`
}

// CameraConfig is the initial state of the fly camera.
type CameraConfig struct {
	Position   [3]float32 `toml:"position"`
	Speed      float32    `toml:"speed"`
	FOV        float32    `toml:"fov"` // degrees
	Near       float32    `toml:"near"`
	Far        float32    `toml:"far"`
	MouseScale float32    `toml:"mouse_scale"`
}

// ShapesConfig sets the tessellation of the generated shapes.
type ShapesConfig struct {
	SphereSlices int `toml:"sphere_slices"`
	SphereStacks int `toml:"sphere_stacks"`
	PlaneSlices  int `toml:"plane_slices"`
	PlaneStacks  int `toml:"plane_stacks"`
	LoopLayers   int `toml:"loop_layers"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Window:   DefaultWindowConfig(),
		Assets: AssetsConfig{
			Meshes:    []string{"assets/meshes/pyramid.obj"},
			ShaderDir: "assets/shaders",
			Texture:   "assets/textures/checker.png",
			Watch:     true,
		},
		Camera: CameraConfig{
			Position:   [3]float32{0, 0, 3},
			Speed:      10,
			FOV:        75,
			Near:       0.01,
			Far:        100,
			MouseScale: 0.1,
		},
		Shapes: ShapesConfig{
			SphereSlices: 8,
			SphereStacks: 8,
			PlaneSlices:  1,
			PlaneStacks:  1,
			LoopLayers:   10,
		},
	}
}

// LoadConfig reads path on top of DefaultConfig. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	if err := DecodeConfig(f, &cfg); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes TOML from r into cfg, rejecting unknown keys.
func DecodeConfig(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate rejects settings the demo cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Near >= c.Camera.Far {
		return fmt.Errorf("camera near %v must be less than far %v", c.Camera.Near, c.Camera.Far)
	}
	if c.Shapes.LoopLayers < 1 {
		return fmt.Errorf("loop_layers must be at least 1, got %d", c.Shapes.LoopLayers)
	}
	return nil
}
