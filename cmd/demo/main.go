package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"graphics-demos/core"
	"graphics-demos/internal/opengl"
	"graphics-demos/scene"
)

func main() {
	configPath := flag.String("config", "demo.toml", "TOML configuration file; defaults are used when it does not exist")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("demo aborted", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := core.SetupLogging(cfg.LogLevel); err != nil {
		return err
	}

	input := core.NewInput()
	window, err := core.NewWindow(cfg.Window, input)
	if err != nil {
		return err
	}
	defer window.Destroy()

	api, err := opengl.Init()
	if err != nil {
		return err
	}

	d, err := newDemo(api, cfg)
	if err != nil {
		return err
	}
	defer d.destroy()

	var watcher *scene.Watcher
	if cfg.Assets.Watch && len(cfg.Assets.Meshes) > 0 {
		watcher, err = scene.NewWatcher(cfg.Assets.Meshes)
		if err != nil {
			slog.Warn("asset hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	camera := scene.NewFlyCamera(mgl32.Vec3(cfg.Camera.Position),
		mgl32.DegToRad(cfg.Camera.FOV), cfg.Camera.Near, cfg.Camera.Far)
	camera.Speed = cfg.Camera.Speed
	camera.MouseScale = cfg.Camera.MouseScale
	camera.Controls = scene.FlyControls{
		Forward: core.KeyW,
		Back:    core.KeyS,
		Left:    core.KeyA,
		Right:   core.KeyD,
		Up:      core.KeySpace,
		Down:    core.KeyLeftShift,
	}

	printControls()
	fmt.Printf("object=%d\n", int(d.object)+1)

	status := &StatusLine{}
	wireframe := false
	lastTime := time.Now()
	titleTime := lastTime
	frames := 0

	for !window.ShouldClose() {
		now := time.Now()
		deltaTime := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		input.SetCursor(window.GetCursorPos())

		if input.IsKeyPressed(core.KeyF) {
			d.next()
		}
		if input.IsKeyPressed(core.KeyC) {
			camera.MouseLook = !camera.MouseLook
			window.SetCursorDisabled(camera.MouseLook)
		}
		if input.IsKeyPressed(core.KeyP) {
			camera.ToggleProjection()
		}
		if input.IsKeyPressed(core.KeyZ) {
			wireframe = !wireframe
			api.SetWireframe(wireframe)
		}
		camera.Update(input, float32(input.MouseDeltaX), float32(input.MouseDeltaY), deltaTime)

		if watcher != nil {
			for _, path := range watcher.Pending() {
				d.reload(path)
			}
		}

		width, height := window.GetFramebufferSize()
		api.Viewport(width, height)
		api.Clear(core.ColorBlack)

		err := d.render(frame{
			time:     float32(core.Time()),
			view:     camera.View(),
			proj:     camera.ProjectionMatrix(window.Aspect()),
			cameraAt: camera.Position,
		})
		if err != nil {
			return fmt.Errorf("render %v: %w", d.object, err)
		}

		window.SwapBuffers()
		input.Advance()
		window.PollEvents()

		frames++
		if elapsed := now.Sub(titleTime); elapsed >= time.Second {
			status.Clear()
			status.Add("%s", cfg.Window.Title)
			status.Add("object=%d %s", int(d.object)+1, d.object)
			status.Add("FPS %d", frames)
			status.Add("%s", map[scene.Projection]string{scene.Perspective: "perspective", scene.Orthographic: "orthographic"}[camera.Projection])
			if camera.MouseLook {
				status.Add("mouse look")
			}
			window.SetTitle(status.String())
			frames = 0
			titleTime = now
		}
	}

	fmt.Println("Exiting...")
	return nil
}

func printControls() {
	fmt.Println("===========================================")
	fmt.Println("  Graphics 1")
	fmt.Println("===========================================")
	fmt.Println("  F              - Next object")
	fmt.Println("  C              - Toggle mouse look")
	fmt.Println("  W / S          - Move forward / backward")
	fmt.Println("  A / D          - Strafe left / right")
	fmt.Println("  Space / LShift - Move up / down")
	fmt.Println("  P              - Toggle orthographic / perspective")
	fmt.Println("  Z              - Toggle wireframe")
	fmt.Println("  ESC            - Exit")
	fmt.Println("===========================================")
}
