package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and OpenGL calls must come from the main thread.
	runtime.LockOSThread()
}

// Window is a GLFW window with a current OpenGL context.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

// WindowConfig describes the window created by NewWindow.
type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
	VSync     bool   `toml:"vsync"`
	Debug     bool   `toml:"debug"`
}

// DefaultWindowConfig returns a fixed-size 1280x720 window with vsync.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "Graphics 1",
		Resizable: false,
		VSync:     true,
	}
}

// NewWindow creates a window with a current OpenGL 4.1 core context and routes
// key events into input.
func NewWindow(config WindowConfig, input *Input) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	glfw.WindowHint(glfw.OpenGLDebugContext, boolToInt(config.Debug))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	handle.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		// Repeat events are dropped so keys are either up or down.
		if action == glfw.Repeat {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
		}
		if input != nil {
			input.SetKey(int(key), action == glfw.Press)
		}
	})

	return window, nil
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

// PollEvents processes pending window events, firing the key callback.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

// GetFramebufferSize returns the framebuffer size in pixels.
func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// Aspect returns the framebuffer aspect ratio.
func (w *Window) Aspect() float32 {
	if w.Height == 0 {
		return 1
	}
	return float32(w.Width) / float32(w.Height)
}

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) {
	w.Title = title
	w.Handle.SetTitle(title)
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

// GetCursorPos returns the cursor position in screen coordinates.
func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

// SetCursorDisabled hides and captures the cursor for mouse look.
func (w *Window) SetCursorDisabled(disabled bool) {
	if disabled {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// Time returns seconds since GLFW was initialised.
func Time() float64 {
	return glfw.GetTime()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Key codes used by the demos.
const (
	KeySpace     = int(glfw.KeySpace)
	KeyA         = int(glfw.KeyA)
	KeyC         = int(glfw.KeyC)
	KeyD         = int(glfw.KeyD)
	KeyF         = int(glfw.KeyF)
	KeyP         = int(glfw.KeyP)
	KeyS         = int(glfw.KeyS)
	KeyW         = int(glfw.KeyW)
	KeyZ         = int(glfw.KeyZ)
	KeyEscape    = int(glfw.KeyEscape)
	KeyLeftShift = int(glfw.KeyLeftShift)
)
