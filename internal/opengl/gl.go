package opengl

import (
	"fmt"
	"log/slog"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"graphics-demos/core"
)

// GL issues API calls against the current OpenGL context.
type GL struct{}

// Init loads OpenGL function pointers and sets the fixed render state.
// Must be called after the GLFW window context is made current.
func Init() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("opengl ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	return &GL{}, nil
}

func (GL) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (GL) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (GL) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (GL) BindBuffer(target Target, buffer uint32) { gl.BindBuffer(glTarget(target), buffer) }

func (GL) BufferData(target Target, size int, data unsafe.Pointer, usage Usage) {
	u := uint32(gl.STATIC_DRAW)
	if usage == DynamicDraw {
		u = gl.DYNAMIC_DRAW
	}
	gl.BufferData(glTarget(target), size, data, u)
}

func (GL) BufferSubData(target Target, size int, data unsafe.Pointer) {
	gl.BufferSubData(glTarget(target), 0, size, data)
}

func (GL) VertexAttribPointer(slot uint32, components int32) {
	gl.VertexAttribPointer(slot, components, gl.FLOAT, false, components*4, nil)
}

func (GL) EnableVertexAttribArray(slot uint32) { gl.EnableVertexAttribArray(slot) }

func (GL) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (GL) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (GL) DrawArrays(mode Primitive, first, count int32) {
	gl.DrawArrays(glPrimitive(mode), first, count)
}

func (GL) DrawElements(mode Primitive, count int32) {
	gl.DrawElements(glPrimitive(mode), count, gl.UNSIGNED_SHORT, nil)
}

func (GL) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (GL) BindTexture(unit uint32, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

func (GL) TexImage2D(width, height int32, pixels unsafe.Pointer) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
}

func (GL) DeleteTexture(tex uint32) { gl.DeleteTextures(1, &tex) }

// Clear clears the colour and depth buffers.
func (GL) Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (GL) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetWireframe toggles line polygon mode.
func (GL) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func glTarget(t Target) uint32 {
	if t == ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func glPrimitive(p Primitive) uint32 {
	switch p {
	case Lines:
		return gl.LINES
	case LineLoop:
		return gl.LINE_LOOP
	case LineStrip:
		return gl.LINE_STRIP
	}
	return gl.TRIANGLES
}
