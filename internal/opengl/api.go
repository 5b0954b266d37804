package opengl

import "unsafe"

// Target is a buffer binding point.
type Target uint8

const (
	ArrayBuffer Target = iota
	ElementArrayBuffer
)

// Usage is the buffer data store usage hint.
type Usage uint8

const (
	StaticDraw Usage = iota
	DynamicDraw
)

// Primitive is the topology of a draw call.
type Primitive uint8

const (
	Triangles Primitive = iota
	Lines
	LineLoop
	LineStrip
)

// API is the subset of OpenGL the geometry uploader issues.
// GL implements it; tests substitute a recorder.
type API interface {
	GenVertexArray() uint32
	GenBuffer() uint32
	BindVertexArray(vao uint32)
	BindBuffer(target Target, buffer uint32)
	BufferData(target Target, size int, data unsafe.Pointer, usage Usage)
	BufferSubData(target Target, size int, data unsafe.Pointer)
	// VertexAttribPointer describes a tightly packed float attribute at slot.
	VertexAttribPointer(slot uint32, components int32)
	EnableVertexAttribArray(slot uint32)
	DeleteBuffer(buffer uint32)
	DeleteVertexArray(vao uint32)
	DrawArrays(mode Primitive, first, count int32)
	// DrawElements draws count unsigned 16-bit indices from the bound element buffer.
	DrawElements(mode Primitive, count int32)

	GenTexture() uint32
	// BindTexture binds tex as the 2D texture of the given texture unit.
	BindTexture(unit uint32, tex uint32)
	// TexImage2D stores RGBA8 pixels in the bound 2D texture, sampled with
	// linear filtering and clamped at the edges.
	TexImage2D(width, height int32, pixels unsafe.Pointer)
	DeleteTexture(tex uint32)
}
