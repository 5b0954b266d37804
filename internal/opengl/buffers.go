package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"graphics-demos/scene"
)

var (
	// ErrInvalidHandle is returned when drawing geometry that is not allocated.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrInvalidTransition is returned for an illegal buffer-set state change.
	ErrInvalidTransition = errors.New("invalid buffer state transition")
)

// Fixed attribute slots shared by every shader that draws a Mesh.
const (
	SlotPosition uint32 = 0
	SlotNormal   uint32 = 1
	SlotTexCoord uint32 = 2
)

// BufferState tracks the lifecycle of a Buffers value.
type BufferState int

const (
	Unallocated BufferState = iota
	Allocated
	Released
)

func (s BufferState) String() string {
	switch s {
	case Unallocated:
		return "unallocated"
	case Allocated:
		return "allocated"
	case Released:
		return "released"
	}
	return fmt.Sprintf("BufferState(%d)", int(s))
}

// Buffers is the set of GPU objects backing one mesh. A zero handle means none.
// Only Unallocated -> Allocated -> Released is legal.
type Buffers struct {
	VAO      uint32
	Position uint32
	Normal   uint32
	TexCoord uint32 // 0 when the mesh has no texture coordinates
	Index    uint32 // 0 for expanded meshes

	count   int32
	indexed bool
	state   BufferState
}

// State returns where b is in its lifecycle.
func (b *Buffers) State() BufferState { return b.state }

// Upload allocates a vertex array plus one buffer per populated stream and copies
// the mesh into them. The mesh is only read.
func (b *Buffers) Upload(api API, m *scene.Mesh) error {
	if b.state != Unallocated {
		return fmt.Errorf("%w: upload from %v", ErrInvalidTransition, b.state)
	}
	if err := m.Validate(); err != nil {
		return err
	}

	b.VAO = api.GenVertexArray()
	api.BindVertexArray(b.VAO)

	b.Position = uploadAttribute(api, SlotPosition, 3,
		len(m.Positions)*int(unsafe.Sizeof(m.Positions[0])), unsafe.Pointer(&m.Positions[0]))
	b.Normal = uploadAttribute(api, SlotNormal, 3,
		len(m.Normals)*int(unsafe.Sizeof(m.Normals[0])), unsafe.Pointer(&m.Normals[0]))

	if m.HasTexCoords() {
		b.TexCoord = uploadAttribute(api, SlotTexCoord, 2,
			len(m.TexCoords)*int(unsafe.Sizeof(m.TexCoords[0])), unsafe.Pointer(&m.TexCoords[0]))
	}

	if m.Indexed() {
		b.Index = api.GenBuffer()
		api.BindBuffer(ElementArrayBuffer, b.Index)
		api.BufferData(ElementArrayBuffer, len(m.Indices)*2, unsafe.Pointer(&m.Indices[0]), StaticDraw)
	}

	api.BindVertexArray(0)
	api.BindBuffer(ArrayBuffer, 0)
	api.BindBuffer(ElementArrayBuffer, 0)

	b.count = int32(m.Count)
	b.indexed = m.Indexed()
	b.state = Allocated
	return nil
}

func uploadAttribute(api API, slot uint32, components int32, size int, data unsafe.Pointer) uint32 {
	buf := api.GenBuffer()
	api.BindBuffer(ArrayBuffer, buf)
	api.BufferData(ArrayBuffer, size, data, StaticDraw)
	api.VertexAttribPointer(slot, components)
	api.EnableVertexAttribArray(slot)
	return buf
}

// Draw issues one triangle-list draw: indexed with 16-bit indices when an index
// buffer exists, otherwise sequential vertices.
func (b *Buffers) Draw(api API) error {
	if b.state != Allocated || b.VAO == 0 {
		return fmt.Errorf("%w: draw while %v", ErrInvalidHandle, b.state)
	}
	api.BindVertexArray(b.VAO)
	if b.indexed {
		api.DrawElements(Triangles, b.count)
	} else {
		api.DrawArrays(Triangles, 0, b.count)
	}
	api.BindVertexArray(0)
	return nil
}

// Release deletes every allocated object and resets all handles.
// Releasing twice is a no-op; releasing before upload is an error.
func (b *Buffers) Release(api API) error {
	switch b.state {
	case Released:
		return nil
	case Unallocated:
		return fmt.Errorf("%w: release while %v", ErrInvalidTransition, b.state)
	}

	for _, buf := range []uint32{b.Position, b.Normal, b.TexCoord, b.Index} {
		if buf != 0 {
			api.DeleteBuffer(buf)
		}
	}
	api.DeleteVertexArray(b.VAO)

	b.VAO, b.Position, b.Normal, b.TexCoord, b.Index = 0, 0, 0, 0, 0
	b.count = 0
	b.indexed = false
	b.state = Released
	return nil
}
