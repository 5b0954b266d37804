package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// DynamicBuffer is a VAO with a single Vec2 stream at slot 0 whose contents are
// rewritten each frame. The store grows when a frame needs more points.
type DynamicBuffer struct {
	VAO    uint32
	Buffer uint32

	capacity int
	count    int
	api      API
	state    BufferState
}

// NewDynamicBuffer allocates room for capacity points.
func NewDynamicBuffer(api API, capacity int) *DynamicBuffer {
	if capacity < 1 {
		capacity = 1
	}
	d := &DynamicBuffer{api: api, capacity: capacity}
	d.VAO = api.GenVertexArray()
	d.Buffer = api.GenBuffer()

	api.BindVertexArray(d.VAO)
	api.BindBuffer(ArrayBuffer, d.Buffer)
	api.BufferData(ArrayBuffer, capacity*vec2Size, nil, DynamicDraw)
	api.VertexAttribPointer(SlotPosition, 2)
	api.EnableVertexAttribArray(SlotPosition)
	api.BindVertexArray(0)
	api.BindBuffer(ArrayBuffer, 0)

	d.state = Allocated
	return d
}

const vec2Size = int(unsafe.Sizeof(mgl32.Vec2{}))

// Len returns the number of points written by the last Replace.
func (d *DynamicBuffer) Len() int { return d.count }

// Capacity returns how many points fit before the store is reallocated.
func (d *DynamicBuffer) Capacity() int { return d.capacity }

// Replace overwrites the buffer with points.
func (d *DynamicBuffer) Replace(points []mgl32.Vec2) error {
	if d.state != Allocated {
		return fmt.Errorf("%w: replace while %v", ErrInvalidHandle, d.state)
	}
	d.count = len(points)
	if len(points) == 0 {
		return nil
	}

	d.api.BindBuffer(ArrayBuffer, d.Buffer)
	size := len(points) * vec2Size
	if len(points) > d.capacity {
		d.capacity = len(points)
		d.api.BufferData(ArrayBuffer, size, unsafe.Pointer(&points[0]), DynamicDraw)
	} else {
		d.api.BufferSubData(ArrayBuffer, size, unsafe.Pointer(&points[0]))
	}
	d.api.BindBuffer(ArrayBuffer, 0)
	return nil
}

// DrawRange draws count points starting at first with the given topology.
func (d *DynamicBuffer) DrawRange(mode Primitive, first, count int) error {
	if d.state != Allocated {
		return fmt.Errorf("%w: draw while %v", ErrInvalidHandle, d.state)
	}
	if first < 0 || count < 0 || first+count > d.count {
		return fmt.Errorf("range [%d,%d) outside %d points", first, first+count, d.count)
	}
	if count == 0 {
		return nil
	}
	d.api.BindVertexArray(d.VAO)
	d.api.DrawArrays(mode, int32(first), int32(count))
	d.api.BindVertexArray(0)
	return nil
}

// Destroy deletes the buffer and VAO. Calling it again does nothing.
func (d *DynamicBuffer) Destroy() {
	if d.state != Allocated {
		return
	}
	d.api.DeleteBuffer(d.Buffer)
	d.api.DeleteVertexArray(d.VAO)
	d.VAO, d.Buffer = 0, 0
	d.count, d.capacity = 0, 0
	d.state = Released
}
