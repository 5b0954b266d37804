package opengl

import (
	"fmt"
	"strings"
	"unsafe"
)

// recorder is an API that hands out sequential handles and records every call.
type recorder struct {
	next     uint32
	calls    []string
	live     map[uint32]bool
	uploads  map[uint32][]byte
	bound    map[Target]uint32
	attribs  map[uint32]int32
	enabled  map[uint32]bool
	draws    []drawCall
	vao      uint32
	vaoElems map[uint32]uint32
	textures map[uint32]texImage
	units    map[uint32]uint32
}

type texImage struct {
	width, height int32
	pixels        []byte
}

type drawCall struct {
	indexed bool
	mode    Primitive
	first   int32
	count   int32
	vao     uint32
}

func newRecorder() *recorder {
	return &recorder{
		live:     make(map[uint32]bool),
		uploads:  make(map[uint32][]byte),
		bound:    make(map[Target]uint32),
		attribs:  make(map[uint32]int32),
		enabled:  make(map[uint32]bool),
		vaoElems: make(map[uint32]uint32),
		textures: make(map[uint32]texImage),
		units:    make(map[uint32]uint32),
	}
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) handle() uint32 {
	r.next++
	r.live[r.next] = true
	return r.next
}

func (r *recorder) GenVertexArray() uint32 {
	h := r.handle()
	r.record("GenVertexArray=%d", h)
	return h
}

func (r *recorder) GenBuffer() uint32 {
	h := r.handle()
	r.record("GenBuffer=%d", h)
	return h
}

func (r *recorder) BindVertexArray(vao uint32) {
	r.vao = vao
	r.record("BindVertexArray(%d)", vao)
}

func (r *recorder) BindBuffer(target Target, buffer uint32) {
	r.bound[target] = buffer
	if target == ElementArrayBuffer && r.vao != 0 && buffer != 0 {
		r.vaoElems[r.vao] = buffer
	}
	r.record("BindBuffer(%d,%d)", target, buffer)
}

func (r *recorder) copyBytes(size int, data unsafe.Pointer) []byte {
	if data == nil {
		return make([]byte, size)
	}
	return append([]byte(nil), unsafe.Slice((*byte)(data), size)...)
}

func (r *recorder) BufferData(target Target, size int, data unsafe.Pointer, usage Usage) {
	r.uploads[r.bound[target]] = r.copyBytes(size, data)
	r.record("BufferData(%d,%d,%d)", target, size, usage)
}

func (r *recorder) BufferSubData(target Target, size int, data unsafe.Pointer) {
	buf := r.uploads[r.bound[target]]
	copy(buf, r.copyBytes(size, data))
	r.record("BufferSubData(%d,%d)", target, size)
}

func (r *recorder) VertexAttribPointer(slot uint32, components int32) {
	r.attribs[slot] = components
	r.record("VertexAttribPointer(%d,%d)", slot, components)
}

func (r *recorder) EnableVertexAttribArray(slot uint32) {
	r.enabled[slot] = true
	r.record("EnableVertexAttribArray(%d)", slot)
}

func (r *recorder) DeleteBuffer(buffer uint32) {
	delete(r.live, buffer)
	r.record("DeleteBuffer(%d)", buffer)
}

func (r *recorder) DeleteVertexArray(vao uint32) {
	delete(r.live, vao)
	r.record("DeleteVertexArray(%d)", vao)
}

func (r *recorder) DrawArrays(mode Primitive, first, count int32) {
	r.draws = append(r.draws, drawCall{mode: mode, first: first, count: count, vao: r.vao})
	r.record("DrawArrays(%d,%d,%d)", mode, first, count)
}

func (r *recorder) DrawElements(mode Primitive, count int32) {
	r.draws = append(r.draws, drawCall{indexed: true, mode: mode, count: count, vao: r.vao})
	r.record("DrawElements(%d,%d)", mode, count)
}

func (r *recorder) GenTexture() uint32 {
	h := r.handle()
	r.record("GenTexture=%d", h)
	return h
}

func (r *recorder) BindTexture(unit uint32, tex uint32) {
	r.units[unit] = tex
	r.record("BindTexture(%d,%d)", unit, tex)
}

func (r *recorder) TexImage2D(width, height int32, pixels unsafe.Pointer) {
	r.textures[r.units[0]] = texImage{width, height, r.copyBytes(int(width*height*4), pixels)}
	r.record("TexImage2D(%d,%d)", width, height)
}

func (r *recorder) DeleteTexture(tex uint32) {
	delete(r.live, tex)
	r.record("DeleteTexture(%d)", tex)
}

func (r *recorder) liveCount() int { return len(r.live) }

// countCalls returns how many recorded calls start with prefix.
func countCalls(r *recorder, prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}
