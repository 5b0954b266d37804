package opengl

import (
	"fmt"
	"unsafe"

	"graphics-demos/scene"
)

// Texture is an uploaded 2D texture. Call Delete before the GL context goes away.
type Texture struct {
	ID     uint32
	Name   string
	Width  int
	Height int
	api    API
}

// UploadTexture copies tex into a new GPU texture object on unit 0.
// The CPU-side texture is not retained.
func UploadTexture(api API, tex *scene.Texture) (*Texture, error) {
	if tex == nil {
		return nil, fmt.Errorf("upload texture: nil texture")
	}
	if err := tex.Validate(); err != nil {
		return nil, fmt.Errorf("upload texture: %w", err)
	}

	t := &Texture{Name: tex.Name, Width: tex.Width, Height: tex.Height, api: api}
	t.ID = api.GenTexture()
	api.BindTexture(0, t.ID)
	api.TexImage2D(int32(tex.Width), int32(tex.Height), unsafe.Pointer(&tex.Pixels[0]))
	api.BindTexture(0, 0)
	return t, nil
}

// Bind makes the texture current on the given unit.
func (t *Texture) Bind(unit uint32) error {
	if t.ID == 0 {
		return fmt.Errorf("%w: bind texture %s after delete", ErrInvalidHandle, t.Name)
	}
	t.api.BindTexture(unit, t.ID)
	return nil
}

// Delete frees the texture object. Calling it again does nothing.
func (t *Texture) Delete() {
	if t.ID == 0 {
		return
	}
	t.api.DeleteTexture(t.ID)
	t.ID = 0
}
