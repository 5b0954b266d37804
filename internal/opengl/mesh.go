package opengl

import (
	"fmt"

	"graphics-demos/scene"
)

// GPUMesh is a CPU mesh plus the GPU objects it was uploaded to.
// It is immutable after creation; rebuild it to change geometry.
// Call Destroy before the GL context goes away.
type GPUMesh struct {
	Data    *scene.Mesh
	Buffers Buffers
	api     API
}

// CreateMesh builds the mesh described by src and uploads it.
func CreateMesh(api API, src scene.Source) (*GPUMesh, error) {
	data, err := scene.Build(src)
	if err != nil {
		return nil, err
	}
	return UploadMesh(api, data)
}

// UploadMesh uploads an already built mesh.
func UploadMesh(api API, data *scene.Mesh) (*GPUMesh, error) {
	m := &GPUMesh{Data: data, api: api}
	if err := m.Buffers.Upload(api, data); err != nil {
		return nil, fmt.Errorf("upload %s: %w", data.Name, err)
	}
	return m, nil
}

// Draw issues the mesh draw call with whatever program is bound.
func (m *GPUMesh) Draw() error {
	if err := m.Buffers.Draw(m.api); err != nil {
		return fmt.Errorf("draw %s: %w", m.Data.Name, err)
	}
	return nil
}

// Destroy releases the GPU objects. Calling it again does nothing.
func (m *GPUMesh) Destroy() error {
	return m.Buffers.Release(m.api)
}

// DrawMesh draws m, failing with ErrInvalidHandle after Destroy.
func DrawMesh(m *GPUMesh) error { return m.Draw() }

// DestroyMesh releases m's GPU objects.
func DestroyMesh(m *GPUMesh) error { return m.Destroy() }
