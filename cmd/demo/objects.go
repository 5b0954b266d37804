package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"graphics-demos/core"
	"graphics-demos/internal/opengl"
	"graphics-demos/scene"
)

type demoObject int

const (
	objectLoops demoObject = iota
	objectShapes
	objectCube
	objectSphere
	objectMesh
	objectCount
)

func (o demoObject) String() string {
	switch o {
	case objectLoops:
		return "line loops"
	case objectShapes:
		return "shapes"
	case objectCube:
		return "interpolated cube"
	case objectSphere:
		return "orbiting sphere"
	case objectMesh:
		return "loaded mesh"
	}
	return fmt.Sprintf("object(%d)", int(o))
}

type programs struct {
	normals  *opengl.Program
	tcoords  *opengl.Program
	uniform  *opengl.Program
	textured *opengl.Program
	light    *opengl.Program
	lines    *opengl.Program
}

// loadPrograms builds every program or none: on failure the ones already
// built are deleted.
func loadPrograms(dir string) (programs, error) {
	var (
		p   programs
		err error
	)
	load := func(dst **opengl.Program, vert, frag string) {
		if err != nil {
			return
		}
		*dst, err = opengl.LoadProgram(filepath.Join(dir, vert), filepath.Join(dir, frag))
	}
	load(&p.normals, "default.vert", "normal_color.frag")
	load(&p.tcoords, "default.vert", "tcoord_color.frag")
	load(&p.uniform, "default.vert", "uniform_color.frag")
	load(&p.textured, "default.vert", "texture.frag")
	load(&p.light, "default.vert", "point_light.frag")
	load(&p.lines, "lines.vert", "lines.frag")
	if err != nil {
		p.delete()
		return programs{}, err
	}
	return p, nil
}

func (p programs) delete() {
	for _, prog := range []*opengl.Program{p.normals, p.tcoords, p.uniform, p.textured, p.light, p.lines} {
		if prog != nil {
			prog.Delete()
		}
	}
}

// frame is the per-frame state every object draws with.
type frame struct {
	time     float32
	view     mgl32.Mat4
	proj     mgl32.Mat4
	cameraAt mgl32.Vec3
}

// demo owns every GPU resource the demo draws.
type demo struct {
	api   opengl.API
	progs programs

	plane  *opengl.GPUMesh
	cube   *opengl.GPUMesh
	sphere *opengl.GPUMesh

	meshPaths []string
	meshes    map[string]*opengl.GPUMesh

	white   *opengl.Texture
	surface *opengl.Texture

	loops [][]mgl32.Vec2
	lines *opengl.DynamicBuffer

	object demoObject
}

var unitSquare = []mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

func newDemo(api opengl.API, cfg core.Config) (*demo, error) {
	progs, err := loadPrograms(cfg.Assets.ShaderDir)
	if err != nil {
		return nil, err
	}
	d := &demo{
		api:    api,
		progs:  progs,
		meshes: make(map[string]*opengl.GPUMesh),
	}

	shapes := []struct {
		dst **opengl.GPUMesh
		src scene.ShapeSource
	}{
		{&d.plane, scene.ShapeSource{Kind: scene.ShapePlane,
			Options: scene.ShapeOptions{Slices: cfg.Shapes.PlaneSlices, Stacks: cfg.Shapes.PlaneStacks}}},
		{&d.cube, scene.ShapeSource{Kind: scene.ShapeCube}},
		{&d.sphere, scene.ShapeSource{Kind: scene.ShapeSphere,
			Options: scene.ShapeOptions{Slices: cfg.Shapes.SphereSlices, Stacks: cfg.Shapes.SphereStacks}}},
	}
	for _, s := range shapes {
		if *s.dst, err = opengl.CreateMesh(api, s.src); err != nil {
			d.destroy()
			return nil, fmt.Errorf("%v: %w", s.src, err)
		}
	}

	if err := d.loadMeshes(cfg.Assets.Meshes); err != nil {
		d.destroy()
		return nil, err
	}
	if err := d.loadTextures(cfg.Assets.Texture); err != nil {
		d.destroy()
		return nil, err
	}

	d.loops = scene.SubdivideLoop(unitSquare, cfg.Shapes.LoopLayers)
	d.lines = opengl.NewDynamicBuffer(api, len(unitSquare)*cfg.Shapes.LoopLayers)
	return d, nil
}

// loadMeshes builds and uploads every mesh file once, in order.
func (d *demo) loadMeshes(paths []string) error {
	for _, path := range paths {
		if _, dup := d.meshes[path]; dup {
			slog.Warn("mesh listed twice, skipping", "path", path)
			continue
		}
		m, err := opengl.CreateMesh(d.api, scene.FileSource{Path: path})
		if err != nil {
			return err
		}
		d.meshPaths = append(d.meshPaths, path)
		d.meshes[path] = m
		slog.Info("mesh loaded", "path", path, "vertices", m.Data.VertexCount(), "texcoords", m.Data.HasTexCoords())
	}
	return nil
}

var (
	checkerLight = color.RGBA{230, 200, 150, 255}
	checkerDark  = color.RGBA{120, 80, 50, 255}
)

// loadTextures uploads a white texture for untextured draws and the surface
// texture read from path, falling back to a generated checker.
func (d *demo) loadTextures(path string) error {
	var err error
	if d.white, err = opengl.UploadTexture(d.api, scene.NewSolidTexture("white", color.RGBA{255, 255, 255, 255})); err != nil {
		return err
	}

	var src *scene.Texture
	if path != "" {
		if src, err = scene.LoadTexture(path); err != nil {
			slog.Warn("texture unavailable, using checker", "path", path, "err", err)
		}
	}
	if src == nil {
		src = scene.NewCheckerTexture("checker", 64, 8, checkerLight, checkerDark)
	}
	if d.surface, err = opengl.UploadTexture(d.api, src); err != nil {
		return err
	}
	slog.Info("texture loaded", "name", src.Name, "width", src.Width, "height", src.Height)
	return nil
}

// next advances to the following object, wrapping after the last one.
func (d *demo) next() {
	d.object = (d.object + 1) % objectCount
	fmt.Printf("object=%d\n", int(d.object)+1)
	slog.Info("object switched", "object", int(d.object)+1, "name", d.object)
}

// reload rebuilds the mesh at path. On failure the previous mesh stays in use.
func (d *demo) reload(path string) {
	old, ok := d.meshes[path]
	if !ok {
		return
	}
	m, err := opengl.CreateMesh(d.api, scene.FileSource{Path: path})
	if err != nil {
		slog.Error("mesh reload failed, keeping previous version", "path", path, "err", err)
		return
	}
	if err := old.Destroy(); err != nil {
		slog.Warn("destroy replaced mesh", "path", path, "err", err)
	}
	d.meshes[path] = m
	slog.Info("mesh reloaded", "path", path, "vertices", m.Data.VertexCount())
}

func (d *demo) render(f frame) error {
	switch d.object {
	case objectLoops:
		return d.drawLoops(f)
	case objectShapes:
		return d.drawShapes(f)
	case objectCube:
		return d.drawCube(f)
	case objectSphere:
		return d.drawSphere(f)
	case objectMesh:
		return d.drawMeshes(f)
	}
	return nil
}

func drawWith(p *opengl.Program, m *opengl.GPUMesh, world mgl32.Mat4, f frame) error {
	p.Use()
	p.SetMat4("u_mvp", f.proj.Mul4(f.view).Mul4(world))
	p.SetMat4("u_world", world)
	p.SetMat3("u_normal", core.NormalMatrix(world))
	return m.Draw()
}

// drawLoops spins every subdivision layer at its own rate, rewriting the
// dynamic buffer each frame.
func (d *demo) drawLoops(f frame) error {
	spun := make([][]mgl32.Vec2, len(d.loops))
	for i, loop := range d.loops {
		rot := mgl32.Rotate2D(f.time * 0.25 * float32(i+1))
		spun[i] = make([]mgl32.Vec2, len(loop))
		for j, p := range loop {
			spun[i][j] = rot.Mul2x1(p)
		}
	}
	points, offsets := scene.Flatten(spun)
	if err := d.lines.Replace(points); err != nil {
		return err
	}

	d.progs.lines.Use()
	d.progs.lines.SetMat4("u_mvp", f.proj.Mul4(f.view))
	for i, first := range offsets {
		t := float32(i) / float32(max(len(offsets)-1, 1))
		d.progs.lines.SetVec3("u_color", core.ColorRed.Lerp(core.ColorBlue, t).Vec3())
		if err := d.lines.DrawRange(opengl.LineLoop, first, len(spun[i])); err != nil {
			return err
		}
	}
	return nil
}

func (d *demo) drawShapes(f frame) error {
	spin := mgl32.HomogRotate3DY(f.time * 0.5)
	// The generated plane spans [0,1]; centre it before placing.
	plane := mgl32.Translate3D(-2.5, 0, 0).Mul4(spin).Mul4(mgl32.Translate3D(-0.5, -0.5, 0))
	if err := drawWith(d.progs.normals, d.plane, plane, f); err != nil {
		return err
	}
	d.progs.tcoords.Use()
	d.progs.tcoords.SetVec3("u_color", core.ColorWhite.Vec3())
	if err := drawWith(d.progs.tcoords, d.cube, spin, f); err != nil {
		return err
	}
	sphere := mgl32.Translate3D(2.5, 0, 0).Mul4(spin).Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))
	return drawWith(d.progs.normals, d.sphere, sphere, f)
}

var (
	cubeFrom = core.Transform{
		Position: mgl32.Vec3{-1.5, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{0.5, 0.5, 0.5},
	}
	cubeTo = core.Transform{
		Position: mgl32.Vec3{1.5, 0, 0},
		Rotation: mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1}),
		Scale:    mgl32.Vec3{1.5, 1.5, 1.5},
	}
)

func (d *demo) drawCube(f frame) error {
	a := math32.Cos(f.time)*0.5 + 0.5
	world := cubeFrom.Interpolate(cubeTo, a).Matrix()
	tint := core.ColorGreen.Lerp(core.ColorBlue, a)

	if err := d.surface.Bind(0); err != nil {
		return err
	}
	p := d.progs.textured
	p.Use()
	p.SetInt("u_tex", 0)
	p.SetVec3("u_color", tint.Vec3())
	return drawWith(p, d.cube, world, f)
}

func (d *demo) drawSphere(f frame) error {
	orbit := mgl32.Vec3{math32.Cos(f.time), 0, math32.Sin(f.time)}.Mul(1.5)
	world := mgl32.Translate3D(orbit.Elem()).Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))
	return drawWith(d.progs.normals, d.sphere, world, f)
}

func (d *demo) drawMeshes(f frame) error {
	light := mgl32.Vec3{math32.Cos(f.time) * 3, 2, math32.Sin(f.time) * 3}

	p := d.progs.light
	p.Use()
	p.SetVec3("u_cameraPosition", f.cameraAt)
	p.SetVec3("u_lightPosition", light)
	p.SetVec3("u_lightColor", core.ColorWhite.Vec3())
	p.SetFloat("u_lightRadius", 4)
	p.SetFloat("u_ambientFactor", 0.25)
	p.SetFloat("u_diffuseFactor", 1)
	p.SetFloat("u_specularPower", 64)
	p.SetInt("u_tex", 0)

	for _, path := range d.meshPaths {
		m := d.meshes[path]
		tex := d.white
		if m.Data.HasTexCoords() {
			tex = d.surface
		}
		if err := tex.Bind(0); err != nil {
			return err
		}
		if err := drawWith(p, m, mgl32.Ident4(), f); err != nil {
			return err
		}
	}
	if err := d.white.Bind(0); err != nil {
		return err
	}

	// Floor: the XY unit plane laid flat and centred under the mesh.
	floor := mgl32.Translate3D(0, -0.5, 0).
		Mul4(mgl32.Scale3D(10, 1, 10)).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(-90))).
		Mul4(mgl32.Translate3D(-0.5, -0.5, 0))
	if err := drawWith(p, d.plane, floor, f); err != nil {
		return err
	}

	marker := mgl32.Translate3D(light.Elem()).Mul4(mgl32.Scale3D(0.1, 0.1, 0.1))
	d.progs.uniform.Use()
	d.progs.uniform.SetVec3("u_color", core.ColorWhite.Vec3())
	d.progs.uniform.SetFloat("u_intensity", 1)
	return drawWith(d.progs.uniform, d.sphere, marker, f)
}

func (d *demo) destroy() {
	for _, m := range []*opengl.GPUMesh{d.plane, d.cube, d.sphere} {
		if m != nil {
			m.Destroy()
		}
	}
	for _, m := range d.meshes {
		m.Destroy()
	}
	for _, t := range []*opengl.Texture{d.white, d.surface} {
		if t != nil {
			t.Delete()
		}
	}
	if d.lines != nil {
		d.lines.Destroy()
	}
	d.progs.delete()
}
