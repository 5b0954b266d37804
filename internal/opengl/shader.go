package opengl

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program. A zero ID draws nothing useful but is
// safe to bind, so a failed build leaves the demo running.
type Program struct {
	ID       uint32
	Name     string
	uniforms map[string]int32
}

// checkShaderPath enforces the stage extension and that the file is readable.
func checkShaderPath(path, ext string) error {
	if filepath.Ext(path) != ext {
		return fmt.Errorf("shader %s: expected %s extension", path, ext)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("shader %s: %w", path, err)
	}
	return nil
}

// LoadProgram reads, compiles and links a vertex/fragment pair.
// Path problems are returned; compile and link failures are logged and yield
// a Program with ID 0.
func LoadProgram(vertPath, fragPath string) (*Program, error) {
	if err := checkShaderPath(vertPath, ".vert"); err != nil {
		return nil, err
	}
	if err := checkShaderPath(fragPath, ".frag"); err != nil {
		return nil, err
	}
	vertSrc, err := os.ReadFile(vertPath)
	if err != nil {
		return nil, err
	}
	fragSrc, err := os.ReadFile(fragPath)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(vertPath), ".vert") + "+" +
		strings.TrimSuffix(filepath.Base(fragPath), ".frag")
	p := &Program{Name: name, uniforms: make(map[string]int32)}

	id, err := newProgram(string(vertSrc), string(fragSrc))
	if err != nil {
		slog.Error("shader program failed", "program", name, "err", err)
		return p, nil
	}
	p.ID = id
	return p, nil
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(frag)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// Use makes p the current program.
func (p *Program) Use() { gl.UseProgram(p.ID) }

func (p *Program) location(name string) int32 {
	if p.ID == 0 {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetMat4 sets a mat4 uniform of the current program. Unknown names are ignored.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// SetMat3 sets a mat3 uniform, typically the normal matrix.
func (p *Program) SetMat3(name string, m mgl32.Mat3) {
	if loc := p.location(name); loc >= 0 {
		gl.UniformMatrix3fv(loc, 1, false, &m[0])
	}
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, f float32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1f(loc, f)
	}
}

// SetInt sets an int uniform, such as the texture unit of a sampler.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

// Delete frees the program object.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
	clear(p.uniforms)
}
