package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownUniform is returned when a uniform name was never declared
// for the program.
var ErrUnknownUniform = errors.New("unknown uniform")

// UniformSetter is the write-only surface of the shading stage. The
// registries and the scene push named values through it and assume they
// are applied before the next draw call.
type UniformSetter interface {
	Use()
	SetUniform(name string, value any) error
}

// uniformWrite pairs a uniform name with its value for batched pushes.
type uniformWrite struct {
	name  string
	value any
}

func pushAll(stage UniformSetter, writes []uniformWrite) error {
	for _, w := range writes {
		if err := stage.SetUniform(w.name, w.value); err != nil {
			return err
		}
	}
	return nil
}

// Program wraps a linked GLSL program and caches uniform locations by
// name. Vertex attributes are bound by layout location in the shader
// sources, so only uniforms need bookkeeping.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

func NewProgram(vertex, fragment string, uniforms []string) (*Program, error) {
	vshader, err := compileShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vshader)

	fshader, err := compileShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fshader)

	prg := &Program{
		handle:   gl.CreateProgram(),
		uniforms: make(map[string]int32, len(uniforms)),
	}

	gl.AttachShader(prg.handle, vshader)
	gl.AttachShader(prg.handle, fshader)
	gl.LinkProgram(prg.handle)

	var status int32
	gl.GetProgramiv(prg.handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteProgram(prg.handle)
		return nil, fmt.Errorf("linker error: %v", programInfoLog(prg.handle))
	}

	// A location of -1 is kept as is: writes to it are ignored by GL,
	// which matches uniforms the compiler optimized away.
	for _, u := range uniforms {
		prg.uniforms[u] = gl.GetUniformLocation(prg.handle, gl.Str(u+"\x00"))
	}

	return prg, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteShader(shader)

		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		infoLog := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(infoLog))

		return 0, fmt.Errorf("compile error: %v", strings.TrimRight(infoLog, "\x00"))
	}

	return shader, nil
}

func programInfoLog(handle uint32) string {
	var length int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &length)
	infoLog := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(handle, length, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

func (p *Program) Dispose() {
	gl.DeleteProgram(p.handle)
}

// SetUniform pushes a named value to the program. The program must be
// in use. Values keep their last pushed state between draw calls.
func (p *Program) SetUniform(name string, value any) error {
	location, found := p.uniforms[name]
	if !found {
		return fmt.Errorf("%w: %v", ErrUnknownUniform, name)
	}

	switch t := value.(type) {
	default:
		return fmt.Errorf("uniform %v has unsupported type %T", name, t)

	case bool:
		if t {
			gl.Uniform1i(location, 1)
		} else {
			gl.Uniform1i(location, 0)
		}

	case int:
		gl.Uniform1i(location, int32(t))
	case int32:
		gl.Uniform1i(location, t)
	case float32:
		gl.Uniform1f(location, t)
	case float64:
		gl.Uniform1f(location, float32(t))

	case mgl32.Vec2:
		gl.Uniform2f(location, t[0], t[1])
	case mgl32.Vec3:
		gl.Uniform3f(location, t[0], t[1], t[2])
	case mgl32.Vec4:
		gl.Uniform4f(location, t[0], t[1], t[2], t[3])

	case mgl32.Mat3:
		gl.UniformMatrix3fv(location, 1, false, &t[0])
	case mgl32.Mat4:
		gl.UniformMatrix4fv(location, 1, false, &t[0])
	}

	return nil
}
