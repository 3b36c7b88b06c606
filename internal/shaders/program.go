package shaders

import (
	"io/fs"
	"strings"

	"github.com/ThatOtherAndrew/glclock/internal/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex+fragment pair. Paths given to the Attach
// methods are resolved against the fs.FS passed to New.
type Program struct {
	fsys     fs.FS
	id       uint32
	stages   []uint32
	uniforms map[string]int32

	locate func(program uint32, name string) int32
	upload func(loc int32, m mgl32.Mat4)
}

func New(fsys fs.FS) *Program {
	return &Program{
		fsys:     fsys,
		id:       gl.CreateProgram(),
		uniforms: make(map[string]int32),
		locate:   uniformLocation,
		upload:   uniformMatrix,
	}
}

func uniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func uniformMatrix(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (p *Program) AttachVertexShader(path string) error {
	return p.attach(path, gl.VERTEX_SHADER)
}

func (p *Program) AttachFragmentShader(path string) error {
	return p.attach(path, gl.FRAGMENT_SHADER)
}

func (p *Program) attach(path string, shaderType uint32) error {
	shader, err := compileFromFile(p.fsys, path, shaderType)
	if err != nil {
		return err
	}
	gl.AttachShader(p.id, shader)
	p.stages = append(p.stages, shader)
	logging.Debug("Compiled %s shader %s", stageName(shaderType), path)
	return nil
}

func (p *Program) Link() error {
	gl.LinkProgram(p.id)

	for _, shader := range p.stages {
		gl.DetachShader(p.id, shader)
		gl.DeleteShader(shader)
	}
	p.stages = nil

	var status int32
	gl.GetProgramiv(p.id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p.id, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p.id, logLength, nil, gl.Str(logMsg))
		return &LinkError{Log: cleanLog(logMsg)}
	}

	return nil
}

func (p *Program) UseProgram() {
	gl.UseProgram(p.id)
}

// SetUniform uploads m to the named mat4 uniform of the current program.
// Names the linked program does not declare are skipped.
func (p *Program) SetUniform(name string, m mgl32.Mat4) {
	loc, ok := p.uniforms[name]
	if !ok {
		loc = p.locate(p.id, name)
		p.uniforms[name] = loc
		if loc < 0 {
			logging.Debug("Uniform %q not found in program", name)
		}
	}
	if loc < 0 {
		return
	}
	p.upload(loc, m)
}

func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
}
