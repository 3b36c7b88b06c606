package shaders

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("0x%x", shaderType)
	}
}

func compileFromFile(fsys fs.FS, path string, shaderType uint32) (uint32, error) {
	sourceBytes, err := fs.ReadFile(fsys, path)
	if err != nil {
		return 0, &CompileError{Path: path, Stage: stageName(shaderType), Err: err}
	}

	shader, infoLog, ok := compileSource(string(sourceBytes), shaderType)
	if !ok {
		return 0, &CompileError{Path: path, Stage: stageName(shaderType), Log: infoLog}
	}

	return shader, nil
}

func compileSource(source string, shaderType uint32) (uint32, string, bool) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logMsg))

		gl.DeleteShader(shader)
		return 0, cleanLog(logMsg), false
	}

	return shader, "", true
}

func cleanLog(s string) string {
	return strings.TrimSpace(strings.TrimRight(s, "\x00"))
}
