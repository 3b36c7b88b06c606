package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type ContextInitError struct {
	Op  string
	Err error
}

func (e *ContextInitError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *ContextInitError) Unwrap() error {
	return e.Err
}

type APIError struct {
	Stage string
	Codes []uint32
}

func (e *APIError) Error() string {
	names := make([]string, len(e.Codes))
	for i, code := range e.Codes {
		names[i] = ErrorName(code)
	}
	return fmt.Sprintf("OpenGL error in %s: %s", e.Stage, strings.Join(names, ", "))
}

func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}
