package opengl

import (
	"github.com/ThatOtherAndrew/glclock/internal/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// maxPendingErrors bounds the glGetError drain; a lost context can keep
// reporting the same code forever.
const maxPendingErrors = 16

type Context struct {
	clearColor [4]float32
}

func New(clearColor [4]float32) *Context {
	return &Context{clearColor: clearColor}
}

// Init loads the GL entry points for the context current on this thread.
func (c *Context) Init() error {
	if err := gl.Init(); err != nil {
		return &ContextInitError{Op: "load OpenGL functions", Err: err}
	}

	logging.Info("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.ClearColor(c.clearColor[0], c.clearColor[1], c.clearColor[2], c.clearColor[3])
	return nil
}

func (c *Context) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (c *Context) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Check drains the GL error queue and reports everything pending as one
// APIError tagged with stage.
func (c *Context) Check(stage string) error {
	var codes []uint32
	for i := 0; i < maxPendingErrors; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil
	}
	return &APIError{Stage: stage, Codes: codes}
}
