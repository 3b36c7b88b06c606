package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowError struct {
	msg string
	err error
}

func (e *WindowError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *WindowError) Unwrap() error {
	return e.err
}

type Window struct {
	window   *glfw.Window
	onResize func(width, height int)
}

// New opens a fixed-size window with an OpenGL 4.1 core context and makes
// the context current on the calling thread.
func New(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &WindowError{"failed to initialise GLFW", err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &WindowError{"failed to create window", err}
	}

	w := &Window{window: win}
	win.SetKeyCallback(w.keyCallback)
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	win.MakeContextCurrent()

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return w, nil
}

// OnResize registers fn to receive framebuffer sizes in pixels.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if isQuit(key, action) {
		win.SetShouldClose(true)
	}
}

func (w *Window) framebufferSizeCallback(win *glfw.Window, width, height int) {
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

func isQuit(key glfw.Key, action glfw.Action) bool {
	return key == glfw.KeyQ && action == glfw.Press
}
