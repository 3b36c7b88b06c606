package main

import (
	"runtime"

	"github.com/ThatOtherAndrew/glclock/internal/config"
	"github.com/ThatOtherAndrew/glclock/internal/draw"
	"github.com/ThatOtherAndrew/glclock/internal/logging"
	"github.com/ThatOtherAndrew/glclock/internal/opengl"
	"github.com/ThatOtherAndrew/glclock/internal/shaders"
	"github.com/ThatOtherAndrew/glclock/internal/shapes"
	"github.com/ThatOtherAndrew/glclock/pkg/window"
)

const (
	windowWidth  = 600
	windowHeight = 400
	windowTitle  = "Clock"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		logging.Fatal("%v", err)
	}
}

func run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if err := logging.SetLevel(settings.LogLevel); err != nil {
		return err
	}

	win, err := window.New(windowWidth, windowHeight, windowTitle, settings.VSync)
	if err != nil {
		return &opengl.ContextInitError{Op: "create window", Err: err}
	}
	defer win.Destroy()

	ctx := opengl.New(settings.ClearColor)
	if err := ctx.Init(); err != nil {
		return err
	}
	win.OnResize(ctx.Resize)
	ctx.Resize(win.GetFramebufferSize())

	program := shaders.New(shaders.Sources(settings.ShaderDir))
	defer program.Delete()
	if err := program.AttachVertexShader(shaders.VertexPath); err != nil {
		return err
	}
	if err := program.AttachFragmentShader(shaders.FragmentPath); err != nil {
		return err
	}
	if err := program.Link(); err != nil {
		return err
	}

	hands := settings.Hands()

	disk := shapes.NewDisk(settings.DiskSegments, settings.DiskColor)
	defer disk.Destroy()
	second := shapes.NewTriangle(hands[0].Color)
	defer second.Destroy()
	minute := shapes.NewTriangle(hands[1].Color)
	defer minute.Destroy()
	hour := shapes.NewTriangle(hands[2].Color)
	defer hour.Destroy()

	scene := draw.New(ctx, program, disk, [3]draw.Drawable{second, minute, hour}, draw.WithHands(hands))

	if err := ctx.Check("initialize"); err != nil {
		return err
	}
	logging.Info("Clock running, press Q to quit")

	for !win.ShouldClose() {
		scene.Draw()
		if err := ctx.Check("display"); err != nil {
			return err
		}
		win.SwapBuffers()
		win.PollEvents()
	}

	return nil
}
