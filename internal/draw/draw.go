package draw

import (
	"time"

	"github.com/ThatOtherAndrew/glclock/internal/clock"
	"github.com/ThatOtherAndrew/glclock/internal/models"
	"github.com/go-gl/mathgl/mgl32"
)

const modelUniform = "model"

type Drawable interface {
	Draw()
}

type Program interface {
	UseProgram()
	SetUniform(name string, m mgl32.Mat4)
}

type Surface interface {
	Clear()
}

type hand struct {
	spec  models.HandSpec
	shape Drawable
	angle func(clock.Angles) float32
}

// Scene is everything one frame of the clock needs.
type Scene struct {
	surface Surface
	program Program
	disk    Drawable
	hands   [3]hand
	now     func() time.Time
}

type Option func(*Scene)

func WithClock(now func() time.Time) Option {
	return func(s *Scene) {
		s.now = now
	}
}

// WithHands replaces the second, minute and hour hand specs, in that order.
func WithHands(specs [3]models.HandSpec) Option {
	return func(s *Scene) {
		for i := range s.hands {
			s.hands[i].spec = specs[i]
		}
	}
}

// New wires a scene; hands are the second, minute and hour shapes.
func New(surface Surface, program Program, disk Drawable, hands [3]Drawable, opts ...Option) *Scene {
	specs := models.Hands()
	s := &Scene{
		surface: surface,
		program: program,
		disk:    disk,
		hands: [3]hand{
			{spec: specs[0], shape: hands[0], angle: func(a clock.Angles) float32 { return a.Second }},
			{spec: specs[1], shape: hands[1], angle: func(a clock.Angles) float32 { return a.Minute }},
			{spec: specs[2], shape: hands[2], angle: func(a clock.Angles) float32 { return a.Hour }},
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scene) Draw() {
	angles := clock.At(s.now())

	s.surface.Clear()
	s.program.UseProgram()

	s.program.SetUniform(modelUniform, mgl32.Ident4())
	s.disk.Draw()

	for _, h := range s.hands {
		s.program.SetUniform(modelUniform, HandModel(h.angle(angles), h.spec.ScaleX, h.spec.ScaleY))
		h.shape.Draw()
	}
}

// HandModel rotates clockwise by angle after scaling the hand to (sx, sy).
func HandModel(angle, sx, sy float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(-angle).Mul4(mgl32.Scale3D(sx, sy, 1))
}
