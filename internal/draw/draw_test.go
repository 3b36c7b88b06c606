package draw

import (
	"fmt"
	"testing"
	"time"

	"github.com/ThatOtherAndrew/glclock/internal/models"
	"github.com/go-gl/mathgl/mgl32"
)

type recorder struct {
	calls    []string
	uniforms []mgl32.Mat4
}

type fakeSurface struct{ r *recorder }

func (f fakeSurface) Clear() { f.r.calls = append(f.r.calls, "clear") }

type fakeProgram struct{ r *recorder }

func (f fakeProgram) UseProgram() { f.r.calls = append(f.r.calls, "use") }

func (f fakeProgram) SetUniform(name string, m mgl32.Mat4) {
	f.r.calls = append(f.r.calls, "uniform:"+name)
	f.r.uniforms = append(f.r.uniforms, m)
}

type fakeShape struct {
	name string
	r    *recorder
}

func (f fakeShape) Draw() { f.r.calls = append(f.r.calls, "draw:"+f.name) }

func newTestScene(r *recorder, at time.Time, opts ...Option) *Scene {
	hands := [3]Drawable{
		fakeShape{"second", r},
		fakeShape{"minute", r},
		fakeShape{"hour", r},
	}
	opts = append([]Option{WithClock(func() time.Time { return at })}, opts...)
	return New(fakeSurface{r}, fakeProgram{r}, fakeShape{"disk", r}, hands, opts...)
}

func TestSceneDrawOrder(t *testing.T) {
	r := &recorder{}
	newTestScene(r, time.Date(2024, 1, 1, 3, 15, 45, 0, time.UTC)).Draw()

	want := []string{
		"clear", "use",
		"uniform:model", "draw:disk",
		"uniform:model", "draw:second",
		"uniform:model", "draw:minute",
		"uniform:model", "draw:hour",
	}
	if fmt.Sprint(r.calls) != fmt.Sprint(want) {
		t.Fatalf("calls\n got %v\nwant %v", r.calls, want)
	}
}

func TestSceneHandMatrices(t *testing.T) {
	r := &recorder{}
	newTestScene(r, time.Date(2024, 1, 1, 3, 15, 45, 0, time.UTC)).Draw()

	want := []mgl32.Mat4{
		mgl32.Ident4(),
		HandModel(mgl32.DegToRad(270), 0.25, 1.0),
		HandModel(mgl32.DegToRad(82.5), 0.65, 0.75),
		HandModel(mgl32.DegToRad(97.5), 0.50, 0.50),
	}
	if len(r.uniforms) != len(want) {
		t.Fatalf("got %d uniforms, want %d", len(r.uniforms), len(want))
	}
	for i := range want {
		if !r.uniforms[i].ApproxEqualThreshold(want[i], 1e-6) {
			t.Errorf("uniform %d\n got %v\nwant %v", i, r.uniforms[i], want[i])
		}
	}
}

func TestDiskModelIsIdentity(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 3, 15, 45, 0, time.UTC),
		time.Date(2024, 1, 1, 12, 30, 30, 0, time.UTC),
		time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC),
	}

	for _, at := range times {
		r := &recorder{}
		newTestScene(r, at).Draw()
		if r.uniforms[0] != mgl32.Ident4() {
			t.Errorf("%s: disk model %v is not identity", at.Format(time.TimeOnly), r.uniforms[0])
		}
	}
}

func TestSceneReadsClockEveryFrame(t *testing.T) {
	r := &recorder{}
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New(fakeSurface{r}, fakeProgram{r}, fakeShape{"disk", r},
		[3]Drawable{fakeShape{"s", r}, fakeShape{"m", r}, fakeShape{"h", r}},
		WithClock(func() time.Time { return current }))

	s.Draw()
	first := r.uniforms[1]

	current = current.Add(15 * time.Second)
	s.Draw()
	second := r.uniforms[5]

	if first == second {
		t.Fatalf("second hand did not move between frames")
	}
	if want := HandModel(mgl32.DegToRad(90), 0.25, 1.0); !second.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("got %v, want %v", second, want)
	}
}

func TestWithHands(t *testing.T) {
	r := &recorder{}
	specs := models.Hands()
	specs[0].ScaleX, specs[0].ScaleY = 0.1, 0.9

	newTestScene(r, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), WithHands(specs)).Draw()

	if want := HandModel(0, 0.1, 0.9); !r.uniforms[1].ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("got %v, want %v", r.uniforms[1], want)
	}
}

func TestHandModelRotatesClockwise(t *testing.T) {
	tip := mgl32.Vec4{0, 0.5, 0, 1}

	tests := []struct {
		degrees float32
		want    mgl32.Vec4
	}{
		{0, mgl32.Vec4{0, 0.5, 0, 1}},
		{90, mgl32.Vec4{0.5, 0, 0, 1}},
		{180, mgl32.Vec4{0, -0.5, 0, 1}},
		{270, mgl32.Vec4{-0.5, 0, 0, 1}},
	}

	for _, tt := range tests {
		got := HandModel(mgl32.DegToRad(tt.degrees), 1, 1).Mul4x1(tip)
		if !got.ApproxEqualThreshold(tt.want, 1e-6) {
			t.Errorf("%v°: tip at %v, want %v", tt.degrees, got, tt.want)
		}
	}
}

func TestHandModelScalesBeforeRotating(t *testing.T) {
	got := HandModel(mgl32.DegToRad(90), 0.25, 1.0).Mul4x1(mgl32.Vec4{1, 1, 0, 1})
	want := mgl32.Vec4{1, -0.25, 0, 1}
	if !got.ApproxEqualThreshold(want, 1e-6) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestHandModelIsRebuiltFromIdentity(t *testing.T) {
	a := HandModel(mgl32.DegToRad(30), 0.5, 0.5)
	b := HandModel(mgl32.DegToRad(30), 0.5, 0.5)
	if a != b {
		t.Fatalf("same inputs gave different matrices: %v vs %v", a, b)
	}
	if HandModel(0, 1, 1) != mgl32.Ident4() {
		t.Fatalf("zero angle at unit scale is not identity")
	}
}
