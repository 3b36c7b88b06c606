// Package clock converts wall-clock readings into hand rotation angles.
package clock

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	degreesPerSecond     = 6.0
	degreesPerMinute     = 5.5
	degreesPerHour       = 30.0
	hourDegreesPerMinute = 0.5
)

type Reading struct {
	Hour   int
	Minute int
	Second int
}

// Angles are in radians, measured clockwise from 12 o'clock.
type Angles struct {
	Second float32
	Minute float32
	Hour   float32
}

func FromTime(t time.Time) Reading {
	return Reading{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

func Calculate(r Reading) Angles {
	hour := r.Hour
	if hour > 12 {
		hour -= 12
	}

	return Angles{
		Second: mgl32.DegToRad(float32(r.Second) * degreesPerSecond),
		Minute: mgl32.DegToRad(float32(r.Minute) * degreesPerMinute),
		Hour:   mgl32.DegToRad(float32(hour)*degreesPerHour + float32(r.Minute)*hourDegreesPerMinute),
	}
}

func At(t time.Time) Angles {
	return Calculate(FromTime(t))
}
