package shapes

import (
	"math"

	"github.com/ThatOtherAndrew/glclock/internal/models"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinSegments = 1
	diskRadius  = 0.5
	handLength  = 1.0
)

// Mesh holds one RGB triplet in Colors for every entry in Positions.
type Mesh struct {
	Positions []mgl32.Vec2
	Colors    []uint8
}

func (m *Mesh) add(p mgl32.Vec2, c models.Color) {
	m.Positions = append(m.Positions, p)
	m.Colors = append(m.Colors, c.R, c.G, c.B)
}

func (m Mesh) VertexCount() int {
	return len(m.Positions)
}

// DiskMesh builds a triangle fan: the centre, then numSegments+1 rim points
// with the last one repeating the first. Non-positive counts are raised to
// MinSegments.
func DiskMesh(numSegments int, c models.Color) Mesh {
	numSegments = max(numSegments, MinSegments)

	m := Mesh{
		Positions: make([]mgl32.Vec2, 0, numSegments+2),
		Colors:    make([]uint8, 0, (numSegments+2)*3),
	}
	m.add(mgl32.Vec2{0, 0}, c)

	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		m.add(mgl32.Vec2{
			float32(diskRadius * math.Cos(angle)),
			float32(diskRadius * math.Sin(angle)),
		}, c)
	}
	m.add(m.Positions[1], c)

	return m
}

// TriangleMesh is a unit-length clock hand at rest: base on the centre, tip
// at 12 o'clock.
func TriangleMesh(c models.Color) Mesh {
	var m Mesh
	m.add(mgl32.Vec2{-0.1, 0}, c)
	m.add(mgl32.Vec2{0.1, 0}, c)
	m.add(mgl32.Vec2{0, handLength}, c)
	return m
}
