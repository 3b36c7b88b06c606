// Package shapes owns the GPU buffers of the clock's static meshes.
package shapes

import (
	"github.com/ThatOtherAndrew/glclock/internal/models"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	positionAttrib = 0
	colorAttrib    = 1
)

type buffers struct {
	vao   uint32
	vbo   [2]uint32
	mode  uint32
	count int32
}

// upload copies the mesh into static buffers behind a fresh vertex array.
func upload(m Mesh, mode uint32) *buffers {
	b := &buffers{mode: mode, count: int32(m.VertexCount())}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(2, &b.vbo[0])

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*2*4, gl.Ptr(m.Positions), gl.STATIC_DRAW)
	gl.VertexAttribPointer(positionAttrib, 2, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(positionAttrib)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Colors), gl.Ptr(m.Colors), gl.STATIC_DRAW)
	gl.VertexAttribPointer(colorAttrib, 3, gl.UNSIGNED_BYTE, true, 0, nil)
	gl.EnableVertexAttribArray(colorAttrib)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return b
}

func (b *buffers) draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(b.mode, 0, b.count)
	gl.BindVertexArray(0)
}

func (b *buffers) destroy() {
	if b.vao == 0 {
		return
	}
	gl.DeleteBuffers(2, &b.vbo[0])
	gl.DeleteVertexArrays(1, &b.vao)
	*b = buffers{}
}

type Disk struct {
	buf *buffers
}

func NewDisk(numSegments int, c models.Color) *Disk {
	return &Disk{buf: upload(DiskMesh(numSegments, c), gl.TRIANGLE_FAN)}
}

func (d *Disk) Draw() { d.buf.draw() }

func (d *Disk) Destroy() { d.buf.destroy() }

type Triangle struct {
	buf *buffers
}

func NewTriangle(c models.Color) *Triangle {
	return &Triangle{buf: upload(TriangleMesh(c), gl.TRIANGLES)}
}

func (t *Triangle) Draw() { t.buf.draw() }

func (t *Triangle) Destroy() { t.buf.destroy() }
