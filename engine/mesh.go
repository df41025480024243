package engine

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved layout every mesh uploads: position at
// attribute 0, normal at 1, UV at 2.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// span is an index range within a mesh, used to draw a part (a box
// side, a cylinder cap) on its own.
type span struct {
	first, count int32
}

// MeshData is the CPU-side assembly of a mesh before upload. Building
// is pure so generators can be tested without a GL context.
type MeshData struct {
	vertices []Vertex
	indices  []uint32
	groups   map[string]span
}

func (d *MeshData) addTriangle(a, b, c Vertex) {
	offset := uint32(len(d.vertices))
	d.vertices = append(d.vertices, a, b, c)
	d.indices = append(d.indices, offset, offset+1, offset+2)
}

// addQuad adds the quad a-b-c-d as two triangles.
func (d *MeshData) addQuad(a, b, c, e Vertex) {
	d.addTriangle(a, b, c)
	d.addTriangle(c, e, a)
}

// group records every index added by build under name.
func (d *MeshData) group(name string, build func()) {
	first := int32(len(d.indices))
	build()
	if d.groups == nil {
		d.groups = make(map[string]span)
	}
	d.groups[name] = span{first: first, count: int32(len(d.indices)) - first}
}

// Mesh is an uploaded vertex/element buffer pair ready to draw.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	groups        map[string]span
}

const vertexStride = 8 * 4 // 3 position + 3 normal + 2 uv floats

// NewMesh uploads the assembled data into a vertex array object.
func NewMesh(data *MeshData) *Mesh {
	m := &Mesh{
		count:  int32(len(data.indices)),
		groups: data.groups,
	}

	interleaved := make([]float32, 0, len(data.vertices)*8)
	for _, v := range data.vertices {
		interleaved = append(interleaved,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
			v.UV.X(), v.UV.Y())
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(interleaved)*4, gl.Ptr(interleaved), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.indices)*4, gl.Ptr(data.indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)

	gl.BindVertexArray(0)

	return m
}

// Draw renders the whole mesh.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// DrawGroup renders one named part. Unknown names draw nothing.
func (m *Mesh) DrawGroup(name string) {
	g, found := m.groups[name]
	if !found {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, uintptr(g.first)*4)
	gl.BindVertexArray(0)
}

// Release frees the GPU buffers.
func (m *Mesh) Release() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
}
