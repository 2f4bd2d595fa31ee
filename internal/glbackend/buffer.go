// Package glbackend implements the render.Device interface on OpenGL 4.6
// with GLFW windowing. It wraps the low-level OpenGL calls in a more
// Go-friendly API.
package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferObject represents an OpenGL buffer object (VBO or EBO).
type BufferObject struct {
	ID   uint32
	Type uint32 // GL_ARRAY_BUFFER or GL_ELEMENT_ARRAY_BUFFER
	Size int    // Size of the buffer in bytes
}

// NewVBO creates an immutable vertex buffer from float data.
func NewVBO(data []float32) *BufferObject {
	return newBufferObject(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data))
}

// NewEBO creates an immutable element buffer from 16-bit indices.
func NewEBO(indices []uint16) *BufferObject {
	return newBufferObject(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices))
}

func newBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer) *BufferObject {
	var bufferID uint32
	gl.GenBuffers(1, &bufferID)

	buffer := &BufferObject{
		ID:   bufferID,
		Type: bufferType,
		Size: sizeInBytes,
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, gl.STATIC_DRAW)

	return buffer
}

// Bind binds the buffer object to its type target.
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind unbinds the buffer object from its type target.
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// Delete releases the buffer object.
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// VertexArrayObject represents an OpenGL vertex array object that stores
// vertex attribute configuration.
type VertexArrayObject struct {
	ID uint32
}

// NewVAO creates a new vertex array object.
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)

	return &VertexArrayObject{
		ID: vaoID,
	}
}

// Bind binds the vertex array object.
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object.
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array object.
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}

// SetVertexAttribPointer sets up a vertex attribute pointer and enables
// the attribute.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}
