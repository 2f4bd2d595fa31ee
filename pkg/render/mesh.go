package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TriangleVertices returns the demo's single triangle: three vertices
// colored red, green and blue.
func TriangleVertices() []Vertex {
	return []Vertex{
		{Position: mgl32.Vec3{-0.5, -0.5, 0}, Color: mgl32.Vec4{1, 0, 0, 1}},
		{Position: mgl32.Vec3{0.5, -0.5, 0}, Color: mgl32.Vec4{0, 1, 0, 1}},
		{Position: mgl32.Vec3{0, 0.5, 0}, Color: mgl32.Vec4{0, 0, 1, 1}},
	}
}

// TriangleIndices returns the triangle's index list.
func TriangleIndices() []uint16 {
	return []uint16{0, 1, 2}
}

// InstanceTransforms returns the fixed world matrices for the two triangle
// instances, offsetting the shared mesh along the view axis. They are
// constant for the run.
func InstanceTransforms() [InstanceCount]mgl32.Mat4 {
	return [InstanceCount]mgl32.Mat4{
		mgl32.Translate3D(0, 0, -0.3),
		mgl32.Translate3D(0, 0, -0.5),
	}
}
