package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/voxfly/tridemo/pkg/render"
)

// vertexStride is the byte size of render.Vertex: vec3 position + vec4 color.
const vertexStride = 7 * 4

// Device implements render.Device on an OpenGL 4.6 core context. It must
// only be used from the thread owning the GL context.
type Device struct {
	window   *Window
	vao      *VertexArrayObject
	pipeline *glPipeline // pipeline made current by ApplyPipeline
}

// NewDevice creates a device bound to the window's GL context.
func NewDevice(window *Window) *Device {
	return &Device{
		window: window,
		vao:    NewVAO(),
	}
}

// glBuffer adapts a BufferObject to the render.Buffer handle.
type glBuffer struct {
	buf *BufferObject
}

func (b *glBuffer) Release() {
	b.buf.Delete()
}

// glPipeline adapts a Shader plus fixed state to the render.Pipeline handle.
type glPipeline struct {
	shader *Shader
	desc   render.PipelineDesc
}

func (p *glPipeline) Release() {
	p.shader.Delete()
}

// NewVertexBuffer uploads an immutable interleaved vertex buffer.
func (d *Device) NewVertexBuffer(vertices []render.Vertex) (render.Buffer, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("vertex buffer must not be empty")
	}

	data := make([]float32, 0, len(vertices)*7)
	for _, v := range vertices {
		data = append(data,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Color.X(), v.Color.Y(), v.Color.Z(), v.Color.W())
	}

	return &glBuffer{buf: NewVBO(data)}, nil
}

// NewIndexBuffer uploads an immutable 16-bit element buffer.
func (d *Device) NewIndexBuffer(indices []uint16) (render.Buffer, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("index buffer must not be empty")
	}

	return &glBuffer{buf: NewEBO(indices)}, nil
}

// NewPipeline compiles and links the shader pair. The depth and cull state
// from the descriptor is applied when the pipeline is made current.
func (d *Device) NewPipeline(desc render.PipelineDesc) (render.Pipeline, error) {
	shader, err := NewShader(desc.VertexSource, desc.FragmentSource)
	if err != nil {
		return nil, err
	}

	return &glPipeline{shader: shader, desc: desc}, nil
}

// BeginPass clears the color and depth buffers.
func (d *Device) BeginPass(action render.PassAction) {
	gl.ClearColor(action.ClearColor.X(), action.ClearColor.Y(), action.ClearColor.Z(), action.ClearColor.W())
	gl.ClearDepth(float64(action.ClearDepth))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ApplyPipeline activates the shader program and its fixed depth/cull state.
func (d *Device) ApplyPipeline(pipeline render.Pipeline) {
	p := pipeline.(*glPipeline)
	d.pipeline = p

	p.shader.Use()

	gl.Enable(gl.DEPTH_TEST)
	switch p.desc.DepthCompare {
	case render.CompareLessOrEqual:
		gl.DepthFunc(gl.LEQUAL)
	default:
		gl.DepthFunc(gl.LESS)
	}
	gl.DepthMask(p.desc.DepthWrite)

	if p.desc.CullBackFace {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

// ApplyBindings binds the buffer pair and the vertex attribute layout.
func (d *Device) ApplyBindings(bindings render.Bindings) {
	d.vao.Bind()

	bindings.VertexBuffer.(*glBuffer).buf.Bind()
	d.vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, 0)
	d.vao.SetVertexAttribPointer(1, 4, gl.FLOAT, false, vertexStride, 3*4)

	bindings.IndexBuffer.(*glBuffer).buf.Bind()
}

// ApplyUniforms uploads the uniform block to the current pipeline.
func (d *Device) ApplyUniforms(uniforms *render.Uniforms) {
	shader := d.pipeline.shader
	shader.SetMat4("perspective", uniforms.Perspective)
	shader.SetMat4("view", uniforms.View)
	shader.SetMat4Slice("world", uniforms.World[:])
}

// Draw issues one instanced, indexed draw of the bound mesh.
func (d *Device) Draw(baseElement, elementCount, instanceCount int) {
	gl.DrawElementsInstanced(gl.TRIANGLES, int32(elementCount), gl.UNSIGNED_SHORT,
		gl.PtrOffset(baseElement*2), int32(instanceCount))
}

// EndPass finishes the render pass.
func (d *Device) EndPass() {
	d.vao.Unbind()
}

// Commit presents the completed frame.
func (d *Device) Commit() {
	d.window.SwapBuffers()
}

// Viewport resizes the GL viewport after a window resize.
func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Release frees the device's vertex array object.
func (d *Device) Release() {
	d.vao.Delete()
}
