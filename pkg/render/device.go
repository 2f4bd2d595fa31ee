package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the layout of a single mesh vertex: position and RGBA color.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
}

// Uniforms is the per-frame uniform block handed to the pipeline.
type Uniforms struct {
	Perspective mgl32.Mat4
	View        mgl32.Mat4
	World       [InstanceCount]mgl32.Mat4
}

// CompareFunc selects the depth test comparison.
type CompareFunc int

const (
	CompareLess CompareFunc = iota
	CompareLessOrEqual
)

// PipelineDesc describes a render pipeline: the shader pair and the fixed
// depth/cull state it runs with.
type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthCompare   CompareFunc
	DepthWrite     bool
	CullBackFace   bool
}

// PassAction describes how a render pass clears its targets.
type PassAction struct {
	ClearColor mgl32.Vec4
	ClearDepth float32
}

// Buffer is an opaque GPU buffer handle.
type Buffer interface {
	Release()
}

// Pipeline is an opaque GPU pipeline handle.
type Pipeline interface {
	Release()
}

// Bindings pairs the buffers consumed by a draw call.
type Bindings struct {
	VertexBuffer Buffer
	IndexBuffer  Buffer
}

// Device is the capability interface the frame loop needs from a graphics
// backend. The camera and draw-submission logic only ever talk to this
// interface, so a fake device can stand in for the GPU in tests.
//
// All methods must be called from the thread that owns the GPU context.
// Resource creation happens once at startup; creation errors are fatal
// startup conditions, never per-frame ones.
type Device interface {
	// NewVertexBuffer uploads an immutable vertex buffer.
	NewVertexBuffer(vertices []Vertex) (Buffer, error)

	// NewIndexBuffer uploads an immutable 16-bit index buffer.
	NewIndexBuffer(indices []uint16) (Buffer, error)

	// NewPipeline compiles the shader pair and fixes the pipeline state.
	// A compilation failure reports the failing stage and compiler log.
	NewPipeline(desc PipelineDesc) (Pipeline, error)

	// BeginPass starts the frame's render pass, clearing color and depth.
	BeginPass(action PassAction)

	// ApplyPipeline makes a pipeline current for subsequent draws.
	ApplyPipeline(pipeline Pipeline)

	// ApplyBindings makes a buffer pair current for subsequent draws.
	ApplyBindings(bindings Bindings)

	// ApplyUniforms uploads the uniform block to the current pipeline.
	ApplyUniforms(uniforms *Uniforms)

	// Draw issues one instanced, indexed draw.
	Draw(baseElement, elementCount, instanceCount int)

	// EndPass finishes the render pass.
	EndPass()

	// Commit presents the completed frame.
	Commit()

	// Viewport resizes the render target after a window resize.
	Viewport(width, height int)
}
