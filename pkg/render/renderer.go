// Package render implements the camera-driven frame loop: it turns
// accumulated input into a view matrix each frame and submits one
// instanced draw of a colored triangle through a backend-agnostic
// graphics device.
package render

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/instanced.vert
var vertexShaderSource string

//go:embed shaders/basic.frag
var fragmentShaderSource string

// Stage owns all frame-loop state: the camera, the held-key set, and the
// device handles for the triangle mesh and its pipeline. All methods are
// invoked serially on the render thread by the windowing backend.
type Stage struct {
	device Device
	camera *Camera

	pipeline Pipeline
	bindings Bindings

	keys         KeySet
	world        [InstanceCount]mgl32.Mat4
	elementCount int

	quit func()
}

// NewStage uploads the triangle mesh, compiles the pipeline and positions
// the camera. Any returned error is a fatal startup condition.
func NewStage(device Device, width, height int) (*Stage, error) {
	vertices := TriangleVertices()
	indices := TriangleIndices()

	vertexBuffer, err := device.NewVertexBuffer(vertices)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex buffer: %w", err)
	}

	indexBuffer, err := device.NewIndexBuffer(indices)
	if err != nil {
		return nil, fmt.Errorf("failed to create index buffer: %w", err)
	}

	pipeline, err := device.NewPipeline(PipelineDesc{
		VertexSource:   vertexShaderSource,
		FragmentSource: fragmentShaderSource,
		DepthCompare:   CompareLessOrEqual,
		DepthWrite:     true,
		CullBackFace:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	camera := NewCamera(DefaultCameraPosition)
	camera.UpdateProjectionMatrix(width, height)

	Logger().Info("stage ready",
		"vertices", len(vertices),
		"indices", len(indices),
		"instances", InstanceCount)

	return &Stage{
		device:   device,
		camera:   camera,
		pipeline: pipeline,
		bindings: Bindings{
			VertexBuffer: vertexBuffer,
			IndexBuffer:  indexBuffer,
		},
		keys:         NewKeySet(),
		world:        InstanceTransforms(),
		elementCount: len(indices),
	}, nil
}

// Camera returns the stage's camera.
func (s *Stage) Camera() *Camera {
	return s.camera
}

// OnQuit registers the callback fired when the quit key is pressed.
func (s *Stage) OnQuit(fn func()) {
	s.quit = fn
}

// Update advances camera movement by deltaTime seconds. The forward and
// strafe directions are recomputed from the current yaw before movement is
// integrated, so a mouse turn takes effect within the same frame.
func (s *Stage) Update(deltaTime float32) {
	s.camera.Move(s.keys, deltaTime)
}

// Draw submits the frame: clear to opaque black and far depth, then one
// draw of the triangle instanced at the two fixed world offsets.
func (s *Stage) Draw() {
	s.device.BeginPass(PassAction{
		ClearColor: mgl32.Vec4{0, 0, 0, 1},
		ClearDepth: 1.0,
	})

	s.device.ApplyPipeline(s.pipeline)
	s.device.ApplyBindings(s.bindings)

	uniforms := Uniforms{
		Perspective: s.camera.ProjectionMatrix(),
		View:        s.camera.ViewMatrix(),
		World:       s.world,
	}
	s.device.ApplyUniforms(&uniforms)

	s.device.Draw(0, s.elementCount, InstanceCount)

	s.device.EndPass()
	s.device.Commit()
}

// KeyDown handles a key press. Auto-repeat events are ignored, so holding
// a key yields exactly one entry in the key set. The quit key signals
// shutdown instead of moving the camera.
func (s *Stage) KeyDown(key Key, repeat bool) {
	if repeat {
		return
	}

	switch key {
	case KeyQuit:
		if s.quit != nil {
			s.quit()
		}
	case KeyUnknown:
		// Not a control key
	default:
		s.keys.Press(key)
	}
}

// KeyUp releases a key unconditionally.
func (s *Stage) KeyUp(key Key) {
	s.keys.Release(key)
}

// MouseDelta feeds raw cursor movement into the camera orientation.
func (s *Stage) MouseDelta(dx, dy float64) {
	s.camera.HandleMouseDelta(dx, dy)
}

// MouseScroll feeds scroll-wheel movement into the camera zoom.
func (s *Stage) MouseScroll(yoffset float64) {
	s.camera.HandleMouseScroll(yoffset)
}

// Resize updates the viewport and the projection's aspect ratio. No other
// state changes.
func (s *Stage) Resize(width, height int) {
	s.device.Viewport(width, height)
	s.camera.UpdateProjectionMatrix(width, height)

	Logger().Debug("window resized", "width", width, "height", height)
}

// Release frees the stage's device resources.
func (s *Stage) Release() {
	if s.pipeline != nil {
		s.pipeline.Release()
		s.pipeline = nil
	}
	if s.bindings.VertexBuffer != nil {
		s.bindings.VertexBuffer.Release()
		s.bindings.VertexBuffer = nil
	}
	if s.bindings.IndexBuffer != nil {
		s.bindings.IndexBuffer.Release()
		s.bindings.IndexBuffer = nil
	}
}
