package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/voxfly/tridemo/pkg/render"
)

// EventHandler receives the serialized event and frame stream from the
// window's event loop. All methods are called on the render thread.
type EventHandler interface {
	Update(deltaTime float32)
	Draw()
	KeyDown(key render.Key, repeat bool)
	KeyUp(key render.Key)
	MouseDelta(dx, dy float64)
	MouseScroll(yoffset float64)
	Resize(width, height int)
}

// Window handles GLFW window creation, input dispatch and the frame loop.
type Window struct {
	glfwWindow    *glfw.Window
	width         int
	height        int
	title         string
	mouseCaptured bool

	// Cursor state for deriving raw deltas from absolute positions
	lastX      float64
	lastY      float64
	firstMouse bool
}

// NewWindow creates a GLFW window with an OpenGL 4.6 core context.
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	render.Logger().Info("OpenGL context created", "version", version)

	return &Window{
		glfwWindow: glfwWindow,
		width:      width,
		height:     height,
		title:      title,
		firstMouse: true,
	}, nil
}

// Run installs the input callbacks and drives the frame loop until the
// window is asked to close. Delta time comes from GLFW's monotonic clock.
func (w *Window) Run(handler EventHandler) {
	w.glfwWindow.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.keyCallback(handler, key, action)
	})
	w.glfwWindow.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.cursorPosCallback(handler, xpos, ypos)
	})
	w.glfwWindow.SetScrollCallback(func(_ *glfw.Window, _, yoffset float64) {
		handler.MouseScroll(yoffset)
	})
	w.glfwWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		handler.Resize(width, height)
	})

	lastFrame := glfw.GetTime()

	for !w.glfwWindow.ShouldClose() {
		now := glfw.GetTime()
		deltaTime := float32(now - lastFrame)
		lastFrame = now

		handler.Update(deltaTime)
		handler.Draw()

		glfw.PollEvents()
	}
}

// keyCallback translates GLFW key events for the handler. The C key is
// windowing glue rather than a camera control: it toggles mouse capture.
func (w *Window) keyCallback(handler EventHandler, key glfw.Key, action glfw.Action) {
	if key == glfw.KeyC && action == glfw.Press {
		w.SetMouseCaptured(!w.mouseCaptured)
		return
	}

	mapped := translateKey(key)

	switch action {
	case glfw.Press:
		handler.KeyDown(mapped, false)
	case glfw.Repeat:
		handler.KeyDown(mapped, true)
	case glfw.Release:
		handler.KeyUp(mapped)
	}
}

// cursorPosCallback converts absolute cursor positions into raw deltas.
// The first sample after (re)capturing the cursor only seeds the last
// position, so recapturing never produces a delta spike.
func (w *Window) cursorPosCallback(handler EventHandler, xpos, ypos float64) {
	if !w.mouseCaptured {
		return
	}

	if w.firstMouse {
		w.lastX = xpos
		w.lastY = ypos
		w.firstMouse = false
		return
	}

	dx := xpos - w.lastX
	dy := ypos - w.lastY
	w.lastX = xpos
	w.lastY = ypos

	handler.MouseDelta(dx, dy)
}

// translateKey maps a GLFW key to a camera control key.
func translateKey(key glfw.Key) render.Key {
	switch key {
	case glfw.KeyW:
		return render.KeyForward
	case glfw.KeyS:
		return render.KeyBackward
	case glfw.KeyA:
		return render.KeyStrafeLeft
	case glfw.KeyD:
		return render.KeyStrafeRight
	case glfw.KeySpace:
		return render.KeyAscend
	case glfw.KeyLeftShift:
		return render.KeyDescend
	case glfw.KeyEscape:
		return render.KeyQuit
	default:
		return render.KeyUnknown
	}
}

// RequestClose asks the event loop to exit after the current frame.
func (w *Window) RequestClose() {
	w.glfwWindow.SetShouldClose(true)
}

// SetMouseCaptured captures or releases the mouse cursor. Capturing resets
// the cursor-delta state.
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured
	w.firstMouse = true

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// IsMouseCaptured returns whether the mouse is currently captured.
func (w *Window) IsMouseCaptured() bool {
	return w.mouseCaptured
}

// Size returns the window dimensions.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// SwapBuffers swaps the front and back buffers.
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// Close releases all windowing resources.
func (w *Window) Close() {
	glfw.Terminate()
}
