package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a first-person camera for navigation.
// Orientation is stored as yaw (rotation about the world up axis) and
// pitch (rotation about the camera's local right axis), both in radians.
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	yaw      float32
	pitch    float32

	// Camera options
	moveSpeed   float32
	sensitivity float32

	// Projection
	fov        float32
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a new camera at the given position, facing along
// negative Z with zero rotation.
func NewCamera(position mgl32.Vec3) *Camera {
	camera := &Camera{
		position:    position,
		moveSpeed:   DefaultMoveSpeed,
		sensitivity: MouseSensitivity,
		fov:         DefaultFOV,
		width:       800, // Default size
		height:      600,
	}

	camera.updateProjectionMatrix()

	return camera
}

// Forward returns the horizontal-plane forward direction for the current yaw.
// Pitch is deliberately ignored so that looking up or down never changes
// movement speed.
func (c *Camera) Forward() mgl32.Vec3 {
	sin, cos := math.Sincos(float64(c.yaw))
	return mgl32.Vec3{-float32(sin), 0, -float32(cos)}
}

// Right returns the horizontal-plane strafe direction for the current yaw.
func (c *Camera) Right() mgl32.Vec3 {
	sin, cos := math.Sincos(float64(c.yaw))
	return mgl32.Vec3{float32(cos), 0, -float32(sin)}
}

// Move integrates camera movement for one frame. Each held key contributes
// its own displacement; contributions are summed without normalization, so
// holding two keys moves faster than one.
func (c *Camera) Move(keys KeySet, deltaTime float32) {
	step := c.moveSpeed * deltaTime
	forward := c.Forward()
	right := c.Right()

	if keys.Held(KeyForward) {
		c.position = c.position.Add(forward.Mul(step))
	}
	if keys.Held(KeyBackward) {
		c.position = c.position.Sub(forward.Mul(step))
	}
	if keys.Held(KeyStrafeLeft) {
		c.position = c.position.Sub(right.Mul(step))
	}
	if keys.Held(KeyStrafeRight) {
		c.position = c.position.Add(right.Mul(step))
	}
	if keys.Held(KeyAscend) {
		c.position = c.position.Add(worldUp.Mul(step))
	}
	if keys.Held(KeyDescend) {
		c.position = c.position.Sub(worldUp.Mul(step))
	}
}

// HandleMouseDelta updates camera orientation from raw cursor movement.
// Pitch is not clamped: sustained vertical input can rotate the view past
// straight up, inverting the apparent up direction.
func (c *Camera) HandleMouseDelta(dx, dy float64) {
	c.yaw -= float32(dx) * c.sensitivity
	c.pitch -= float32(dy) * c.sensitivity
}

// HandleMouseScroll zooms by adjusting the field of view.
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.fov -= float32(yoffset)

	if c.fov < MinFOV {
		c.fov = MinFOV
	}
	if c.fov > MaxFOV {
		c.fov = MaxFOV
	}

	c.updateProjectionMatrix()
}

// WorldMatrix returns the camera's world transform: translation composed
// with yaw about the world up axis, then pitch about the local right axis.
func (c *Camera) WorldMatrix() mgl32.Mat4 {
	rotation := mgl32.HomogRotate3DY(c.yaw).Mul4(mgl32.HomogRotate3DX(c.pitch))
	return mgl32.Translate3D(c.position.X(), c.position.Y(), c.position.Z()).Mul4(rotation)
}

// ViewMatrix returns the world-to-camera transform, the exact inverse of
// WorldMatrix. Rotations and translations are always invertible, so this
// is computed analytically rather than through a general matrix inverse.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(-c.pitch).
		Mul4(mgl32.HomogRotate3DY(-c.yaw)).
		Mul4(mgl32.Translate3D(-c.position.X(), -c.position.Y(), -c.position.Z()))
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch) in radians
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets the camera rotation angles in radians
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = pitch
}

// FOV returns the current vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}
