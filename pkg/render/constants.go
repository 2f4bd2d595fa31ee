package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera constants
const (
	// Movement speed in world units per second
	DefaultMoveSpeed = 1.0

	// Mouse look sensitivity in radians per pixel of cursor travel
	MouseSensitivity = 0.01

	// Vertical field of view in degrees
	DefaultFOV = 90.0
	MinFOV     = 1.0
	MaxFOV     = 90.0

	// Clipping planes
	NearPlane = 0.1
	FarPlane  = 100.0
)

// Draw constants
const (
	// InstanceCount is how many copies of the triangle are drawn per frame
	InstanceCount = 2
)

// DefaultCameraPosition is where the camera starts, one unit back from the origin
var DefaultCameraPosition = mgl32.Vec3{0, 0, 1}

// worldUp is the global up axis (Y-up coordinate system)
var worldUp = mgl32.Vec3{0, 1, 0}
