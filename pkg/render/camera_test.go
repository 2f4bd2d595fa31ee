package render_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/voxfly/tridemo/pkg/render"
)

const epsilon = 1e-5

func TestForwardRightUnitAndPerpendicular(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{0, 0, 0})

	yaws := []float32{0, 0.1, -0.7, math.Pi / 2, math.Pi, 3, -2.4, 6.9}
	for _, yaw := range yaws {
		camera.SetRotation(yaw, 0)

		forward := camera.Forward()
		right := camera.Right()

		assert.InDelta(t, 1.0, forward.Len(), epsilon, "forward must be unit length for yaw %v", yaw)
		assert.InDelta(t, 1.0, right.Len(), epsilon, "right must be unit length for yaw %v", yaw)
		assert.InDelta(t, 0.0, forward.Dot(right), epsilon, "forward and right must be perpendicular for yaw %v", yaw)
		assert.Zero(t, forward.Y(), "forward stays in the horizontal plane")
		assert.Zero(t, right.Y(), "right stays in the horizontal plane")
	}
}

func TestForwardAtZeroYawPointsDownNegativeZ(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{0, 0, 0})

	forward := camera.Forward()
	assert.InDelta(t, 0.0, forward.X(), epsilon)
	assert.InDelta(t, -1.0, forward.Z(), epsilon)
}

func TestMouseDeltaAccumulates(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{0, 0, 0})

	camera.HandleMouseDelta(3, 4)
	camera.HandleMouseDelta(1, -2)

	yaw, pitch := camera.Orientation()
	assert.InDelta(t, -4*render.MouseSensitivity, yaw, epsilon)
	assert.InDelta(t, -2*render.MouseSensitivity, pitch, epsilon)
}

func TestPitchIsNotClamped(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{0, 0, 0})

	// Enough vertical travel to rotate well past straight up
	camera.HandleMouseDelta(0, -400)

	_, pitch := camera.Orientation()
	assert.Greater(t, pitch, float32(math.Pi/2))
}

func TestMoveWithNoKeysLeavesPositionUnchanged(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{1, 2, 3})

	camera.Move(render.NewKeySet(), 0.5)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, camera.Position())
}

func TestForwardMovementForOneSecond(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{0, 0, 1})

	keys := render.NewKeySet()
	keys.Press(render.KeyForward)
	camera.Move(keys, 1.0)

	pos := camera.Position()
	assert.InDelta(t, 0.0, pos.X(), epsilon)
	assert.InDelta(t, 0.0, pos.Y(), epsilon)
	assert.InDelta(t, 0.0, pos.Z(), epsilon)

	// With the camera back at the origin and zero rotation, the view
	// matrix is the inverse of an identity translation.
	assert.True(t, camera.ViewMatrix().ApproxEqualThreshold(mgl32.Ident4(), epsilon))
}

func TestMovementFollowsYawUpdatedInSameFrame(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{0, 0, 1})

	// Rotate yaw to +90 degrees through mouse accumulation
	camera.HandleMouseDelta(-float64(math.Pi/2)/render.MouseSensitivity, 0)

	yaw, _ := camera.Orientation()
	assert.InDelta(t, math.Pi/2, yaw, epsilon)

	keys := render.NewKeySet()
	keys.Press(render.KeyForward)
	camera.Move(keys, 1.0)

	pos := camera.Position()
	assert.InDelta(t, -1.0, pos.X(), epsilon)
	assert.InDelta(t, 0.0, pos.Y(), epsilon)
	assert.InDelta(t, 1.0, pos.Z(), epsilon)
}

func TestDiagonalMovementIsUnnormalized(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{0, 0, 0})

	keys := render.NewKeySet()
	keys.Press(render.KeyForward)
	keys.Press(render.KeyStrafeRight)
	camera.Move(keys, 1.0)

	// Two held keys sum their displacements: sqrt(2) times single-key speed
	assert.InDelta(t, math.Sqrt2, camera.Position().Len(), epsilon)
}

func TestOppositeKeysCancel(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{0, 0, 0})

	keys := render.NewKeySet()
	keys.Press(render.KeyForward)
	keys.Press(render.KeyBackward)
	camera.Move(keys, 2.5)

	assert.InDelta(t, 0.0, camera.Position().Len(), epsilon)
}

func TestVerticalMovementUsesWorldUp(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{0, 0, 0})
	camera.SetRotation(1.3, -0.8)

	keys := render.NewKeySet()
	keys.Press(render.KeyAscend)
	camera.Move(keys, 0.5)

	pos := camera.Position()
	assert.InDelta(t, 0.0, pos.X(), epsilon)
	assert.InDelta(t, 0.5, pos.Y(), epsilon)
	assert.InDelta(t, 0.0, pos.Z(), epsilon)
}

func TestViewMatrixIsInverseOfWorldMatrix(t *testing.T) {

	states := []struct {
		pos        mgl32.Vec3
		yaw, pitch float32
	}{
		{mgl32.Vec3{0, 0, 1}, 0, 0},
		{mgl32.Vec3{3, -2, 7}, 1.1, 0.4},
		{mgl32.Vec3{-5, 0.5, 0}, -2.8, -1.9},
		{mgl32.Vec3{100, 40, -60}, 6.1, 3.2},
	}

	for _, s := range states {
		camera := render.NewCamera(s.pos)
		camera.SetRotation(s.yaw, s.pitch)

		product := camera.ViewMatrix().Mul4(camera.WorldMatrix())
		assert.True(t, product.ApproxEqualThreshold(mgl32.Ident4(), 1e-4),
			"view * world must be identity for state %+v, got %v", s, product)
	}
}

func TestResizeUpdatesAspectRatio(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{0, 0, 0})

	camera.UpdateProjectionMatrix(1024, 256)

	expected := mgl32.Perspective(mgl32.DegToRad(render.DefaultFOV), 4.0, render.NearPlane, render.FarPlane)
	assert.True(t, camera.ProjectionMatrix().ApproxEqualThreshold(expected, epsilon))
}

func TestScrollZoomClampsFOV(t *testing.T) {

	camera := render.NewCamera(mgl32.Vec3{0, 0, 0})

	camera.HandleMouseScroll(30)
	assert.InDelta(t, render.DefaultFOV-30, camera.FOV(), epsilon)

	camera.HandleMouseScroll(1000)
	assert.InDelta(t, render.MinFOV, camera.FOV(), epsilon)

	camera.HandleMouseScroll(-1000)
	assert.InDelta(t, render.MaxFOV, camera.FOV(), epsilon)

	expected := mgl32.Perspective(mgl32.DegToRad(render.MaxFOV), 800.0/600.0, render.NearPlane, render.FarPlane)
	assert.True(t, camera.ProjectionMatrix().ApproxEqualThreshold(expected, epsilon))
}
