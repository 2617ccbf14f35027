package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Camera is a pinhole camera. Screen coordinates are in [-aspect, aspect]
// horizontally and [-1, 1] vertically, +y up.
type Camera struct {
	Position core.Vec3

	forward    core.Vec3
	up         core.Vec3
	right      core.Vec3
	fovDegrees float64
	tanHalfFOV float64
}

// NewCamera creates a camera with a horizontal field of view in degrees.
// The up vector is re-orthogonalized against forward.
func NewCamera(fovDegrees float64, position, forward, up core.Vec3) *Camera {
	c := &Camera{Position: position}
	c.SetFOV(fovDegrees)
	c.LookAlong(forward, up)
	return c
}

// NewDefaultCamera looks down +z from (0,0,-1) with a 90 degree field of view
func NewDefaultCamera() *Camera {
	return NewCamera(90, core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0))
}

// SetFOV updates the field of view
func (c *Camera) SetFOV(fovDegrees float64) {
	c.fovDegrees = fovDegrees
	c.tanHalfFOV = math.Tan(fovDegrees * math.Pi / 360)
}

// FOV returns the field of view in degrees
func (c *Camera) FOV() float64 {
	return c.fovDegrees
}

// LookAlong rebuilds the camera frame: right = up × forward, up = forward × right
func (c *Camera) LookAlong(forward, up core.Vec3) {
	c.forward = forward.Normalize()
	c.right = up.Cross(c.forward).Normalize()
	c.up = c.forward.Cross(c.right)
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}

// GetCameraRay returns the unit-direction primary ray through screen point (x, y)
func (c *Camera) GetCameraRay(x, y float64) core.Ray {
	x *= c.tanHalfFOV
	y *= c.tanHalfFOV
	direction := c.right.Multiply(x).Add(c.up.Multiply(y)).Add(c.forward).Normalize()
	return core.NewRay(c.Position, direction)
}
