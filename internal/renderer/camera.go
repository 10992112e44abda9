// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	// Per-frame data
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix
	Pitch      float32    // Degrees
	Yaw        float32    // Degrees

	// Configuration
	WorldUp     mgl32.Vec3
	Sensitivity float32
	Fov         float32
	Near        float32
	Far         float32
	AspectRatio float32
	InvertMouse bool
}

func NewDefaultCamera(width, height int32) *Camera {
	camera := Camera{
		Position:    mgl32.Vec3{0, 12, 12},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Pitch:       0.0,
		Yaw:         -90.0,
		Sensitivity: 0.1,
		Fov:         45.0,
		Near:        0.1,
		Far:         1000.0,
		AspectRatio: aspect(width, height),
	}
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return &camera
}

func aspect(width, height int32) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

// SetViewport recomputes the aspect ratio for a new framebuffer size
func (c *Camera) SetViewport(width, height int32) {
	c.AspectRatio = aspect(width, height)
	c.UpdateProjection()
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

// Orbit swings the camera around target by a cursor delta in pixels, keeping
// its distance, and leaves it facing target. Elevation stays within ±89°.
func (c *Camera) Orbit(target mgl32.Vec3, xoffset, yoffset float32) {
	offset := c.Position.Sub(target)
	distance := offset.Len()
	if distance == 0 {
		return
	}

	azimuth := mgl32.RadToDeg(float32(math.Atan2(float64(offset.Z()), float64(offset.X()))))
	elevation := mgl32.RadToDeg(float32(math.Asin(float64(offset.Y() / distance))))

	azimuth += xoffset * c.Sensitivity
	if c.InvertMouse {
		elevation += yoffset * c.Sensitivity
	} else {
		elevation -= yoffset * c.Sensitivity
	}
	elevation = mgl32.Clamp(elevation, -89.0, 89.0)

	az, el := float64(mgl32.DegToRad(azimuth)), float64(mgl32.DegToRad(elevation))
	c.Position = target.Add(mgl32.Vec3{
		float32(math.Cos(el) * math.Cos(az)),
		float32(math.Sin(el)),
		float32(math.Cos(el) * math.Sin(az)),
	}.Mul(distance))
	c.LookAt(target)
}

// LookAt points the camera at target without moving it
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.Position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.Pitch = mgl32.RadToDeg(float32(math.Asin(float64(direction.Y()))))
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
