package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/painter/pkg/math3d"
)

// ErrInvalidViewport is returned when a viewport dimension is not positive.
var ErrInvalidViewport = errors.New("invalid viewport")

// DefaultScreen is the default focal distance: a point this far in front of
// the camera is drawn at a scale of one.
const DefaultScreen = 300.0

// Camera is a perspective camera described by a position and Euler angles.
//
// The projection matrix is derived from the orientation. Every method that
// changes the orientation or the viewport recomputes it, so Project always
// sees the rotation for the current orientation.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Screen is the focal distance used for perspective scaling.
	Screen float64

	width, height float64
	theta         math3d.Vec3 // Euler angles in radians (X, Y, Z)
	projection    math3d.Mat3
}

// NewCamera creates a camera at the origin looking down +Z.
func NewCamera(width, height float64) (*Camera, error) {
	c := &Camera{Screen: DefaultScreen}
	if err := c.Resize(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// Width returns the viewport width in pixels.
func (c *Camera) Width() float64 { return c.width }

// Height returns the viewport height in pixels.
func (c *Camera) Height() float64 { return c.height }

// Theta returns the camera orientation as Euler angles.
func (c *Camera) Theta() math3d.Vec3 { return c.theta }

// Projection returns the current rotation applied before perspective division.
func (c *Camera) Projection() math3d.Mat3 { return c.projection }

// Resize sets the viewport size and recomputes the projection.
func (c *Camera) Resize(width, height float64) error {
	if !(width > 0) || !(height > 0) {
		return fmt.Errorf("resize camera to %vx%v: %w", width, height, ErrInvalidViewport)
	}
	c.width = width
	c.height = height
	c.UpdateProjection()
	return nil
}

// UpdateProjection recomputes the projection matrix from the orientation.
func (c *Camera) UpdateProjection() {
	c.projection = math3d.Rotation(c.theta)
}

// SetTheta sets the orientation.
func (c *Camera) SetTheta(theta math3d.Vec3) {
	c.theta = theta
	c.UpdateProjection()
}

// Rotate adds delta to the orientation.
func (c *Camera) Rotate(delta math3d.Vec3) {
	c.SetTheta(c.theta.Add(delta))
}

// Translate moves the camera by delta.
func (c *Camera) Translate(delta math3d.Vec3) {
	c.Position = c.Position.Add(delta)
}

// Put moves the camera to position.
func (c *Camera) Put(position math3d.Vec3) {
	c.Position = position
}

// LookAt orients the camera so that target projects to the viewport center.
// Roll is reset to zero. Looking at the camera's own position is a no-op.
func (c *Camera) LookAt(target math3d.Vec3) {
	d := target.Sub(c.Position)
	if d.Len() == 0 {
		return
	}
	h := math.Hypot(d.X, d.Z)
	c.SetTheta(math3d.V3(math.Atan2(d.Y, h), math.Atan2(-d.X, d.Z), 0))
}

// Project maps a world point to screen coordinates.
//
// Points on or behind the camera plane have no projection; for those the
// NaN sentinel is returned and drawing code skips any primitive using it.
func (c *Camera) Project(p math3d.Vec3) math3d.Vec2 {
	d := c.projection.MulVec3(p.Sub(c.Position))
	if d.Z <= 0 {
		return math3d.NaN2()
	}
	s := c.Screen / d.Z
	return math3d.V2(s*d.X+c.width/2, s*d.Y+c.height/2)
}

// Depth returns the camera-space Z of a world point (positive in front).
func (c *Camera) Depth(p math3d.Vec3) float64 {
	return c.projection.MulVec3(p.Sub(c.Position)).Z
}
