package viewbounds

import (
	"github.com/golang/geo/r3"

	"github.com/geovista/viewbounds/internal/geom"
)

// Camera is a perspective camera with a world transform.
//
// It supplies the two capabilities the bounds generator needs: unprojecting
// normalized device coordinates (NDC) into world space and the matrices the
// view frustum is derived from. NDC spans [-1,1] on x (left to right), y
// (bottom to top) and depth (near plane to far plane).
type Camera struct {
	fovY   float64 // vertical field of view, radians
	aspect float64
	near   float64
	far    float64

	position r3.Vector
	proj     geom.Mat4
	view     geom.Mat4 // world-inverse
	viewProj geom.Mat4
	invVP    geom.Mat4
}

// NewCamera creates a perspective camera. fovYDegrees is the vertical field
// of view; aspect is width over height. The camera starts at the world origin
// looking down -z; call LookAt to place it.
func NewCamera(fovYDegrees, aspect, near, far float64) *Camera {
	c := &Camera{
		fovY:   degToRad(fovYDegrees),
		aspect: aspect,
		near:   near,
		far:    far,
		proj:   geom.Perspective(degToRad(fovYDegrees), aspect, near, far),
	}
	c.LookAt(r3.Vector{}, r3.Vector{Z: -1}, r3.Vector{Y: 1})
	return c
}

// LookAt places the camera at eye, oriented toward target with the given up
// hint. up must not be parallel to the view direction.
func (c *Camera) LookAt(eye, target, up r3.Vector) {
	c.position = eye
	c.view = geom.LookAt(eye, target, up)
	c.viewProj = c.proj.Mul(c.view)
	// The view-projection of a perspective camera with near < far is always
	// invertible.
	c.invVP, _ = c.viewProj.Inverse()
}

// Position returns the camera's world-space position.
func (c *Camera) Position() r3.Vector {
	return c.position
}

// ProjectionMatrix returns the camera's projection matrix.
func (c *Camera) ProjectionMatrix() geom.Mat4 {
	return c.proj
}

// ViewMatrix returns the world-inverse matrix.
func (c *Camera) ViewMatrix() geom.Mat4 {
	return c.view
}

// ViewProjectionMatrix returns projection * view, the matrix the frustum
// planes are extracted from.
func (c *Camera) ViewProjectionMatrix() geom.Mat4 {
	return c.viewProj
}

// UnprojectNDC converts an NDC coordinate to a world-space point. depth is
// the NDC z: -1 on the near plane, +1 on the far plane.
func (c *Camera) UnprojectNDC(x, y, depth float64) r3.Vector {
	p, _ := c.invVP.TransformPoint(r3.Vector{X: x, Y: y, Z: depth})
	return p
}

// WorldToNDC projects a world-space point into NDC.
func (c *Camera) WorldToNDC(p r3.Vector) (r3.Vector, bool) {
	return c.viewProj.TransformPoint(p)
}

// RayFromNDC casts a ray from the camera position through the viewport point
// (x, y). The direction is unit length, toward the far plane.
func (c *Camera) RayFromNDC(x, y float64) geom.Ray {
	farPoint := c.UnprojectNDC(x, y, 1)
	return geom.Ray{
		Origin: c.position,
		Dir:    farPoint.Sub(c.position).Normalize(),
	}
}

// Frustum returns the camera's six-plane view frustum.
func (c *Camera) Frustum() geom.Frustum {
	return geom.FrustumFromMatrix(c.viewProj)
}
