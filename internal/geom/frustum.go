package geom

import "github.com/golang/geo/r3"

// Frustum holds the six clip planes of a camera's view volume, each with its
// normal pointing inward.
type Frustum struct {
	Planes [6]Plane // left, right, bottom, top, near, far
}

// FrustumFromMatrix extracts the six frustum planes from a view-projection
// matrix using the Gribb/Hartmann method. The matrix follows the row-major,
// column-vector convention of Mat4.
func FrustumFromMatrix(vp Mat4) Frustum {
	row := func(i int) (float64, float64, float64, float64) {
		return vp[i*4], vp[i*4+1], vp[i*4+2], vp[i*4+3]
	}
	x0, y0, z0, w0 := row(0)
	x1, y1, z1, w1 := row(1)
	x2, y2, z2, w2 := row(2)
	x3, y3, z3, w3 := row(3)

	var f Frustum
	f.Planes[0] = normalizePlane(x3+x0, y3+y0, z3+z0, w3+w0) // left
	f.Planes[1] = normalizePlane(x3-x0, y3-y0, z3-z0, w3-w0) // right
	f.Planes[2] = normalizePlane(x3+x1, y3+y1, z3+z1, w3+w1) // bottom
	f.Planes[3] = normalizePlane(x3-x1, y3-y1, z3-z1, w3-w1) // top
	f.Planes[4] = normalizePlane(x3+x2, y3+y2, z3+z2, w3+w2) // near
	f.Planes[5] = normalizePlane(x3-x2, y3-y2, z3-z2, w3-w2) // far
	return f
}

func normalizePlane(a, b, c, d float64) Plane {
	n := r3.Vector{X: a, Y: b, Z: c}
	l := n.Norm()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: n.Mul(1 / l), D: d / l}
}

// ContainsPoint reports whether p lies inside the frustum, allowing points up
// to tolerance outside any plane. The slack absorbs floating-point error in
// plane intersections computed at planetary coordinate magnitudes.
func (f Frustum) ContainsPoint(p r3.Vector, tolerance float64) bool {
	for _, pl := range f.Planes {
		if pl.DistanceTo(p) < -tolerance {
			return false
		}
	}
	return true
}
