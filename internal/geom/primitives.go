package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	// parallelEpsilon rejects ray/plane denominators too small to divide by.
	parallelEpsilon = 1e-12

	// surfaceEpsilon treats ray origins on a surface as touching it, so a
	// camera sitting exactly on the ground still reports a hit at t=0.
	surfaceEpsilon = 1e-9
)

// Ray is a half-line from Origin along (not necessarily unit) Dir.
type Ray struct {
	Origin r3.Vector
	Dir    r3.Vector
}

// At returns the point Origin + t*Dir.
func (r Ray) At(t float64) r3.Vector {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Plane is the set of points p with Normal·p + D = 0. Normal is unit length;
// points with Normal·p + D > 0 are on the positive side.
type Plane struct {
	Normal r3.Vector
	D      float64
}

// DistanceTo returns the signed distance from p to the plane.
func (pl Plane) DistanceTo(p r3.Vector) float64 {
	return pl.Normal.Dot(p) + pl.D
}

// IntersectRay returns the intersection of a ray with the plane.
// Returns false for rays parallel to the plane or pointing away from it.
func (pl Plane) IntersectRay(r Ray) (r3.Vector, bool) {
	denom := pl.Normal.Dot(r.Dir)
	if math.Abs(denom) < parallelEpsilon {
		return r3.Vector{}, false
	}
	t := -pl.DistanceTo(r.Origin) / denom
	if t < -surfaceEpsilon {
		return r3.Vector{}, false
	}
	if t < 0 {
		t = 0
	}
	return r.At(t), true
}

// IntersectSegment returns the intersection of the segment [a, b] with the
// plane, or false when the segment does not cross it.
func (pl Plane) IntersectSegment(a, b r3.Vector) (r3.Vector, bool) {
	dir := b.Sub(a)
	denom := pl.Normal.Dot(dir)
	if math.Abs(denom) < parallelEpsilon {
		return r3.Vector{}, false
	}
	t := -pl.DistanceTo(a) / denom
	if t < 0 || t > 1 {
		return r3.Vector{}, false
	}
	return a.Add(dir.Mul(t)), true
}

// Sphere is a sphere centered at Center with the given Radius.
type Sphere struct {
	Center r3.Vector
	Radius float64
}

// IntersectRay returns the nearest non-negative intersection of a ray with
// the sphere surface. A ray starting on the surface reports its origin.
func (s Sphere) IntersectRay(r Ray) (r3.Vector, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Dir.Dot(r.Dir)
	if a < parallelEpsilon {
		return r3.Vector{}, false
	}
	b := 2 * oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return r3.Vector{}, false
	}
	sq := math.Sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t < -surfaceEpsilon {
		t = (-b + sq) / (2 * a)
	}
	if t < -surfaceEpsilon {
		return r3.Vector{}, false
	}
	if t < 0 {
		t = 0
	}
	return r.At(t), true
}

// Box is an axis-aligned box.
type Box struct {
	Min r3.Vector
	Max r3.Vector
}
