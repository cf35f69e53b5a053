package viewbounds

import (
	"github.com/golang/geo/r3"

	"github.com/geovista/viewbounds/internal/geom"
)

// DefaultFrustumTolerance is the slack, in meters, allowed when checking
// whether an intersection point lies on the view frustum. Plane/segment
// intersections computed at planetary coordinate magnitudes land a few
// micrometers off the frustum surface; without the slack they would be
// rejected as false positives.
const DefaultFrustumTolerance = 1e-3

// GeneratorOptions configures a BoundsGenerator.
type GeneratorOptions struct {
	// TileWrapping treats the planar world as repeating infinitely east-west
	// instead of bounded to a single world rectangle. Ignored by the
	// spherical algorithm.
	TileWrapping bool

	// FrustumTolerance overrides DefaultFrustumTolerance when positive.
	FrustumTolerance float64
}

// DefaultGeneratorOptions returns default options.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		TileWrapping:     false,
		FrustumTolerance: DefaultFrustumTolerance,
	}
}

// BoundsGenerator computes the geographic region visible through a camera's
// view frustum, once per camera or view update.
//
// The generator holds a non-owning reference to the caller's camera and a
// replaceable projection. Each Generate call is independent and stateless
// beyond those references. The generator offers no internal synchronization:
// it is built for a single-threaded render loop, and callers invoking it from
// multiple goroutines must serialize access, including SetProjection and
// SetTileWrapping.
//
// Example:
//
//	camera := viewbounds.NewCamera(45, 16.0/9.0, 1, 100000)
//	camera.LookAt(eye, target, up)
//
//	gen := viewbounds.NewBoundsGenerator(camera,
//	    viewbounds.NewSphereProjection(),
//	    viewbounds.DefaultGeneratorOptions())
//
//	if polygon, ok := gen.Generate(); ok {
//	    render(polygon)
//	}
type BoundsGenerator struct {
	camera       *Camera
	projection   Projection
	tileWrapping bool
	tolerance    float64
}

// NewBoundsGenerator creates a generator over the given camera and
// projection. The camera must stay alive for the generator's lifetime.
func NewBoundsGenerator(camera *Camera, projection Projection, opts GeneratorOptions) *BoundsGenerator {
	tolerance := opts.FrustumTolerance
	if tolerance <= 0 {
		tolerance = DefaultFrustumTolerance
	}
	return &BoundsGenerator{
		camera:       camera,
		projection:   projection,
		tileWrapping: opts.TileWrapping,
		tolerance:    tolerance,
	}
}

// SetProjection replaces the active projection. Subsequent Generate calls
// dispatch on the new projection's type.
func (g *BoundsGenerator) SetProjection(p Projection) {
	g.projection = p
}

// Projection returns the active projection.
func (g *BoundsGenerator) Projection() Projection {
	return g.projection
}

// SetTileWrapping enables or disables east-west world wrapping for the
// planar algorithm.
func (g *BoundsGenerator) SetTileWrapping(enabled bool) {
	g.tileWrapping = enabled
}

// TileWrappingEnabled reports whether east-west world wrapping is active.
func (g *BoundsGenerator) TileWrappingEnabled() bool {
	return g.tileWrapping
}

// Generate computes the polygon of the visible ground region.
//
// Returns false when fewer than three distinct boundary points could be
// established: the camera does not see any part of the modeled ground
// surface, or all candidate points were degenerate. That is an expected
// outcome, not an error.
func (g *BoundsGenerator) Generate() (*GeoPolygon, bool) {
	switch g.projection.Type() {
	case ProjectionSpherical:
		return g.generateOnSphere()
	default:
		return g.generateOnPlane()
	}
}

// ndcCorners are the four viewport corners, counter-clockwise from
// bottom-left.
var ndcCorners = [4][2]float64{
	{-1, -1},
	{-1, 1},
	{1, 1},
	{1, -1},
}

// groundPlane is the planar world's ground surface.
var groundPlane = geom.Plane{Normal: r3.Vector{Z: 1}}

// groundSphere is the spherical world's ground surface.
var groundSphere = geom.Sphere{Radius: EquatorialRadius}

// raycastGroundPlane casts the NDC viewport point (x, y) through the camera
// onto the planar ground surface.
func (g *BoundsGenerator) raycastGroundPlane(x, y float64) (r3.Vector, bool) {
	return groundPlane.IntersectRay(g.camera.RayFromNDC(x, y))
}

// raycastGroundSphere casts the NDC viewport point (x, y) through the camera
// onto the spherical ground surface.
func (g *BoundsGenerator) raycastGroundSphere(x, y float64) (r3.Vector, bool) {
	return groundSphere.IntersectRay(g.camera.RayFromNDC(x, y))
}

// validPlanarWorld checks a world-space ground hit against the finite world
// rectangle. The east-west bound is ignored when tile wrapping is enabled,
// since a wrapped world has no east or west boundary.
func (g *BoundsGenerator) validPlanarWorld(w r3.Vector) bool {
	if w.Y < 0 || w.Y > EquatorialCircumference {
		return false
	}
	if !g.tileWrapping && (w.X < 0 || w.X > EquatorialCircumference) {
		return false
	}
	return true
}

// rayBetween returns the ray from one point toward another.
func rayBetween(from, toward r3.Vector) geom.Ray {
	return geom.Ray{Origin: from, Dir: toward.Sub(from)}
}

// groundGeo unprojects a ground hit and forces its altitude to zero. Ground
// intersections computed at world-coordinate magnitudes carry numerical
// drift on the vertical axis; the point is on the ground by construction.
func (g *BoundsGenerator) groundGeo(w r3.Vector) Geo {
	geo := g.projection.Unproject(w)
	geo.Altitude = 0
	return geo
}
