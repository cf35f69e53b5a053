package viewbounds

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/geovista/viewbounds/internal/geom"
)

const (
	// EquatorialRadius is the WGS-84 equatorial radius in meters.
	EquatorialRadius = 6378137.0

	// EquatorialCircumference is the length of one planar world repetition
	// in meters; the planar world square spans [0, EquatorialCircumference]
	// on both axes.
	EquatorialCircumference = 2 * math.Pi * EquatorialRadius

	// maxMercatorLatitude is the latitude at which the square web mercator
	// world is cut off.
	maxMercatorLatitude = 85.05112877980659
)

// ProjectionType discriminates the two supported world models.
type ProjectionType int

const (
	// ProjectionPlanar models the world as a flat square of one mercator
	// repetition with the ground at z=0.
	ProjectionPlanar ProjectionType = iota

	// ProjectionSpherical models the world as a sphere of EquatorialRadius
	// centered at the world origin.
	ProjectionSpherical
)

// Projection converts between geographic and world coordinates.
//
// The bounds generator does not implement projections itself; it dispatches
// on Type and calls Project/Unproject/WorldExtent as given capabilities.
type Projection interface {
	// Type returns the projection's world model.
	Type() ProjectionType

	// Project converts a geographic coordinate to world space.
	Project(g Geo) r3.Vector

	// Unproject converts a world-space point back to geographic coordinates.
	Unproject(v r3.Vector) Geo

	// WorldExtent returns the finite bounds of one world repetition between
	// the given altitudes. The second return value is false for projections
	// without a finite extent (the spherical world).
	WorldExtent(minAltitude, maxAltitude float64) (geom.Box, bool)
}

// WebMercatorProjection is the planar world model: web mercator meters with
// x growing east in [0, EquatorialCircumference], y growing north in the same
// range, and z the altitude above the ground plane z=0.
type WebMercatorProjection struct{}

// NewWebMercatorProjection returns the planar projection.
func NewWebMercatorProjection() *WebMercatorProjection {
	return &WebMercatorProjection{}
}

// Type implements Projection.
func (*WebMercatorProjection) Type() ProjectionType { return ProjectionPlanar }

// Project implements Projection.
func (*WebMercatorProjection) Project(g Geo) r3.Vector {
	lat := math.Max(-maxMercatorLatitude, math.Min(maxMercatorLatitude, g.Latitude))
	y := math.Log(math.Tan(math.Pi/4 + degToRad(lat)/2))
	return r3.Vector{
		X: EquatorialCircumference * (g.Longitude + 180) / 360,
		Y: EquatorialCircumference * (0.5 + y/(2*math.Pi)),
		Z: g.Altitude,
	}
}

// Unproject implements Projection.
func (*WebMercatorProjection) Unproject(v r3.Vector) Geo {
	y := (v.Y/EquatorialCircumference - 0.5) * 2 * math.Pi
	return Geo{
		Latitude:  radToDeg(2*math.Atan(math.Exp(y)) - math.Pi/2),
		Longitude: v.X/EquatorialCircumference*360 - 180,
		Altitude:  v.Z,
	}
}

// WorldExtent implements Projection.
func (*WebMercatorProjection) WorldExtent(minAltitude, maxAltitude float64) (geom.Box, bool) {
	return geom.Box{
		Min: r3.Vector{X: 0, Y: 0, Z: minAltitude},
		Max: r3.Vector{X: EquatorialCircumference, Y: EquatorialCircumference, Z: maxAltitude},
	}, true
}

// SphereProjection is the spherical world model: geocentric cartesian
// coordinates on a sphere of EquatorialRadius, with +z toward the north pole
// and +x toward latitude 0, longitude 0.
type SphereProjection struct{}

// NewSphereProjection returns the spherical projection.
func NewSphereProjection() *SphereProjection {
	return &SphereProjection{}
}

// Type implements Projection.
func (*SphereProjection) Type() ProjectionType { return ProjectionSpherical }

// Project implements Projection.
func (*SphereProjection) Project(g Geo) r3.Vector {
	r := EquatorialRadius + g.Altitude
	lat := degToRad(g.Latitude)
	lon := degToRad(g.Longitude)
	cosLat := math.Cos(lat)
	return r3.Vector{
		X: r * cosLat * math.Cos(lon),
		Y: r * cosLat * math.Sin(lon),
		Z: r * math.Sin(lat),
	}
}

// Unproject implements Projection.
func (*SphereProjection) Unproject(v r3.Vector) Geo {
	r := v.Norm()
	if r == 0 {
		return Geo{Altitude: -EquatorialRadius}
	}
	return Geo{
		Latitude:  radToDeg(math.Asin(v.Z / r)),
		Longitude: radToDeg(math.Atan2(v.Y, v.X)),
		Altitude:  r - EquatorialRadius,
	}
}

// WorldExtent implements Projection. A spherical world has no finite
// rectangular extent.
func (*SphereProjection) WorldExtent(minAltitude, maxAltitude float64) (geom.Box, bool) {
	return geom.Box{}, false
}
