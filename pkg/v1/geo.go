package viewbounds

import "math"

// Geo represents a geographic position in WGS-84 coordinates.
//
// Latitude and Longitude are in decimal degrees, Altitude in meters above the
// reference surface. Several bounds-generation code paths force Altitude to
// zero after intersecting at planetary coordinate magnitudes; the drift there
// is numerical noise, not elevation.
type Geo struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}

// NewGeo returns a Geo at the given latitude and longitude with zero altitude.
func NewGeo(lat, lon float64) Geo {
	return Geo{Latitude: lat, Longitude: lon}
}

// Valid reports whether the coordinate is within the WGS-84 domain. Longitude
// is allowed to exceed 180 degrees so that antimeridian-normalized polygons
// (which shift western longitudes by +360) remain valid.
func (g Geo) Valid() bool {
	return g.Latitude >= -90 && g.Latitude <= 90 &&
		g.Longitude >= -180 && g.Longitude <= 360
}

// Validate returns an *ErrInvalidCoordinate when the coordinate is outside
// the WGS-84 domain.
func (g Geo) Validate() error {
	if !g.Valid() {
		return &ErrInvalidCoordinate{Lat: g.Latitude, Lon: g.Longitude}
	}
	return nil
}

// Bounds represents a geographic bounding box in WGS-84 coordinates.
//
// Coordinates are in decimal degrees. MaxLon may exceed 180 for boxes derived
// from antimeridian-normalized polygons.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// Contains returns true if the point (lon, lat) is within the bounds.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon &&
		lat >= b.MinLat && lat <= b.MaxLat
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
//
// Margin is in decimal degrees.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinLon: b.MinLon - margin,
		MaxLon: b.MaxLon + margin,
		MinLat: b.MinLat - margin,
		MaxLat: b.MaxLat + margin,
	}
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinLon: math.Min(b.MinLon, other.MinLon),
		MaxLon: math.Max(b.MaxLon, other.MaxLon),
		MinLat: math.Min(b.MinLat, other.MinLat),
		MaxLat: math.Max(b.MaxLat, other.MaxLat),
	}
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }
