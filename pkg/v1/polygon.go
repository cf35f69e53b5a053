package viewbounds

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// coordEpsilon is the distance (in degrees) under which two polygon vertices
// are considered the same point. Nadir views over a sphere can produce all
// boundary rays hitting one spot; deduplication keeps such degenerate hits
// from forming a zero-area ring.
const coordEpsilon = 1e-7

// GeoPolygon is an ordered ring of at least three geographic coordinates.
//
// Vertices are stored counter-clockwise around the ring's centroid when the
// polygon was constructed with sorting enabled. A GeoPolygon is never built
// with fewer than three distinct vertices; constructors report absence
// instead.
type GeoPolygon struct {
	coords []Geo
}

// NewGeoPolygon builds a polygon from the given coordinates.
//
// Near-duplicate vertices are removed first. When sortCCW is set the
// remaining vertices are re-sorted into counter-clockwise winding around
// their centroid. Returns false when fewer than three distinct vertices
// remain; callers must treat that as "no determinable bounds", not an error.
func NewGeoPolygon(coords []Geo, sortCCW bool) (*GeoPolygon, bool) {
	distinct := dedupCoords(coords)
	if len(distinct) < 3 {
		return nil, false
	}
	if sortCCW {
		sortCounterClockwise(distinct)
	}
	return &GeoPolygon{coords: distinct}, true
}

// Coordinates returns the polygon's vertices in ring order.
func (p *GeoPolygon) Coordinates() []Geo {
	return p.coords
}

// Centroid returns the arithmetic mean of the polygon's vertices.
func (p *GeoPolygon) Centroid() Geo {
	var lat, lon float64
	for _, c := range p.coords {
		lat += c.Latitude
		lon += c.Longitude
	}
	n := float64(len(p.coords))
	return Geo{Latitude: lat / n, Longitude: lon / n}
}

// Ring returns the polygon as a closed orb.Ring in (lon, lat) order, suitable
// for the planar predicates in orb/planar.
func (p *GeoPolygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(p.coords)+1)
	for _, c := range p.coords {
		ring = append(ring, orb.Point{c.Longitude, c.Latitude})
	}
	ring = append(ring, ring[0])
	return ring
}

// Bound returns the polygon's bounding box as an orb.Bound.
func (p *GeoPolygon) Bound() orb.Bound {
	return p.Ring().Bound()
}

// BoundingBox returns the polygon's bounding box.
func (p *GeoPolygon) BoundingBox() Bounds {
	b := Bounds{
		MinLon: p.coords[0].Longitude, MaxLon: p.coords[0].Longitude,
		MinLat: p.coords[0].Latitude, MaxLat: p.coords[0].Latitude,
	}
	for _, c := range p.coords[1:] {
		b.MinLon = math.Min(b.MinLon, c.Longitude)
		b.MaxLon = math.Max(b.MaxLon, c.Longitude)
		b.MinLat = math.Min(b.MinLat, c.Latitude)
		b.MaxLat = math.Max(b.MaxLat, c.Latitude)
	}
	return b
}

// dedupCoords returns coords with near-duplicates removed, preserving the
// first occurrence order.
func dedupCoords(coords []Geo) []Geo {
	distinct := make([]Geo, 0, len(coords))
	for _, c := range coords {
		dup := false
		for _, d := range distinct {
			if math.Abs(c.Latitude-d.Latitude) < coordEpsilon &&
				math.Abs(c.Longitude-d.Longitude) < coordEpsilon {
				dup = true
				break
			}
		}
		if !dup {
			distinct = append(distinct, c)
		}
	}
	return distinct
}

// sortCounterClockwise orders vertices by angle around their centroid. In the
// (lon, lat) plane increasing angle is counter-clockwise winding.
func sortCounterClockwise(coords []Geo) {
	var cLat, cLon float64
	for _, c := range coords {
		cLat += c.Latitude
		cLon += c.Longitude
	}
	n := float64(len(coords))
	cLat /= n
	cLon /= n

	sort.Slice(coords, func(i, j int) bool {
		ai := math.Atan2(coords[i].Latitude-cLat, coords[i].Longitude-cLon)
		aj := math.Atan2(coords[j].Latitude-cLat, coords[j].Longitude-cLon)
		return ai < aj
	})
}
