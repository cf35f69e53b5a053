package viewbounds

import (
	"github.com/golang/geo/r3"

	"github.com/geovista/viewbounds/internal/geom"
)

// generateOnPlane computes the visible region of a flat world.
//
// The algorithm accumulates candidate ground points from three sources: the
// four viewport corner rays, two rays cast along the horizon row of the
// viewport, and intersections of the world rectangle with the view frustum.
// The accumulated points are then wound into a counter-clockwise polygon. No
// longitude normalization is needed in planar mode.
func (g *BoundsGenerator) generateOnPlane() (*GeoPolygon, bool) {
	var coords []Geo

	// Viewport corner rays against the ground plane.
	hits := 0
	for _, c := range ndcCorners {
		w, ok := g.raycastGroundPlane(c[0], c[1])
		if !ok || !g.validPlanarWorld(w) {
			continue
		}
		coords = append(coords, g.groundGeo(w))
		hits++
	}

	// All four corners on valid ground: the view sits fully inside one world
	// rectangle.
	if hits == 4 {
		return NewGeoPolygon(coords, true)
	}

	// Part of the view extends past the ground. Bracket the horizon row and
	// the world rectangle against the frustum.
	if y, ok := g.horizonNDCRow(); ok {
		for _, x := range [2]float64{-1, 1} {
			if w, ok := g.raycastGroundPlane(x, y); ok && g.validPlanarWorld(w) {
				coords = append(coords, g.groundGeo(w))
			}
		}
	}

	frustum := g.camera.Frustum()
	extent, ok := g.projection.WorldExtent(0, 0)
	if !ok {
		return NewGeoPolygon(coords, true)
	}
	corners := worldRectCorners(extent)

	if g.tileWrapping {
		coords = append(coords, g.wrappedEdgeIntersections(frustum, extent)...)
	} else {
		coords = append(coords, g.boundedEdgeIntersections(frustum, corners)...)
	}

	return NewGeoPolygon(coords, true)
}

// horizonNDCRow finds the NDC row at which the vertical centerline of the far
// clipping plane crosses the ground plane. Returns false when the camera is
// not looking toward the horizon.
func (g *BoundsGenerator) horizonNDCRow() (float64, bool) {
	bottomMid := g.camera.UnprojectNDC(0, -1, 1)
	topMid := g.camera.UnprojectNDC(0, 1, 1)

	w, ok := groundPlane.IntersectSegment(bottomMid, topMid)
	if !ok {
		return 0, false
	}
	ndc, ok := g.camera.WorldToNDC(w)
	if !ok {
		return 0, false
	}
	return ndc.Y, true
}

// boundedEdgeIntersections collects visible points of a bounded world
// rectangle: corners contained in the frustum, plus intersections of the
// rectangle's edges with the frustum planes. Altitude is forced to zero on
// every point.
func (g *BoundsGenerator) boundedEdgeIntersections(frustum geom.Frustum, corners [4]r3.Vector) []Geo {
	var coords []Geo

	for _, c := range corners {
		if frustum.ContainsPoint(c, g.tolerance) {
			coords = append(coords, g.groundGeo(c))
		}
	}

	edges := [4][2]r3.Vector{
		{corners[3], corners[2]}, // south: SW -> SE
		{corners[2], corners[0]}, // east: SE -> NE
		{corners[0], corners[1]}, // north: NE -> NW
		{corners[1], corners[3]}, // west: NW -> SW
	}
	for _, e := range edges {
		for _, pl := range frustum.Planes {
			p, ok := pl.IntersectSegment(e[0], e[1])
			if !ok {
				continue
			}
			// The plane test alone produces false positives on segments
			// that cross a plane outside the view volume.
			if !frustum.ContainsPoint(p, g.tolerance) || !g.validPlanarWorld(p) {
				continue
			}
			coords = append(coords, g.groundGeo(p))
		}
	}
	return coords
}

// wrappedEdgeIntersections collects visible points of a laterally repeating
// world. A wrapped world has no east or west boundary, so instead of finite
// edges two pairs of infinite rays run east and west along the south and
// north world edges.
func (g *BoundsGenerator) wrappedEdgeIntersections(frustum geom.Frustum, extent geom.Box) []Geo {
	var coords []Geo

	east := r3.Vector{X: 1}
	west := r3.Vector{X: -1}
	rays := [4]geom.Ray{
		{Origin: r3.Vector{Y: extent.Min.Y}, Dir: east},
		{Origin: r3.Vector{Y: extent.Min.Y}, Dir: west},
		{Origin: r3.Vector{Y: extent.Max.Y}, Dir: east},
		{Origin: r3.Vector{Y: extent.Max.Y}, Dir: west},
	}
	for _, ray := range rays {
		for _, pl := range frustum.Planes {
			p, ok := pl.IntersectRay(ray)
			if !ok {
				continue
			}
			if !frustum.ContainsPoint(p, g.tolerance) || !g.validPlanarWorld(p) {
				continue
			}
			coords = append(coords, g.groundGeo(p))
		}
	}
	return coords
}

// worldRectCorners returns the ground-level corners of one world repetition
// in NE, NW, SE, SW order.
func worldRectCorners(extent geom.Box) [4]r3.Vector {
	return [4]r3.Vector{
		{X: extent.Max.X, Y: extent.Max.Y}, // NE
		{X: extent.Min.X, Y: extent.Max.Y}, // NW
		{X: extent.Max.X, Y: extent.Min.Y}, // SE
		{X: extent.Min.X, Y: extent.Min.Y}, // SW
	}
}
