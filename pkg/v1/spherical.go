package viewbounds

import "github.com/golang/geo/r3"

// generateOnSphere computes the visible region of a spherical world.
//
// The four viewport corner rays are cast against the ground sphere first.
// When they all hit, the view sits fully inside the globe's visible disc.
// Otherwise the horizon crosses the viewport, and the sides of the far
// clipping plane are probed for the sphere to trace it.
//
// The algorithm assumes a camera without roll: with the horizon in view,
// either both bottom corners hit the sphere or none does.
func (g *BoundsGenerator) generateOnSphere() (*GeoPolygon, bool) {
	var coords []Geo

	hits := 0
	for _, c := range ndcCorners {
		w, ok := g.raycastGroundSphere(c[0], c[1])
		if !ok {
			continue
		}
		coords = append(coords, g.groundGeo(w))
		hits++
	}

	if hits == 4 {
		return g.finishSpherePolygon(coords)
	}
	if hits != 0 && hits != 2 {
		panic("viewbounds: camera roll is not supported by the spherical bounds algorithm")
	}

	// far-plane sides in counter-clockwise corner order
	sides := [][2][2]float64{
		{{1, -1}, {1, 1}},   // right
		{{1, 1}, {-1, 1}},   // top
		{{-1, 1}, {-1, -1}}, // left
	}
	if hits == 0 {
		// Without corner hits nothing seeds the horizon yet; the bottom side
		// must be probed as well.
		sides = append(sides, [2][2]float64{{-1, -1}, {1, -1}})
	}

	for _, side := range sides {
		coords = append(coords, g.farPlaneSideIntersections(side[0], side[1])...)
	}

	return g.finishSpherePolygon(coords)
}

// farPlaneSideIntersections casts rays along one side of the far clipping
// plane, from each corner toward the other, and collects ground-sphere hits.
// Both directions are tried since the sphere may be crossed from either
// corner.
func (g *BoundsGenerator) farPlaneSideIntersections(a, b [2]float64) []Geo {
	cornerA := g.camera.UnprojectNDC(a[0], a[1], 1)
	cornerB := g.camera.UnprojectNDC(b[0], b[1], 1)

	var coords []Geo
	for _, ray := range [2]struct{ origin, toward r3.Vector }{
		{cornerA, cornerB},
		{cornerB, cornerA},
	} {
		hit, ok := groundSphere.IntersectRay(rayBetween(ray.origin, ray.toward))
		if !ok {
			continue
		}
		coords = append(coords, g.groundGeo(hit))
	}
	return coords
}

// finishSpherePolygon normalizes the accumulated points across the
// antimeridian and winds them into a polygon.
func (g *BoundsGenerator) finishSpherePolygon(coords []Geo) (*GeoPolygon, bool) {
	coords = g.normalizeAntimeridian(coords)
	coords = subdivideLongEdges(coords)
	return NewGeoPolygon(coords, true)
}

// normalizeAntimeridian shifts western longitudes by +360 degrees when the
// accumulated points wrap discontinuously across the ±180 seam, so the
// polygon's vertices form a contiguous span.
//
// The wrap test is a best-effort heuristic: a set with mixed longitude signs
// needs no correction when the camera's look-at point sits in the hemisphere
// around longitude zero. Views including the poles can defeat it; see the
// known limitations in the package documentation.
func (g *BoundsGenerator) normalizeAntimeridian(coords []Geo) []Geo {
	negative := 0
	for _, c := range coords {
		if c.Longitude < 0 {
			negative++
		}
	}
	// All non-negative or all negative: nothing straddles the seam, and
	// re-running the pass on an already normalized set stays a no-op.
	if negative == 0 || negative == len(coords) {
		return coords
	}

	if lookAt, ok := g.raycastGroundSphere(0, 0); ok {
		lon := g.projection.Unproject(lookAt).Longitude
		if lon > -90 && lon < 90 {
			return coords
		}
	}

	normalized := make([]Geo, len(coords))
	for i, c := range coords {
		if c.Longitude < 0 {
			c.Longitude += 360
		}
		normalized[i] = c
	}
	return normalized
}

// subdivideLongEdges is a future extension point for splitting long polygon
// edges to follow highly curved horizons more closely. It is intentionally an
// identity pass for now.
func subdivideLongEdges(coords []Geo) []Geo {
	return coords
}
