// Package viewbounds computes the geographic region visible through a map
// camera's viewing frustum.
//
// Once per camera or view update, a BoundsGenerator reconstructs the minimal
// convex polygon on the ground surface the camera can see, expressed as an
// ordered ring of geographic coordinates. Consumers intersect this polygon
// against a spatial index of map tiles and compute tight bounding volumes for
// visibility culling.
//
// # Basic Usage
//
//	camera := viewbounds.NewCamera(45, 16.0/9.0, 1, 3_000_000)
//	camera.LookAt(eye, target, up)
//
//	gen := viewbounds.NewBoundsGenerator(camera,
//	    viewbounds.NewSphereProjection(),
//	    viewbounds.DefaultGeneratorOptions())
//
//	polygon, ok := gen.Generate()
//	if !ok {
//	    // The camera sees no part of the ground surface. This is an
//	    // expected outcome, not an error.
//	    return
//	}
//	for _, coord := range polygon.Coordinates() {
//	    fmt.Printf("lat=%.4f lon=%.4f\n", coord.Latitude, coord.Longitude)
//	}
//
// # World Models
//
// The generator dispatches on the active projection's type:
//
//   - ProjectionPlanar (WebMercatorProjection) models the world as a flat
//     square with the ground at z=0. With tile wrapping enabled the square
//     repeats infinitely east-west.
//   - ProjectionSpherical (SphereProjection) models the world as a globe of
//     EquatorialRadius centered at the origin.
//
// The projection is replaceable between calls via SetProjection; the planar
// wrapping mode via SetTileWrapping.
//
// # Tile Queries
//
// A generated polygon plugs into the tile-side helpers for visibility
// computation:
//
//	scheme := viewbounds.NewWebMercatorTilingScheme()
//	tiles := viewbounds.ComputeVisibleTiles(gen, scheme,
//	    viewbounds.VisibleTilesOptions{
//	        Level:     8,
//	        Elevation: viewbounds.NewStaticElevationRangeSource(0, 4000),
//	    })
//
// # Concurrency
//
// Everything here is synchronous and allocation-light: Generate completes
// within the calling invocation with no I/O and no shared state beyond the
// camera and projection references the generator holds. A generator instance
// is not safe for concurrent use; callers invoking it off a single render
// loop must serialize access themselves.
//
// # Known Limitations
//
//   - Antimeridian handling is a best-effort normalization: polygons crossing
//     the ±180 seam are shifted into a contiguous longitude span using a
//     heuristic on the camera's look-at longitude. Views that include a pole
//     can defeat the heuristic.
//   - The spherical algorithm does not support camera roll and panics when a
//     rolled camera produces an inconsistent horizon.
//   - A far plane placed beyond the horizon can mis-normalize extreme views.
package viewbounds
