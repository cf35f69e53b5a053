package main

import (
	"fmt"
	"log"

	"github.com/golang/geo/r3"

	viewbounds "github.com/geovista/viewbounds/pkg/v1"
)

func main() {
	// A drone-style camera 2km above Zurich on a flat (web mercator) world.
	proj := viewbounds.NewWebMercatorProjection()
	eye := proj.Project(viewbounds.Geo{Latitude: 47.37, Longitude: 8.54, Altitude: 2000})
	target := proj.Project(viewbounds.NewGeo(47.40, 8.54))

	camera := viewbounds.NewCamera(60, 16.0/9.0, 1, 100_000)
	camera.LookAt(eye, target, r3.Vector{Z: 1})

	gen := viewbounds.NewBoundsGenerator(camera, proj, viewbounds.DefaultGeneratorOptions())
	scheme := viewbounds.NewWebMercatorTilingScheme()

	// Intersect the visible region against the level-14 tile grid, with a
	// static elevation range standing in for real terrain data.
	tiles := viewbounds.ComputeVisibleTiles(gen, scheme, viewbounds.VisibleTilesOptions{
		Level:     14,
		Elevation: viewbounds.NewStaticElevationRangeSource(300, 900),
	})
	if len(tiles) == 0 {
		log.Fatal("camera sees no tiles")
	}

	fmt.Printf("%d visible tiles at level 14:\n", len(tiles))
	for _, tile := range tiles {
		fmt.Printf("  %s  lon [%.4f, %.4f] lat [%.4f, %.4f]  elev [%.0f, %.0f]\n",
			tile.Key,
			tile.GeoBounds.MinLon, tile.GeoBounds.MaxLon,
			tile.GeoBounds.MinLat, tile.GeoBounds.MaxLat,
			tile.Elevation.Min, tile.Elevation.Max)
	}
}
