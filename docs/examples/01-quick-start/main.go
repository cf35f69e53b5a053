package main

import (
	"fmt"
	"log"

	"github.com/golang/geo/r3"

	viewbounds "github.com/geovista/viewbounds/pkg/v1"
)

func main() {
	// A camera 600km above the Gulf of Maine, pitched toward the horizon.
	proj := viewbounds.NewSphereProjection()
	eye := proj.Project(viewbounds.Geo{Latitude: 43.0, Longitude: -69.0, Altitude: 600_000})
	target := proj.Project(viewbounds.NewGeo(46.0, -69.0))

	camera := viewbounds.NewCamera(45, 16.0/9.0, 100, 4_000_000)
	camera.LookAt(eye, target, r3.Vector{Z: 1})

	gen := viewbounds.NewBoundsGenerator(camera, proj, viewbounds.DefaultGeneratorOptions())

	polygon, ok := gen.Generate()
	if !ok {
		log.Fatal("camera sees no part of the globe")
	}

	fmt.Println("Visible region:")
	for _, coord := range polygon.Coordinates() {
		fmt.Printf("  lat=%8.4f lon=%9.4f\n", coord.Latitude, coord.Longitude)
	}

	bbox := polygon.BoundingBox()
	fmt.Printf("Bounding box: lon [%.4f, %.4f] lat [%.4f, %.4f]\n",
		bbox.MinLon, bbox.MaxLon, bbox.MinLat, bbox.MaxLat)
}
