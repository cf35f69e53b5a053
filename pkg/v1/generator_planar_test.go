package viewbounds

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

// worldCenter is the planar world midpoint, geographic (0, 0).
var worldCenter = r3.Vector{
	X: EquatorialCircumference / 2,
	Y: EquatorialCircumference / 2,
}

// ringArea returns twice the signed shoelace area of the polygon in the
// (lon, lat) plane. Positive means counter-clockwise winding.
func ringArea(p *GeoPolygon) float64 {
	coords := p.Coordinates()
	area := 0.0
	for i := range coords {
		j := (i + 1) % len(coords)
		area += coords[i].Longitude*coords[j].Latitude -
			coords[j].Longitude*coords[i].Latitude
	}
	return area
}

func newPlanarGenerator(camera *Camera, wrapping bool) *BoundsGenerator {
	opts := DefaultGeneratorOptions()
	opts.TileWrapping = wrapping
	return NewBoundsGenerator(camera, NewWebMercatorProjection(), opts)
}

func TestPlanarNadirAllCornersOnGround(t *testing.T) {
	// Low nadir view: all 4 corner rays land well inside the world
	// rectangle, so the polygon is exactly those 4 hits.
	camera := NewCamera(45, 1, 1, 10000)
	camera.LookAt(
		worldCenter.Add(r3.Vector{Z: 1000}),
		worldCenter,
		r3.Vector{Y: 1},
	)
	gen := newPlanarGenerator(camera, false)

	polygon, ok := gen.Generate()
	if !ok {
		t.Fatal("expected bounds, got absence")
	}
	coords := polygon.Coordinates()
	if len(coords) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(coords))
	}
	if area := ringArea(polygon); area <= 0 {
		t.Errorf("expected counter-clockwise winding, got signed area %f", area)
	}

	// The footprint is centered on the camera's ground point, ~414m half
	// extent at 1000m altitude with a 45 degree fov.
	centroid := polygon.Centroid()
	if math.Abs(centroid.Latitude) > 1e-6 || math.Abs(centroid.Longitude) > 1e-6 {
		t.Errorf("expected centroid at (0, 0), got (%f, %f)",
			centroid.Latitude, centroid.Longitude)
	}
	for _, c := range coords {
		if math.Abs(c.Latitude) > 0.01 || math.Abs(c.Longitude) > 0.01 {
			t.Errorf("corner hit too far from nadir point: %+v", c)
		}
		if c.Altitude != 0 {
			t.Errorf("expected zero altitude, got %f", c.Altitude)
		}
	}
}

func TestPlanarNadirFrustumExceedsWorld(t *testing.T) {
	// High nadir view whose frustum exceeds the world rectangle on all
	// sides: the corner rays exit the world and are rejected, but the 4
	// world-rectangle corners are inside the frustum.
	c := EquatorialCircumference
	camera := NewCamera(45, 1, 1000, 5*c)
	camera.LookAt(
		worldCenter.Add(r3.Vector{Z: 2 * c}),
		worldCenter,
		r3.Vector{Y: 1},
	)
	gen := newPlanarGenerator(camera, false)

	polygon, ok := gen.Generate()
	if !ok {
		t.Fatal("expected bounds, got absence")
	}
	coords := polygon.Coordinates()
	if len(coords) != 4 {
		t.Fatalf("expected the 4 world corners, got %d vertices", len(coords))
	}
	if area := ringArea(polygon); area <= 0 {
		t.Errorf("expected counter-clockwise winding, got signed area %f", area)
	}

	for _, c := range coords {
		if math.Abs(math.Abs(c.Longitude)-180) > 1e-6 {
			t.Errorf("expected longitude ±180, got %f", c.Longitude)
		}
		if math.Abs(math.Abs(c.Latitude)-maxMercatorLatitude) > 1e-6 {
			t.Errorf("expected latitude ±%f, got %f", maxMercatorLatitude, c.Latitude)
		}
	}
}

func TestPlanarCameraFacingAway(t *testing.T) {
	// Camera looking straight up sees no part of the ground.
	camera := NewCamera(45, 1, 1, 10000)
	camera.LookAt(
		worldCenter.Add(r3.Vector{Z: 1000}),
		worldCenter.Add(r3.Vector{Z: 2000}),
		r3.Vector{Y: 1},
	)
	gen := newPlanarGenerator(camera, false)

	if polygon, ok := gen.Generate(); ok {
		t.Fatalf("expected absence, got %d vertices", len(polygon.Coordinates()))
	}
}

func TestPlanarTiltedViewReachesHorizonRow(t *testing.T) {
	// Camera pitched 75 degrees from nadir: the top corner rays miss the
	// ground, so the horizon row supplies the far boundary.
	pitch := degToRad(75)
	dir := r3.Vector{Y: math.Sin(pitch), Z: -math.Cos(pitch)}
	eye := worldCenter.Add(r3.Vector{Z: 1000})
	camera := NewCamera(45, 1, 1, 50000)
	camera.LookAt(eye, eye.Add(dir), r3.Vector{Z: 1})
	gen := newPlanarGenerator(camera, false)

	polygon, ok := gen.Generate()
	if !ok {
		t.Fatal("expected bounds, got absence")
	}
	coords := polygon.Coordinates()
	if len(coords) != 4 {
		t.Fatalf("expected 2 corner hits + 2 horizon hits, got %d vertices", len(coords))
	}
	if area := ringArea(polygon); area <= 0 {
		t.Errorf("expected counter-clockwise winding, got signed area %f", area)
	}

	// The horizon points sit tens of kilometers north of the near corner
	// hits.
	bbox := polygon.BoundingBox()
	if bbox.MaxLat-bbox.MinLat < 0.1 {
		t.Errorf("expected deep footprint toward the horizon, got lat span %f",
			bbox.MaxLat-bbox.MinLat)
	}
	if bbox.MinLat < -0.1 {
		t.Errorf("footprint should lie north of the camera, got MinLat %f", bbox.MinLat)
	}
}

func TestPlanarWrappingDoesNotShrinkExtent(t *testing.T) {
	// A view spanning more than one world repetition: with wrapping enabled
	// the east-west extent must not fall below the bounded result.
	c := EquatorialCircumference
	camera := NewCamera(45, 1, 1000, 5*c)
	camera.LookAt(
		worldCenter.Add(r3.Vector{Z: 2 * c}),
		worldCenter,
		r3.Vector{Y: 1},
	)

	gen := newPlanarGenerator(camera, false)
	bounded, ok := gen.Generate()
	if !ok {
		t.Fatal("expected bounds in bounded mode")
	}

	gen.SetTileWrapping(true)
	if !gen.TileWrappingEnabled() {
		t.Fatal("SetTileWrapping(true) not reflected")
	}
	wrapped, ok := gen.Generate()
	if !ok {
		t.Fatal("expected bounds in wrapping mode")
	}

	boundedSpan := bounded.BoundingBox().MaxLon - bounded.BoundingBox().MinLon
	wrappedSpan := wrapped.BoundingBox().MaxLon - wrapped.BoundingBox().MinLon
	if wrappedSpan < boundedSpan {
		t.Errorf("wrapping reduced east-west extent: %f < %f", wrappedSpan, boundedSpan)
	}
}

func TestGeneratorSetProjection(t *testing.T) {
	camera := NewCamera(45, 1, 1, 10000)
	gen := newPlanarGenerator(camera, false)

	if gen.Projection().Type() != ProjectionPlanar {
		t.Fatal("expected planar projection")
	}
	gen.SetProjection(NewSphereProjection())
	if gen.Projection().Type() != ProjectionSpherical {
		t.Fatal("expected spherical projection after SetProjection")
	}
}
