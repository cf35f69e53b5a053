package viewbounds

import (
	"errors"
	"testing"
)

func TestBoundsContains(t *testing.T) {
	b := Bounds{MinLon: -10, MaxLon: 10, MinLat: 40, MaxLat: 50}

	if !b.Contains(0, 45) {
		t.Error("expected point inside")
	}
	if !b.Contains(-10, 40) {
		t.Error("expected boundary point inside")
	}
	if b.Contains(11, 45) {
		t.Error("expected point east of bounds outside")
	}
	if b.Contains(0, 39.9) {
		t.Error("expected point south of bounds outside")
	}
}

func TestBoundsIntersects(t *testing.T) {
	b := Bounds{MinLon: 0, MaxLon: 10, MinLat: 0, MaxLat: 10}

	if !b.Intersects(Bounds{MinLon: 5, MaxLon: 15, MinLat: 5, MaxLat: 15}) {
		t.Error("expected overlap")
	}
	if !b.Intersects(Bounds{MinLon: 10, MaxLon: 20, MinLat: 0, MaxLat: 10}) {
		t.Error("expected edge touch to intersect")
	}
	if b.Intersects(Bounds{MinLon: 11, MaxLon: 20, MinLat: 0, MaxLat: 10}) {
		t.Error("expected disjoint bounds")
	}
}

func TestBoundsExpandUnion(t *testing.T) {
	b := Bounds{MinLon: 0, MaxLon: 10, MinLat: 0, MaxLat: 10}

	e := b.Expand(1)
	want := Bounds{MinLon: -1, MaxLon: 11, MinLat: -1, MaxLat: 11}
	if e != want {
		t.Errorf("expected %+v, got %+v", want, e)
	}

	u := b.Union(Bounds{MinLon: 20, MaxLon: 30, MinLat: -5, MaxLat: 5})
	want = Bounds{MinLon: 0, MaxLon: 30, MinLat: -5, MaxLat: 10}
	if u != want {
		t.Errorf("expected %+v, got %+v", want, u)
	}
}

func TestGeoValidate(t *testing.T) {
	if err := NewGeo(45, -120).Validate(); err != nil {
		t.Errorf("expected valid coordinate, got %v", err)
	}

	// Normalized polygons carry longitudes up to 360.
	if err := NewGeo(0, 350).Validate(); err != nil {
		t.Errorf("expected shifted longitude to validate, got %v", err)
	}

	err := NewGeo(91, 0).Validate()
	if err == nil {
		t.Fatal("expected error for latitude 91")
	}
	var invalid *ErrInvalidCoordinate
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *ErrInvalidCoordinate, got %T", err)
	}
	if invalid.Lat != 91 {
		t.Errorf("expected Lat=91 in error, got %f", invalid.Lat)
	}
}
