package viewbounds

import "testing"

func TestTileIndexQueryBounds(t *testing.T) {
	idx := NewTileIndex()
	idx.Insert(TileKey{Level: 4, Column: 8, Row: 7}, Bounds{MinLon: 0, MaxLon: 10, MinLat: 0, MaxLat: 10})
	idx.Insert(TileKey{Level: 4, Column: 9, Row: 7}, Bounds{MinLon: 20, MaxLon: 30, MinLat: 0, MaxLat: 10})

	if idx.Count() != 2 {
		t.Fatalf("expected 2 indexed tiles, got %d", idx.Count())
	}

	entries := idx.QueryBounds(Bounds{MinLon: 5, MaxLon: 15, MinLat: 5, MaxLat: 15})
	if len(entries) != 1 {
		t.Fatalf("expected 1 tile, got %d", len(entries))
	}
	if entries[0].Key != (TileKey{Level: 4, Column: 8, Row: 7}) {
		t.Errorf("unexpected tile %s", entries[0].Key)
	}

	entries = idx.QueryBounds(Bounds{MinLon: -5, MaxLon: 35, MinLat: -5, MaxLat: 15})
	if len(entries) != 2 {
		t.Errorf("expected both tiles, got %d", len(entries))
	}

	entries = idx.QueryBounds(Bounds{MinLon: 40, MaxLon: 50, MinLat: 0, MaxLat: 10})
	if len(entries) != 0 {
		t.Errorf("expected no tiles, got %d", len(entries))
	}
}

func TestTileIndexQueryPolygon(t *testing.T) {
	idx := NewTileIndex()
	inTriangle := TileKey{Level: 5, Column: 16, Row: 15}
	offTriangle := TileKey{Level: 5, Column: 18, Row: 15}
	idx.Insert(inTriangle, Bounds{MinLon: 2, MaxLon: 4, MinLat: 2, MaxLat: 4})
	idx.Insert(offTriangle, Bounds{MinLon: 20, MaxLon: 22, MinLat: 2, MaxLat: 4})

	polygon, ok := NewGeoPolygon([]Geo{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 12},
		{Latitude: 12, Longitude: 0},
	}, true)
	if !ok {
		t.Fatal("expected polygon")
	}

	entries := idx.QueryPolygon(polygon)
	if len(entries) != 1 {
		t.Fatalf("expected 1 tile in triangle, got %d", len(entries))
	}
	if entries[0].Key != inTriangle {
		t.Errorf("unexpected tile %s", entries[0].Key)
	}
}

func TestTileIndexPolygonInsideTile(t *testing.T) {
	// A polygon entirely inside one large tile still intersects it,
	// even though no tile corner lies in the polygon.
	idx := NewTileIndex()
	big := TileKey{Level: 1, Column: 1, Row: 0}
	idx.Insert(big, Bounds{MinLon: -50, MaxLon: 50, MinLat: -50, MaxLat: 50})

	polygon, ok := NewGeoPolygon([]Geo{
		{Latitude: 1, Longitude: 1},
		{Latitude: 1, Longitude: 9},
		{Latitude: 9, Longitude: 1},
	}, true)
	if !ok {
		t.Fatal("expected polygon")
	}

	entries := idx.QueryPolygon(polygon)
	if len(entries) != 1 || entries[0].Key != big {
		t.Fatalf("expected the containing tile, got %d entries", len(entries))
	}
}

func TestTileIndexEdgeCrossing(t *testing.T) {
	// A thin polygon slicing through a tile without containing any of its
	// corners, and with no polygon vertex inside the tile.
	idx := NewTileIndex()
	sliced := TileKey{Level: 6, Column: 33, Row: 31}
	idx.Insert(sliced, Bounds{MinLon: 4, MaxLon: 6, MinLat: -1, MaxLat: 1})

	polygon, ok := NewGeoPolygon([]Geo{
		{Latitude: -0.1, Longitude: 0},
		{Latitude: 0.1, Longitude: 0},
		{Latitude: 0.1, Longitude: 10},
		{Latitude: -0.1, Longitude: 10},
	}, true)
	if !ok {
		t.Fatal("expected polygon")
	}

	entries := idx.QueryPolygon(polygon)
	if len(entries) != 1 || entries[0].Key != sliced {
		t.Fatalf("expected the sliced tile, got %d entries", len(entries))
	}
}
