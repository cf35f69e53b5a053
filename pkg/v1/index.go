package viewbounds

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// TileIndex provides fast spatial queries over a collection of map tiles.
//
// Consumers intersect a generated visible-region polygon against the index to
// decide which tiles to load or cull. Queries run against an R-tree, so only
// tiles near the polygon's bounding box are tested exactly.
//
// Example:
//
//	scheme := viewbounds.NewWebMercatorTilingScheme()
//	idx := viewbounds.NewTileIndex()
//	for _, key := range scheme.TileKeysInBounds(world, 6) {
//	    bounds, _ := scheme.TileBounds(key)
//	    idx.Insert(key, bounds)
//	}
//
//	if polygon, ok := gen.Generate(); ok {
//	    visible := idx.QueryPolygon(polygon)
//	    fmt.Printf("%d tiles visible\n", len(visible))
//	}
type TileIndex struct {
	rtree *rtreego.Rtree // R-tree for fast spatial queries
	size  int
}

// TileEntry is one indexed tile.
type TileEntry struct {
	Key       TileKey
	GeoBounds Bounds
}

// indexedTile wraps an entry for R-tree storage.
type indexedTile struct {
	entry TileEntry
}

// Bounds implements the rtreego.Spatial interface.
func (t *indexedTile) Bounds() rtreego.Rect {
	point := rtreego.Point{t.entry.GeoBounds.MinLon, t.entry.GeoBounds.MinLat}

	// R-tree rects require non-zero dimensions; degenerate tiles get a small
	// epsilon (~11 meters at the equator).
	const epsilon = 0.0001
	lonLength := t.entry.GeoBounds.MaxLon - t.entry.GeoBounds.MinLon
	latLength := t.entry.GeoBounds.MaxLat - t.entry.GeoBounds.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

// NewTileIndex creates an empty tile index.
func NewTileIndex() *TileIndex {
	return &TileIndex{rtree: rtreego.NewTree(2, 25, 50)}
}

// Insert adds a tile to the index.
func (idx *TileIndex) Insert(key TileKey, bounds Bounds) {
	idx.rtree.Insert(&indexedTile{entry: TileEntry{Key: key, GeoBounds: bounds}})
	idx.size++
}

// Count returns the number of indexed tiles.
func (idx *TileIndex) Count() int {
	return idx.size
}

// QueryBounds returns all tiles whose bounds intersect the given bounding
// box.
func (idx *TileIndex) QueryBounds(bounds Bounds) []TileEntry {
	point := rtreego.Point{bounds.MinLon, bounds.MinLat}

	// Degenerate query boxes still need a non-zero rect.
	const epsilon = 0.0001
	lonLength := bounds.MaxLon - bounds.MinLon
	latLength := bounds.MaxLat - bounds.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	queryRect, err := rtreego.NewRect(point, []float64{lonLength, latLength})
	if err != nil {
		return nil
	}

	spatials := idx.rtree.SearchIntersect(queryRect)
	entries := make([]TileEntry, 0, len(spatials))
	for _, s := range spatials {
		entries = append(entries, s.(*indexedTile).entry)
	}
	return entries
}

// QueryPolygon returns all tiles intersecting the given polygon.
//
// The R-tree narrows candidates to the polygon's bounding box; each
// candidate is then tested exactly against the polygon ring.
func (idx *TileIndex) QueryPolygon(p *GeoPolygon) []TileEntry {
	candidates := idx.QueryBounds(p.BoundingBox())
	if len(candidates) == 0 {
		return nil
	}

	ring := p.Ring()
	entries := make([]TileEntry, 0, len(candidates))
	for _, entry := range candidates {
		if tileIntersectsRing(entry.GeoBounds, ring) {
			entries = append(entries, entry)
		}
	}
	return entries
}

// tileIntersectsRing reports whether a tile rectangle intersects a polygon
// ring: a tile corner lies inside the ring, a ring vertex lies inside the
// tile, or a ring edge crosses a tile edge.
func tileIntersectsRing(b Bounds, ring orb.Ring) bool {
	corners := [4]orb.Point{
		{b.MinLon, b.MinLat},
		{b.MaxLon, b.MinLat},
		{b.MaxLon, b.MaxLat},
		{b.MinLon, b.MaxLat},
	}
	for _, c := range corners {
		if planar.RingContains(ring, c) {
			return true
		}
	}

	for _, v := range ring {
		if b.Contains(v[0], v[1]) {
			return true
		}
	}

	for i := 0; i < len(ring)-1; i++ {
		for j := 0; j < 4; j++ {
			if segmentsCross(ring[i], ring[i+1], corners[j], corners[(j+1)%4]) {
				return true
			}
		}
	}
	return false
}

// segmentsCross reports whether the open segments (a1, a2) and (b1, b2)
// properly intersect.
func segmentsCross(a1, a2, b1, b2 orb.Point) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}
