package viewbounds

// VisibleTile is one tile intersecting the visible region, together with its
// elevation range for tight bounding-volume computation.
type VisibleTile struct {
	Key       TileKey
	GeoBounds Bounds
	Elevation ElevationRange
}

// VisibleTilesOptions configures ComputeVisibleTiles.
type VisibleTilesOptions struct {
	// Level is the quadtree level the tile set is computed at.
	Level int

	// Elevation supplies per-tile elevation ranges. Optional; when nil every
	// tile reports a zero range.
	Elevation ElevationRangeSource
}

// ComputeVisibleTiles returns the tiles at the given level that intersect the
// camera's visible region.
//
// This is the higher-level visibility computation the bounds generator and
// the elevation source both feed: the generated polygon is intersected
// against a spatial index of candidate tiles, and each surviving tile is
// annotated with its elevation range. Returns nil when the camera sees no
// part of the ground surface.
//
// Example:
//
//	tiles := viewbounds.ComputeVisibleTiles(gen, scheme,
//	    viewbounds.VisibleTilesOptions{
//	        Level:     8,
//	        Elevation: viewbounds.NewStaticElevationRangeSource(0, 4000),
//	    })
//	for _, tile := range tiles {
//	    load(tile.Key, tile.Elevation)
//	}
func ComputeVisibleTiles(gen *BoundsGenerator, scheme *TilingScheme, opts VisibleTilesOptions) []VisibleTile {
	polygon, ok := gen.Generate()
	if !ok {
		return nil
	}

	bbox := polygon.BoundingBox()
	idx := NewTileIndex()
	for _, key := range scheme.TileKeysInBounds(bbox, opts.Level) {
		bounds, err := scheme.TileBounds(key)
		if err != nil {
			continue
		}
		// Antimeridian-normalized polygons extend past longitude 180; shift
		// western tiles into the same frame so the index lines up.
		if bbox.MaxLon > 180 && bounds.MaxLon < bbox.MinLon {
			bounds.MinLon += 360
			bounds.MaxLon += 360
		}
		idx.Insert(key, bounds)
	}

	entries := idx.QueryPolygon(polygon)
	tiles := make([]VisibleTile, 0, len(entries))
	for _, entry := range entries {
		tile := VisibleTile{Key: entry.Key, GeoBounds: entry.GeoBounds}
		if opts.Elevation != nil {
			tile.Elevation = opts.Elevation.ElevationRange(entry.Key)
		}
		tiles = append(tiles, tile)
	}
	return tiles
}
