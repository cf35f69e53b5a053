package viewbounds

import (
	"fmt"
	"math"
)

// TileKey addresses a tile in a web mercator quadtree.
//
// Column grows east from longitude -180; Row grows south from the northern
// edge of the mercator square. Level 0 is a single tile covering the world.
type TileKey struct {
	Level  int
	Column int
	Row    int
}

// String returns the key in "level/column/row" form.
func (k TileKey) String() string {
	return fmt.Sprintf("%d/%d/%d", k.Level, k.Column, k.Row)
}

// Valid reports whether the key addresses a tile inside its level's grid.
func (k TileKey) Valid() bool {
	n := 1 << uint(k.Level)
	return k.Level >= 0 &&
		k.Column >= 0 && k.Column < n &&
		k.Row >= 0 && k.Row < n
}

// Parent returns the key of the tile one level up containing this tile.
// The parent of the root is the root.
func (k TileKey) Parent() TileKey {
	if k.Level == 0 {
		return k
	}
	return TileKey{Level: k.Level - 1, Column: k.Column / 2, Row: k.Row / 2}
}

// MortonCode interleaves the column and row bits, yielding a single integer
// that preserves spatial locality. Useful as a map key or sort order.
func (k TileKey) MortonCode() uint64 {
	code := uint64(1) << uint(2*k.Level) // level marker bit
	for i := 0; i < k.Level; i++ {
		code |= uint64(k.Column>>uint(i)&1) << uint(2*i)
		code |= uint64(k.Row>>uint(i)&1) << uint(2*i+1)
	}
	return code
}

// TilingScheme maps geographic coordinates to web mercator quadtree tiles.
type TilingScheme struct{}

// NewWebMercatorTilingScheme returns the standard web mercator quadtree.
func NewWebMercatorTilingScheme() *TilingScheme {
	return &TilingScheme{}
}

// TileKeyAt returns the key of the tile containing the given coordinate at
// the given level.
func (s *TilingScheme) TileKeyAt(g Geo, level int) TileKey {
	lat := math.Max(-maxMercatorLatitude, math.Min(maxMercatorLatitude, g.Latitude))
	lon := normalizeLongitude(g.Longitude)
	n := math.Exp2(float64(level))

	col := int((lon + 180) / 360 * n)
	row := int((1 - math.Log(math.Tan(degToRad(lat))+1/math.Cos(degToRad(lat)))/math.Pi) / 2 * n)

	max := int(n) - 1
	if col > max {
		col = max
	}
	if row > max {
		row = max
	}
	if row < 0 {
		row = 0
	}
	return TileKey{Level: level, Column: col, Row: row}
}

// TileBounds returns the geographic coverage of a tile.
func (s *TilingScheme) TileBounds(k TileKey) (Bounds, error) {
	if !k.Valid() {
		return Bounds{}, &ErrInvalidTileKey{Key: k}
	}
	n := math.Exp2(float64(k.Level))
	return Bounds{
		MinLon: float64(k.Column)/n*360 - 180,
		MaxLon: float64(k.Column+1)/n*360 - 180,
		MinLat: tileRowLatitude(float64(k.Row+1), n),
		MaxLat: tileRowLatitude(float64(k.Row), n),
	}, nil
}

// TileKeysInBounds returns the keys of every tile at the given level that
// intersects the bounds. Longitudes beyond ±180 (from antimeridian-
// normalized polygons) wrap back into the grid.
func (s *TilingScheme) TileKeysInBounds(b Bounds, level int) []TileKey {
	n := 1 << uint(level)
	sw := s.TileKeyAt(Geo{Latitude: b.MinLat, Longitude: b.MinLon}, level)
	ne := s.TileKeyAt(Geo{Latitude: b.MaxLat, Longitude: b.MaxLon}, level)

	cols := ne.Column - sw.Column
	if b.MaxLon-b.MinLon >= 360 {
		sw.Column = 0
		cols = n - 1
	} else if cols < 0 {
		// Bounds cross the antimeridian seam.
		cols += n
	}

	keys := make([]TileKey, 0, (cols+1)*(sw.Row-ne.Row+1))
	for row := ne.Row; row <= sw.Row; row++ {
		for i := 0; i <= cols; i++ {
			keys = append(keys, TileKey{
				Level:  level,
				Column: (sw.Column + i) % n,
				Row:    row,
			})
		}
	}
	return keys
}

// tileRowLatitude returns the latitude of the tile grid line at the given
// fractional row.
func tileRowLatitude(row, n float64) float64 {
	y := math.Pi * (1 - 2*row/n)
	return radToDeg(math.Atan(math.Sinh(y)))
}

// normalizeLongitude wraps a longitude into [-180, 180).
func normalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
