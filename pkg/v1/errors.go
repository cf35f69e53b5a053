package viewbounds

import "fmt"

// ErrInvalidCoordinate indicates a coordinate outside the WGS-84 domain.
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.Lat, e.Lon)
}

// ErrInvalidTileKey indicates a tile address outside its level's grid.
type ErrInvalidTileKey struct {
	Key TileKey
}

func (e *ErrInvalidTileKey) Error() string {
	n := 1 << uint(e.Key.Level)
	return fmt.Sprintf("invalid tile key %s: column and row must be in [0, %d)", e.Key, n)
}
