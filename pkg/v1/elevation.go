package viewbounds

import "context"

// CalculationStatus describes how an elevation range was obtained.
type CalculationStatus int

const (
	// CalculationFinal marks a range computed from actual elevation data.
	CalculationFinal CalculationStatus = iota

	// CalculationApproximated marks a range estimated from neighboring or
	// lower-detail tiles.
	CalculationApproximated
)

// ElevationRange is the minimum and maximum terrain elevation of a tile, in
// meters.
type ElevationRange struct {
	Min    float64
	Max    float64
	Status CalculationStatus
}

// ElevationRangeSource supplies per-tile elevation ranges.
//
// Sources backed by remote data connect asynchronously; callers should
// Connect once and check Ready before relying on ranges. The bounds
// generator itself never consults elevation; both are consumed by the same
// higher-level visibility computation (see VisibleTiles).
type ElevationRangeSource interface {
	// ElevationRange returns the elevation range of a tile.
	ElevationRange(key TileKey) ElevationRange

	// TilingScheme returns the tiling scheme the source's keys refer to.
	TilingScheme() *TilingScheme

	// Connect prepares the source for queries. It blocks until the source is
	// ready or ctx is done.
	Connect(ctx context.Context) error

	// Ready reports whether the source can answer queries.
	Ready() bool
}

// StaticElevationRangeSource returns one fixed elevation range for every
// tile. It is always ready and its Connect completes immediately.
type StaticElevationRangeSource struct {
	rng    ElevationRange
	scheme *TilingScheme
}

// NewStaticElevationRangeSource creates a source reporting the fixed range
// [min, max] for all tiles.
func NewStaticElevationRangeSource(min, max float64) *StaticElevationRangeSource {
	return &StaticElevationRangeSource{
		rng:    ElevationRange{Min: min, Max: max, Status: CalculationFinal},
		scheme: NewWebMercatorTilingScheme(),
	}
}

// ElevationRange implements ElevationRangeSource.
func (s *StaticElevationRangeSource) ElevationRange(TileKey) ElevationRange {
	return s.rng
}

// TilingScheme implements ElevationRangeSource.
func (s *StaticElevationRangeSource) TilingScheme() *TilingScheme {
	return s.scheme
}

// Connect implements ElevationRangeSource. A static source has nothing to
// connect to.
func (s *StaticElevationRangeSource) Connect(ctx context.Context) error {
	return ctx.Err()
}

// Ready implements ElevationRangeSource.
func (s *StaticElevationRangeSource) Ready() bool {
	return true
}
