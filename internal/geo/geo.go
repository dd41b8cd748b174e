package geo

import (
	"errors"

	"github.com/mapmarks/engine/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
)

// ErrInvalidLocation is returned when a location cannot be interpreted as a
// point in the map's local planar space.
var ErrInvalidLocation = errors.New("invalid location provided")

// Extent is an axis-aligned rectangle in local map coordinates. The map
// image overlay covers exactly this region.
type Extent struct {
	min geom.XY
	max geom.XY
}

// NewExtent builds an extent from two opposite corners. Corners may be
// given in any order.
func NewExtent(a, b core.Position) Extent {
	min := geom.XY{X: a.X, Y: a.Y}
	max := geom.XY{X: b.X, Y: b.Y}
	if min.X > max.X {
		min.X, max.X = max.X, min.X
	}
	if min.Y > max.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	return Extent{min: min, max: max}
}

// Contains reports whether the position lies inside the extent, borders
// included.
func (e Extent) Contains(p core.Position) bool {
	return p.X >= e.min.X && p.X <= e.max.X &&
		p.Y >= e.min.Y && p.Y <= e.max.Y
}

// Min returns the lower corner of the extent.
func (e Extent) Min() core.Position {
	return core.Position{X: e.min.X, Y: e.min.Y}
}

// Max returns the upper corner of the extent.
func (e Extent) Max() core.Position {
	return core.Position{X: e.max.X, Y: e.max.Y}
}

// Center returns the midpoint of the extent.
func (e Extent) Center() core.Position {
	return core.Position{
		X: (e.min.X + e.max.X) / 2,
		Y: (e.min.Y + e.max.Y) / 2,
	}
}

// Point converts a position to a simplefeatures point for geometry
// interop.
func Point(p core.Position) geom.Point {
	return geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: p.X, Y: p.Y},
		Type: geom.DimXY,
	})
}

// PositionFromSlice interprets a decoded JSON coordinate array as a
// position. Only the 2-element form is accepted.
func PositionFromSlice(coords []float64) (core.Position, error) {
	if len(coords) != 2 {
		return core.Position{}, ErrInvalidLocation
	}
	return core.Position{X: coords[0], Y: coords[1]}, nil
}
