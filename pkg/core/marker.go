// pkg/core/marker.go
package core

import (
	"encoding/json"
	"fmt"
)

// Category classifies a marker. The set of well-known values is closed,
// but unknown values read from external data are preserved verbatim.
type Category string

const (
	CategoryCity  Category = "city"
	CategoryTown  Category = "town"
	CategoryEvent Category = "event"
)

// Categories lists the well-known categories in selector order.
var Categories = []Category{CategoryCity, CategoryTown, CategoryEvent}

// Known reports whether the category is one of the well-known values.
func (c Category) Known() bool {
	switch c {
	case CategoryCity, CategoryTown, CategoryEvent:
		return true
	}
	return false
}

// Icon returns the category used to pick an icon. Unknown categories
// fall back to the city icon; stored values are never rewritten.
func (c Category) Icon() Category {
	if c.Known() {
		return c
	}
	return CategoryCity
}

// Position is a point in the map's local planar space.
type Position struct {
	X float64
	Y float64
}

// MarshalJSON encodes the position as the 2-element array [x, y].
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes a [x, y] array into the position.
func (p *Position) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("position must be a coordinate array: %w", err)
	}
	if len(coords) != 2 {
		return fmt.Errorf("position must have exactly 2 coordinates, got %d", len(coords))
	}
	p.X = coords[0]
	p.Y = coords[1]
	return nil
}

// Marker is an annotated point on the campaign map.
type Marker struct {
	ID          string   `json:"id"`
	Location    Position `json:"location"`
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}
