package geo

import (
	"testing"

	"github.com/mapmarks/engine/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtent_Contains(t *testing.T) {
	ext := NewExtent(core.Position{X: 0, Y: 0}, core.Position{X: 0.16, Y: 0.08})

	tests := []struct {
		name string
		pos  core.Position
		want bool
	}{
		{"center", core.Position{X: 0.08, Y: 0.04}, true},
		{"lower corner", core.Position{X: 0, Y: 0}, true},
		{"upper corner", core.Position{X: 0.16, Y: 0.08}, true},
		{"left of extent", core.Position{X: -0.001, Y: 0.04}, false},
		{"above extent", core.Position{X: 0.08, Y: 0.09}, false},
		{"far outside", core.Position{X: 1, Y: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ext.Contains(tt.pos))
		})
	}
}

func TestNewExtent_CornerOrderIrrelevant(t *testing.T) {
	a := NewExtent(core.Position{X: 0, Y: 0}, core.Position{X: 0.16, Y: 0.08})
	b := NewExtent(core.Position{X: 0.16, Y: 0.08}, core.Position{X: 0, Y: 0})

	assert.Equal(t, a.Min(), b.Min())
	assert.Equal(t, a.Max(), b.Max())
	assert.True(t, b.Contains(core.Position{X: 0.08, Y: 0.04}))
}

func TestExtent_Center(t *testing.T) {
	ext := NewExtent(core.Position{X: 0, Y: 0}, core.Position{X: 0.16, Y: 0.08})
	assert.Equal(t, core.Position{X: 0.08, Y: 0.04}, ext.Center())
}

func TestPoint(t *testing.T) {
	pt := Point(core.Position{X: 0.02, Y: 0.03})
	xy, ok := pt.XY()
	require.True(t, ok)
	assert.Equal(t, 0.02, xy.X)
	assert.Equal(t, 0.03, xy.Y)
}

func TestPositionFromSlice(t *testing.T) {
	pos, err := PositionFromSlice([]float64{0.01, 0.02})
	require.NoError(t, err)
	assert.Equal(t, core.Position{X: 0.01, Y: 0.02}, pos)

	_, err = PositionFromSlice([]float64{0.01})
	assert.ErrorIs(t, err, ErrInvalidLocation)

	_, err = PositionFromSlice(nil)
	assert.ErrorIs(t, err, ErrInvalidLocation)
}
