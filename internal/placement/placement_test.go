package placement

import (
	"testing"

	"github.com/mapmarks/engine/internal/geo"
	"github.com/mapmarks/engine/internal/store"
	"github.com/mapmarks/engine/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const anchorOffset = 0.00005

func newTestController() (*Controller, *store.Store) {
	s := store.New()
	ext := geo.NewExtent(core.Position{X: 0, Y: 0}, core.Position{X: 0.16, Y: 0.08})
	return New(s, ext, anchorOffset), s
}

func TestController_IdleClickIgnored(t *testing.T) {
	c, s := newTestController()

	_, placed := c.Click(core.Position{X: 0.05, Y: 0.05})

	assert.False(t, placed)
	assert.Equal(t, 0, s.Len())
}

func TestController_ArmedClickPlacesWithAnchorOffset(t *testing.T) {
	c, s := newTestController()

	c.Arm()
	m, placed := c.Click(core.Position{X: 0.05, Y: 0.03})

	require.True(t, placed)
	assert.Equal(t, 0.05, m.Location.X)
	assert.InDelta(t, 0.03+anchorOffset, m.Location.Y, 1e-12)
	assert.Equal(t, core.CategoryEvent, m.Category)
	assert.Equal(t, "", m.Name)
	assert.Equal(t, 1, s.Len())
}

func TestController_DisarmsAfterPlacement(t *testing.T) {
	c, s := newTestController()

	c.Arm()
	_, placed := c.Click(core.Position{X: 0.05, Y: 0.03})
	require.True(t, placed)
	assert.False(t, c.Armed())

	// second click of a double click lands while idle
	_, placed = c.Click(core.Position{X: 0.05, Y: 0.03})
	assert.False(t, placed)
	assert.Equal(t, 1, s.Len())
}

func TestController_Cancel(t *testing.T) {
	c, s := newTestController()

	c.Arm()
	require.True(t, c.Armed())

	c.Cancel()
	assert.False(t, c.Armed())

	_, placed := c.Click(core.Position{X: 0.05, Y: 0.03})
	assert.False(t, placed)
	assert.Equal(t, 0, s.Len())
}

func TestController_ArmIsIdempotent(t *testing.T) {
	c, _ := newTestController()

	c.Arm()
	c.Arm()
	assert.True(t, c.Armed())
}

func TestController_ClickOutsideExtentIgnored(t *testing.T) {
	c, s := newTestController()

	c.Arm()
	_, placed := c.Click(core.Position{X: 0.2, Y: 0.05})

	assert.False(t, placed)
	assert.Equal(t, 0, s.Len())
	// still armed, the gesture is still pending
	assert.True(t, c.Armed())
}

func TestController_EachArmPlacesOneMarker(t *testing.T) {
	c, s := newTestController()

	for i := 0; i < 3; i++ {
		c.Arm()
		_, placed := c.Click(core.Position{X: 0.01 * float64(i+1), Y: 0.02})
		require.True(t, placed)
	}
	assert.Equal(t, 3, s.Len())
}
