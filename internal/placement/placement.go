package placement

import (
	"sync"

	"github.com/mapmarks/engine/internal/geo"
	"github.com/mapmarks/engine/internal/store"
	"github.com/mapmarks/engine/pkg/core"
)

// Controller is the two-state placement machine. Idle clicks belong to the
// map engine (pan/zoom); armed clicks create exactly one marker and disarm.
type Controller struct {
	mu     sync.Mutex
	armed  bool
	offset float64
	extent geo.Extent
	store  *store.Store
}

// New creates an idle controller. offset is added to the clicked Y
// coordinate so the icon's bottom anchor sits on the clicked point.
func New(s *store.Store, extent geo.Extent, offset float64) *Controller {
	return &Controller{
		offset: offset,
		extent: extent,
		store:  s,
	}
}

// Arm switches to the armed state. Arming while armed stays armed.
func (c *Controller) Arm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.armed = true
}

// Cancel returns to idle without creating anything.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.armed = false
}

// Armed reports whether the next map click will place a marker.
func (c *Controller) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.armed
}

// Click handles a map click. While idle, or when the click falls outside
// the map extent, nothing happens. While armed, exactly one marker is
// created at the anchor-adjusted position and the controller disarms
// immediately, so a double click cannot place two markers.
func (c *Controller) Click(pos core.Position) (core.Marker, bool) {
	c.mu.Lock()
	if !c.armed {
		c.mu.Unlock()
		return core.Marker{}, false
	}
	if !c.extent.Contains(pos) {
		c.mu.Unlock()
		return core.Marker{}, false
	}
	c.armed = false
	c.mu.Unlock()

	m := c.store.Create(core.Marker{
		Location: core.Position{X: pos.X, Y: pos.Y + c.offset},
		Category: core.CategoryEvent,
	})
	return m, true
}
