package hover

import "sync"

// Coordinator tracks which marker, if any, the pointer is over. Both the
// list view and the spatial view write to it; the last writer wins and at
// most one marker is hovered at any instant.
type Coordinator struct {
	mu sync.RWMutex
	id string
}

// New creates a Coordinator with nothing hovered.
func New() *Coordinator {
	return &Coordinator{}
}

// Set records the marker the pointer entered.
func (c *Coordinator) Set(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = id
}

// Clear records that the pointer left the hovered marker.
func (c *Coordinator) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = ""
}

// Current returns the hovered marker id, if any.
func (c *Coordinator) Current() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id, c.id != ""
}

// IsHovered reports whether the given marker is the hovered one.
func (c *Coordinator) IsHovered(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return id != "" && c.id == id
}
