package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/mapmarks/engine/pkg/core"
)

// Marker field names accepted by Update.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
)

// Store holds the session's markers in insertion order. Insertion order is
// display order everywhere a marker sequence is shown or exported.
type Store struct {
	mu      sync.RWMutex
	markers []core.Marker
	index   map[string]int // id -> position in markers
}

// New creates an empty store.
func New() *Store {
	return &Store{
		index: make(map[string]int),
	}
}

// newID mints a collision-resistant marker id.
func newID() string {
	return "marker-" + uuid.NewString()
}

// List returns a snapshot copy of all markers in insertion order.
func (s *Store) List() []core.Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// Get retrieves a marker by id.
func (s *Store) Get(id string) (core.Marker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return core.Marker{}, false
	}
	return s.markers[i], true
}

// Len returns the number of markers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.markers)
}

// Create appends a new marker built from the draft. The draft's ID is
// ignored; a fresh unique id is minted. An empty category defaults to
// event. Returns the created record.
func (s *Store) Create(draft core.Marker) core.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = newID()
	for {
		if _, taken := s.index[draft.ID]; !taken {
			break
		}
		draft.ID = newID()
	}

	if draft.Category == "" {
		draft.Category = core.CategoryEvent
	}

	s.index[draft.ID] = len(s.markers)
	s.markers = append(s.markers, draft)
	return draft
}

// Update replaces a single named field of the marker with the given id.
// Unknown ids and unknown fields are silent no-ops. The marker keeps its
// position in the order.
func (s *Store) Update(id, field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return
	}

	switch field {
	case FieldName:
		s.markers[i].Name = value
	case FieldDescription:
		s.markers[i].Description = value
	case FieldCategory:
		s.markers[i].Category = core.Category(value)
	}
}

// Relocate moves the marker with the given id to a new position. Unknown
// ids are a silent no-op.
func (s *Store) Relocate(id string, pos core.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return
	}
	s.markers[i].Location = pos
}

// Delete removes exactly the marker with the given id. Unknown ids are a
// silent no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return
	}

	s.markers = append(s.markers[:i], s.markers[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.markers); j++ {
		s.index[s.markers[j].ID] = j
	}
}

// ReplaceAll swaps the entire content for the given sequence. Every record
// is validated first; on any failure the existing content is untouched.
func (s *Store) ReplaceAll(markers []core.Marker) error {
	index := make(map[string]int, len(markers))
	for i, m := range markers {
		if m.ID == "" {
			return fmt.Errorf("marker at index %d has no id", i)
		}
		if prev, dup := index[m.ID]; dup {
			return fmt.Errorf("duplicate marker id %q at indexes %d and %d", m.ID, prev, i)
		}
		index[m.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.markers = make([]core.Marker, len(markers))
	copy(s.markers, markers)
	s.index = index
	return nil
}
