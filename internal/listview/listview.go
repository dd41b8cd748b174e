package listview

import (
	"sync"

	"github.com/mapmarks/engine/internal/hover"
	"github.com/mapmarks/engine/internal/store"
	"github.com/mapmarks/engine/internal/view"
	"github.com/mapmarks/engine/pkg/core"
)

// Card is the editable list representation of one marker.
type Card struct {
	MarkerID    string
	Name        string
	Description string
	Category    core.Category
	// Categories the selector offers; unknown stored values stay on the
	// record but cannot be picked.
	CategoryOptions []core.Category
	AccentColor     string
	Hovered         bool
	PendingDelete   bool
}

// Model drives the marker list and its inline editors. Edits apply to the
// store immediately; there is no save step. Deletion is a two-step
// confirm. List visibility is presentation state owned here, not by the
// data model.
type Model struct {
	store *store.Store
	hover *hover.Coordinator

	mu            sync.Mutex
	pendingDelete string
	hidden        bool
}

// NewModel creates a list model over the given store and hover state.
func NewModel(s *store.Store, h *hover.Coordinator) *Model {
	return &Model{store: s, hover: h}
}

// Cards returns one card per marker in store order.
func (m *Model) Cards() []Card {
	m.mu.Lock()
	pending := m.pendingDelete
	m.mu.Unlock()

	markers := m.store.List()
	cards := make([]Card, 0, len(markers))
	for _, mk := range markers {
		cards = append(cards, Card{
			MarkerID:        mk.ID,
			Name:            mk.Name,
			Description:     mk.Description,
			Category:        mk.Category,
			CategoryOptions: core.Categories,
			AccentColor:     view.AccentColor(mk.Category),
			Hovered:         m.hover.IsHovered(mk.ID),
			PendingDelete:   pending == mk.ID,
		})
	}
	return cards
}

// SetName applies a name edit immediately.
func (m *Model) SetName(id, name string) {
	m.store.Update(id, store.FieldName, name)
}

// SetDescription applies a description edit immediately.
func (m *Model) SetDescription(id, description string) {
	m.store.Update(id, store.FieldDescription, description)
}

// SetCategory applies a category selection. The selector is restricted to
// the well-known set; anything else is ignored.
func (m *Model) SetCategory(id string, c core.Category) {
	if !c.Known() {
		return
	}
	m.store.Update(id, store.FieldCategory, string(c))
}

// RequestDelete starts the two-step delete for a marker.
func (m *Model) RequestDelete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingDelete = id
}

// ConfirmDelete removes the marker picked by RequestDelete. Without a
// pending request it does nothing.
func (m *Model) ConfirmDelete() {
	m.mu.Lock()
	id := m.pendingDelete
	m.pendingDelete = ""
	m.mu.Unlock()

	if id == "" {
		return
	}
	m.store.Delete(id)
}

// CancelDelete abandons a pending delete without mutating anything.
func (m *Model) CancelDelete() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingDelete = ""
}

// PendingDelete returns the id awaiting confirmation, if any.
func (m *Model) PendingDelete() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pendingDelete, m.pendingDelete != ""
}

// ToggleVisible flips whole-list visibility and returns the new state.
func (m *Model) ToggleVisible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hidden = !m.hidden
	return !m.hidden
}

// Visible reports whether the list is shown.
func (m *Model) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.hidden
}

// HoverEnter reports the pointer entering a card.
func (m *Model) HoverEnter(id string) {
	m.hover.Set(id)
}

// HoverLeave reports the pointer leaving a card.
func (m *Model) HoverLeave() {
	m.hover.Clear()
}
