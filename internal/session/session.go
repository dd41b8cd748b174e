package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/mapmarks/engine/internal/dispatcher"
	"github.com/mapmarks/engine/internal/gateway"
	"github.com/mapmarks/engine/internal/hover"
	"github.com/mapmarks/engine/internal/listview"
	"github.com/mapmarks/engine/internal/logging"
	"github.com/mapmarks/engine/internal/placement"
	"github.com/mapmarks/engine/internal/store"
	"github.com/mapmarks/engine/internal/view"
	"github.com/mapmarks/engine/pkg/core"
	"github.com/mapmarks/engine/pkg/mapengine"
)

// NoticeLevel grades a user-visible notice.
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a user-visible outcome message. Failures surface here, never
// as panics.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Dependencies holds everything a session needs.
type Dependencies struct {
	Store      *store.Store
	Hover      *hover.Coordinator
	Placement  *placement.Controller
	List       *listview.Model
	View       *view.Adapter
	Gateway    *gateway.Gateway
	Surface    mapengine.Surface
	LogManager *logging.SlogManager
}

// Frame is one complete render state handed to the host after a gesture.
type Frame struct {
	Sprites []view.Sprite
	Cards   []listview.Card
	Cursor  mapengine.CursorMode
	// ListVisible gates the card column; sprites render regardless.
	ListVisible bool
}

// Service wires the engine parts into one interactive session and turns
// host gestures into state changes.
type Service struct {
	deps Dependencies

	mu      sync.Mutex
	notices []Notice
}

// NewService creates a session service.
func NewService(deps Dependencies) *Service {
	return &Service{deps: deps}
}

// Surface returns the static map surface for the renderer.
func (s *Service) Surface() mapengine.Surface {
	return s.deps.Surface
}

// Frame assembles the current render state.
func (s *Service) Frame() Frame {
	hovered, _ := s.deps.Hover.Current()
	return Frame{
		Sprites:     s.deps.View.Render(s.deps.Store.List(), hovered),
		Cards:       s.deps.List.Cards(),
		Cursor:      view.Cursor(s.deps.Placement.Armed()),
		ListVisible: s.deps.List.Visible(),
	}
}

// Notices drains the pending user-visible notices.
func (s *Service) Notices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notices
	s.notices = nil
	return out
}

func (s *Service) notify(level NoticeLevel, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, Notice{Level: level, Message: fmt.Sprintf(format, args...)})
}

// MapClick implements mapengine.PointerSink.
func (s *Service) MapClick(pos core.Position) {
	if m, placed := s.deps.Placement.Click(pos); placed {
		s.deps.LogManager.Logger().Info("marker placed", "id", m.ID, "x", m.Location.X, "y", m.Location.Y)
	}
}

// MarkerEnter implements mapengine.PointerSink.
func (s *Service) MarkerEnter(id string) {
	s.deps.Hover.Set(id)
}

// MarkerLeave implements mapengine.PointerSink.
func (s *Service) MarkerLeave(id string) {
	s.deps.Hover.Clear()
}

// RegisterHandlers registers a handler for every user gesture with the
// dispatcher.
func (s *Service) RegisterHandlers(d *dispatcher.Dispatcher) {
	// Placement protocol
	d.Register(":MARKER:ARM:", s.handleArm, dispatcher.Logged())
	d.Register(":MARKER:ARM:CANCEL:", s.handleArmCancel, dispatcher.Logged())
	d.Register(":MAP:CLICK:", s.handleMapClick, dispatcher.Logged())

	// Hover sync, shared by list cards and map icons
	d.Register(":MARKER:HOVER:", s.handleHover)
	d.Register(":MARKER:UNHOVER:", s.handleUnhover)

	// Inline edits and drag
	d.Register(":MARKER:UPDATE:", s.handleUpdate, dispatcher.Logged())
	d.Register(":MARKER:MOVE:", s.handleMove, dispatcher.Logged())

	// Two-step delete
	d.Register(":MARKER:DELETE:REQUEST:", s.handleDeleteRequest, dispatcher.Logged())
	d.Register(":MARKER:DELETE:CONFIRM:", s.handleDeleteConfirm, dispatcher.Logged())
	d.Register(":MARKER:DELETE:CANCEL:", s.handleDeleteCancel, dispatcher.Logged())

	// List visibility
	d.Register(":LIST:TOGGLE:", s.handleListToggle)

	// Manual persistence round-trip
	d.Register(":EXPORT:", s.handleExport, dispatcher.Logged())
	d.Register(":IMPORT:", s.handleImport, dispatcher.Logged())
}

func (s *Service) handleArm(e dispatcher.Event) (any, error) {
	s.deps.Placement.Arm()
	return "armed", nil
}

func (s *Service) handleArmCancel(e dispatcher.Event) (any, error) {
	s.deps.Placement.Cancel()
	return "idle", nil
}

func (s *Service) handleMapClick(e dispatcher.Event) (any, error) {
	pos, err := parsePosition(e.Args)
	if err != nil {
		return nil, fmt.Errorf("map click: %w", err)
	}

	m, placed := s.deps.Placement.Click(pos)
	if !placed {
		return "ignored", nil
	}
	return m.ID, nil
}

func (s *Service) handleHover(e dispatcher.Event) (any, error) {
	if len(e.Args) < 1 {
		return nil, fmt.Errorf("hover: missing marker id")
	}
	s.deps.Hover.Set(e.Args[0])
	return "ok", nil
}

func (s *Service) handleUnhover(e dispatcher.Event) (any, error) {
	s.deps.Hover.Clear()
	return "ok", nil
}

func (s *Service) handleUpdate(e dispatcher.Event) (any, error) {
	if len(e.Args) < 3 {
		return nil, fmt.Errorf("update: want [id field value], got %d args", len(e.Args))
	}
	id, field, value := e.Args[0], e.Args[1], e.Args[2]

	switch field {
	case store.FieldCategory:
		s.deps.List.SetCategory(id, core.Category(value))
	case store.FieldName:
		s.deps.List.SetName(id, value)
	case store.FieldDescription:
		s.deps.List.SetDescription(id, value)
	default:
		return nil, fmt.Errorf("update: unknown field %q", field)
	}
	return "ok", nil
}

func (s *Service) handleMove(e dispatcher.Event) (any, error) {
	if len(e.Args) < 3 {
		return nil, fmt.Errorf("move: want [id x y], got %d args", len(e.Args))
	}
	pos, err := parsePosition(e.Args[1:3])
	if err != nil {
		return nil, fmt.Errorf("move: %w", err)
	}
	s.deps.Store.Relocate(e.Args[0], pos)
	return "ok", nil
}

func (s *Service) handleDeleteRequest(e dispatcher.Event) (any, error) {
	if len(e.Args) < 1 {
		return nil, fmt.Errorf("delete request: missing marker id")
	}
	s.deps.List.RequestDelete(e.Args[0])
	return "pending", nil
}

func (s *Service) handleDeleteConfirm(e dispatcher.Event) (any, error) {
	s.deps.List.ConfirmDelete()
	return "ok", nil
}

func (s *Service) handleDeleteCancel(e dispatcher.Event) (any, error) {
	s.deps.List.CancelDelete()
	return "ok", nil
}

func (s *Service) handleListToggle(e dispatcher.Event) (any, error) {
	visible := s.deps.List.ToggleVisible()
	return visible, nil
}

func (s *Service) handleExport(e dispatcher.Event) (any, error) {
	text, err := s.deps.Gateway.Export(context.Background())
	if err != nil {
		// report-only, the JSON is still usable by hand
		s.notify(NoticeError, "Copy failed: %v", err)
		return text, nil
	}
	s.notify(NoticeInfo, "Copied %d markers to clipboard", s.deps.Store.Len())
	return text, nil
}

func (s *Service) handleImport(e dispatcher.Event) (any, error) {
	if len(e.Args) < 1 {
		return nil, fmt.Errorf("import: missing payload")
	}

	if err := s.deps.Gateway.Import(e.Args[0]); err != nil {
		s.notify(NoticeError, "Import rejected: %v", err)
		return nil, err
	}
	s.notify(NoticeInfo, "Imported %d markers", s.deps.Store.Len())
	return "ok", nil
}

// parsePosition reads [x y] string args into a position.
func parsePosition(args []string) (core.Position, error) {
	if len(args) < 2 {
		return core.Position{}, fmt.Errorf("want [x y], got %d args", len(args))
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return core.Position{}, fmt.Errorf("parsing x %q: %w", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return core.Position{}, fmt.Errorf("parsing y %q: %w", args[1], err)
	}
	return core.Position{X: x, Y: y}, nil
}
