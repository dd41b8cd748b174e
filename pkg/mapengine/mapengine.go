// Package mapengine defines the contract between the marker engine and the
// host map renderer. The engine never reaches into the renderer; it hands
// over declarative surface configuration and render instructions and
// receives pointer gestures back.
package mapengine

import "github.com/mapmarks/engine/pkg/core"

// ZoomBounds constrains the renderer's zoom range.
type ZoomBounds struct {
	Initial int
	Min     int
	Max     int
}

// Surface describes the static map surface. The renderer owns projection
// and pan/zoom enforcement; the engine hands this over verbatim.
type Surface struct {
	Center             core.Position
	Zoom               ZoomBounds
	ExtentMin          core.Position
	ExtentMax          core.Position
	PanBoundMin        core.Position
	PanBoundMax        core.Position
	BackgroundImageURL string
}

// CursorMode hints which pointer cursor the renderer should show.
type CursorMode string

const (
	CursorDefault   CursorMode = "default"
	CursorCrosshair CursorMode = "crosshair"
)

// PointerSink receives pointer gestures from the renderer in local map
// coordinates.
type PointerSink interface {
	// MapClick reports a click on the map surface.
	MapClick(pos core.Position)
	// MarkerEnter and MarkerLeave report pointer hover over a marker icon.
	MarkerEnter(id string)
	MarkerLeave(id string)
}

// ConfirmFunc asks the host widget kit for a yes/no answer. Implementations
// block until the user decides.
type ConfirmFunc func(prompt string) bool
