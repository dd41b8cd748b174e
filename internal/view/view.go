package view

import (
	"github.com/mapmarks/engine/internal/config"
	"github.com/mapmarks/engine/pkg/core"
	"github.com/mapmarks/engine/pkg/mapengine"
)

// Placeholder text shown in popups when a marker has no name or
// description yet.
const (
	PlaceholderName        = "Unnamed marker"
	PlaceholderDescription = "No description"
)

// Icon is a sized icon image with its shared shadow.
type Icon struct {
	URL       string
	ShadowURL string
	Width     int
	Height    int
}

// Popup is the read-only content shown when a marker icon is clicked.
type Popup struct {
	Title string
	Body  string
}

// Sprite is one declarative render instruction for the map engine.
type Sprite struct {
	MarkerID    string
	Position    core.Position
	Icon        Icon
	Hovered     bool
	Popup       Popup
	AccentColor string
}

// Adapter turns markers into render instructions. It holds presentation
// settings only; all marker state lives in the store.
type Adapter struct {
	icons config.IconConfig
}

// NewAdapter creates an adapter with the given icon settings.
func NewAdapter(icons config.IconConfig) *Adapter {
	return &Adapter{icons: icons}
}

// AccentColor returns the trim color for a category, applied to popup
// borders and the list selector.
func AccentColor(c core.Category) string {
	switch c.Icon() {
	case core.CategoryTown:
		return "red"
	case core.CategoryEvent:
		return "blue"
	default:
		return "green"
	}
}

// iconURL picks the icon image for a category. Unknown categories degrade
// to the city icon here, never in the stored data.
func (a *Adapter) iconURL(c core.Category) string {
	switch c.Icon() {
	case core.CategoryTown:
		return a.icons.TownURL
	case core.CategoryEvent:
		return a.icons.EventURL
	default:
		return a.icons.CityURL
	}
}

// IconFor returns the sized icon for a category and hover state. Hovered
// icons use the emphasized footprint.
func (a *Adapter) IconFor(c core.Category, hovered bool) Icon {
	icon := Icon{
		URL:       a.iconURL(c),
		ShadowURL: a.icons.ShadowURL,
		Width:     a.icons.Width,
		Height:    a.icons.Height,
	}
	if hovered {
		icon.Width = a.icons.HoverWidth
		icon.Height = a.icons.HoverHeight
	}
	return icon
}

// Render builds one sprite per marker in store order. hoveredID names the
// marker under the pointer, empty for none.
func (a *Adapter) Render(markers []core.Marker, hoveredID string) []Sprite {
	sprites := make([]Sprite, 0, len(markers))
	for _, m := range markers {
		hovered := hoveredID != "" && m.ID == hoveredID

		popup := Popup{Title: m.Name, Body: m.Description}
		if popup.Title == "" {
			popup.Title = PlaceholderName
		}
		if popup.Body == "" {
			popup.Body = PlaceholderDescription
		}

		sprites = append(sprites, Sprite{
			MarkerID:    m.ID,
			Position:    m.Location,
			Icon:        a.IconFor(m.Category, hovered),
			Hovered:     hovered,
			Popup:       popup,
			AccentColor: AccentColor(m.Category),
		})
	}
	return sprites
}

// Cursor returns the pointer hint for the current placement state. The
// armed flag is passed in explicitly; the adapter never queries the render
// surface.
func Cursor(armed bool) mapengine.CursorMode {
	if armed {
		return mapengine.CursorCrosshair
	}
	return mapengine.CursorDefault
}

// Surface assembles the static map surface handed to the renderer.
func Surface(mc config.MapConfig) mapengine.Surface {
	return mapengine.Surface{
		Center: core.Position{X: mc.CenterX, Y: mc.CenterY},
		Zoom: mapengine.ZoomBounds{
			Initial: mc.ZoomInitial,
			Min:     mc.ZoomMin,
			Max:     mc.ZoomMax,
		},
		ExtentMin:          core.Position{X: mc.ExtentMinX, Y: mc.ExtentMinY},
		ExtentMax:          core.Position{X: mc.ExtentMaxX, Y: mc.ExtentMaxY},
		PanBoundMin:        core.Position{X: mc.PanBoundMinX, Y: mc.PanBoundMinY},
		PanBoundMax:        core.Position{X: mc.PanBoundMaxX, Y: mc.PanBoundMaxY},
		BackgroundImageURL: mc.BackgroundImageURL,
	}
}
