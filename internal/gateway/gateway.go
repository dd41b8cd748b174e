package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mapmarks/engine/internal/clipboard"
	"github.com/mapmarks/engine/internal/geo"
	"github.com/mapmarks/engine/internal/store"
	"github.com/mapmarks/engine/pkg/core"
)

// clipboardTimeout bounds the only externally asynchronous call we make.
const clipboardTimeout = 3 * time.Second

// Gateway handles the manual persistence round-trip: indented JSON out to
// the clipboard, untrusted text in through validation. Neither direction
// can corrupt the store.
type Gateway struct {
	store  *store.Store
	clip   clipboard.Clipboard
	logger *slog.Logger
	indent string
}

// New creates a gateway over the given store and clipboard.
func New(s *store.Store, clip clipboard.Clipboard, logger *slog.Logger, indent string) *Gateway {
	return &Gateway{
		store:  s,
		clip:   clip,
		logger: logger,
		indent: indent,
	}
}

// Export marshals the marker sequence to indented JSON and hands it to
// the clipboard. The JSON text is returned either way so the caller can
// fall back to showing it. The store is never mutated by export.
func (g *Gateway) Export(ctx context.Context) (string, error) {
	markers := g.store.List()

	data, err := json.MarshalIndent(markers, "", g.indent)
	if err != nil {
		return "", fmt.Errorf("marshaling markers: %w", err)
	}
	text := string(data)

	ctx, cancel := context.WithTimeout(ctx, clipboardTimeout)
	defer cancel()

	if err := g.clip.Write(ctx, text); err != nil {
		g.logger.Warn("clipboard write failed", "error", err, "markers", len(markers))
		return text, fmt.Errorf("%w: %v", ErrClipboard, err)
	}

	g.logger.Info("exported markers to clipboard", "markers", len(markers))
	return text, nil
}

// markerPayload is the wire shape of one imported record. Location stays
// raw until validation so a malformed value is a validation failure, not
// a parse failure.
type markerPayload struct {
	ID          string          `json:"id"`
	Location    json.RawMessage `json:"location"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
}

func (p markerPayload) validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required.Error("id is required")),
		validation.Field(&p.Location,
			validation.Required.Error("location is required"),
			validation.By(func(any) error {
				var coords []float64
				if err := json.Unmarshal(p.Location, &coords); err != nil {
					return validation.NewError("marker.location.malformed", "location must be a coordinate array")
				}
				if _, err := geo.PositionFromSlice(coords); err != nil {
					return validation.NewError("marker.location.arity", "location must have exactly 2 coordinates")
				}
				return nil
			}),
		),
	)
}

// Import parses untrusted text as a marker array and, only if every
// record passes validation, replaces the store content wholesale. On any
// failure the store is untouched and the error says which kind of fix
// the text needs.
func (g *Gateway) Import(text string) error {
	markers, err := g.decode(text)
	if err != nil {
		g.logger.Warn("import rejected", "error", err)
		return err
	}

	if err := g.store.ReplaceAll(markers); err != nil {
		// ReplaceAll re-checks id uniqueness; decode already did, so this
		// only fires if the two ever disagree.
		g.logger.Warn("import rejected by store", "error", err)
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	g.logger.Info("imported markers", "markers", len(markers))
	return nil
}

// decode turns raw text into validated markers without touching the store.
func (g *Gateway) decode(text string) ([]core.Marker, error) {
	cleaned := normalize(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}

	var payloads []markerPayload
	if err := json.Unmarshal([]byte(cleaned), &payloads); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	markers := make([]core.Marker, 0, len(payloads))
	seen := make(map[string]int, len(payloads))
	for i, p := range payloads {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrValidation, i, err)
		}
		if prev, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: records %d and %d share id %q", ErrValidation, prev, i, p.ID)
		}
		seen[p.ID] = i

		var coords []float64
		if err := json.Unmarshal(p.Location, &coords); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrValidation, i, err)
		}
		pos, err := geo.PositionFromSlice(coords)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrValidation, i, err)
		}

		// Unknown categories are kept verbatim; they degrade at render
		// time only.
		markers = append(markers, core.Marker{
			ID:          p.ID,
			Location:    pos,
			Category:    core.Category(p.Category),
			Name:        p.Name,
			Description: p.Description,
		})
	}

	return markers, nil
}

// LoadSeed reads an optional seed file and replaces the store content. A
// missing file is not an error; a malformed one is logged and skipped.
func (g *Gateway) LoadSeed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			g.logger.Debug("no seed file", "path", path)
			return nil
		}
		return fmt.Errorf("reading seed file: %w", err)
	}

	if err := g.Import(string(data)); err != nil {
		g.logger.Warn("seed file skipped", "path", path, "error", err)
		return nil
	}

	g.logger.Info("seed loaded", "path", path, "markers", g.store.Len())
	return nil
}

// normalize strips a UTF-8 BOM and surrounding whitespace from pasted
// text.
func normalize(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	return strings.TrimSpace(text)
}
