package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mapmarks/engine/internal/clipboard"
	"github.com/mapmarks/engine/internal/store"
	"github.com/mapmarks/engine/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway() (*Gateway, *store.Store, *clipboard.Memory) {
	s := store.New()
	clip := clipboard.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(s, clip, logger, "  "), s, clip
}

func TestGateway_Export_WritesIndentedJSON(t *testing.T) {
	g, s, clip := newTestGateway()
	require.NoError(t, s.ReplaceAll([]core.Marker{
		{ID: "marker-1", Location: core.Position{X: 0.01, Y: 0.02}, Category: core.CategoryCity, Name: "Hightown"},
	}))

	text, err := g.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, text, clip.Text())
	assert.Contains(t, text, "\n  {")
	assert.Contains(t, text, `"id": "marker-1"`)

	var roundTrip []core.Marker
	require.NoError(t, json.Unmarshal([]byte(text), &roundTrip))
	require.Len(t, roundTrip, 1)
	assert.Equal(t, "Hightown", roundTrip[0].Name)
}

func TestGateway_Export_ClipboardFailureIsReportOnly(t *testing.T) {
	g, s, clip := newTestGateway()
	s.Create(core.Marker{Name: "survivor"})
	clip.Fail(errors.New("denied"))

	text, err := g.Export(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClipboard)
	// the JSON still comes back for a manual fallback
	assert.Contains(t, text, "survivor")
	// and the store is untouched
	assert.Equal(t, 1, s.Len())
}

func TestGateway_Import_RoundTrip(t *testing.T) {
	g, s, _ := newTestGateway()
	require.NoError(t, s.ReplaceAll([]core.Marker{
		{ID: "marker-1", Location: core.Position{X: 0.01, Y: 0.02}, Category: core.CategoryTown, Name: "Port Briar", Description: "Harbor"},
		{ID: "marker-2", Location: core.Position{X: 0.03, Y: 0.04}, Category: core.Category("ruin")},
	}))

	text, err := g.Export(context.Background())
	require.NoError(t, err)

	require.NoError(t, s.ReplaceAll(nil))
	require.NoError(t, g.Import(text))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "marker-1", list[0].ID)
	assert.Equal(t, "Port Briar", list[0].Name)
	assert.Equal(t, core.Position{X: 0.03, Y: 0.04}, list[1].Location)
	assert.Equal(t, core.Category("ruin"), list[1].Category, "unknown categories survive the round-trip")
}

func TestGateway_Import_TrimsNoiseAroundPayload(t *testing.T) {
	g, s, _ := newTestGateway()

	text := "\uFEFF  \n" + `[{"id":"marker-1","location":[0.01,0.02]}]` + "\n\t"
	require.NoError(t, g.Import(text))
	assert.Equal(t, 1, s.Len())
}

func TestGateway_Import_ParseError(t *testing.T) {
	g, s, _ := newTestGateway()
	s.Create(core.Marker{Name: "keep"})

	tests := []struct {
		name string
		text string
	}{
		{"truncated", `[{"id":"marker-1"`},
		{"not json", "definitely not json"},
		{"empty", "   "},
		{"object not array", `{"id":"marker-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Import(tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			assert.Equal(t, 1, s.Len(), "store must be untouched")
		})
	}
}

func TestGateway_Import_ValidationError(t *testing.T) {
	g, s, _ := newTestGateway()
	s.Create(core.Marker{Name: "keep"})

	tests := []struct {
		name string
		text string
	}{
		{"missing id", `[{"location":[0.01,0.02]}]`},
		{"missing location", `[{"id":"marker-1"}]`},
		{"location wrong arity", `[{"id":"marker-1","location":[0.01]}]`},
		{"location not an array", `[{"id":"marker-1","location":"north"}]`},
		{"null location", `[{"id":"marker-1","location":null}]`},
		{"duplicate ids", `[{"id":"marker-1","location":[0,0]},{"id":"marker-1","location":[1,1]}]`},
		{"one bad among good", `[{"id":"marker-1","location":[0,0]},{"location":[1,1]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Import(tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, 1, s.Len(), "all-or-nothing: store must be untouched")
		})
	}
}

func TestGateway_Import_AcceptsUnknownCategory(t *testing.T) {
	g, s, _ := newTestGateway()

	require.NoError(t, g.Import(`[{"id":"marker-1","location":[0.01,0.02],"category":"ruin","name":"Old Keep"}]`))

	got, ok := s.Get("marker-1")
	require.True(t, ok)
	assert.Equal(t, core.Category("ruin"), got.Category)
}

func TestGateway_Import_EmptyArrayClearsStore(t *testing.T) {
	g, s, _ := newTestGateway()
	s.Create(core.Marker{})

	require.NoError(t, g.Import(`[]`))
	assert.Equal(t, 0, s.Len())
}

func TestGateway_LoadSeed(t *testing.T) {
	g, s, _ := newTestGateway()

	dir := t.TempDir()
	path := filepath.Join(dir, "data_map.json")
	seed := `[
		{"id": "marker-1", "location": [0.02, 0.03], "category": "city", "name": "Hightown"},
		{"id": "marker-2", "location": [0.05, 0.06], "category": "event", "name": "Ambush site"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	require.NoError(t, g.LoadSeed(path))
	assert.Equal(t, 2, s.Len())
}

func TestGateway_LoadSeed_MissingFileIsFine(t *testing.T) {
	g, s, _ := newTestGateway()

	require.NoError(t, g.LoadSeed(filepath.Join(t.TempDir(), "absent.json")))
	assert.Equal(t, 0, s.Len())
}

func TestGateway_LoadSeed_MalformedFileSkipped(t *testing.T) {
	g, s, _ := newTestGateway()
	s.Create(core.Marker{Name: "keep"})

	dir := t.TempDir()
	path := filepath.Join(dir, "data_map.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	require.NoError(t, g.LoadSeed(path))
	assert.Equal(t, 1, s.Len())
}
