package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Known(t *testing.T) {
	assert.True(t, CategoryCity.Known())
	assert.True(t, CategoryTown.Known())
	assert.True(t, CategoryEvent.Known())
	assert.False(t, Category("ruin").Known())
	assert.False(t, Category("").Known())
}

func TestCategory_Icon_UnknownFallsBackToCity(t *testing.T) {
	assert.Equal(t, CategoryTown, CategoryTown.Icon())
	assert.Equal(t, CategoryCity, Category("ruin").Icon())
	assert.Equal(t, CategoryCity, Category("").Icon())
}

func TestPosition_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Position{X: 0.04, Y: 0.08})
	require.NoError(t, err)
	assert.JSONEq(t, `[0.04, 0.08]`, string(data))
}

func TestPosition_UnmarshalJSON(t *testing.T) {
	var p Position
	require.NoError(t, json.Unmarshal([]byte(`[0.04, 0.08]`), &p))
	assert.Equal(t, Position{X: 0.04, Y: 0.08}, p)
}

func TestPosition_UnmarshalJSON_WrongArity(t *testing.T) {
	var p Position
	err := json.Unmarshal([]byte(`[0.04]`), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 2 coordinates")

	err = json.Unmarshal([]byte(`[1, 2, 3]`), &p)
	require.Error(t, err)
}

func TestPosition_UnmarshalJSON_NotAnArray(t *testing.T) {
	var p Position
	err := json.Unmarshal([]byte(`{"x": 1}`), &p)
	require.Error(t, err)
}

func TestMarker_JSONFieldOrder(t *testing.T) {
	m := Marker{
		ID:          "marker-1",
		Location:    Position{X: 0.02, Y: 0.03},
		Category:    CategoryTown,
		Name:        "Port Briar",
		Description: "Harbor town",
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":"marker-1","location":[0.02,0.03],"category":"town","name":"Port Briar","description":"Harbor town"}`,
		string(data))
}

func TestMarker_RoundTrip(t *testing.T) {
	in := Marker{
		ID:       "marker-abc",
		Location: Position{X: 0.1, Y: 0.05},
		Category: Category("ruin"), // unknown categories survive the trip
		Name:     "Old Keep",
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Marker
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
