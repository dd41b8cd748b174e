package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Write(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Write(context.Background(), "payload"))
	assert.Equal(t, "payload", m.Text())
}

func TestMemory_Fail(t *testing.T) {
	m := NewMemory()
	boom := errors.New("denied")
	m.Fail(boom)

	err := m.Write(context.Background(), "payload")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "", m.Text())
}

func TestMemory_RespectsContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Write(ctx, "payload")
	assert.ErrorIs(t, err, context.Canceled)
}
