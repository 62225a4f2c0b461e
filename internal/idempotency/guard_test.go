package idempotency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Lifecycle(t *testing.T) {
	ctx := context.Background()
	g := NewMemory()

	_, done, err := g.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, done)

	_, _, err = g.Begin(ctx, "k1")
	assert.ErrorIs(t, err, ErrInProgress)

	require.NoError(t, g.Complete(ctx, "k1", 77))
	id, done, err := g.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 77, id)
}

func TestMemory_ReleaseAllowsRetry(t *testing.T) {
	ctx := context.Background()
	g := NewMemory()

	_, _, err := g.Begin(ctx, "k2")
	require.NoError(t, err)
	require.NoError(t, g.Release(ctx, "k2"))

	_, done, err := g.Begin(ctx, "k2")
	require.NoError(t, err)
	assert.False(t, done)
}

func TestDecode(t *testing.T) {
	_, _, err := decode("garbage")
	assert.Error(t, err)
	n, done, err := decode("12")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 12, n)
}
