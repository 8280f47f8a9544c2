package system

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirofs/mirofs/internal/vfs"
)

func TestInfo(t *testing.T) {
	p := NewProvider(vfs.New())

	result, err := p.Execute(context.Background(), "system.info", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.NotEmpty(t, result.Data["go_version"])
	assert.NotZero(t, result.Data["cpus"])
}

func TestStoreStats(t *testing.T) {
	store := vfs.New()
	require.NoError(t, store.Create("/docs", nil, true))
	require.NoError(t, store.Create("/docs/a.txt", []byte("12345"), false))

	p := NewProvider(store)
	result, err := p.Execute(context.Background(), "system.stats", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.Equal(t, 2, result.Data["nodes"])
	assert.Equal(t, 1, result.Data["files"])
	assert.Equal(t, 1, result.Data["directories"])
	assert.Equal(t, int64(5), result.Data["bytes"])
}

func TestPing(t *testing.T) {
	p := NewProvider(vfs.New())

	result, err := p.Execute(context.Background(), "system.ping", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, true, result.Data["pong"])
}

func TestUnknownTool(t *testing.T) {
	p := NewProvider(vfs.New())

	result, err := p.Execute(context.Background(), "system.bogus", nil, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Contains(t, *result.Error, "unknown tool")
}
