package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemory()
	defer c.Close()
	ctx := context.Background()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	c.Set(ctx, "k", []byte("v"), time.Minute)
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemory()
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemory()
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), time.Minute)
	c.Delete(ctx, "k")
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	// Deleting again is a no-op
	c.Delete(ctx, "k")
}

func TestMemoryCacheZeroTTL(t *testing.T) {
	c := NewMemory()
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), 0)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCacheCloseTwice(t *testing.T) {
	c := NewMemory()
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestNewFallsBackWithoutRedis(t *testing.T) {
	c := New(context.Background(), "", nil)
	defer c.Close()
	_, isMemory := c.(*MemoryCache)
	assert.True(t, isMemory)
}

func TestNewFallsBackOnUnreachableRedis(t *testing.T) {
	// Port 1 should refuse connections quickly.
	c := New(context.Background(), "redis://127.0.0.1:1", nil)
	defer c.Close()
	_, isMemory := c.(*MemoryCache)
	assert.True(t, isMemory)
}
