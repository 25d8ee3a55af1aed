package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache(0)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	require.NoError(t, c.Set("k", "v"))
	val, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_ResetsWhenFull(t *testing.T) {
	c := NewMemoryCache(2)
	require.NoError(t, c.Set("a", "1"))
	require.NoError(t, c.Set("b", "2"))

	// overwriting an existing key never resets
	require.NoError(t, c.Set("a", "3"))
	assert.Equal(t, 2, c.Len())

	require.NoError(t, c.Set("c", "4"))
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache(0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			_ = c.Set(key, "v")
			_, _ = c.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, c.Len())
}

func TestRedisCache_UnreachableReportsMiss(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1", "", 0, 0)
	defer c.Close()

	_, ok := c.Get("anything")
	assert.False(t, ok)
	assert.Error(t, c.Set("anything", "v"))
}
