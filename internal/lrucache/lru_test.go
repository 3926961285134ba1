package lrucache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, capacity int) *Cache[string, []int] {
	t.Helper()
	c, err := New[string, []int](capacity)
	require.NoError(t, err)
	return c
}

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -20} {
		c, err := New[string, int](capacity)
		assert.ErrorIs(t, err, ErrInvalidCapacity, "capacity %d", capacity)
		assert.Nil(t, c)
	}
}

func TestNewDefaultCapacity(t *testing.T) {
	c, err := New[string, int](DefaultCapacity)
	require.NoError(t, err)
	assert.Equal(t, 20, c.Cap())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Keys())
}

func TestCapacityInvariant(t *testing.T) {
	const capacity = 5
	c := newTestCache(t, capacity)

	for i := 0; i < 3*capacity; i++ {
		c.Set(fmt.Sprintf("k%d", i), []int{i})
		assert.Equal(t, min(i+1, capacity), c.Len())
		assert.Len(t, c.Keys(), c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := newTestCache(t, 3)
	c.Set("k1", []int{1})
	c.Set("k2", []int{2})
	c.Set("k3", []int{3})

	c.Set("k4", []int{4})

	assert.False(t, c.Contains("k1"))
	assert.Equal(t, []string{"k4", "k3", "k2"}, c.Keys())
}

func TestGetPromotesKey(t *testing.T) {
	c := newTestCache(t, 3)
	c.Set("k1", []int{1})
	c.Set("k2", []int{2})
	c.Set("k3", []int{3})

	v, ok := c.Get("k1")
	require.True(t, ok)
	assert.Equal(t, []int{1}, v)

	c.Set("k4", []int{4})

	assert.True(t, c.Contains("k1"))
	assert.False(t, c.Contains("k2"))
	assert.Equal(t, []string{"k4", "k1", "k3"}, c.Keys())
}

func TestSetPromotesLikeGet(t *testing.T) {
	viaGet := newTestCache(t, 3)
	viaSet := newTestCache(t, 3)
	for _, c := range []*Cache[string, []int]{viaGet, viaSet} {
		c.Set("a", []int{1})
		c.Set("b", []int{2})
		c.Set("c", []int{3})
	}

	viaGet.Get("a")
	viaSet.Set("a", []int{1})

	assert.Equal(t, viaGet.Keys(), viaSet.Keys())
}

func TestOverwriteDoesNotConsumeCapacity(t *testing.T) {
	evicted := 0
	c, err := New(2, WithEvictCallback(func(string, []int) { evicted++ }))
	require.NoError(t, err)

	c.Set("a", []int{1})
	c.Set("b", []int{2})
	c.Set("b", []int{20})
	c.Set("b", []int{200})

	assert.Equal(t, 0, evicted)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"b", "a"}, c.Keys())

	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, []int{200}, v)
}

func TestOverwriteKeepsOrderConsistent(t *testing.T) {
	c := newTestCache(t, 3)
	c.Set("a", []int{1})
	c.Set("b", []int{2})
	c.Set("c", []int{3})

	// a moves to the front, so b is the tail that must be evicted next.
	c.Set("a", []int{10})
	c.Set("d", []int{4})

	assert.Equal(t, []string{"d", "a", "c"}, c.Keys())
	assert.False(t, c.Contains("b"))
}

func TestMissIsSideEffectFree(t *testing.T) {
	c := newTestCache(t, 3)
	c.Set("a", []int{1})
	c.Set("b", []int{2})
	before := c.Keys()

	v, ok := c.Get("missing")

	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, before, c.Keys())
}

func TestRepeatedGetIsIdempotent(t *testing.T) {
	once := newTestCache(t, 3)
	twice := newTestCache(t, 3)
	for _, c := range []*Cache[string, []int]{once, twice} {
		c.Set("a", []int{1})
		c.Set("b", []int{2})
		c.Set("c", []int{3})
	}

	once.Get("b")
	twice.Get("b")
	twice.Get("b")

	assert.Equal(t, once.Keys(), twice.Keys())
	assert.Equal(t, once.Len(), twice.Len())
}

func TestContainsDoesNotPromote(t *testing.T) {
	c := newTestCache(t, 2)
	c.Set("a", []int{1})
	c.Set("b", []int{2})

	assert.True(t, c.Contains("a"))
	c.Set("c", []int{3})

	assert.False(t, c.Contains("a"))
}

func TestEvictCallbackReceivesEntry(t *testing.T) {
	var gotKey string
	var gotValue []int
	c, err := New(1, WithEvictCallback(func(k string, v []int) {
		gotKey, gotValue = k, v
	}))
	require.NoError(t, err)

	c.Set("a", []int{1})
	c.Set("b", []int{2})

	assert.Equal(t, "a", gotKey)
	assert.Equal(t, []int{1}, gotValue)
}

func TestCapacityOne(t *testing.T) {
	c := newTestCache(t, 1)
	c.Set("a", []int{1})
	c.Set("b", []int{2})

	assert.Equal(t, []string{"b"}, c.Keys())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

// TestScenario walks through a capacity-2 session step by step.
func TestScenario(t *testing.T) {
	c := newTestCache(t, 2)

	c.Set("a", []int{1})
	c.Set("b", []int{2})
	assert.Equal(t, []string{"b", "a"}, c.Keys())

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []int{1}, v)
	assert.Equal(t, []string{"a", "b"}, c.Keys())

	c.Set("c", []int{3})
	assert.Equal(t, []string{"c", "a"}, c.Keys())

	_, ok = c.Get("b")
	assert.False(t, ok)

	v, ok = c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []int{1}, v)
	assert.Equal(t, []string{"a", "c"}, c.Keys())
}

func TestConcurrentAccessKeepsInvariants(t *testing.T) {
	const capacity = 8
	c := newTestCache(t, capacity)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("k%d", (g*7+i)%20)
				if i%3 == 0 {
					c.Get(key)
				} else {
					c.Set(key, []int{i})
				}
			}
		}(g)
	}
	wg.Wait()

	keys := c.Keys()
	assert.LessOrEqual(t, c.Len(), capacity)
	assert.Len(t, keys, c.Len())

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s in recency order", k)
		seen[k] = true
		assert.True(t, c.Contains(k))
	}
}
