//go:build unit

package fallback_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"breakfast-deals/internal/pkg/fallback"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *memCache) Set(_ context.Context, key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

func (c *memCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

func ok(name string, v []string, calls *[]string) fallback.Call[[]string] {
	return fallback.Call[[]string]{
		Name: name,
		Fetch: func(context.Context) ([]string, error) {
			*calls = append(*calls, name)
			return v, nil
		},
	}
}

func fail(name string, calls *[]string) fallback.Call[[]string] {
	return fallback.Call[[]string]{
		Name: name,
		Fetch: func(context.Context) ([]string, error) {
			*calls = append(*calls, name)
			return nil, errors.New(name + " unavailable")
		},
	}
}

func TestResolve(t *testing.T) {
	static := []string{"static"}

	t.Run("primary answers", func(t *testing.T) {
		var calls []string
		res := fallback.Resolve(context.Background(), discard, []fallback.Call[[]string]{
			ok("primary", []string{"p"}, &calls),
			ok("secondary", []string{"s"}, &calls),
		}, static)

		assert.Equal(t, []string{"p"}, res.Value)
		assert.Equal(t, "primary", res.Source)
		assert.False(t, res.Degraded)
		assert.Equal(t, []string{"primary"}, calls)
	})

	t.Run("primary fails and secondary answers", func(t *testing.T) {
		var calls []string
		res := fallback.Resolve(context.Background(), discard, []fallback.Call[[]string]{
			fail("primary", &calls),
			ok("secondary", []string{"s"}, &calls),
		}, static)

		assert.Equal(t, []string{"s"}, res.Value)
		assert.Equal(t, "secondary", res.Source)
		assert.False(t, res.Degraded)
		assert.Equal(t, []string{"primary", "secondary"}, calls)
	})

	t.Run("every provider fails", func(t *testing.T) {
		var calls []string
		res := fallback.Resolve(context.Background(), discard, []fallback.Call[[]string]{
			fail("primary", &calls),
			fail("secondary", &calls),
		}, static)

		assert.Equal(t, static, res.Value)
		assert.Equal(t, fallback.SourceStatic, res.Source)
		assert.True(t, res.Degraded)
		assert.Equal(t, []string{"primary", "secondary"}, calls, "each provider is tried exactly once")
	})

	t.Run("no providers configured", func(t *testing.T) {
		res := fallback.Resolve(context.Background(), discard, nil, static)
		assert.Equal(t, static, res.Value)
		assert.True(t, res.Degraded)
	})

	t.Run("cancelled context stops the chain", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls []string
		res := fallback.Resolve(ctx, discard, []fallback.Call[[]string]{
			ok("primary", []string{"p"}, &calls),
		}, static)

		assert.Empty(t, calls)
		assert.Equal(t, fallback.SourceStatic, res.Source)
	})
}

func TestResolveCached(t *testing.T) {
	static := []string{"static"}

	t.Run("live result is remembered and served when providers fail", func(t *testing.T) {
		cache := newMemCache()
		var calls []string

		live := fallback.ResolveCached(context.Background(), discard, cache, "k", []fallback.Call[[]string]{
			ok("primary", []string{"p"}, &calls),
		}, static)
		require.Equal(t, "primary", live.Source)

		res := fallback.ResolveCached(context.Background(), discard, cache, "k", []fallback.Call[[]string]{
			fail("primary", &calls),
		}, static)

		assert.Equal(t, []string{"p"}, res.Value)
		assert.Equal(t, fallback.SourceCache, res.Source)
		assert.True(t, res.Degraded)
	})

	t.Run("static data when nothing is cached", func(t *testing.T) {
		var calls []string
		res := fallback.ResolveCached(context.Background(), discard, newMemCache(), "k", []fallback.Call[[]string]{
			fail("primary", &calls),
		}, static)

		assert.Equal(t, static, res.Value)
		assert.Equal(t, fallback.SourceStatic, res.Source)
	})

	t.Run("unreadable cache entry is skipped", func(t *testing.T) {
		cache := newMemCache()
		cache.Set(context.Background(), "k", []byte("{not json"))

		var calls []string
		res := fallback.ResolveCached(context.Background(), discard, cache, "k", []fallback.Call[[]string]{
			fail("primary", &calls),
		}, static)

		assert.Equal(t, fallback.SourceStatic, res.Source)
		_, kept := cache.Get(context.Background(), "k")
		assert.False(t, kept, "unreadable entry should be evicted")
	})

	t.Run("cached values are keyed", func(t *testing.T) {
		cache := newMemCache()
		var calls []string
		fallback.ResolveCached(context.Background(), discard, cache, "a", []fallback.Call[[]string]{
			ok("primary", []string{"a"}, &calls),
		}, static)

		res := fallback.ResolveCached(context.Background(), discard, cache, "b", []fallback.Call[[]string]{
			fail("primary", &calls),
		}, static)
		assert.Equal(t, fallback.SourceStatic, res.Source)
	})

	t.Run("nil cache behaves like Resolve", func(t *testing.T) {
		var calls []string
		res := fallback.ResolveCached(context.Background(), discard, nil, "k", []fallback.Call[[]string]{
			fail("primary", &calls),
			ok("secondary", []string{"s"}, &calls),
		}, static)
		assert.Equal(t, "secondary", res.Source)
	})
}
