//go:build unit

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"breakfast-deals/internal/infra/cache"
	"breakfast-deals/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLastKnownLocal(t *testing.T) {
	ctx := context.Background()
	c := cache.NewLastKnown(config.CacheConfig{MaxSize: 10, TTL: time.Minute}, discard)
	t.Cleanup(c.Stop)

	_, ok := c.Get(ctx, "hotels:booked")
	assert.False(t, ok)

	c.Set(ctx, "hotels:booked", []byte(`[{"id":"hotel1"}]`))
	got, ok := c.Get(ctx, "hotels:booked")
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"hotel1"}]`), got)

	c.Delete(ctx, "hotels:booked")
	_, ok = c.Get(ctx, "hotels:booked")
	assert.False(t, ok)
}

func TestLastKnownExpires(t *testing.T) {
	ctx := context.Background()
	c := cache.NewLastKnown(config.CacheConfig{MaxSize: 10, TTL: 20 * time.Millisecond}, discard)
	t.Cleanup(c.Stop)

	c.Set(ctx, "deals:hotel1", []byte(`[]`))
	time.Sleep(50 * time.Millisecond)

	_, ok := c.Get(ctx, "deals:hotel1")
	assert.False(t, ok)
}

func TestLastKnownUnreachableMemcached(t *testing.T) {
	ctx := context.Background()
	c := cache.NewLastKnown(config.CacheConfig{MemcachedHost: "127.0.0.1:1"}, discard)
	t.Cleanup(c.Stop)

	// the local tier keeps serving when the remote one is down
	c.Set(ctx, "hotel:hotel1", []byte(`{"id":"hotel1"}`))
	got, ok := c.Get(ctx, "hotel:hotel1")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"id":"hotel1"}`), got)

	c.Delete(ctx, "hotel:hotel1")
	_, ok = c.Get(ctx, "hotel:hotel1")
	assert.False(t, ok)
}
