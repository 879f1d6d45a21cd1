package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"breakfast-deals/internal/pkg/config"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
)

const keyPrefix = "bfd:"

// LastKnown remembers the most recent live provider answer per chain key.
// The in-process ccache tier is always present; memcached is an optional
// second tier shared between instances.
type LastKnown struct {
	local  *ccache.Cache[[]byte]
	remote *memcache.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewLastKnown(cfg config.CacheConfig, logger *slog.Logger) *LastKnown {
	size := cfg.MaxSize
	if size <= 0 {
		size = 1000
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	lk := &LastKnown{
		local:  ccache.New(ccache.Configure[[]byte]().MaxSize(size)),
		ttl:    ttl,
		logger: logger,
	}
	if cfg.MemcachedHost != "" {
		lk.remote = memcache.New(cfg.MemcachedHost)
		logger.Info("last known cache backed by memcached", "host", cfg.MemcachedHost)
	}
	return lk
}

func (c *LastKnown) Get(ctx context.Context, key string) ([]byte, bool) {
	if item := c.local.Get(key); item != nil && !item.Expired() {
		return item.Value(), true
	}
	if c.remote == nil {
		return nil, false
	}

	item, err := c.remote.Get(remoteKey(key))
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			c.logger.WarnContext(ctx, "memcached get failed", "key", key, "error", err)
		}
		return nil, false
	}
	c.local.Set(key, item.Value, c.ttl)
	return item.Value, true
}

func (c *LastKnown) Set(ctx context.Context, key string, value []byte) {
	c.local.Set(key, value, c.ttl)
	if c.remote == nil {
		return
	}
	err := c.remote.Set(&memcache.Item{
		Key:        remoteKey(key),
		Value:      value,
		Expiration: int32(c.ttl / time.Second),
	})
	if err != nil {
		c.logger.WarnContext(ctx, "memcached set failed", "key", key, "error", err)
	}
}

func (c *LastKnown) Delete(ctx context.Context, key string) {
	c.local.Delete(key)
	if c.remote == nil {
		return
	}
	if err := c.remote.Delete(remoteKey(key)); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		c.logger.WarnContext(ctx, "memcached delete failed", "key", key, "error", err)
	}
}

func (c *LastKnown) Stop() {
	c.local.Stop()
}

// memcached keys are limited to 250 bytes without spaces, chain keys carry
// free-text queries.
func remoteKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return keyPrefix + hex.EncodeToString(sum[:])
}
