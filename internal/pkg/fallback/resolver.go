// Package fallback runs ordered provider chains that always yield a value.
package fallback

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

const (
	SourceCache  = "cache"
	SourceStatic = "static"
)

// Call is one provider attempt in a chain.
type Call[T any] struct {
	Name  string
	Fetch func(ctx context.Context) (T, error)
}

// Result is the value a chain produced together with where it came from.
// Degraded is set whenever no live provider answered.
type Result[T any] struct {
	Value    T
	Source   string
	Degraded bool
}

// Cache keeps the last value a chain produced from a live provider.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
}

// Resolve tries calls strictly in order and returns the first success.
// A failing call is logged and skipped, never retried. When every call fails
// the static fallback is returned; Resolve itself never fails.
func Resolve[T any](ctx context.Context, logger *slog.Logger, calls []Call[T], static T) Result[T] {
	if v, name, ok := firstSuccess(ctx, logger, calls); ok {
		return Result[T]{Value: v, Source: name}
	}
	logger.WarnContext(ctx, "all providers failed, serving static data", "providers", names(calls))
	return Result[T]{Value: static, Source: SourceStatic, Degraded: true}
}

// ResolveCached behaves like Resolve but remembers live results under key and
// serves the remembered value before falling back to static data.
func ResolveCached[T any](ctx context.Context, logger *slog.Logger, cache Cache, key string, calls []Call[T], static T) Result[T] {
	if cache == nil {
		return Resolve(ctx, logger, calls, static)
	}

	if v, name, ok := firstSuccess(ctx, logger, calls); ok {
		if raw, err := json.Marshal(v); err == nil {
			cache.Set(ctx, key, raw)
		} else {
			logger.WarnContext(ctx, "failed to encode provider result for cache", "key", key, "error", err)
		}
		return Result[T]{Value: v, Source: name}
	}

	if raw, ok := cache.Get(ctx, key); ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			logger.WarnContext(ctx, "all providers failed, serving last known value", "key", key, "providers", names(calls))
			return Result[T]{Value: v, Source: SourceCache, Degraded: true}
		}
		logger.WarnContext(ctx, "discarding unreadable cached value", "key", key)
		cache.Delete(ctx, key)
	}

	logger.WarnContext(ctx, "all providers failed, serving static data", "key", key, "providers", names(calls))
	return Result[T]{Value: static, Source: SourceStatic, Degraded: true}
}

func firstSuccess[T any](ctx context.Context, logger *slog.Logger, calls []Call[T]) (T, string, bool) {
	var zero T
	for _, c := range calls {
		if err := ctx.Err(); err != nil {
			logger.WarnContext(ctx, "provider chain interrupted", "provider", c.Name, "error", err)
			return zero, "", false
		}
		started := time.Now()
		v, err := c.Fetch(ctx)
		if err != nil {
			logger.WarnContext(ctx, "provider failed, trying next",
				"provider", c.Name,
				"duration", time.Since(started),
				"error", err,
			)
			continue
		}
		logger.DebugContext(ctx, "provider succeeded", "provider", c.Name, "duration", time.Since(started))
		return v, c.Name, true
	}
	return zero, "", false
}

func names[T any](calls []Call[T]) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Name
	}
	return out
}
