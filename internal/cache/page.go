// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed full-page HTML cache. Every published
// page render is stored keyed by locale, path, and query string, so repeat
// requests skip the content-platform round trips entirely. Preview renders
// are never cached — the handlers bypass this layer for them.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"alhikma/internal/locale"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached. Editorial
	// changes appear within this window at the latest.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages full-page HTML caching in Valkey. A nil PageCache (or
// one built on a nil client) is valid and caches nothing, so the site can
// run without Valkey in development.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a page cache backed by the given Valkey client,
// which may be nil.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Key builds the cache key for a request: locale plus path plus any query
// string. The query matters — the events list renders differently per filter.
func Key(loc locale.Locale, path, rawQuery string) string {
	key := loc.String() + ":" + path
	if rawQuery != "" {
		key += "?" + rawQuery
	}
	return key
}

// Get retrieves cached HTML for a page key. Returns false on miss or when
// caching is disabled.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if pc == nil || pc.client == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "key", key)
	return val, true
}

// Set stores rendered HTML for a page key with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, key string, html []byte) {
	if pc == nil || pc.client == nil {
		return
	}
	if err := pc.client.Set(ctx, pageKeyPrefix+key, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// InvalidateLocale removes every cached page for one locale. Used by the
// webhook endpoint the content platform calls after a publish.
func (pc *PageCache) InvalidateLocale(ctx context.Context, loc locale.Locale) {
	pc.invalidatePattern(ctx, pageKeyPrefix+loc.String()+":*")
}

// InvalidateAll removes all cached pages.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	pc.invalidatePattern(ctx, pageKeyPrefix+"*")
}

// invalidatePattern deletes keys matching a pattern by cursor scan.
func (pc *PageCache) invalidatePattern(ctx context.Context, pattern string) {
	if pc == nil || pc.client == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache cleared", "pattern", pattern, "deleted", deleted)
	}
}
