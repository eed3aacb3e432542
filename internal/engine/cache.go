package engine

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Aggregation results are cached in two tiers: L1 in-memory + L2 Redis.
// L1 is fast but lost on restart; L2 survives restarts. Both are optional:
// with no InitCache call every lookup is a miss.
var resultCache *tieredCache

// CacheTTL controls how long results stay cached.
var CacheTTL = 15 * time.Minute

var (
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
)

type tieredCache struct {
	l1              sync.Map      // key → *cacheEntry
	rdb             *redis.Client // nil if Redis unavailable
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// InitCache sets up the two-tier cache. redisURL can be empty to disable L2.
func InitCache(redisURL string, ttl time.Duration, maxEntries int, cleanupInterval time.Duration) {
	c := &tieredCache{ttl: ttl, maxEntries: maxEntries, cleanupInterval: cleanupInterval}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			slog.Warn("cache: invalid redis URL, L2 disabled", slog.Any("error", err))
		} else {
			rdb := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("cache: redis unreachable, L2 disabled", slog.Any("error", err))
			} else {
				c.rdb = rdb
				slog.Info("cache: L2 redis connected", slog.String("addr", opts.Addr))
			}
		}
	}

	resultCache = c
	slog.Info("cache: initialized",
		slog.Duration("ttl", ttl), slog.Bool("redis", c.rdb != nil), slog.Int("max_entries", maxEntries))

	go c.cleanupLoop()
}

// CacheKey builds a deterministic cache key from parts.
func CacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("js:%x", hash[:12])
}

// CacheStats returns cumulative hit/miss counters.
func CacheStats() (hits, misses int64) {
	return cacheHits.Load(), cacheMisses.Load()
}

// CacheLoadJSON tries L1, then L2, decoding the stored JSON into T.
// An L2 hit repopulates L1.
func CacheLoadJSON[T any](ctx context.Context, key string) (T, bool) {
	var zero T
	if resultCache == nil {
		cacheMisses.Add(1)
		return zero, false
	}

	if val, ok := resultCache.l1.Load(key); ok {
		entry := val.(*cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			var out T
			if json.Unmarshal(entry.data, &out) == nil {
				slog.Debug("cache: L1 hit", slog.String("key", key))
				cacheHits.Add(1)
				return out, true
			}
		}
		resultCache.l1.Delete(key) // expired or corrupt
	}

	if resultCache.rdb != nil {
		data, err := resultCache.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var out T
			if json.Unmarshal(data, &out) == nil {
				slog.Debug("cache: L2 hit", slog.String("key", key))
				cacheHits.Add(1)
				resultCache.l1.Store(key, &cacheEntry{
					data:      data,
					expiresAt: time.Now().Add(resultCache.ttl),
				})
				return out, true
			}
		}
	}

	cacheMisses.Add(1)
	return zero, false
}

// CacheStoreJSON marshals v and stores it in both tiers.
func CacheStoreJSON[T any](ctx context.Context, key string, v T) {
	if resultCache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}

	resultCache.l1.Store(key, &cacheEntry{
		data:      data,
		expiresAt: time.Now().Add(resultCache.ttl),
	})

	if resultCache.rdb != nil {
		if err := resultCache.rdb.Set(ctx, key, data, resultCache.ttl).Err(); err != nil {
			slog.Debug("cache: L2 store failed", slog.Any("error", err))
		}
	}
}

// cleanupLoop evicts expired L1 entries and bounds the entry count.
func (c *tieredCache) cleanupLoop() {
	interval := c.cleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		count := 0
		c.l1.Range(func(key, val any) bool {
			entry := val.(*cacheEntry)
			if now.After(entry.expiresAt) {
				c.l1.Delete(key)
				return true
			}
			count++
			return true
		})

		// Over budget: drop everything rather than track LRU ordering.
		// The cache refills on the next round of requests.
		if c.maxEntries > 0 && count > c.maxEntries {
			c.l1.Range(func(key, _ any) bool {
				c.l1.Delete(key)
				return true
			})
			slog.Debug("cache: L1 flushed", slog.Int("entries", count))
		}
	}
}
