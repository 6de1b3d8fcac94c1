package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/shopscout/backend/internal/domain"
)

// CacheClient wraps a CacheStore with CacheEntry envelope handling: writes
// stamp the entry with the current time and TTL; reads re-check expiry even
// when the store evicts on its own.
type CacheClient struct {
	store domain.CacheStore
	now   func() time.Time
}

// NewCacheClient creates a cache client. A nil store is allowed and turns
// every operation into a silent no-op or miss.
func NewCacheClient(store domain.CacheStore) *CacheClient {
	return &CacheClient{store: store, now: time.Now}
}

// CacheResults wraps data in a CacheEntry and writes it with the store's
// native TTL. Store errors are logged and swallowed; a failed write never
// fails the request.
func CacheResults[T any](ctx context.Context, c *CacheClient, key string, data T, ttlSeconds int) {
	if c == nil || c.store == nil {
		return
	}

	entry := domain.CacheEntry[T]{
		Data:      data,
		Timestamp: c.now().UnixMilli(),
		TTL:       ttlSeconds,
	}

	serialized, err := json.Marshal(entry)
	if err != nil {
		log.Printf("[CACHE] serialize error for key %s: %v", key, err)
		return
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	if err := c.store.Set(ctx, key, string(serialized), ttl); err != nil {
		log.Printf("[CACHE] write error for key %s: %v", key, err)
	}
}

// GetCachedResults reads and unwraps a CacheEntry. Expired or undecodable
// entries are deleted and reported as a miss; store errors degrade to a miss.
func GetCachedResults[T any](ctx context.Context, c *CacheClient, key string) (T, bool) {
	var zero T
	if c == nil || c.store == nil {
		return zero, false
	}

	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			log.Printf("[CACHE] read error for key %s: %v", key, err)
		}
		return zero, false
	}

	var entry domain.CacheEntry[T]
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		log.Printf("[CACHE] corrupt entry for key %s: %v", key, err)
		_ = c.store.Delete(ctx, key)
		return zero, false
	}

	if entry.Expired(c.now()) {
		_ = c.store.Delete(ctx, key)
		return zero, false
	}

	return entry.Data, true
}
