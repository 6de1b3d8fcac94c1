package domain

import "time"

// CacheEntry wraps a cached payload with its write time and TTL so expiry
// can be re-checked on read regardless of the store's own eviction.
type CacheEntry[T any] struct {
	Data      T     `json:"data"`
	Timestamp int64 `json:"timestamp"` // epoch milliseconds at write time
	TTL       int   `json:"ttl"`       // seconds
}

// Expired reports whether the entry is stale at the given instant.
func (e CacheEntry[T]) Expired(now time.Time) bool {
	return now.UnixMilli()-e.Timestamp > int64(e.TTL)*1000
}
