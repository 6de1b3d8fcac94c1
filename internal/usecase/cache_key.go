package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// cacheKeyPrefix namespaces all pipeline cache keys in the shared store
const cacheKeyPrefix = "cache:"

// GenerateCacheKey derives a stable content-addressed key from any request
// shape. The shape is serialized to canonical JSON (struct fields in
// declaration order, map keys sorted) and hashed with sha256 so that equal
// shapes always collide and different shapes, with overwhelming probability,
// never do.
func GenerateCacheKey(shape any) (string, error) {
	canonical, err := json.Marshal(shape)
	if err != nil {
		return "", fmt.Errorf("serialize cache key shape: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return cacheKeyPrefix + hex.EncodeToString(sum[:]), nil
}
