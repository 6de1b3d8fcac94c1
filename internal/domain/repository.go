package domain

import (
	"context"
	"time"
)

// CacheStore defines the key-value interface backing the cache client.
// Get returns ErrCacheMiss for absent keys.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RawRecord is a source-shaped candidate record before normalization.
// Payload field names vary per source; only the normalizer's alias table
// knows how to read them.
type RawRecord struct {
	Source  Source
	Payload map[string]any
}

// SourceAdapter defines a product search source. Adapters carry their own
// timeouts; a failing adapter only reduces the candidate pool.
type SourceAdapter interface {
	Source() Source
	Search(ctx context.Context, query string) ([]RawRecord, error)
}

// AnalysisGenerator produces a structured comparison report for a ranked
// product list and the user's preferences.
type AnalysisGenerator interface {
	GenerateReport(ctx context.Context, products []Product, prefs UserPreferences) (*ComparisonReport, error)
}

// ProductMatcher decides whether two products represent the same physical
// item. Kept as an interface so the title-similarity heuristic can be
// replaced by a stricter matcher (e.g. GTIN/ASIN equality first).
type ProductMatcher interface {
	SameProduct(a, b Product) bool
}
