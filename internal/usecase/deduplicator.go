package usecase

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/shopscout/backend/internal/domain"
)

// dedupKeyPrefixLen bounds how much of the normalized title feeds the
// representative key.
const dedupKeyPrefixLen = 30

// Deduplicator collapses near-duplicate products from different sources into
// one record per distinct physical item. First-seen records anchor the
// representative slot; merges may still override individual fields.
type Deduplicator struct {
	matcher domain.ProductMatcher
}

// NewDeduplicator creates a deduplicator using the given identity matcher.
// A nil matcher falls back to the default title-similarity matcher.
func NewDeduplicator(matcher domain.ProductMatcher) *Deduplicator {
	if matcher == nil {
		matcher = NewTitleMatcher()
	}
	return &Deduplicator{matcher: matcher}
}

// Dedup reduces the combined candidate list to unique products, merging
// duplicates into their first-seen representative. O(n²) over candidates,
// which is fine for result sets capped at tens of items.
func (d *Deduplicator) Dedup(products []domain.Product) []domain.Product {
	representatives := make(map[string]domain.Product)
	order := make([]string, 0, len(products))

	for _, candidate := range products {
		merged := false
		for _, key := range order {
			rep := representatives[key]
			if d.matcher.SameProduct(rep, candidate) {
				representatives[key] = mergeProducts(rep, candidate)
				merged = true
				break
			}
		}
		if merged {
			continue
		}

		key := dedupKey(candidate)
		if _, exists := representatives[key]; !exists {
			order = append(order, key)
		}
		representatives[key] = candidate
	}

	out := make([]domain.Product, 0, len(order))
	for _, key := range order {
		out = append(out, representatives[key])
	}
	return out
}

// dedupKey derives the synthetic representative key:
// hash of the alnum-only lower-cased title prefix plus the brand.
func dedupKey(p domain.Product) string {
	h := fnv.New32a()
	h.Write([]byte(normalizedTitlePrefix(p.Title) + strings.ToLower(p.Brand)))
	return fmt.Sprintf("%08x", h.Sum32())
}

// normalizedTitlePrefix lower-cases the title, strips everything but letters
// and digits, and truncates to the key prefix length.
func normalizedTitlePrefix(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= dedupKeyPrefixLen {
				break
			}
		}
	}
	return b.String()
}
