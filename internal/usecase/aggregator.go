package usecase

import "github.com/shopscout/backend/internal/domain"

// Aggregator runs the full product pipeline: dedup+merge, enrich, then
// score/rank. It holds no mutable state; each call builds its own structures.
type Aggregator struct {
	dedup    *Deduplicator
	enricher *Enricher
	scorer   *Scorer
}

// NewAggregator creates an aggregator. A nil matcher selects the default
// title-similarity matcher.
func NewAggregator(matcher domain.ProductMatcher) *Aggregator {
	return &Aggregator{
		dedup:    NewDeduplicator(matcher),
		enricher: NewEnricher(),
		scorer:   NewScorer(),
	}
}

// Aggregate combines candidate lists from any number of sources into one
// deduplicated, enriched, fully ordered product list. Zero candidates after
// aggregation is an explicit outcome (ErrNoResults), not a silent empty list.
func (a *Aggregator) Aggregate(lists ...[]domain.Product) ([]domain.Product, error) {
	var combined []domain.Product
	for _, list := range lists {
		combined = append(combined, list...)
	}

	deduped := a.dedup.Dedup(combined)
	if len(deduped) == 0 {
		return nil, domain.ErrNoResults
	}

	enriched := a.enricher.EnrichAll(deduped)
	return a.scorer.Rank(enriched), nil
}
