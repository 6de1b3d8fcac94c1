package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shopscout/backend/internal/domain"
)

// analysisTopSlice caps how many ranked products feed the analysis generator
const analysisTopSlice = 10

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// SearchService orchestrates a product search: cache lookup, concurrent
// source fan-out, aggregation, analysis, and cache write-back. All
// dependencies are injected; fakes slot in for tests.
type SearchService struct {
	adapters   []domain.SourceAdapter
	analysis   domain.AnalysisGenerator
	cache      *CacheClient
	normalizer *Normalizer
	aggregator *Aggregator
	cacheTTL   time.Duration
	debug      bool
}

// NewSearchService creates a search service with dependencies. The analysis
// generator may be nil (the fallback report is used); the cache store inside
// the client may be nil (caching becomes a no-op).
func NewSearchService(
	adapters []domain.SourceAdapter,
	analysis domain.AnalysisGenerator,
	cache *CacheClient,
	config SearchServiceConfig,
) *SearchService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &SearchService{
		adapters:   adapters,
		analysis:   analysis,
		cache:      cache,
		normalizer: NewNormalizer(),
		aggregator: NewAggregator(nil),
		cacheTTL:   cacheTTL,
		debug:      config.EnableDebugLogging,
	}
}

// Search runs one full search request.
// Flow: check cache -> fan out to sources -> normalize -> aggregate ->
// analyze -> cache -> return.
func (s *SearchService) Search(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResult, error) {
	if request == nil || strings.TrimSpace(request.Query) == "" {
		return nil, domain.ErrInvalidRequest
	}

	key, err := GenerateCacheKey(request)
	if err != nil {
		return nil, err
	}

	if cached, ok := GetCachedResults[domain.SearchResult](ctx, s.cache, key); ok {
		if s.debug {
			log.Printf("[SEARCH] cache hit for query %q", request.Query)
		}
		cached.Cached = true
		return &cached, nil
	}

	candidates := s.fanOut(ctx, request.Query)

	products, err := s.aggregator.Aggregate(candidates...)
	if err != nil {
		return nil, err
	}

	if max := request.MaxResults; max > 0 && len(products) > max {
		products = products[:max]
	}

	result := &domain.SearchResult{
		Query:    request.Query,
		Products: products,
		Report:   s.generateReport(ctx, products, request.Preferences),
	}

	CacheResults(ctx, s.cache, key, *result, int(s.cacheTTL.Seconds()))

	return result, nil
}

// fanOut queries every configured source concurrently. A failing source only
// contributes an empty list; it never blocks or fails the others.
func (s *SearchService) fanOut(ctx context.Context, query string) [][]domain.Product {
	results := make([][]domain.Product, len(s.adapters))

	g, gctx := errgroup.WithContext(ctx)
	for i, adapter := range s.adapters {
		i, adapter := i, adapter
		g.Go(func() error {
			raws, err := adapter.Search(gctx, query)
			if err != nil {
				log.Printf("[SEARCH] source %s failed: %v", adapter.Source(), err)
				return nil
			}
			results[i] = s.normalizer.NormalizeAll(raws)
			if s.debug {
				log.Printf("[SEARCH] source %s returned %d candidates", adapter.Source(), len(results[i]))
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// generateReport calls the analysis generator on the top slice of ranked
// products, falling back to the deterministic report on any failure.
func (s *SearchService) generateReport(ctx context.Context, products []domain.Product, prefs domain.UserPreferences) *domain.ComparisonReport {
	top := products
	if len(top) > analysisTopSlice {
		top = top[:analysisTopSlice]
	}

	if s.analysis != nil {
		report, err := s.analysis.GenerateReport(ctx, top, prefs)
		if err == nil && report != nil {
			return report
		}
		log.Printf("[SEARCH] analysis failed, using fallback report: %v", err)
	}

	return buildFallbackReport(top, prefs)
}
