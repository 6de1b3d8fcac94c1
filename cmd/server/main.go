package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/shopscout/backend/config"
	httpDelivery "github.com/shopscout/backend/internal/delivery/http"
	"github.com/shopscout/backend/internal/domain"
	"github.com/shopscout/backend/internal/infrastructure/analysis"
	"github.com/shopscout/backend/internal/infrastructure/cache"
	"github.com/shopscout/backend/internal/infrastructure/sources"
	"github.com/shopscout/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopScout Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Initialize the cache store
	var store domain.CacheStore
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(context.Background(), cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		store = redisCache
	case "memory":
		store = cache.NewMemoryCache()
	default:
		// cache.type = "none": caching becomes a no-op
		log.Printf("WARNING: caching disabled by configuration")
	}
	cacheClient := usecase.NewCacheClient(store)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize source adapters
	var adapters []domain.SourceAdapter
	if cfg.Sources.Google.Enabled {
		adapters = append(adapters, sources.NewGoogleShoppingClient(
			cfg.Sources.Google.APIKey, cfg.Sources.Google.BaseURL))
	}
	if cfg.Sources.Amazon.Enabled {
		adapters = append(adapters, sources.NewAmazonClient(
			cfg.Sources.Amazon.APIKey, cfg.Sources.Amazon.BaseURL, cfg.Sources.PartnerTag))
	}
	log.Printf("Sources enabled: %d", len(adapters))

	// Initialize the analysis generator
	var generator domain.AnalysisGenerator
	if cfg.Analysis.APIKey != "" {
		generator = analysis.NewOpenAIGenerator(cfg.Analysis.APIKey, cfg.Analysis.Model)
		log.Printf("Analysis model: %s", cfg.Analysis.Model)
	} else {
		log.Printf("WARNING: analysis API key not configured - using fallback reports only")
	}

	// Initialize usecase layer
	searchService := usecase.NewSearchService(adapters, generator, cacheClient,
		usecase.SearchServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: cfg.Server.Environment == "development",
		})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
