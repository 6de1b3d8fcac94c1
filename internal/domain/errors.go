package domain

import "errors"

var (
	// ErrNoResults is returned when aggregation produces zero candidates
	ErrNoResults = errors.New("no products found for query")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache store is unreachable
	ErrCacheUnavailable = errors.New("cache store unavailable")

	// ErrSourceFailure is returned when a source search API request fails
	ErrSourceFailure = errors.New("source API request failed")

	// ErrAnalysisFailure is returned when the analysis generator fails
	ErrAnalysisFailure = errors.New("analysis generation failed")
)
