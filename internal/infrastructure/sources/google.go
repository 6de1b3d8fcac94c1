package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"

	"github.com/shopscout/backend/internal/domain"
)

// GoogleShoppingClient queries a SerpAPI-compatible Google Shopping endpoint
// and returns raw candidate records for the normalizer.
type GoogleShoppingClient struct {
	*apiClient
	apiKey  string
	baseURL string
}

// NewGoogleShoppingClient creates a Google Shopping source adapter
func NewGoogleShoppingClient(apiKey, baseURL string) *GoogleShoppingClient {
	return &GoogleShoppingClient{
		// SerpAPI free tier allows 100 searches/month; keep the limiter tight
		apiClient: newAPIClient("GOOGLE", 1, 5),
		apiKey:    apiKey,
		baseURL:   baseURL,
	}
}

// Source identifies this adapter's origin tag
func (c *GoogleShoppingClient) Source() domain.Source {
	return domain.SourceGoogle
}

// googleSearchResponse is the subset of the SerpAPI payload we consume
type googleSearchResponse struct {
	ShoppingResults []map[string]any `json:"shopping_results"`
}

// Search runs a shopping query and returns source-shaped raw records
func (c *GoogleShoppingClient) Search(ctx context.Context, query string) ([]domain.RawRecord, error) {
	params := url.Values{}
	params.Add("engine", "google_shopping")
	params.Add("q", query)
	params.Add("api_key", c.apiKey)
	params.Add("num", "20")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	body, err := c.fetch(ctx, reqURL)
	if err != nil {
		log.Printf("[GOOGLE] search failed for query %q: %v", query, err)
		return nil, err
	}

	var searchResp googleSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	records := make([]domain.RawRecord, 0, len(searchResp.ShoppingResults))
	for _, result := range searchResp.ShoppingResults {
		records = append(records, domain.RawRecord{
			Source:  domain.SourceGoogle,
			Payload: result,
		})
	}

	log.Printf("[GOOGLE] found %d results for query %q", len(records), query)
	return records, nil
}
