package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"

	"github.com/shopscout/backend/internal/domain"
)

// AmazonClient queries a Rainforest-compatible Amazon product API. Records
// from this source carry affiliate links built from the configured partner
// tag; the merger gives those links precedence.
type AmazonClient struct {
	*apiClient
	apiKey     string
	baseURL    string
	partnerTag string
}

// NewAmazonClient creates an Amazon source adapter
func NewAmazonClient(apiKey, baseURL, partnerTag string) *AmazonClient {
	return &AmazonClient{
		apiClient:  newAPIClient("AMAZON", 1, 5),
		apiKey:     apiKey,
		baseURL:    baseURL,
		partnerTag: partnerTag,
	}
}

// Source identifies this adapter's origin tag
func (c *AmazonClient) Source() domain.Source {
	return domain.SourceAmazon
}

// amazonSearchResponse is the subset of the Rainforest payload we consume
type amazonSearchResponse struct {
	SearchResults []map[string]any `json:"search_results"`
}

// Search runs a product query and returns source-shaped raw records
func (c *AmazonClient) Search(ctx context.Context, query string) ([]domain.RawRecord, error) {
	params := url.Values{}
	params.Add("type", "search")
	params.Add("search_term", query)
	params.Add("api_key", c.apiKey)
	params.Add("amazon_domain", "amazon.com")

	reqURL := fmt.Sprintf("%s/request?%s", c.baseURL, params.Encode())

	body, err := c.fetch(ctx, reqURL)
	if err != nil {
		log.Printf("[AMAZON] search failed for query %q: %v", query, err)
		return nil, err
	}

	var searchResp amazonSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	records := make([]domain.RawRecord, 0, len(searchResp.SearchResults))
	for _, result := range searchResp.SearchResults {
		c.attachAffiliateLink(result)
		records = append(records, domain.RawRecord{
			Source:  domain.SourceAmazon,
			Payload: result,
		})
	}

	log.Printf("[AMAZON] found %d results for query %q", len(records), query)
	return records, nil
}

// attachAffiliateLink derives an affiliate link from the record's ASIN and
// the configured partner tag. Records without an ASIN are left untouched.
func (c *AmazonClient) attachAffiliateLink(result map[string]any) {
	if c.partnerTag == "" {
		return
	}
	asin, ok := result["asin"].(string)
	if !ok || asin == "" {
		return
	}
	result["affiliate_link"] = fmt.Sprintf("https://www.amazon.com/dp/%s?tag=%s", asin, c.partnerTag)
}
