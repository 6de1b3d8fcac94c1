package domain

// Source identifies the origin system a raw record came from
type Source string

const (
	SourceGoogle Source = "google"
	SourceAmazon Source = "amazon"
)

// Product is the canonical normalized representation of a purchasable item
// from any source. IDs are unique within a single aggregation call only.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency,omitempty"`
	Image         string   `json:"image,omitempty"`
	Images        []string `json:"images,omitempty"`
	Rating        float64  `json:"rating"` // 0-5, 0 means unknown
	ReviewCount   int      `json:"reviewCount"`
	Features      []string `json:"features"`
	Pros          []string `json:"pros,omitempty"`
	Cons          []string `json:"cons,omitempty"`
	Source        Source   `json:"source"`
	Link          string   `json:"link,omitempty"`
	AffiliateLink string   `json:"affiliateLink,omitempty"`
	MarketplaceID string   `json:"marketplaceId,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	Category      string   `json:"category,omitempty"`
	Availability  string   `json:"availability,omitempty"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Discount      int      `json:"discount,omitempty"` // integer percent 0-100
}

// BudgetRange bounds acceptable prices in user preferences
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// UserPreferences captures what the user cares about when comparing products
type UserPreferences struct {
	Priorities       []string     `json:"priorities,omitempty"`
	Budget           *BudgetRange `json:"budget,omitempty"`
	RequiredFeatures []string     `json:"requiredFeatures,omitempty"`
}

// SearchRequest represents a product search request
type SearchRequest struct {
	Query       string          `json:"query" binding:"required"`
	Preferences UserPreferences `json:"preferences"`
	MaxResults  int             `json:"maxResults,omitempty"`
}

// SearchResult is the full outcome of one search: the ranked product list
// plus the comparison report, with a flag for cache-served responses.
type SearchResult struct {
	Query    string            `json:"query"`
	Products []Product         `json:"products"`
	Report   *ComparisonReport `json:"report,omitempty"`
	Cached   bool              `json:"cached"`
}

// Recommendation is a per-product entry in the comparison report
type Recommendation struct {
	ProductID string   `json:"productId"`
	Title     string   `json:"title"`
	Verdict   string   `json:"verdict"`
	Reasons   []string `json:"reasons,omitempty"`
}

// ComparisonReport is the structured report produced by the analysis
// generator, or by the deterministic fallback when generation fails.
type ComparisonReport struct {
	Summary         string           `json:"summary"`
	BestOverall     string           `json:"bestOverall,omitempty"`
	BestValue       string           `json:"bestValue,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Generated       bool             `json:"generated"` // false for the fallback report
}
