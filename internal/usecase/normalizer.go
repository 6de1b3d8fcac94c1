package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/shopscout/backend/internal/domain"
)

// Field-name aliases observed across source APIs. Resolution walks the list
// in order and takes the first present value.
var (
	titleAliases       = []string{"title", "name", "product_title", "productName"}
	descriptionAliases = []string{"description", "snippet", "product_description", "about"}
	priceAliases       = []string{"price", "extracted_price", "current_price", "salePrice"}
	origPriceAliases   = []string{"original_price", "old_price", "extracted_old_price", "listPrice"}
	currencyAliases    = []string{"currency", "currency_code", "priceCurrency"}
	imageAliases       = []string{"image", "thumbnail", "image_url", "main_image"}
	ratingAliases      = []string{"rating", "stars", "average_rating"}
	reviewAliases      = []string{"reviews", "review_count", "ratings_total", "reviewCount"}
	linkAliases        = []string{"link", "url", "product_link", "product_url"}
	affiliateAliases   = []string{"affiliate_link", "affiliateLink", "partner_link"}
	marketplaceAliases = []string{"asin", "product_id", "marketplace_id", "item_id"}
	brandAliases       = []string{"brand", "manufacturer", "brand_name"}
	categoryAliases    = []string{"category", "category_name", "department"}
	availAliases       = []string{"availability", "stock_status", "in_stock"}
	featureAliases     = []string{"features", "feature_bullets", "extensions", "highlights"}
)

// Normalizer converts raw source-shaped records into canonical Products.
// Missing or malformed fields always degrade to safe defaults; no record is
// ever dropped here.
type Normalizer struct{}

// NewNormalizer creates a normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// NormalizeAll converts a batch of raw records
func (n *Normalizer) NormalizeAll(raws []domain.RawRecord) []domain.Product {
	products := make([]domain.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, n.Normalize(raw))
	}
	return products
}

// Normalize converts one raw record into a canonical Product
func (n *Normalizer) Normalize(raw domain.RawRecord) domain.Product {
	p := domain.Product{
		ID:       uuid.NewString(),
		Source:   raw.Source,
		Features: []string{},
	}

	p.Title = stringField(raw.Payload, titleAliases)
	if p.Title == "" {
		p.Title = "Unknown Product"
	}
	p.Description = stringField(raw.Payload, descriptionAliases)
	p.Currency = stringField(raw.Payload, currencyAliases)
	p.Image = stringField(raw.Payload, imageAliases)
	p.Link = stringField(raw.Payload, linkAliases)
	p.AffiliateLink = stringField(raw.Payload, affiliateAliases)
	p.MarketplaceID = stringField(raw.Payload, marketplaceAliases)
	p.Brand = stringField(raw.Payload, brandAliases)
	p.Category = stringField(raw.Payload, categoryAliases)
	p.Availability = stringField(raw.Payload, availAliases)

	if p.Image != "" {
		p.Images = []string{p.Image}
	}

	p.Price = priceField(raw.Payload, priceAliases)
	p.OriginalPrice = priceField(raw.Payload, origPriceAliases)

	p.Rating = clampRating(numberField(raw.Payload, ratingAliases))
	if count := numberField(raw.Payload, reviewAliases); count > 0 {
		p.ReviewCount = int(count)
	}

	if features := stringSliceField(raw.Payload, featureAliases); len(features) > 0 {
		p.Features = features
	}

	if p.OriginalPrice > p.Price && p.Price > 0 {
		p.Discount = discountPercent(p.OriginalPrice, p.Price)
	} else {
		p.OriginalPrice = 0
	}

	return p
}

// discountPercent derives the integer discount percentage from an original
// and a current price. Callers must ensure original > current > 0.
func discountPercent(original, current float64) int {
	return int(math.Round((original - current) / original * 100))
}

// clampRating forces a rating into the [0,5] range, treating garbage as unknown
func clampRating(r float64) float64 {
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

// stringField resolves the first alias that holds a usable string value
func stringField(payload map[string]any, aliases []string) string {
	for _, alias := range aliases {
		switch v := payload[alias].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case bool:
			// in_stock style booleans
			if v {
				return "in_stock"
			}
			return "out_of_stock"
		}
	}
	return ""
}

// numberField resolves the first alias that parses as a number. Accepts raw
// numbers, numeric strings, and {value: n} objects.
func numberField(payload map[string]any, aliases []string) float64 {
	for _, alias := range aliases {
		if f, ok := asNumber(payload[alias]); ok {
			return f
		}
	}
	return 0
}

// priceField is numberField plus the nested listing/offer shapes some
// sources use: {"price": {"value": 12.5}}, {"offers": {"price": "12.50"}}.
func priceField(payload map[string]any, aliases []string) float64 {
	if f := numberField(payload, aliases); f > 0 {
		return f
	}
	if offers, ok := payload["offers"].(map[string]any); ok {
		if f, ok := asNumber(offers["price"]); ok && f > 0 {
			return f
		}
	}
	return 0
}

// asNumber coerces the variant shapes a price or rating can arrive in
func asNumber(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case string:
		cleaned := strings.TrimSpace(strings.TrimLeft(value, "$€£"))
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return f, true
		}
	case map[string]any:
		if inner, ok := value["value"]; ok {
			return asNumber(inner)
		}
	}
	return 0, false
}

// stringSliceField resolves the first alias holding a non-empty string list
func stringSliceField(payload map[string]any, aliases []string) []string {
	for _, alias := range aliases {
		items, ok := payload[alias].([]any)
		if !ok {
			continue
		}
		var out []string
		for _, item := range items {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
