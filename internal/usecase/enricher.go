package usecase

import (
	"fmt"

	"github.com/shopscout/backend/internal/domain"
)

// Enricher rule cutoffs
const (
	prosRatingFloor    = 4.5
	prosReviewFloor    = 1000
	prosDiscountFloor  = 15
	prosFeatureFloor   = 5
	consRatingCeil     = 3.5
	consReviewCeil     = 100
	consPriceFloor     = 500
	consDiscountCeil   = 5
	consFeatureCeil    = 3
	promoDiscountFloor = 10
)

// Enricher fills in missing pros/cons and promotional feature tags using
// deterministic rules over existing fields. All rules are evaluated in a
// fixed order; there is no early exit.
type Enricher struct{}

// NewEnricher creates an enricher
func NewEnricher() *Enricher {
	return &Enricher{}
}

// EnrichAll enriches every product in place
func (e *Enricher) EnrichAll(products []domain.Product) []domain.Product {
	for i := range products {
		products[i] = e.Enrich(products[i])
	}
	return products
}

// Enrich synthesizes pros/cons for products lacking them and prepends
// promotional feature tags. Tag insertion is order-sensitive: the discount
// check runs first, so "Top Rated" ends up ahead of the discount tag when
// both apply.
func (e *Enricher) Enrich(p domain.Product) domain.Product {
	if len(p.Pros) == 0 {
		p.Pros = buildPros(p)
	}
	if len(p.Cons) == 0 {
		p.Cons = buildCons(p)
	}

	if p.Discount > promoDiscountFloor {
		p.Features = append([]string{fmt.Sprintf("%d%% OFF", p.Discount)}, p.Features...)
	}
	if p.Rating >= prosRatingFloor && p.ReviewCount > prosReviewFloor {
		p.Features = append([]string{"Top Rated"}, p.Features...)
	}

	return p
}

func buildPros(p domain.Product) []string {
	var pros []string
	if p.Rating >= prosRatingFloor {
		pros = append(pros, "Highly rated by customers")
	}
	if p.ReviewCount > prosReviewFloor {
		pros = append(pros, "Extensively reviewed")
	}
	if p.Discount > prosDiscountFloor {
		pros = append(pros, fmt.Sprintf("Great value with %d%% discount", p.Discount))
	}
	if len(p.Features) > prosFeatureFloor {
		pros = append(pros, "Feature-rich")
	}
	if p.Brand != "" {
		pros = append(pros, fmt.Sprintf("Trusted %s brand", p.Brand))
	}
	if len(pros) == 0 {
		pros = append(pros, "Solid overall choice")
	}
	return pros
}

func buildCons(p domain.Product) []string {
	var cons []string
	if p.Rating > 0 && p.Rating < consRatingCeil {
		cons = append(cons, "Mixed customer reviews")
	}
	if p.ReviewCount > 0 && p.ReviewCount < consReviewCeil {
		cons = append(cons, "Limited customer feedback")
	}
	if p.Price > consPriceFloor {
		cons = append(cons, "Premium pricing")
	}
	if p.Discount < consDiscountCeil {
		cons = append(cons, "No significant discount")
	}
	if len(p.Features) < consFeatureCeil {
		cons = append(cons, "Basic feature set")
	}
	if len(cons) == 0 {
		cons = append(cons, "Few notable drawbacks")
	}
	return cons
}
