package usecase

import (
	"sort"

	"github.com/shopscout/backend/internal/domain"
)

// Scoring weights and caps
const (
	ratingWeight     = 20.0
	reviewCountCap   = 10.0
	featureWeight    = 2.0
	featureScoreCap  = 10.0
	budgetTierBonus  = 5.0 // price < 100
	midTierBonus     = 3.0 // price < 300
	affiliateBonus   = 5.0 // amazon source carrying an affiliate link
	budgetTierCutoff = 100.0
	midTierCutoff    = 300.0
)

// Scorer computes a composite desirability score per product and orders the
// final list by it.
type Scorer struct{}

// NewScorer creates a scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Rank sorts products by descending score. The sort is stable so ties retain
// their relative input order.
func (s *Scorer) Rank(products []domain.Product) []domain.Product {
	sort.SliceStable(products, func(i, j int) bool {
		return s.Score(products[i]) > s.Score(products[j])
	})
	return products
}

// Score computes the desirability score:
// rating*20 + min(reviews/100, 10) + discount/2 + min(features*2, 10)
// + price-tier bonus + affiliate source bonus.
func (s *Scorer) Score(p domain.Product) float64 {
	score := p.Rating * ratingWeight

	reviewScore := float64(p.ReviewCount) / 100
	if reviewScore > reviewCountCap {
		reviewScore = reviewCountCap
	}
	score += reviewScore

	score += float64(p.Discount) / 2

	featureScore := float64(len(p.Features)) * featureWeight
	if featureScore > featureScoreCap {
		featureScore = featureScoreCap
	}
	score += featureScore

	score += priceTierBonus(p.Price)

	if p.Source == domain.SourceAmazon && p.AffiliateLink != "" {
		score += affiliateBonus
	}

	return score
}

// priceTierBonus rewards cheaper products: +5 under 100, +3 under 300
func priceTierBonus(price float64) float64 {
	switch {
	case price < budgetTierCutoff:
		return budgetTierBonus
	case price < midTierCutoff:
		return midTierBonus
	default:
		return 0
	}
}
