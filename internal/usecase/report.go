package usecase

import (
	"fmt"
	"strings"

	"github.com/shopscout/backend/internal/domain"
)

// buildFallbackReport assembles a comparison report from the ranked list
// alone, used whenever the analysis generator is unavailable or fails. It is
// fully deterministic over its inputs.
func buildFallbackReport(products []domain.Product, prefs domain.UserPreferences) *domain.ComparisonReport {
	if len(products) == 0 {
		return &domain.ComparisonReport{Summary: "No products available to compare."}
	}

	report := &domain.ComparisonReport{
		Summary:     fallbackSummary(products, prefs),
		BestOverall: products[0].Title,
		BestValue:   bestValuePick(products).Title,
	}

	for _, p := range products {
		report.Recommendations = append(report.Recommendations, domain.Recommendation{
			ProductID: p.ID,
			Title:     p.Title,
			Verdict:   fallbackVerdict(p),
			Reasons:   p.Pros,
		})
	}

	return report
}

func fallbackSummary(products []domain.Product, prefs domain.UserPreferences) string {
	summary := fmt.Sprintf("Compared %d products across sources. %q ranks highest overall.",
		len(products), products[0].Title)
	if len(prefs.Priorities) > 0 {
		summary += fmt.Sprintf(" Ranking weighted for: %s.", strings.Join(prefs.Priorities, ", "))
	}
	return summary
}

// bestValuePick returns the cheapest well-rated product, falling back to the
// cheapest overall when nothing is rated 4.0 or above.
func bestValuePick(products []domain.Product) domain.Product {
	best := products[0]
	bestRated := false
	for _, p := range products {
		if p.Price <= 0 {
			continue
		}
		wellRated := p.Rating >= 4.0
		switch {
		case wellRated && !bestRated:
			best = p
			bestRated = true
		case wellRated == bestRated && (best.Price <= 0 || p.Price < best.Price):
			best = p
		}
	}
	return best
}

func fallbackVerdict(p domain.Product) string {
	switch {
	case p.Rating >= 4.5:
		return "Excellent choice with outstanding customer feedback"
	case p.Rating >= 4.0:
		return "Strong option with positive reviews"
	case p.Rating > 0:
		return "Consider carefully; reviews are mixed"
	default:
		return "Limited review data available"
	}
}
