package usecase

import "github.com/shopscout/backend/internal/domain"

// mergeProducts combines two records already judged to be the same physical
// item. The first argument is the base; fields from other overwrite it only
// per the rules below. Order of arguments matters for tie-breaks, so callers
// must always pass the current representative first.
func mergeProducts(base, other domain.Product) domain.Product {
	merged := base

	// Rating: fill when missing, otherwise average and keep the larger
	// review count as evidence.
	if base.Rating == 0 && other.Rating > 0 {
		merged.Rating = other.Rating
		if other.ReviewCount > merged.ReviewCount {
			merged.ReviewCount = other.ReviewCount
		}
	} else if base.Rating > 0 && other.Rating > 0 {
		merged.Rating = (base.Rating + other.Rating) / 2
		if other.ReviewCount > merged.ReviewCount {
			merged.ReviewCount = other.ReviewCount
		}
	}

	// Features: union with set semantics, but only replace the base list
	// when the other list is strictly longer than the base's pre-merge list.
	if len(other.Features) > len(base.Features) {
		merged.Features = unionStrings(base.Features, other.Features)
	}

	if base.Description == "" {
		merged.Description = other.Description
	}

	merged.Images = unionStrings(base.Images, other.Images)

	// Amazon affiliate data wins regardless of arrival order
	if other.Source == domain.SourceAmazon && other.AffiliateLink != "" {
		merged.AffiliateLink = other.AffiliateLink
		merged.MarketplaceID = other.MarketplaceID
	}

	// Keep the cheaper offer's pricing triple atomically. A base price of 0
	// means unknown and is fillable; price ties keep the first-seen record.
	if other.Price > 0 && (base.Price == 0 || other.Price < base.Price) {
		merged.Price = other.Price
		merged.OriginalPrice = other.OriginalPrice
		merged.Discount = other.Discount
	}

	return merged
}

// unionStrings appends items from b not already present in a, preserving
// insertion order and dropping duplicates.
func unionStrings(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return a
	}

	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, lists := range [][]string{a, b} {
		for _, s := range lists {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
