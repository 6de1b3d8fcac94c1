package usecase

import (
	"strings"

	"github.com/shopscout/backend/internal/domain"
)

// similarityThreshold is the fixed Jaccard cutoff above which two titles are
// treated as the same physical product. Not configurable.
const similarityThreshold = 0.8

// TitleMatcher judges product identity by Jaccard similarity of lower-cased
// title word sets. It is the default domain.ProductMatcher.
type TitleMatcher struct{}

// NewTitleMatcher creates the default title-similarity matcher
func NewTitleMatcher() *TitleMatcher {
	return &TitleMatcher{}
}

// SameProduct reports whether the two products' titles are similar enough to
// be considered the same item. Full containment of one title's word set in
// the other also counts: a shorter listing title is routinely a prefix of a
// longer one for the same item ("... XM5" vs "... XM5 Wireless").
func (m *TitleMatcher) SameProduct(a, b domain.Product) bool {
	setA := tokenSet(a.Title)
	setB := tokenSet(b.Title)
	if len(setA) == 0 || len(setB) == 0 {
		return false
	}
	return jaccard(setA, setB) >= similarityThreshold || subset(setA, setB) || subset(setB, setA)
}

// titleSimilarity computes Jaccard similarity (intersection / union) over
// whitespace-delimited lower-cased title tokens.
func titleSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	return jaccard(setA, setB)
}

func jaccard(setA, setB map[string]bool) float64 {
	intersection := 0
	for token := range setA {
		if setB[token] {
			intersection++
		}
	}

	union := len(setB)
	for token := range setA {
		if !setB[token] {
			union++
		}
	}

	return float64(intersection) / float64(union)
}

// subset reports whether every token of a appears in b
func subset(a, b map[string]bool) bool {
	for token := range a {
		if !b[token] {
			return false
		}
	}
	return true
}

// tokenSet splits a title into a set of lower-cased whitespace tokens
func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(s)) {
		set[word] = true
	}
	return set
}
