package usecase

import (
	"testing"

	"github.com/shopscout/backend/internal/domain"
)

func TestTitleSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical titles",
			a:    "Sony Headphones XM5",
			b:    "Sony Headphones XM5",
			want: 1.0,
		},
		{
			name: "case insensitive",
			a:    "SONY HEADPHONES",
			b:    "sony headphones",
			want: 1.0,
		},
		{
			name: "no overlap",
			a:    "Sony Headphones",
			b:    "Apple Watch",
			want: 0,
		},
		{
			name: "empty title",
			a:    "",
			b:    "Sony Headphones",
			want: 0,
		},
		{
			name: "partial overlap",
			a:    "sony headphones xm5",
			b:    "sony headphones xm5 wireless",
			want: 0.75, // 3 shared / 4 union
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titleSimilarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("titleSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTitleMatcher_SameProduct(t *testing.T) {
	matcher := NewTitleMatcher()

	t.Run("matches above threshold", func(t *testing.T) {
		a := domain.Product{Title: "Sony WH-1000XM5 Wireless Headphones Black"}
		b := domain.Product{Title: "Sony WH-1000XM5 Wireless Headphones"}
		if !matcher.SameProduct(a, b) {
			t.Error("SameProduct() = false, want true for 4/5 token overlap")
		}
	})

	t.Run("rejects different products", func(t *testing.T) {
		a := domain.Product{Title: "Sony Headphones XM5"}
		b := domain.Product{Title: "Bose Headphones QC45 Wireless"}
		if matcher.SameProduct(a, b) {
			t.Error("SameProduct() = true, want false for 1/6 token overlap")
		}
	})

	t.Run("matches when shorter title is contained in longer", func(t *testing.T) {
		a := domain.Product{Title: "Sony Headphones XM5"}
		b := domain.Product{Title: "Sony Headphones XM5 Wireless"}
		if !matcher.SameProduct(a, b) {
			t.Error("SameProduct() = false, want true for contained title")
		}
	})

	t.Run("threshold boundary is inclusive", func(t *testing.T) {
		// 4 shared tokens out of 5 union = exactly 0.8
		a := domain.Product{Title: "alpha beta gamma delta"}
		b := domain.Product{Title: "alpha beta gamma delta epsilon"}
		if !matcher.SameProduct(a, b) {
			t.Error("SameProduct() = false, want true at similarity exactly 0.8")
		}
	})
}
