package usecase

import (
	"testing"

	"github.com/shopscout/backend/internal/domain"
)

func TestScore_Components(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		name string
		p    domain.Product
		want float64
	}{
		{
			name: "rating only",
			p:    domain.Product{Rating: 4.0, Price: 1000},
			want: 80,
		},
		{
			name: "review count capped at 10",
			p:    domain.Product{ReviewCount: 50000, Price: 1000},
			want: 10,
		},
		{
			name: "discount halved",
			p:    domain.Product{Discount: 30, Price: 1000},
			want: 15,
		},
		{
			name: "feature score capped at 10",
			p:    domain.Product{Features: []string{"a", "b", "c", "d", "e", "f", "g"}, Price: 1000},
			want: 10,
		},
		{
			name: "budget tier bonus",
			p:    domain.Product{Price: 50},
			want: 5,
		},
		{
			name: "mid tier bonus",
			p:    domain.Product{Price: 250},
			want: 3,
		},
		{
			name: "affiliate bonus needs both source and link",
			p:    domain.Product{Source: domain.SourceAmazon, AffiliateLink: "aff://x", Price: 1000},
			want: 5,
		},
		{
			name: "amazon without affiliate link gets no bonus",
			p:    domain.Product{Source: domain.SourceAmazon, Price: 1000},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.p); got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_Monotonicity(t *testing.T) {
	s := NewScorer()

	t.Run("higher rating strictly increases score", func(t *testing.T) {
		base := domain.Product{Rating: 3.0, ReviewCount: 500, Price: 150}
		better := base
		better.Rating = 4.0

		if s.Score(better) <= s.Score(base) {
			t.Errorf("Score(rating 4.0) = %v, want > Score(rating 3.0) = %v",
				s.Score(better), s.Score(base))
		}
	})

	t.Run("higher price never increases tier bonus", func(t *testing.T) {
		if priceTierBonus(500) > priceTierBonus(50) {
			t.Errorf("priceTierBonus(500) = %v > priceTierBonus(50) = %v",
				priceTierBonus(500), priceTierBonus(50))
		}
		if priceTierBonus(500) != 0 {
			t.Errorf("priceTierBonus(500) = %v, want 0", priceTierBonus(500))
		}
	})
}

func TestRank(t *testing.T) {
	s := NewScorer()

	t.Run("orders by descending score", func(t *testing.T) {
		products := []domain.Product{
			{ID: "low", Rating: 2.0, Price: 1000},
			{ID: "high", Rating: 5.0, Price: 50},
			{ID: "mid", Rating: 3.5, Price: 200},
		}

		ranked := s.Rank(products)
		if ranked[0].ID != "high" || ranked[1].ID != "mid" || ranked[2].ID != "low" {
			t.Errorf("order = [%s %s %s], want [high mid low]", ranked[0].ID, ranked[1].ID, ranked[2].ID)
		}
	})

	t.Run("ties retain relative input order", func(t *testing.T) {
		products := []domain.Product{
			{ID: "first", Rating: 4.0, Price: 50},
			{ID: "second", Rating: 4.0, Price: 50},
			{ID: "third", Rating: 4.0, Price: 50},
		}

		ranked := s.Rank(products)
		if ranked[0].ID != "first" || ranked[1].ID != "second" || ranked[2].ID != "third" {
			t.Errorf("tie order = [%s %s %s], want input order preserved",
				ranked[0].ID, ranked[1].ID, ranked[2].ID)
		}
	})
}
