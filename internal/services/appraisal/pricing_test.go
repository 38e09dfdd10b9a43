package appraisal

import (
	"math"
	"testing"

	"DomainWorth/internal/domain/models"
)

func comp(price, sim float64) models.Comparable {
	return models.Comparable{Domain: "x.com", Price: price, Similarity: sim}
}

func TestBlendPriceFloor(t *testing.T) {
	if got := BlendPrice(10, nil, nil); got != MinimumPrice {
		t.Fatalf("price %v, want floor %v", got, float64(MinimumPrice))
	}
}

func TestBlendPriceNoComparables(t *testing.T) {
	if got := BlendPrice(1000, nil, nil); got != 700 {
		t.Fatalf("discounted base %v, want 700", got)
	}
}

func TestBlendPriceSalesOnly(t *testing.T) {
	got := BlendPrice(100, []models.Comparable{comp(10000, 1)}, nil)
	if got != 7030 {
		t.Fatalf("sales blend %v, want 7030", got)
	}
}

func TestBlendPriceListingsOnly(t *testing.T) {
	got := BlendPrice(100, nil, []models.Comparable{comp(2000, 1)})
	if got != 1050 {
		t.Fatalf("listings blend %v, want 1050", got)
	}
}

func TestBlendPriceBothPools(t *testing.T) {
	sales := []models.Comparable{comp(10000, 0.8)}
	listings := []models.Comparable{comp(2000, 0.4)}
	// quality weights 2/3 and 1/3
	want := math.Round(10000*(2.0/3.0)*0.7 + 2000*(1.0/3.0)*0.5 + 100*0.3)
	if got := BlendPrice(100, sales, listings); got != want {
		t.Fatalf("dual blend %v, want %v", got, want)
	}
}

func TestBlendPriceAlwaysWholeDollars(t *testing.T) {
	got := BlendPrice(333.333, []models.Comparable{comp(777.77, 0.9)}, nil)
	if got != math.Trunc(got) {
		t.Fatalf("price not rounded: %v", got)
	}
	if got < MinimumPrice {
		t.Fatalf("price below floor: %v", got)
	}
}

func TestConfidenceBaseline(t *testing.T) {
	if got := Confidence(nil, nil); got != 0.3 {
		t.Fatalf("baseline confidence %v, want 0.3", got)
	}
}

func TestConfidenceSalesOnly(t *testing.T) {
	if got := Confidence([]models.Comparable{comp(1, 1)}, nil); got != 0.6 {
		t.Fatalf("sales confidence %v, want 0.6", got)
	}
}

func TestConfidenceBothPools(t *testing.T) {
	got := Confidence([]models.Comparable{comp(1, 1)}, []models.Comparable{comp(1, 1)})
	if got != 0.9 {
		t.Fatalf("dual confidence %v, want 0.9", got)
	}
}

func TestConfidenceRounding(t *testing.T) {
	got := Confidence([]models.Comparable{comp(1, 0.777)}, nil)
	if got != 0.53 {
		t.Fatalf("rounded confidence %v, want 0.53", got)
	}
}

func TestConfidenceBounds(t *testing.T) {
	sales := []models.Comparable{comp(1, 1), comp(1, 1)}
	listings := []models.Comparable{comp(1, 1)}
	got := Confidence(sales, listings)
	if got < 0.1 || got > 0.95 {
		t.Fatalf("confidence out of bounds: %v", got)
	}
}
