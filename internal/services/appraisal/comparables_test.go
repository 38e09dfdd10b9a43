package appraisal

import (
	"testing"
	"time"

	"DomainWorth/internal/domain/models"
)

func sale(domain string, price float64) models.SaleRecord {
	return models.SaleRecord{Domain: domain, Price: price, Date: time.Now(), Venue: "Afternic"}
}

func TestFindComparableSalesExactMatch(t *testing.T) {
	got := FindComparableSales("techshop.com", []models.SaleRecord{sale("techshop.com", 5000)}, DefaultTopK)
	if len(got) != 1 {
		t.Fatalf("expected 1 comparable, got %d", len(got))
	}
	if got[0].Similarity != 1 {
		t.Fatalf("identical domain similarity %v, want 1", got[0].Similarity)
	}
	if !got[0].KeywordMatch {
		t.Fatalf("expected keyword match flag")
	}
	if got[0].Venue != "Afternic" {
		t.Fatalf("venue not carried over")
	}
}

func TestFindComparableSalesSkipsMalformed(t *testing.T) {
	pool := []models.SaleRecord{
		sale("", 5000),
		sale("techshop.com", 0),
		sale("techshop.com", -10),
	}
	if got := FindComparableSales("techshop.com", pool, DefaultTopK); len(got) != 0 {
		t.Fatalf("malformed records produced %d comparables", len(got))
	}
}

func TestFindComparableSalesThreshold(t *testing.T) {
	// No shared keywords and a very different profile keeps the blended
	// similarity at or below the gate.
	pool := []models.SaleRecord{sale("x-9.xyz", 20)}
	if got := FindComparableSales("smartcloud.com", pool, DefaultTopK); len(got) != 0 {
		t.Fatalf("dissimilar domain passed the gate: %+v", got)
	}
}

func TestFindComparableSalesTopK(t *testing.T) {
	pool := make([]models.SaleRecord, 0, 8)
	for i := 0; i < 8; i++ {
		pool = append(pool, sale("techshop.com", float64(1000+i)))
	}
	if got := FindComparableSales("techshop.com", pool, DefaultTopK); len(got) != DefaultTopK {
		t.Fatalf("topK not applied: %d", len(got))
	}
}

func TestFindComparableSalesRankedBySimilarity(t *testing.T) {
	pool := []models.SaleRecord{
		sale("cloudmart.com", 900),
		sale("techshop.com", 800),
	}
	got := FindComparableSales("techshop.com", pool, DefaultTopK)
	if len(got) < 2 {
		t.Fatalf("expected both comparables, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Similarity > got[i-1].Similarity {
			t.Fatalf("comparables not sorted by similarity")
		}
	}
	if got[0].Domain != "techshop.com" {
		t.Fatalf("best match %q", got[0].Domain)
	}
}

func listing(domain, category string, price float64) models.ListingRecord {
	return models.ListingRecord{Domain: domain, Category: category, Price: price, PageURL: "https://example.com/" + domain}
}

func TestFindComparableListingsSameCategory(t *testing.T) {
	pool := []models.ListingRecord{
		listing("aibot.io", "Bots & AI", 3000),
		listing("winebar.com", "Bar & Brewery", 500),
	}
	got := FindComparableListings("aihub.io", pool, "Bots & AI", DefaultTopK)
	if len(got) != 1 {
		t.Fatalf("expected 1 comparable, got %d", len(got))
	}
	if got[0].MatchType != models.MatchSameCategory {
		t.Fatalf("match type %q", got[0].MatchType)
	}
	if got[0].PageURL == "" {
		t.Fatalf("page url not carried over")
	}
}

func TestFindComparableListingsPhaseTwoDiscount(t *testing.T) {
	// No same-category listings: the keyword-reachable category is pulled
	// in at a discount.
	pool := []models.ListingRecord{
		listing("gymstore.com", "Fitness & Gym", 700),
	}
	got := FindComparableListings("fitshop.com", pool, "E-Commerce & Retail", DefaultTopK)
	if len(got) != 1 {
		t.Fatalf("phase two found %d comparables", len(got))
	}
	if got[0].MatchType != models.MatchKeywordCategory {
		t.Fatalf("match type %q", got[0].MatchType)
	}
	direct := FeatureSimilarity(ExtractFeatures("fitshop.com"), ExtractFeatures("gymstore.com"))
	if got[0].Similarity >= direct {
		t.Fatalf("phase two similarity %v not discounted from %v", got[0].Similarity, direct)
	}
}

func TestFindComparableListingsPhaseTwoSuppressed(t *testing.T) {
	// Three same-category hits keep the retrieval in phase one.
	pool := []models.ListingRecord{
		listing("buystore.com", "E-Commerce & Retail", 400),
		listing("shopmart.com", "E-Commerce & Retail", 450),
		listing("dealcart.com", "E-Commerce & Retail", 500),
		listing("gymstore.com", "Fitness & Gym", 700),
	}
	got := FindComparableListings("fitshop.com", pool, "E-Commerce & Retail", DefaultTopK)
	if len(got) != 3 {
		t.Fatalf("expected 3 comparables, got %d", len(got))
	}
	for _, c := range got {
		if c.MatchType != models.MatchSameCategory {
			t.Fatalf("phase two fired despite enough phase-one matches: %+v", c)
		}
	}
}

func TestFindComparableListingsUnreachableCategoryExcluded(t *testing.T) {
	pool := []models.ListingRecord{
		listing("winebar.com", "Bar & Brewery", 600),
	}
	if got := FindComparableListings("fitshop.com", pool, "E-Commerce & Retail", DefaultTopK); len(got) != 0 {
		t.Fatalf("keyword-unreachable category included: %+v", got)
	}
}
