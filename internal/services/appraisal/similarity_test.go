package appraisal

import (
	"math"
	"testing"
)

func TestFeatureSimilaritySelf(t *testing.T) {
	f := ExtractFeatures("techhub.com")
	if got := FeatureSimilarity(f, f); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("self similarity %v, want 1.0", got)
	}
}

func TestFeatureSimilarityBounds(t *testing.T) {
	a := ExtractFeatures("a-1.xyz")
	b := ExtractFeatures("smartcloudplatform.com")
	got := FeatureSimilarity(a, b)
	if got < 0 || got > 1 {
		t.Fatalf("similarity out of range: %v", got)
	}
}

func TestFeatureSimilaritySymmetric(t *testing.T) {
	a := ExtractFeatures("coffeebar.com")
	b := ExtractFeatures("winestore.io")
	if FeatureSimilarity(a, b) != FeatureSimilarity(b, a) {
		t.Fatalf("similarity is not symmetric")
	}
}

func TestKeywordSimilarityEmptySets(t *testing.T) {
	if got := KeywordSimilarity(nil, nil); got != 0 {
		t.Fatalf("two empty sets scored %v, want 0", got)
	}
	if got := KeywordSimilarity([]string{"ai"}, nil); got != 0 {
		t.Fatalf("one empty set scored %v, want 0", got)
	}
}

func TestKeywordSimilarityJaccard(t *testing.T) {
	a := []string{"ai", "tech"}
	b := []string{"tech", "cloud"}
	if got := KeywordSimilarity(a, b); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Fatalf("jaccard %v, want 1/3", got)
	}
	if got := KeywordSimilarity(a, a); got != 1 {
		t.Fatalf("identical sets scored %v, want 1", got)
	}
}

func TestKeywordSimilarityDuplicatesIgnored(t *testing.T) {
	a := []string{"ai", "ai", "tech"}
	b := []string{"tech", "ai"}
	if got := KeywordSimilarity(a, b); got != 1 {
		t.Fatalf("duplicate entries changed the score: %v", got)
	}
}
