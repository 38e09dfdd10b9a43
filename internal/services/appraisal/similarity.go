package appraisal

import (
	"math"

	"DomainWorth/internal/domain/models"
)

// similarityWeights fixes which features contribute to the numeric
// similarity and by how much. The weights sum to 1.0; DigitCount and the
// TLD string itself are deliberately excluded.
var similarityWeights = []struct {
	Name   string
	Weight float64
	Value  func(models.DomainFeatures) float64
}{
	{"length", 0.20, func(f models.DomainFeatures) float64 { return f.ValueByName("length") }},
	{"tld_score", 0.15, func(f models.DomainFeatures) float64 { return f.ValueByName("tld_score") }},
	{"has_hyphen", 0.10, func(f models.DomainFeatures) float64 { return f.ValueByName("has_hyphen") }},
	{"has_digits", 0.10, func(f models.DomainFeatures) float64 { return f.ValueByName("has_digits") }},
	{"keyword_score", 0.20, func(f models.DomainFeatures) float64 { return f.ValueByName("keyword_score") }},
	{"vowel_ratio", 0.15, func(f models.DomainFeatures) float64 { return f.ValueByName("vowel_ratio") }},
	{"is_brandable", 0.10, func(f models.DomainFeatures) float64 { return f.ValueByName("is_brandable") }},
}

// FeatureSimilarity scores two feature vectors in [0,1]. Each weighted
// field contributes 1 - |v1-v2|/max(|v1|,|v2|,1); the weighted sum is
// normalized by the weight actually applied. Identical vectors score 1.
func FeatureSimilarity(a, b models.DomainFeatures) float64 {
	sim := 0.0
	totalWeight := 0.0
	for _, w := range similarityWeights {
		v1 := w.Value(a)
		v2 := w.Value(b)
		maxVal := math.Max(math.Max(math.Abs(v1), math.Abs(v2)), 1)
		diff := math.Abs(v1-v2) / maxVal
		sim += w.Weight * (1 - diff)
		totalWeight += w.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return clamp01(sim / totalWeight)
}

// KeywordSimilarity is the Jaccard index over two keyword sets. Two empty
// sets score 0, not 1: a pair of keyword-less domains carries no signal
// and must not look like a perfect match.
func KeywordSimilarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]bool, len(a))
	for _, k := range a {
		setA[k] = true
	}
	setB := make(map[string]bool, len(b))
	for _, k := range b {
		setB[k] = true
	}
	intersection := 0
	for k := range setA {
		if setB[k] {
			intersection++
		}
	}
	union := len(setB)
	for k := range setA {
		if !setB[k] {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
