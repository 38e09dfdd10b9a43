package appraisal

import (
	"sort"

	"DomainWorth/internal/domain/models"
)

const (
	// minSimilarity gates every comparable, both pools.
	minSimilarity = 0.4
	// keywordMatchBar marks a sales comparable as keyword-driven.
	keywordMatchBar = 0.6
	// crossCategoryDiscount scales phase-two listing matches.
	crossCategoryDiscount = 0.8
	// phaseTwoTrigger: expand beyond the exact category only when the
	// same-category pass finds fewer results than this.
	phaseTwoTrigger = 3

	DefaultTopK = 5
)

// FindComparableSales ranks the historical-sales pool against the target
// domain. Similarity blends the numeric profile and the keyword sets
// half-and-half; entries at or below the threshold are dropped. Malformed
// records are skipped, never fatal.
func FindComparableSales(domain string, sales []models.SaleRecord, topK int) []models.Comparable {
	targetFeatures := ExtractFeatures(domain)
	targetKeywords := ExtractKeywords(domain)

	comparables := make([]models.Comparable, 0, len(sales))
	for _, sale := range sales {
		if sale.Domain == "" || sale.Price <= 0 {
			continue
		}
		featureSim := FeatureSimilarity(targetFeatures, ExtractFeatures(sale.Domain))
		keywordSim := KeywordSimilarity(targetKeywords, ExtractKeywords(sale.Domain))
		total := 0.5*featureSim + 0.5*keywordSim
		if total <= minSimilarity {
			continue
		}
		comparables = append(comparables, models.Comparable{
			Domain:       sale.Domain,
			Price:        sale.Price,
			Similarity:   total,
			Venue:        sale.Venue,
			KeywordMatch: keywordSim > keywordMatchBar,
		})
	}

	return rankAndTruncate(comparables, topK)
}

// FindComparableListings runs the two-phase listing retrieval. Phase one
// considers only listings in the target's classified category. Phase two
// fires when phase one returns fewer than three results: it widens the
// pool to categories reachable from the target's keywords, at a similarity
// discount, excluding the exact category to avoid double counting. The
// combined set is ranked purely by similarity; phase-one entries get no
// ordering privilege beyond their scores.
func FindComparableListings(domain string, listings []models.ListingRecord, category string, topK int) []models.Comparable {
	targetFeatures := ExtractFeatures(domain)

	comparables := make([]models.Comparable, 0, topK)
	for _, listing := range listings {
		if listing.Domain == "" || listing.Price <= 0 || listing.Category != category {
			continue
		}
		sim := FeatureSimilarity(targetFeatures, ExtractFeatures(listing.Domain))
		if sim <= minSimilarity {
			continue
		}
		comparables = append(comparables, models.Comparable{
			Domain:     listing.Domain,
			Price:      listing.Price,
			Similarity: sim,
			Category:   listing.Category,
			PageURL:    listing.PageURL,
			MatchType:  models.MatchSameCategory,
		})
	}

	if len(comparables) < phaseTwoTrigger {
		reachable := CategoriesForKeywords(ExtractKeywords(domain))
		for _, listing := range listings {
			if listing.Domain == "" || listing.Price <= 0 {
				continue
			}
			if listing.Category == category || !reachable[listing.Category] {
				continue
			}
			sim := FeatureSimilarity(targetFeatures, ExtractFeatures(listing.Domain))
			if sim <= minSimilarity {
				continue
			}
			comparables = append(comparables, models.Comparable{
				Domain:     listing.Domain,
				Price:      listing.Price,
				Similarity: sim * crossCategoryDiscount,
				Category:   listing.Category,
				PageURL:    listing.PageURL,
				MatchType:  models.MatchKeywordCategory,
			})
		}
	}

	return rankAndTruncate(comparables, topK)
}

func rankAndTruncate(comparables []models.Comparable, topK int) []models.Comparable {
	sort.SliceStable(comparables, func(i, j int) bool {
		return comparables[i].Similarity > comparables[j].Similarity
	})
	if topK > 0 && len(comparables) > topK {
		comparables = comparables[:topK]
	}
	return comparables
}
