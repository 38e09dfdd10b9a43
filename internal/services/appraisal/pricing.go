package appraisal

import (
	"math"

	"DomainWorth/internal/domain/models"
)

const (
	// MinimumPrice is the floor on every estimate, in whole dollars.
	MinimumPrice = 50

	// FallbackBasePrice is used when no price model is available.
	FallbackBasePrice = 100.0
)

// BlendPrice merges the model's base prediction with both comparable
// pools. Sales history is trusted more than live asks, so the three fixed
// coefficients (0.7 sales, 0.5 listings, 0.3 base) deliberately do not sum
// to 1 when all sources are present. With no comparables at all the base
// prediction is discounted to 70%. The result is floored at MinimumPrice
// and rounded to a whole dollar.
func BlendPrice(basePrice float64, sales, listings []models.Comparable) float64 {
	var finalPrice float64

	switch {
	case len(sales) > 0 && len(listings) > 0:
		salesAvg := weightedAveragePrice(sales)
		listingsAvg := weightedAveragePrice(listings)

		salesQuality := meanSimilarity(sales)
		listingsQuality := meanSimilarity(listings)
		totalQuality := salesQuality + listingsQuality
		salesWeight := salesQuality / totalQuality
		listingsWeight := listingsQuality / totalQuality

		finalPrice = salesAvg*salesWeight*0.7 + listingsAvg*listingsWeight*0.5 + basePrice*0.3

	case len(sales) > 0:
		finalPrice = 0.7*weightedAveragePrice(sales) + 0.3*basePrice

	case len(listings) > 0:
		finalPrice = 0.5*weightedAveragePrice(listings) + 0.5*basePrice

	default:
		finalPrice = basePrice * 0.7
	}

	return math.Max(MinimumPrice, math.Round(finalPrice))
}

// Confidence scores how much the comparables back the estimate:
// 0.3 base, up to 0.3 from sales similarity, up to 0.2 from listing
// similarity, plus 0.1 when both pools contributed. Clamped to
// [0.1, 0.95] and rounded to two decimals.
func Confidence(sales, listings []models.Comparable) float64 {
	c := 0.3
	if len(sales) > 0 {
		c += 0.3 * meanSimilarity(sales)
	}
	if len(listings) > 0 {
		c += 0.2 * meanSimilarity(listings)
	}
	if len(sales) > 0 && len(listings) > 0 {
		c += 0.1
	}
	c = math.Round(c*100) / 100
	return math.Min(0.95, math.Max(0.1, c))
}

// weightedAveragePrice computes sum(price*similarity)/sum(similarity).
func weightedAveragePrice(comparables []models.Comparable) float64 {
	var priceSum, simSum float64
	for _, c := range comparables {
		priceSum += c.Price * c.Similarity
		simSum += c.Similarity
	}
	if simSum == 0 {
		return 0
	}
	return priceSum / simSum
}

func meanSimilarity(comparables []models.Comparable) float64 {
	if len(comparables) == 0 {
		return 0
	}
	var sum float64
	for _, c := range comparables {
		sum += c.Similarity
	}
	return sum / float64(len(comparables))
}
