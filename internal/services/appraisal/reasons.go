package appraisal

import (
	"fmt"
	"math"
	"strconv"

	"DomainWorth/internal/domain/models"
)

const maxReasons = 5

// Reasons builds the ranked justification list, capped at five entries.
// Feature-derived reasons come first, then the best comparable from each
// pool. For listings a same-category match is preferred over a
// keyword-category one.
func Reasons(features models.DomainFeatures, sales, listings []models.Comparable, category string) []string {
	reasons := make([]string, 0, maxReasons)

	if features.KeywordScore > 0 {
		reasons = append(reasons, "Contains high-value keywords")
	}
	if features.Length <= 8 {
		reasons = append(reasons, "Short and memorable domain")
	} else if features.Length <= 12 {
		reasons = append(reasons, "Good domain length")
	}
	if features.TLDScore >= 0.6 {
		reasons = append(reasons, "Premium TLD extension")
	}
	if !features.HasHyphen {
		reasons = append(reasons, "No hyphens (better for branding)")
	}
	if !features.HasDigits {
		reasons = append(reasons, "No numbers (clearer brand identity)")
	}
	if features.IsBrandable {
		reasons = append(reasons, "High brandability potential")
	}

	if len(sales) > 0 {
		best := sales[0]
		reasons = append(reasons, fmt.Sprintf("Similar to %s (sold for $%s)", best.Domain, formatPrice(best.Price)))
	}

	if len(listings) > 0 {
		best := listings[0]
		sameCategory := false
		for _, l := range listings {
			if l.MatchType == models.MatchSameCategory {
				best = l
				sameCategory = true
				break
			}
		}
		if sameCategory {
			reasons = append(reasons, fmt.Sprintf("Listed in '%s' category on Atom (similar to %s)", category, best.Domain))
		} else {
			reasons = append(reasons, fmt.Sprintf("Similar to %s in related category on Atom", best.Domain))
		}
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// formatPrice renders a whole-dollar amount with thousands separators.
func formatPrice(price float64) string {
	s := strconv.FormatInt(int64(math.Round(price)), 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
