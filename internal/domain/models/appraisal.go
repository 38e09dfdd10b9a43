package models

import "time"

// Match types for listing comparables.
const (
	MatchSameCategory    = "same_category"
	MatchKeywordCategory = "keyword_category"
)

// GenericCategory is the fallback category when neither the keyword table
// nor the AI classifier produce a match.
const GenericCategory = "Generic"

// DomainFeatures is the fixed numeric profile derived from a domain string.
// Computed purely from the name, never cached.
type DomainFeatures struct {
	Length       int     `json:"length"`
	TLDScore     float64 `json:"tld_score"`
	HasHyphen    bool    `json:"has_hyphen"`
	HasDigits    bool    `json:"has_digits"`
	DigitCount   int     `json:"digit_count"`
	VowelRatio   float64 `json:"vowel_ratio"`
	KeywordScore int     `json:"keyword_score"`
	IsBrandable  bool    `json:"is_brandable"`
	TLD          string  `json:"tld"`
}

// ValueByName returns a numeric feature by its schema name, used to build
// the ordered vector the price model expects. Unknown names map to 0.
func (f DomainFeatures) ValueByName(name string) float64 {
	switch name {
	case "length":
		return float64(f.Length)
	case "tld_score":
		return f.TLDScore
	case "has_hyphen":
		return boolToFloat(f.HasHyphen)
	case "has_digits":
		return boolToFloat(f.HasDigits)
	case "digit_count":
		return float64(f.DigitCount)
	case "vowel_ratio":
		return f.VowelRatio
	case "keyword_score":
		return float64(f.KeywordScore)
	case "is_brandable":
		return boolToFloat(f.IsBrandable)
	default:
		return 0
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// SaleRecord is a historical sale sourced from the sales sheet. Read-only
// to the appraisal core.
type SaleRecord struct {
	Domain    string    `json:"domain"`
	Price     float64   `json:"price"`
	Date      time.Time `json:"date"`
	Venue     string    `json:"venue"`
	Source    string    `json:"source_text"`
	SourceURL string    `json:"source_url"`
}

// ListingRecord is a live marketplace listing. Read-only to the core.
type ListingRecord struct {
	Domain   string  `json:"domain"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	PageURL  string  `json:"page_url"`
}

// Comparable is a sale or listing judged similar enough to inform the
// target's price. Built per request and discarded after use.
type Comparable struct {
	Domain     string  `json:"domain"`
	Price      float64 `json:"price"`
	Similarity float64 `json:"similarity"`

	// Sales pool only.
	Venue        string `json:"venue,omitempty"`
	KeywordMatch bool   `json:"keyword_match,omitempty"`

	// Listings pool only.
	Category  string `json:"category,omitempty"`
	PageURL   string `json:"page_url,omitempty"`
	MatchType string `json:"match_type,omitempty"`
}

// AppraisalResult is the complete outcome of one appraise call.
// EstimatedPrice is floored at 50 and rounded to a whole currency unit;
// Confidence always falls in [0.1, 0.95].
type AppraisalResult struct {
	Domain             string         `json:"domain"`
	EstimatedPrice     float64        `json:"estimated_price"`
	Confidence         float64        `json:"confidence"`
	Reasons            []string       `json:"reasons"`
	Category           string         `json:"category"`
	SalesComparables   []Comparable   `json:"comparables"`
	ListingComparables []Comparable   `json:"atom_listings"`
	Features           DomainFeatures `json:"features"`
}

// UsageDecision is the outcome of a daily-quota check.
type UsageDecision struct {
	Allowed   bool   `json:"allowed"`
	Remaining int    `json:"remaining"`
	ResetTime string `json:"reset_time"`
	Message   string `json:"message"`
}

// UsageStats reports a caller's consumption for the current day.
type UsageStats struct {
	TodayUsage  int     `json:"today_usage"`
	Remaining   int     `json:"remaining"`
	LastRequest *string `json:"last_request"`
	Limit       int     `json:"limit"`
}

// SalesPage is one page of the latest-sales listing, newest first.
type SalesPage struct {
	Data       []SaleRecord `json:"data"`
	Page       int          `json:"page"`
	Size       int          `json:"size"`
	TotalPages int          `json:"total_pages"`
	TotalSales int          `json:"total_sales"`
}
