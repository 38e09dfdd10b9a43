package appraisal

import (
	"strings"

	"DomainWorth/internal/domain/models"
)

// tldScores maps a top-level domain to its market desirability in [0,1].
// Unlisted TLDs fall back to 0.1.
var tldScores = map[string]float64{
	"com":  1.0,
	"ai":   0.65,
	"io":   0.6,
	"co":   0.55,
	"app":  0.5,
	"net":  0.45,
	"org":  0.4,
	"tech": 0.35,
	"og":   0.25,
	"xyz":  0.2,
	"top":  0.15,
}

const unknownTLDScore = 0.1

// highValueKeywords are terms whose presence in a name raises KeywordScore.
var highValueKeywords = []string{
	"ai", "agent", "cloud", "medic", "lean", "glitch", "content",
	"digital", "smart", "tech", "app", "crypto", "nft", "blockchain",
}

// SplitDomain splits on the last dot: "shop.co.uk" -> ("shop.co", "uk").
// A dotless input yields an empty TLD. Both parts come back lowercased.
func SplitDomain(domain string) (name, tld string) {
	d := strings.ToLower(strings.TrimSpace(domain))
	if i := strings.LastIndex(d, "."); i >= 0 {
		return d[:i], d[i+1:]
	}
	return d, ""
}

// ExtractFeatures derives the numeric profile of a domain string. Pure and
// deterministic; an empty input produces zero-valued features rather than
// an error.
func ExtractFeatures(domain string) models.DomainFeatures {
	name, tld := SplitDomain(domain)
	runes := []rune(name)
	length := len(runes)

	digits := 0
	vowels := 0
	for _, r := range runes {
		if r >= '0' && r <= '9' {
			digits++
		}
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			vowels++
		}
	}

	keywordScore := 0
	for _, kw := range highValueKeywords {
		if strings.Contains(name, kw) {
			keywordScore++
		}
	}

	score, ok := tldScores[tld]
	if !ok {
		score = unknownTLDScore
	}

	denom := length
	if denom < 1 {
		denom = 1
	}

	return models.DomainFeatures{
		Length:       length,
		TLDScore:     score,
		HasHyphen:    strings.Contains(name, "-"),
		HasDigits:    digits > 0,
		DigitCount:   digits,
		VowelRatio:   float64(vowels) / float64(denom),
		KeywordScore: keywordScore,
		IsBrandable:  length >= 5 && length <= 12 && !allDigits(runes),
		TLD:          tld,
	}
}

func allDigits(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
