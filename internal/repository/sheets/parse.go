package sheets

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	domainPattern   = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)*\.[a-z]{2,}$`)
	nonPricePattern = regexp.MustCompile(`[^\d.,]`)
)

// saleDateLayouts are tried in order; sheet exports mix US, EU and ISO.
var saleDateLayouts = []string{"1/2/2006", "2/1/2006", "2006-01-02"}

// IsValidDomain reports whether a lowercased domain passes the structural
// check: label characters, no leading/trailing hyphen, an alphabetic TLD
// of at least two characters.
func IsValidDomain(domain string) bool {
	if domain == "" || !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, "-") || strings.HasSuffix(domain, "-") {
		return false
	}
	return domainPattern.MatchString(domain)
}

// ParsePrice normalizes a sheet price cell. Strings are stripped of
// currency symbols; a lone comma is treated as a decimal separator, a
// comma alongside a dot as a thousands separator.
func ParsePrice(v interface{}) (float64, bool) {
	switch p := v.(type) {
	case nil:
		return 0, false
	case float64:
		return p, p != 0
	case int:
		return float64(p), p != 0
	case string:
		cleaned := nonPricePattern.ReplaceAllString(p, "")
		if cleaned == "" {
			return 0, false
		}
		hasComma := strings.Contains(cleaned, ",")
		hasDot := strings.Contains(cleaned, ".")
		if hasComma && !hasDot {
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else if hasComma && hasDot {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return f, f != 0
	default:
		return ParsePrice(fmt.Sprintf("%v", v))
	}
}

// ParseSaleDate tries the known sheet layouts in order.
func ParseSaleDate(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// cellString renders any cell as a trimmed string.
func cellString(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[i]))
}

// cell returns the raw value or nil when the row is short.
func cell(row []interface{}, i int) interface{} {
	if i >= len(row) {
		return nil
	}
	return row[i]
}

// headersMatch compares the first sheet row against the expected headers.
func headersMatch(row []interface{}, expected []string) bool {
	if len(row) < len(expected) {
		return false
	}
	for i, h := range expected {
		if cellString(row, i) != h {
			return false
		}
	}
	return true
}
