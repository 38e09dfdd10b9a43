package insight

import (
	"strings"
	"testing"

	"DomainWorth/internal/domain/models"
)

var testCategories = []string{"Finance", "Bots & AI", "Tech, Internet, Software"}

func TestMatchCategoryExact(t *testing.T) {
	if got := matchCategory("Finance", testCategories); got != "Finance" {
		t.Fatalf("exact match resolved to %q", got)
	}
}

func TestMatchCategoryStripsDecoration(t *testing.T) {
	cases := []string{`"Finance"`, "'Finance'", "Finance.", " Finance ", `"Finance".`}
	for _, raw := range cases {
		if got := matchCategory(raw, testCategories); got != "Finance" {
			t.Fatalf("%q resolved to %q", raw, got)
		}
	}
}

func TestMatchCategoryFuzzy(t *testing.T) {
	// Partial replies resolve through case-insensitive containment.
	if got := matchCategory("tech, internet", testCategories); got != "Tech, Internet, Software" {
		t.Fatalf("partial reply resolved to %q", got)
	}
	if got := matchCategory("The Finance category", testCategories); got != "Finance" {
		t.Fatalf("verbose reply resolved to %q", got)
	}
}

func TestMatchCategoryOutOfList(t *testing.T) {
	if got := matchCategory("Underwater Basketweaving", testCategories); got != "" {
		t.Fatalf("out-of-list reply resolved to %q", got)
	}
	if got := matchCategory("", testCategories); got != "" {
		t.Fatalf("empty reply resolved to %q", got)
	}
}

func TestClassificationPromptListsAllCategories(t *testing.T) {
	prompt := classificationPrompt("techhub.com", testCategories)
	for _, cat := range testCategories {
		if !strings.Contains(prompt, cat) {
			t.Fatalf("category %q missing from prompt", cat)
		}
	}
	if !strings.Contains(prompt, "techhub.com") {
		t.Fatalf("domain missing from prompt")
	}
}

func TestInsightPromptIncludesTopListings(t *testing.T) {
	result := models.AppraisalResult{
		Domain:   "techhub.com",
		Category: "Tech, Internet, Software",
		Reasons:  []string{"Short and memorable domain"},
		ListingComparables: []models.Comparable{
			{Domain: "techbase.com", Price: 2500},
			{Domain: "techzone.com", Price: 1800},
			{Domain: "techspot.com", Price: 1200},
		},
	}
	prompt := insightPrompt(result)
	if !strings.Contains(prompt, "techbase.com ($2500)") || !strings.Contains(prompt, "techzone.com ($1800)") {
		t.Fatalf("top listings missing from prompt: %s", prompt)
	}
	if strings.Contains(prompt, "techspot.com") {
		t.Fatalf("prompt not limited to two listings")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(ClientConfig{APIKey: "k"})
	if c.model != DefaultModel {
		t.Fatalf("model %q", c.model)
	}
	if c.classifyTimeout != defaultClassifyTimeout || c.insightTimeout != defaultInsightTimeout {
		t.Fatalf("timeouts %v %v", c.classifyTimeout, c.insightTimeout)
	}
}
