package appraisal

import (
	"context"
	"errors"
	"testing"
	"time"

	"DomainWorth/internal/domain/models"
)

type stubClassifier struct {
	category string
	err      error
	calls    int
}

func (s *stubClassifier) Classify(ctx context.Context, domain string, categories []string) (string, error) {
	s.calls++
	return s.category, s.err
}

type stubModel struct {
	price float64
	err   error
}

func (s stubModel) Predict(features models.DomainFeatures) (float64, error) {
	return s.price, s.err
}

func TestEngineAppraiseComplete(t *testing.T) {
	sales := []models.SaleRecord{
		{Domain: "techspot.com", Price: 8000, Date: time.Now(), Venue: "GoDaddy"},
		{Domain: "techzone.com", Price: 6000, Date: time.Now(), Venue: "Sedo"},
	}
	listings := []models.ListingRecord{
		{Domain: "techbase.com", Price: 2500, Category: "Tech, Internet, Software"},
	}

	e := NewEngine(stubModel{price: 500})
	result := e.Appraise(context.Background(), "techhub.com", sales, listings, nil)

	if result.Domain != "techhub.com" {
		t.Fatalf("domain %q", result.Domain)
	}
	if result.Category != "Tech, Internet, Software" {
		t.Fatalf("category %q", result.Category)
	}
	if result.EstimatedPrice < MinimumPrice {
		t.Fatalf("price below floor: %v", result.EstimatedPrice)
	}
	if result.Confidence < 0.1 || result.Confidence > 0.95 {
		t.Fatalf("confidence out of bounds: %v", result.Confidence)
	}
	if len(result.Reasons) == 0 || len(result.Reasons) > 5 {
		t.Fatalf("reasons count %d", len(result.Reasons))
	}
	if len(result.SalesComparables) == 0 {
		t.Fatalf("no sales comparables")
	}
}

func TestEngineKeywordClassificationShortCircuitsAI(t *testing.T) {
	classifier := &stubClassifier{category: "Finance"}
	e := NewEngine(nil)
	result := e.Appraise(context.Background(), "techhub.com", nil, nil, classifier)

	if result.Category != "Tech, Internet, Software" {
		t.Fatalf("category %q", result.Category)
	}
	if classifier.calls != 0 {
		t.Fatalf("classifier called despite keyword match")
	}
}

func TestEngineAIClassifierFallback(t *testing.T) {
	classifier := &stubClassifier{category: "Finance"}
	e := NewEngine(nil)
	result := e.Appraise(context.Background(), "zzqqxx.com", nil, nil, classifier)

	if result.Category != "Finance" {
		t.Fatalf("category %q, want AI result", result.Category)
	}
	if classifier.calls != 1 {
		t.Fatalf("classifier calls %d", classifier.calls)
	}
}

func TestEngineClassifierErrorYieldsGeneric(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("api down")}
	e := NewEngine(nil)
	result := e.Appraise(context.Background(), "zzqqxx.com", nil, nil, classifier)

	if result.Category != models.GenericCategory {
		t.Fatalf("category %q, want generic", result.Category)
	}
}

func TestEngineNilClassifierYieldsGeneric(t *testing.T) {
	e := NewEngine(nil)
	result := e.Appraise(context.Background(), "zzqqxx.com", nil, nil, nil)
	if result.Category != models.GenericCategory {
		t.Fatalf("category %q, want generic", result.Category)
	}
}

func TestEngineModelErrorUsesFallbackBase(t *testing.T) {
	e := NewEngine(stubModel{err: errors.New("broken")})
	result := e.Appraise(context.Background(), "zzqqxx.com", nil, nil, nil)

	// No comparables: discounted fallback base, floored.
	if result.EstimatedPrice != 70 {
		t.Fatalf("price %v, want 70", result.EstimatedPrice)
	}
}

func TestEngineNilModelUsesFallbackBase(t *testing.T) {
	e := NewEngine(nil, WithFallbackBasePrice(2000))
	result := e.Appraise(context.Background(), "zzqqxx.com", nil, nil, nil)
	if result.EstimatedPrice != 1400 {
		t.Fatalf("price %v, want 1400", result.EstimatedPrice)
	}
}

func TestEngineTopKOption(t *testing.T) {
	sales := make([]models.SaleRecord, 0, 6)
	for i := 0; i < 6; i++ {
		sales = append(sales, models.SaleRecord{Domain: "techhub.com", Price: float64(1000 + i), Date: time.Now()})
	}
	e := NewEngine(nil, WithTopK(2, 2))
	result := e.Appraise(context.Background(), "techhub.com", sales, nil, nil)
	if len(result.SalesComparables) != 2 {
		t.Fatalf("topK ignored: %d comparables", len(result.SalesComparables))
	}
}
