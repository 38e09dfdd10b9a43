package appraisal

import (
	"context"

	"DomainWorth/internal/domain/models"
	domsvc "DomainWorth/internal/domain/service"
	xlogger "DomainWorth/pkg/logger"
)

// Engine composes feature extraction, classification, comparable retrieval
// and price blending into one appraise call. It is pure computation over
// the pools it is handed: no I/O, no mutation of inputs, safe for
// concurrent use. The price model and classifier are optional
// collaborators whose failures always degrade to documented fallbacks.
type Engine struct {
	model        domsvc.PriceModel
	fallbackBase float64
	topKSales    int
	topKListings int
	log          *xlogger.Logger
}

type EngineOption func(*Engine)

func NewEngine(model domsvc.PriceModel, opts ...EngineOption) *Engine {
	e := &Engine{
		model:        model,
		fallbackBase: FallbackBasePrice,
		topKSales:    DefaultTopK,
		topKListings: DefaultTopK,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithFallbackBasePrice overrides the constant used when the model is
// absent or errors.
func WithFallbackBasePrice(price float64) EngineOption {
	return func(e *Engine) { e.fallbackBase = price }
}

// WithTopK narrows how many comparables each pool may contribute.
func WithTopK(sales, listings int) EngineOption {
	return func(e *Engine) {
		e.topKSales = sales
		e.topKListings = listings
	}
}

func WithLogger(log *xlogger.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// Appraise runs the full pipeline for one domain. The classifier may be
// nil; classification then relies on the keyword table alone. The returned
// result is always complete: every failure path resolves into data
// (fallback category, fallback base price, fewer reasons), never an error.
func (e *Engine) Appraise(ctx context.Context, domain string, sales []models.SaleRecord, listings []models.ListingRecord, classifier domsvc.Classifier) models.AppraisalResult {
	features := ExtractFeatures(domain)
	category := e.classify(ctx, domain, classifier)

	salesComparables := FindComparableSales(domain, sales, e.topKSales)
	listingComparables := FindComparableListings(domain, listings, category, e.topKListings)

	basePrice := e.basePrice(features)
	finalPrice := BlendPrice(basePrice, salesComparables, listingComparables)
	confidence := Confidence(salesComparables, listingComparables)
	reasons := Reasons(features, salesComparables, listingComparables, category)

	return models.AppraisalResult{
		Domain:             domain,
		EstimatedPrice:     finalPrice,
		Confidence:         confidence,
		Reasons:            reasons,
		Category:           category,
		SalesComparables:   salesComparables,
		ListingComparables: listingComparables,
		Features:           features,
	}
}

// classify tries the keyword table first, then the AI collaborator with
// the closed category list. Both failing yields the generic category.
func (e *Engine) classify(ctx context.Context, domain string, classifier domsvc.Classifier) string {
	if category := ClassifyByKeywords(domain); category != "" {
		return category
	}
	if classifier != nil {
		category, err := classifier.Classify(ctx, domain, Categories)
		if err != nil {
			if e.log != nil {
				e.log.Warn("ai classification failed", xlogger.String("domain", domain), xlogger.Error(err))
			}
		} else if category != "" && category != models.GenericCategory {
			return category
		}
	}
	return models.GenericCategory
}

func (e *Engine) basePrice(features models.DomainFeatures) float64 {
	if e.model == nil {
		return e.fallbackBase
	}
	price, err := e.model.Predict(features)
	if err != nil {
		if e.log != nil {
			e.log.Warn("price model predict failed", xlogger.Error(err))
		}
		return e.fallbackBase
	}
	return price
}
