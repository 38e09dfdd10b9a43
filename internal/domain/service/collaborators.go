package service

import (
	"context"

	"DomainWorth/internal/domain/models"
)

// Classifier assigns a category from a closed list to a domain name.
// An empty category means no confident match; callers fall back to
// models.GenericCategory. Implementations must bound their own work with
// the supplied context.
type Classifier interface {
	Classify(ctx context.Context, domain string, categories []string) (string, error)
}

// InsightGenerator produces a short prose justification for a finished
// appraisal. Best effort: callers substitute a placeholder on error.
type InsightGenerator interface {
	Insight(ctx context.Context, result models.AppraisalResult) (string, error)
}

// PriceModel is the regression oracle: an ordered feature vector in, a raw
// price out. May be absent entirely; the engine then uses its fallback price.
type PriceModel interface {
	Predict(features models.DomainFeatures) (float64, error)
}
