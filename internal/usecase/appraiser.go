package usecase

import (
	"context"
	"fmt"
	"time"

	"DomainWorth/internal/domain/models"
	domrepo "DomainWorth/internal/domain/repository"
	domsvc "DomainWorth/internal/domain/service"
	"DomainWorth/internal/repository/sheets"
	"DomainWorth/internal/services/appraisal"
	"DomainWorth/internal/services/insight"
	xlogger "DomainWorth/pkg/logger"
)

// Appraiser wires the pool loaders, the appraisal engine and the optional
// AI collaborators into the request-level operations the handlers expose.
type Appraiser struct {
	engine     *appraisal.Engine
	sales      domrepo.SalesSource
	listings   domrepo.ListingSource
	classifier domsvc.Classifier       // nil when AI is disabled
	insights   domsvc.InsightGenerator // nil when AI is disabled
	metrics    domrepo.Metrics
	log        *xlogger.Logger
}

func NewAppraiser(
	engine *appraisal.Engine,
	sales domrepo.SalesSource,
	listings domrepo.ListingSource,
	classifier domsvc.Classifier,
	insights domsvc.InsightGenerator,
	metrics domrepo.Metrics,
	log *xlogger.Logger,
) *Appraiser {
	return &Appraiser{
		engine:     engine,
		sales:      sales,
		listings:   listings,
		classifier: classifier,
		insights:   insights,
		metrics:    metrics,
		log:        log,
	}
}

// Appraise runs the end-to-end valuation for one domain. The sales pool is
// required; listings degrade to empty. The insight is attached only when
// requested and configured, and its failure yields the fixed placeholder.
func (a *Appraiser) Appraise(ctx context.Context, domain string, withInsight bool) (models.AppraisalResult, string, error) {
	start := time.Now()

	salesPool, err := a.sales.Load(ctx)
	if err != nil {
		a.metrics.RecordError("sales_load")
		return models.AppraisalResult{}, "", fmt.Errorf("load sales: %w", err)
	}
	if len(salesPool) == 0 {
		a.metrics.RecordError("sales_empty")
		return models.AppraisalResult{}, "", fmt.Errorf("no historical sales data available")
	}

	listingPool, err := a.listings.Load(ctx)
	if err != nil {
		a.metrics.RecordError("listings_load")
		a.log.Warn("listings unavailable, appraising without them", xlogger.Error(err))
		listingPool = nil
	}

	result := a.engine.Appraise(ctx, domain, salesPool, listingPool, a.classifier)

	a.metrics.RecordAppraisal(result.Category, time.Since(start).Seconds())
	a.metrics.RecordEstimatedPrice(result.EstimatedPrice)
	a.metrics.RecordComparables("sales", len(result.SalesComparables))
	a.metrics.RecordComparables("listings", len(result.ListingComparables))

	aiInsight := ""
	if withInsight && a.insights != nil {
		text, err := a.insights.Insight(ctx, result)
		if err != nil {
			a.log.Warn("insight generation failed", xlogger.String("domain", domain), xlogger.Error(err))
			text = insight.InsightUnavailable
		}
		aiInsight = text
	}

	return result, aiInsight, nil
}

// LatestSales pages through the sales snapshot, newest first.
func (a *Appraiser) LatestSales(ctx context.Context, page, size int) (models.SalesPage, error) {
	salesPool, err := a.sales.Load(ctx)
	if err != nil {
		a.metrics.RecordError("sales_load")
		return models.SalesPage{}, fmt.Errorf("load sales: %w", err)
	}
	return sheets.Page(salesPool, page, size), nil
}
