package repository

import (
	"context"

	"DomainWorth/internal/domain/models"
)

// SalesSource supplies the historical-sales pool. Implementations own
// caching and validation; the appraisal core receives immutable snapshots.
type SalesSource interface {
	Load(ctx context.Context) ([]models.SaleRecord, error)
}

// ListingSource supplies the live marketplace listings pool.
type ListingSource interface {
	Load(ctx context.Context) ([]models.ListingRecord, error)
}

// UsageStore tracks per-caller daily quotas. Implementations must fail
// open: a storage error yields an allowing decision, never a refusal.
type UsageStore interface {
	Allow(ctx context.Context, ip, userAgent string) models.UsageDecision
	Stats(ctx context.Context, ip, userAgent string) models.UsageStats
	Cleanup(ctx context.Context, retentionDays int) error
	Reset(ctx context.Context) error
	Close() error
}

type Metrics interface {
	RecordAppraisal(category string, seconds float64)
	RecordEstimatedPrice(price float64)
	RecordComparables(pool string, found int)
	RecordError(kind string)
}
