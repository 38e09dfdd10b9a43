package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"DomainWorth/internal/domain/models"
	"DomainWorth/pkg/cache"
	xlogger "DomainWorth/pkg/logger"
)

// listingHeaders is the exact header row the Atom sheet must carry.
var listingHeaders = []string{"Category", "Domain", "Price", "PageURL"}

// ListingLoader reads the Atom marketplace sheet. Listings move slowly, so
// the default TTL is an hour. Refresh failures serve the last good
// snapshot; a missing sheet yields an empty pool, never an abort.
type ListingLoader struct {
	reader        RangeReader
	cache         cache.Service
	spreadsheetID string
	sheetName     string
	ttl           time.Duration
	log           *xlogger.Logger

	mu       sync.Mutex
	lastGood []models.ListingRecord
}

func NewListingLoader(reader RangeReader, c cache.Service, spreadsheetID, sheetName string, ttl time.Duration, log *xlogger.Logger) *ListingLoader {
	if sheetName == "" {
		sheetName = "Atom"
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ListingLoader{
		reader:        reader,
		cache:         c,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		ttl:           ttl,
		log:           log,
	}
}

func (l *ListingLoader) cacheKey() string {
	return cache.GenerateKey("sheets:listings", l.spreadsheetID)
}

// Load returns the current listings snapshot.
func (l *ListingLoader) Load(ctx context.Context) ([]models.ListingRecord, error) {
	var cached []models.ListingRecord
	if err := l.cache.Get(ctx, l.cacheKey(), &cached); err == nil {
		return cached, nil
	}

	listings, err := l.fetch(ctx)
	if err != nil {
		l.mu.Lock()
		lastGood := l.lastGood
		l.mu.Unlock()
		if lastGood != nil {
			if l.log != nil {
				l.log.Warn("listings refresh failed, serving last snapshot", xlogger.Error(err))
			}
			return lastGood, nil
		}
		return nil, err
	}

	l.mu.Lock()
	l.lastGood = listings
	l.mu.Unlock()
	if err := l.cache.Set(ctx, l.cacheKey(), listings, l.ttl); err != nil && l.log != nil {
		l.log.Warn("listings cache set failed", xlogger.Error(err))
	}
	return listings, nil
}

func (l *ListingLoader) fetch(ctx context.Context) ([]models.ListingRecord, error) {
	rangeA1 := fmt.Sprintf("'%s'!A:D", l.sheetName)
	values, err := l.reader.ReadRange(ctx, l.spreadsheetID, rangeA1)
	if err != nil {
		return nil, err
	}
	if len(values) < 2 {
		if l.log != nil {
			l.log.Warn("listings sheet is empty or missing headers")
		}
		return []models.ListingRecord{}, nil
	}
	if !headersMatch(values[0], listingHeaders) {
		return nil, fmt.Errorf("listings sheet headers mismatch, expected %v", listingHeaders)
	}

	listings := make([]models.ListingRecord, 0, len(values)-1)
	for _, row := range values[1:] {
		domain := strings.ToLower(cellString(row, 1))
		price, priceOK := ParsePrice(cell(row, 2))
		if !priceOK || !IsValidDomain(domain) {
			continue
		}
		listings = append(listings, models.ListingRecord{
			Category: cellString(row, 0),
			Domain:   domain,
			Price:    price,
			PageURL:  cellString(row, 3),
		})
	}
	return listings, nil
}
