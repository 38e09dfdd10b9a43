package sheets

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"DomainWorth/internal/domain/models"
	"DomainWorth/pkg/cache"
	xlogger "DomainWorth/pkg/logger"
)

// salesHeaders is the exact header row the sales sheet must carry.
var salesHeaders = []string{"Domain", "Price", "Date", "Venue", "Source", "Source_Url"}

// SalesLoader reads the historical-sales sheet and serves TTL-cached
// snapshots. A refresh failure falls back to the last good snapshot so a
// flaky Sheets API never takes appraisals down with it.
type SalesLoader struct {
	reader        RangeReader
	cache         cache.Service
	spreadsheetID string
	sheetName     string
	ttl           time.Duration
	log           *xlogger.Logger

	mu       sync.Mutex
	lastGood []models.SaleRecord
}

func NewSalesLoader(reader RangeReader, c cache.Service, spreadsheetID, sheetName string, ttl time.Duration, log *xlogger.Logger) *SalesLoader {
	if sheetName == "" {
		sheetName = "Domains"
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SalesLoader{
		reader:        reader,
		cache:         c,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		ttl:           ttl,
		log:           log,
	}
}

func (l *SalesLoader) cacheKey() string {
	return cache.GenerateKey("sheets:sales", l.spreadsheetID)
}

// Load returns the current sales snapshot, newest sale first.
func (l *SalesLoader) Load(ctx context.Context) ([]models.SaleRecord, error) {
	var cached []models.SaleRecord
	if err := l.cache.Get(ctx, l.cacheKey(), &cached); err == nil {
		return cached, nil
	}

	sales, err := l.fetch(ctx)
	if err != nil {
		l.mu.Lock()
		lastGood := l.lastGood
		l.mu.Unlock()
		if lastGood != nil {
			if l.log != nil {
				l.log.Warn("sales refresh failed, serving last snapshot", xlogger.Error(err))
			}
			return lastGood, nil
		}
		return nil, err
	}

	l.mu.Lock()
	l.lastGood = sales
	l.mu.Unlock()
	if err := l.cache.Set(ctx, l.cacheKey(), sales, l.ttl); err != nil && l.log != nil {
		l.log.Warn("sales cache set failed", xlogger.Error(err))
	}
	return sales, nil
}

func (l *SalesLoader) fetch(ctx context.Context) ([]models.SaleRecord, error) {
	rangeA1 := fmt.Sprintf("'%s'!A:F", l.sheetName)
	values, err := l.reader.ReadRange(ctx, l.spreadsheetID, rangeA1)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("sales sheet %s is empty", l.sheetName)
	}
	if !headersMatch(values[0], salesHeaders) {
		return nil, fmt.Errorf("sales sheet headers mismatch, expected %v", salesHeaders)
	}

	sales := make([]models.SaleRecord, 0, len(values)-1)
	for _, row := range values[1:] {
		domain := strings.ToLower(cellString(row, 0))
		price, priceOK := ParsePrice(cell(row, 1))
		date, dateOK := ParseSaleDate(cell(row, 2))
		if !priceOK || !dateOK || !IsValidDomain(domain) {
			continue
		}
		source := cellString(row, 4)
		if source == "" {
			source = "Source"
		}
		sales = append(sales, models.SaleRecord{
			Domain:    domain,
			Price:     price,
			Date:      date,
			Venue:     cellString(row, 3),
			Source:    source,
			SourceURL: cellString(row, 5),
		})
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
	return sales, nil
}

// Page slices a loaded snapshot for the latest-sales endpoint.
func Page(sales []models.SaleRecord, page, size int) models.SalesPage {
	total := len(sales)
	totalPages := (total + size - 1) / size
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return models.SalesPage{
		Data:       sales[start:end],
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
		TotalSales: total,
	}
}
