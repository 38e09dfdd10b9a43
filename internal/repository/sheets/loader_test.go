package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"DomainWorth/pkg/cache"
)

type fakeReader struct {
	values [][]interface{}
	err    error
	calls  int
}

func (f *fakeReader) ReadRange(ctx context.Context, spreadsheetID, rangeA1 string) ([][]interface{}, error) {
	f.calls++
	return f.values, f.err
}

func salesRows() [][]interface{} {
	return [][]interface{}{
		{"Domain", "Price", "Date", "Venue", "Source", "Source_Url"},
		{"techhub.com", "$1,250.00", "3/15/2024", "GoDaddy", "", "https://example.com/1"},
		{"oldersale.com", "800", "2023-01-02", "Sedo", "Report", ""},
		{"BAD DOMAIN", "500", "3/15/2024", "", "", ""},
		{"nodate.com", "500", "", "", "", ""},
		{"noprice.com", "", "3/15/2024", "", "", ""},
	}
}

func TestSalesLoaderParsesAndSorts(t *testing.T) {
	reader := &fakeReader{values: salesRows()}
	loader := NewSalesLoader(reader, cache.NewMemoryCache(), "sheet-id", "", 0, nil)

	sales, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 valid rows, got %d", len(sales))
	}
	if sales[0].Domain != "techhub.com" {
		t.Fatalf("not sorted newest first: %v", sales[0].Domain)
	}
	if sales[0].Price != 1250 {
		t.Fatalf("price %v", sales[0].Price)
	}
	if sales[0].Source != "Source" {
		t.Fatalf("empty source not defaulted: %q", sales[0].Source)
	}
	if sales[1].Source != "Report" {
		t.Fatalf("source %q", sales[1].Source)
	}
}

func TestSalesLoaderCachesSnapshot(t *testing.T) {
	reader := &fakeReader{values: salesRows()}
	loader := NewSalesLoader(reader, cache.NewMemoryCache(), "sheet-id", "", time.Minute, nil)

	if _, err := loader.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := loader.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if reader.calls != 1 {
		t.Fatalf("cache miss on second load: %d reads", reader.calls)
	}
}

func TestSalesLoaderServesLastGoodOnFailure(t *testing.T) {
	reader := &fakeReader{values: salesRows()}
	loader := NewSalesLoader(reader, cache.NewMemoryCache(), "sheet-id", "", time.Millisecond, nil)

	first, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	reader.err = errors.New("api down")
	reader.values = nil

	second, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("expected last-good fallback, got %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("fallback snapshot differs: %d vs %d", len(second), len(first))
	}
}

func TestSalesLoaderRejectsBadHeaders(t *testing.T) {
	reader := &fakeReader{values: [][]interface{}{{"Name", "Cost"}}}
	loader := NewSalesLoader(reader, cache.NewMemoryCache(), "sheet-id", "", 0, nil)
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatalf("expected header mismatch error")
	}
}

func listingRows() [][]interface{} {
	return [][]interface{}{
		{"Category", "Domain", "Price", "PageURL"},
		{"Bots & AI", "aibot.io", "3000", "https://example.com/aibot"},
		{"Finance", "not a domain", "100", ""},
		{"Finance", "payhub.com", "0", ""},
	}
}

func TestListingLoaderParses(t *testing.T) {
	reader := &fakeReader{values: listingRows()}
	loader := NewListingLoader(reader, cache.NewMemoryCache(), "sheet-id", "", 0, nil)

	listings, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 valid listing, got %d", len(listings))
	}
	if listings[0].Category != "Bots & AI" || listings[0].Domain != "aibot.io" {
		t.Fatalf("unexpected listing %+v", listings[0])
	}
}

func TestListingLoaderEmptySheetIsNotFatal(t *testing.T) {
	reader := &fakeReader{values: nil}
	loader := NewListingLoader(reader, cache.NewMemoryCache(), "sheet-id", "", 0, nil)

	listings, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("empty sheet errored: %v", err)
	}
	if len(listings) != 0 {
		t.Fatalf("expected empty pool, got %d", len(listings))
	}
}

func TestPage(t *testing.T) {
	sales, err := NewSalesLoader(&fakeReader{values: salesRows()}, cache.NewMemoryCache(), "sheet-id", "", 0, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	page := Page(sales, 1, 1)
	if len(page.Data) != 1 || page.TotalSales != 2 || page.TotalPages != 2 {
		t.Fatalf("unexpected page %+v", page)
	}

	beyond := Page(sales, 9, 100)
	if len(beyond.Data) != 0 {
		t.Fatalf("out-of-range page returned data")
	}
}
