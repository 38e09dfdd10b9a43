package sheets

import (
	"testing"
	"time"
)

func TestIsValidDomain(t *testing.T) {
	valid := []string{"example.com", "my-shop.co.uk", "a1.io", "x.org"}
	for _, d := range valid {
		if !IsValidDomain(d) {
			t.Fatalf("%q should be valid", d)
		}
	}

	invalid := []string{"", "nodot", "-lead.com", "trail-.com", "spaces in.com", "num.123"}
	for _, d := range invalid {
		if IsValidDomain(d) {
			t.Fatalf("%q should be invalid", d)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{nil, 0, false},
		{float64(1250), 1250, true},
		{0, 0, false},
		{"$500", 500, true},
		{"$1,250.00", 1250, true},
		{"999,50", 999.5, true},
		{"1,234.56", 1234.56, true},
		{"free", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParsePrice(c.in)
		if ok != c.ok {
			t.Fatalf("ParsePrice(%v) ok=%v, want %v", c.in, ok, c.ok)
		}
		if ok && got != c.want {
			t.Fatalf("ParsePrice(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseSaleDate(t *testing.T) {
	got, ok := ParseSaleDate("3/15/2024")
	if !ok {
		t.Fatalf("US layout rejected")
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 15 {
		t.Fatalf("US layout parsed as %v", got)
	}

	got, ok = ParseSaleDate("2024-03-15")
	if !ok || got.Month() != time.March {
		t.Fatalf("ISO layout parsed as %v ok=%v", got, ok)
	}

	if _, ok := ParseSaleDate("not a date"); ok {
		t.Fatalf("garbage accepted")
	}
	if _, ok := ParseSaleDate(nil); ok {
		t.Fatalf("nil accepted")
	}
}

func TestHeadersMatch(t *testing.T) {
	row := []interface{}{"Domain", "Price", "Date", "Venue", "Source", "Source_Url"}
	if !headersMatch(row, salesHeaders) {
		t.Fatalf("exact headers rejected")
	}
	if headersMatch([]interface{}{"Domain", "Cost"}, salesHeaders) {
		t.Fatalf("wrong headers accepted")
	}
	if headersMatch(nil, salesHeaders) {
		t.Fatalf("short row accepted")
	}
}
