package util

import (
	"testing"
	"time"
)

func TestStartOfDayUTC(t *testing.T) {
	in := time.Date(2024, 10, 10, 17, 45, 3, 0, time.UTC)
	got := StartOfDayUTC(in)
	want := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected day start %v", got)
	}
}

func TestStartOfDayUTCNormalizesZone(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	in := time.Date(2024, 10, 11, 2, 0, 0, 0, loc) // 2024-10-10 19:00 UTC
	got := StartOfDayUTC(in)
	want := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected day start %v", got)
	}
}
