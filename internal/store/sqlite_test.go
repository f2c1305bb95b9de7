package store

import (
	"path/filepath"
	"testing"
)

func TestSQLitePriceStore_RoundTrip(t *testing.T) {
	s, err := NewSQLitePriceStore(filepath.Join(t.TempDir(), "prices.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	rows := []PriceRow{
		{Date: "2024-03-03", Close: 69500},
		{Date: "2024-03-05", Close: 71000},
		{Date: "2024-03-04", Close: 70000},
	}
	if err := s.UpsertPrices("005930", rows); err != nil {
		t.Fatal(err)
	}

	closes, err := s.Closes("005930", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(closes) != 2 || closes[0] != 71000 || closes[1] != 70000 {
		t.Errorf("closes = %v, want [71000 70000] newest first", closes)
	}

	// Re-ingesting the same date replaces the row instead of duplicating.
	if err := s.UpsertPrices("005930", []PriceRow{{Date: "2024-03-05", Close: 71500}}); err != nil {
		t.Fatal(err)
	}
	closes, err = s.Closes("005930", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(closes) != 3 || closes[0] != 71500 {
		t.Errorf("after upsert: closes = %v, want 3 rows with 71500 newest", closes)
	}

	if got := s.CodeCount(); got != 1 {
		t.Errorf("code count = %d, want 1", got)
	}
}

func TestSQLitePriceStore_EmptyCode(t *testing.T) {
	s, err := NewSQLitePriceStore(filepath.Join(t.TempDir(), "prices.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	closes, err := s.Closes("999999", 60)
	if err != nil {
		t.Fatalf("unknown code should not error: %v", err)
	}
	if len(closes) != 0 {
		t.Errorf("closes = %v, want empty", closes)
	}
}
