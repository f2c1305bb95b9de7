package store

import (
	"time"

	"StockRadar/internal/model"
)

// PriceProvider supplies closing-price history per instrument code,
// newest first. A code with no data returns an empty series, not an
// error.
type PriceProvider interface {
	// Closes returns up to `days` closing prices, newest first.
	Closes(code string, days int) ([]float64, error)
	// PriceSeries returns the full available series for a code.
	PriceSeries(code string) (*model.PriceSeries, error)
	Name() string
}

// Document is one raw report file.
type Document struct {
	Name string
	Text string
}

// ReportRepository supplies analyst report documents keyed by company.
type ReportRepository interface {
	Reports(company string) ([]Document, error)
	Companies() ([]string, error)
}

// MemoryPriceStore is a controllable in-memory provider for tests and
// development.
type MemoryPriceStore struct {
	Series map[string][]float64
}

func NewMemoryPriceStore() *MemoryPriceStore {
	return &MemoryPriceStore{Series: make(map[string][]float64)}
}

func (m *MemoryPriceStore) Name() string { return "memory" }

func (m *MemoryPriceStore) Closes(code string, days int) ([]float64, error) {
	closes := m.Series[code]
	if days > 0 && len(closes) > days {
		closes = closes[:days]
	}
	out := make([]float64, len(closes))
	copy(out, closes)
	return out, nil
}

func (m *MemoryPriceStore) PriceSeries(code string) (*model.PriceSeries, error) {
	closes, _ := m.Closes(code, 0)
	return &model.PriceSeries{Code: code, Closes: closes, FetchedAt: time.Now()}, nil
}
