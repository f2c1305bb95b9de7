package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"StockRadar/internal/model"
)

// CSVPriceStore reads one {code}.csv per instrument from a directory.
// Rows are trusted to be sorted newest first; the crawler that writes
// the files owns that contract and the store never re-sorts.
type CSVPriceStore struct {
	Dir string
}

// NewCSVPriceStore creates a store over the given price-data directory.
func NewCSVPriceStore(dir string) *CSVPriceStore {
	return &CSVPriceStore{Dir: dir}
}

func (s *CSVPriceStore) Name() string { return "csv" }

// Closes returns up to `days` closing prices, newest first. A missing
// file yields an empty series. Rows with an unparseable close are
// skipped.
func (s *CSVPriceStore) Closes(code string, days int) ([]float64, error) {
	rows, err := s.readRows(code)
	if err != nil {
		return nil, err
	}

	closes := make([]float64, 0, len(rows))
	for _, row := range rows {
		if days > 0 && len(closes) >= days {
			break
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row["close"]), 64)
		if err != nil {
			continue
		}
		closes = append(closes, v)
	}
	return closes, nil
}

// PriceSeries returns the full series for a code. Unlike Closes,
// unparseable close cells contribute 0 so row positions stay aligned
// with the indicator windows.
func (s *CSVPriceStore) PriceSeries(code string) (*model.PriceSeries, error) {
	rows, err := s.readRows(code)
	if err != nil {
		return nil, err
	}

	closes := make([]float64, 0, len(rows))
	for _, row := range rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(row["close"]), 64)
		if err != nil {
			v = 0
		}
		closes = append(closes, v)
	}
	return &model.PriceSeries{Code: code, Closes: closes, FetchedAt: time.Now()}, nil
}

// FileCount reports how many price CSVs exist, for data-status checks.
func (s *CSVPriceStore) FileCount() int {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".csv") {
			count++
		}
	}
	return count
}

func (s *CSVPriceStore) readRows(code string) ([]map[string]string, error) {
	f, err := os.Open(filepath.Join(s.Dir, code+".csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open price csv for %s: %w", code, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read price csv header for %s: %w", code, err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows, keep the batch
		}
		row := make(map[string]string, len(header))
		for i, v := range rec {
			if i < len(header) {
				row[header[i]] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
