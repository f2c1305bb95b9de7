package reference

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// StockInfo is the name and derived sector for one instrument code.
type StockInfo struct {
	Name   string
	Sector string
}

// Lookup resolves instrument codes to names and sectors. The table is
// loaded at most once; concurrent first-time callers are serialized by
// sync.Once.
type Lookup struct {
	path string
	once sync.Once
	info map[string]StockInfo
}

// NewLookup creates a Lookup backed by a KOSPI/KOSDAQ listing CSV with
// Code and Name header columns. The file is read lazily on first use.
func NewLookup(path string) *Lookup {
	return &Lookup{path: path}
}

func (l *Lookup) load() {
	l.info = make(map[string]StockInfo)

	f, err := os.Open(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] open stock listing: %v", err)
		}
		return
	}
	defer f.Close()

	rows, err := readHeaderCSV(f)
	if err != nil {
		log.Printf("[WARN] parse stock listing: %v", err)
		return
	}
	for _, row := range rows {
		code := strings.TrimSpace(row["Code"])
		name := strings.TrimSpace(row["Name"])
		if code == "" || name == "" {
			continue
		}
		l.info[code] = StockInfo{Name: name, Sector: SectorFromName(name)}
	}
	log.Printf("[INFO] stock lookup loaded: %d codes", len(l.info))
}

// Info returns the stock info for a code, if known.
func (l *Lookup) Info(code string) (StockInfo, bool) {
	l.once.Do(l.load)
	info, ok := l.info[code]
	return info, ok
}

// Name resolves a code to its display name, falling back to the raw code.
func (l *Lookup) Name(code string) string {
	if info, ok := l.Info(code); ok {
		return info.Name
	}
	return code
}

// Count reports how many codes are loaded.
func (l *Lookup) Count() int {
	l.once.Do(l.load)
	return len(l.info)
}

// readHeaderCSV reads a CSV with a header row into column→value maps.
func readHeaderCSV(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip malformed rows, keep the batch going.
			continue
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
