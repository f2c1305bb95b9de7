package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"StockRadar/internal/model"

	_ "modernc.org/sqlite"
)

// PriceRow is one daily close for the SQLite ingest path.
type PriceRow struct {
	Date  string // YYYY-MM-DD
	Close float64
}

// SQLitePriceStore caches crawled price rows in a SQLite database and
// serves them newest first. The ORDER BY date DESC in the read path is
// what upholds the newest-first contract for this backend.
type SQLitePriceStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLitePriceStore opens (or creates) the database and runs migrations.
func NewSQLitePriceStore(dbPath string) (*SQLitePriceStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so analysis reads don't block crawler ingests.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLitePriceStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite price store opened: %s", dbPath)
	return s, nil
}

func (s *SQLitePriceStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS prices (
			code  TEXT NOT NULL,
			date  TEXT NOT NULL,
			close REAL NOT NULL,
			PRIMARY KEY (code, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prices_code_date ON prices(code, date DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:30], err)
		}
	}
	return nil
}

func (s *SQLitePriceStore) Name() string { return "sqlite" }

// UpsertPrices ingests crawled rows for one code, replacing same-date
// rows so an append-style crawler can be re-run safely.
func (s *SQLitePriceStore) UpsertPrices(code string, rows []PriceRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO prices (code, date, close) VALUES (?,?,?)
		ON CONFLICT(code, date) DO UPDATE SET close=excluded.close`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(code, row.Date, row.Close); err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert %s@%s: %w", code, row.Date, err)
		}
	}
	return tx.Commit()
}

// Closes returns up to `days` closing prices for a code, newest first.
func (s *SQLitePriceStore) Closes(code string, days int) ([]float64, error) {
	query := `SELECT close FROM prices WHERE code = ? ORDER BY date DESC`
	args := []any{code}
	if days > 0 {
		query += ` LIMIT ?`
		args = append(args, days)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query closes for %s: %w", code, err)
	}
	defer rows.Close()

	var closes []float64
	for rows.Next() {
		var c float64
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan close for %s: %w", code, err)
		}
		closes = append(closes, c)
	}
	return closes, rows.Err()
}

// PriceSeries returns the full cached series for a code.
func (s *SQLitePriceStore) PriceSeries(code string) (*model.PriceSeries, error) {
	closes, err := s.Closes(code, 0)
	if err != nil {
		return nil, err
	}
	return &model.PriceSeries{Code: code, Closes: closes, FetchedAt: time.Now()}, nil
}

// CodeCount reports how many distinct instruments are cached.
func (s *SQLitePriceStore) CodeCount() int {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(DISTINCT code) FROM prices`).Scan(&n); err != nil {
		return 0
	}
	return n
}

func (s *SQLitePriceStore) Close() error {
	log.Println("[INFO] closing sqlite price store")
	return s.db.Close()
}
