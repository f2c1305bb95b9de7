package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirReportStore(t *testing.T) {
	dir := t.TempDir()
	company := filepath.Join(dir, "삼성전자")
	if err := os.MkdirAll(company, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"삼성전자[005930]_20240115_NH_998.md": "투자의견 매수",
		"삼성전자[005930]_20240201_KB_999.md": "실적 개선 기대",
		"readme.txt":                        "not a report",
	}
	for name, text := range files {
		if err := os.WriteFile(filepath.Join(company, name), []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	s := NewDirReportStore(dir)

	docs, err := s.Reports("삼성전자")
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2 (txt excluded)", len(docs))
	}
	for _, d := range docs {
		if d.Text == "" {
			t.Errorf("document %s has empty text", d.Name)
		}
	}

	companies, err := s.Companies()
	if err != nil {
		t.Fatal(err)
	}
	if len(companies) != 1 || companies[0] != "삼성전자" {
		t.Errorf("companies = %v", companies)
	}
}

func TestDirReportStore_MissingCompany(t *testing.T) {
	s := NewDirReportStore(t.TempDir())
	docs, err := s.Reports("없는회사")
	if err != nil {
		t.Fatalf("missing company should not error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("docs = %v, want empty", docs)
	}
}

func TestDirReportStore_MissingRoot(t *testing.T) {
	s := NewDirReportStore(filepath.Join(t.TempDir(), "absent"))
	companies, err := s.Companies()
	if err != nil || len(companies) != 0 {
		t.Errorf("missing root: companies=%v err=%v, want empty/nil", companies, err)
	}
}
