package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DirReportStore reads analyst reports from {dir}/{company}/*.md.
type DirReportStore struct {
	Dir string
}

// NewDirReportStore creates a store over the given reports directory.
func NewDirReportStore(dir string) *DirReportStore {
	return &DirReportStore{Dir: dir}
}

// Reports returns every markdown document for a company. A missing
// company directory yields an empty set. Individual unreadable files
// are skipped and logged, never fatal to the batch.
func (s *DirReportStore) Reports(company string) ([]Document, error) {
	dir := filepath.Join(s.Dir, company)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read reports for %s: %w", company, err)
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			log.Printf("[WARN] skip unreadable report %s/%s: %v", company, e.Name(), err)
			continue
		}
		docs = append(docs, Document{Name: e.Name(), Text: string(data)})
	}
	return docs, nil
}

// Companies lists every company that has a report directory.
func (s *DirReportStore) Companies() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list report companies: %w", err)
	}

	var companies []string
	for _, e := range entries {
		if e.IsDir() {
			companies = append(companies, e.Name())
		}
	}
	return companies, nil
}
