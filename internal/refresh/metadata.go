package refresh

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// Data type keys used in the metadata file.
const (
	KindPrice     = "price_data"
	KindNews      = "news_data"
	KindFinancial = "financial_data"
)

type metadataEntry struct {
	LastUpdate string `json:"last_update"`
	FileCount  int    `json:"file_count,omitempty"`
}

// Metadata tracks per-data-type last-update dates in a JSON file so a
// refresh runs at most once per KST trading day.
type Metadata struct {
	path string
	mu   sync.Mutex
}

// NewMetadata creates metadata bookkeeping over the given file path.
func NewMetadata(path string) *Metadata {
	return &Metadata{path: path}
}

func (m *Metadata) load() map[string]metadataEntry {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read metadata: %v", err)
		}
		return map[string]metadataEntry{}
	}
	entries := map[string]metadataEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("[WARN] parse metadata: %v", err)
		return map[string]metadataEntry{}
	}
	return entries
}

func (m *Metadata) save(entries map[string]metadataEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

// LastUpdate returns the recorded update date for a data type, or "".
func (m *Metadata) LastUpdate(kind string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()[kind].LastUpdate
}

// MarkUpdated records that a data type was refreshed today.
func (m *Metadata) MarkUpdated(kind string, fileCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.load()
	entries[kind] = metadataEntry{LastUpdate: TodayKST(), FileCount: fileCount}
	if err := m.save(entries); err != nil {
		log.Printf("[WARN] save metadata: %v", err)
	}
}

// ShouldRefresh reports whether a data type was not yet updated today.
func (m *Metadata) ShouldRefresh(kind string) bool {
	return m.LastUpdate(kind) != TodayKST()
}

// TodayKST returns today's date in the Seoul timezone as YYYY-MM-DD,
// falling back to local time when tzdata is unavailable.
func TodayKST() string {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.Now().Format("2006-01-02")
	}
	return time.Now().In(loc).Format("2006-01-02")
}
