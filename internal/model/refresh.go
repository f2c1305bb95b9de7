package model

// RefreshResult is the structured outcome of one external crawler run.
type RefreshResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	UpdatedCount int    `json:"updated_count,omitempty"`
}

// DataFreshness reports whether one data type was updated today.
type DataFreshness struct {
	LastUpdate   string `json:"last_update"`
	NeedsRefresh bool   `json:"needs_refresh"`
	FileCount    int    `json:"file_count,omitempty"`
}

// DataStatus is the freshness snapshot across all data types.
type DataStatus struct {
	Today     string                   `json:"today"`
	DataTypes map[string]DataFreshness `json:"data_types"`
}

// RefreshSummary buckets the outcome of a full refresh pass.
type RefreshSummary struct {
	Refreshed []string `json:"refreshed"`
	Skipped   []string `json:"skipped"`
	Errors    []string `json:"errors"`
}
