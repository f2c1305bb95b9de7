package model

// LinkType marks how a graph edge was derived.
type LinkType string

const (
	LinkPriceCorrelation LinkType = "price_correlation"
	LinkIndustryChain    LinkType = "industry_chain"
)

// CorrelationMatrix maps code → code → Pearson correlation in [-1, 1].
// Symmetric, self-pairs excluded. Pairs with insufficient data are 0.0.
type CorrelationMatrix map[string]map[string]float64

// Node is one instrument in the relationship graph.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Group    int    `json:"group"`
	Industry string `json:"industry,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Link is an edge between two instruments. At most one link exists per
// unordered pair; when a price correlation and an industry relationship
// coincide, Value is the max of the two and Relationship is attached.
type Link struct {
	Source       string   `json:"source"`
	Target       string   `json:"target"`
	Value        float64  `json:"value"`
	Type         LinkType `json:"type"`
	Correlation  float64  `json:"correlation,omitempty"`
	Relationship string   `json:"relationship,omitempty"`
}

// Graph is the merged correlation / industry-chain graph.
type Graph struct {
	Nodes        []Node            `json:"nodes"`
	Links        []Link            `json:"links"`
	Correlations CorrelationMatrix `json:"correlations"`
}
