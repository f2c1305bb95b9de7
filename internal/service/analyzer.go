package service

import (
	"log"
	"sort"

	"StockRadar/internal/calculator"
	"StockRadar/internal/correlation"
	"StockRadar/internal/graph"
	"StockRadar/internal/model"
	"StockRadar/internal/reference"
	"StockRadar/internal/report"
	"StockRadar/internal/store"
)

// DefaultLookbackDays is the correlation lookback window.
const DefaultLookbackDays = 60

// Analyzer answers the analytics queries over the configured
// collaborators. Every method degrades to a partial or empty result when
// a collaborator returns nothing; none of them fails the process.
type Analyzer struct {
	Prices       store.PriceProvider
	Reports      store.ReportRepository
	Lookup       *reference.Lookup
	LookbackDays int

	builder *graph.Builder
}

// NewAnalyzer creates an Analyzer over the given collaborators.
func NewAnalyzer(prices store.PriceProvider, reports store.ReportRepository, lookup *reference.Lookup, lookbackDays int) *Analyzer {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &Analyzer{
		Prices:       prices,
		Reports:      reports,
		Lookup:       lookup,
		LookbackDays: lookbackDays,
		builder:      graph.NewBuilder(lookup, reference.Chains()),
	}
}

// Indicators computes the technical indicator set for one instrument.
// Missing or short history yields a mostly-empty set.
func (a *Analyzer) Indicators(code string) *model.IndicatorSet {
	series, err := a.Prices.PriceSeries(code)
	if err != nil {
		log.Printf("[WARN] price series for %s: %v", code, err)
		return &model.IndicatorSet{}
	}
	return calculator.Calculate(series.Closes)
}

// CorrelationMatrix computes pairwise correlations over the lookback
// window for the given codes. Codes without price data are left out.
func (a *Analyzer) CorrelationMatrix(codes []string) model.CorrelationMatrix {
	series := make(map[string][]float64, len(codes))
	for _, code := range codes {
		closes, err := a.Prices.Closes(code, a.LookbackDays)
		if err != nil {
			log.Printf("[WARN] closes for %s: %v", code, err)
			continue
		}
		series[code] = closes
	}
	return correlation.Matrix(series, codes)
}

// Graph builds the merged correlation / industry-chain graph for a
// portfolio: the working set is the portfolio plus industry-chain
// co-members, correlated over the lookback window.
func (a *Analyzer) Graph(codes []string) *model.Graph {
	working := a.builder.Expand(codes)
	matrix := a.CorrelationMatrix(working)
	return a.builder.Build(working, matrix)
}

// ToneTrend analyzes the report tone trend for one company.
func (a *Analyzer) ToneTrend(company string) model.ToneTrend {
	code := reference.CompanyCode(company)

	docs, err := a.Reports.Reports(company)
	if err != nil {
		log.Printf("[WARN] reports for %s: %v", company, err)
	}

	parsed := make([]model.ParsedReport, 0, len(docs))
	for _, doc := range docs {
		parsed = append(parsed, *report.Parse(doc.Name, doc.Text))
	}
	return report.AnalyzeTone(company, code, parsed)
}

// ToneTrends analyzes every covered company, ordered by urgency:
// Declining first, then Improving, then the rest.
func (a *Analyzer) ToneTrends() []model.ToneTrend {
	companies, err := a.Reports.Companies()
	if err != nil {
		log.Printf("[WARN] list report companies: %v", err)
		return nil
	}

	trends := make([]model.ToneTrend, 0, len(companies))
	for _, company := range companies {
		trends = append(trends, a.ToneTrend(company))
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return toneRank(trends[i].ToneChange) < toneRank(trends[j].ToneChange)
	})
	return trends
}

func toneRank(tc model.ToneChange) int {
	switch tc {
	case model.ToneDeclining:
		return 0
	case model.ToneImproving:
		return 1
	default:
		return 2
	}
}
