package report

import (
	"sort"

	"StockRadar/internal/model"
)

// Tone-change thresholds on the newest-vs-oldest score difference.
const (
	improvingThreshold = 0.2
	decliningThreshold = -0.2
)

// SortByDateDesc orders reports most recent first. The sort is stable so
// same-date reports keep their enumeration order.
func SortByDateDesc(reports []model.ParsedReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Date > reports[j].Date
	})
}

// AnalyzeTone aggregates a company's parsed reports into a tone trend.
// The reports are sorted newest first; the trend compares the most
// recent against the oldest. Fewer than 2 reports cannot establish a
// trend and zero reports yields a sentinel record, never an error.
func AnalyzeTone(company, code string, reports []model.ParsedReport) model.ToneTrend {
	if len(reports) == 0 {
		return model.ToneTrend{
			Company:    company,
			Code:       code,
			HasReports: false,
			ToneChange: model.ToneUnknown,
			Message:    "분석 가능한 리포트가 없습니다.",
		}
	}

	SortByDateDesc(reports)

	sum := 0.0
	for _, r := range reports {
		sum += r.SentimentScore
	}
	avg := round3(sum / float64(len(reports)))

	trend := model.ToneTrend{
		Company:          company,
		Code:             code,
		HasReports:       true,
		ReportCount:      len(reports),
		AverageSentiment: avg,
		OverallSentiment: ClassifySentiment(avg),
		LatestReport:     &reports[0],
		Reports:          reports,
	}

	if len(reports) < 2 {
		trend.ToneChange = model.ToneUnknown
		trend.ChangeDesc = "비교 데이터 부족"
		return trend
	}

	diff := round3(reports[0].SentimentScore - reports[len(reports)-1].SentimentScore)
	trend.ScoreDiff = diff
	switch {
	case diff > improvingThreshold:
		trend.ToneChange = model.ToneImproving
		trend.ChangeDesc = "톤 개선 중"
	case diff < decliningThreshold:
		trend.ToneChange = model.ToneDeclining
		trend.ChangeDesc = "톤 악화 중"
	default:
		trend.ToneChange = model.ToneStable
		trend.ChangeDesc = "톤 유지"
	}
	return trend
}
