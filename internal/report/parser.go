package report

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"StockRadar/internal/model"
)

// Scan limits, in characters, matching the source document conventions:
// the opinion appears near the top, the target price in the header block.
const (
	opinionScanLimit     = 2000
	targetPriceScanLimit = 3000
	summaryLineLimit     = 20
	summaryMaxLen        = 200
)

var (
	codeBracketRe  = regexp.MustCompile(`[（\[](\d+)[）\]]`)
	stripBracketRe = regexp.MustCompile(`[（\[]\d+[）\]]`)

	// Ordered: Korean labels first, English fallback last.
	targetPricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`목표주가[:\s]*([0-9,]+)\s*원`),
		regexp.MustCompile(`적정주가[:\s]*([0-9,]+)\s*원`),
		regexp.MustCompile(`Target Price[:\s]*([0-9,]+)`),
	}
)

// Metadata holds the fields encoded in a report filename.
type Metadata struct {
	Company  string
	Code     string
	Date     string
	Broker   string
	ReportID string
}

// ParseFilename extracts metadata from a report filename of the form
// {company}[{code}]_{date}_{broker}_{id}.md where the code bracket may be
// square or full-width. Fewer than 4 segments yields empty metadata.
func ParseFilename(filename string) Metadata {
	name := strings.TrimSuffix(filename, ".md")
	parts := strings.Split(name, "_")
	if len(parts) < 4 {
		return Metadata{}
	}

	companyPart := parts[0]
	code := ""
	if m := codeBracketRe.FindStringSubmatch(companyPart); m != nil {
		code = m[1]
	}
	return Metadata{
		Company:  strings.TrimSpace(stripBracketRe.ReplaceAllString(companyPart, "")),
		Code:     code,
		Date:     parts[1],
		Broker:   parts[2],
		ReportID: parts[3],
	}
}

// Parse analyzes one report document: filename metadata, investment
// opinion, target price, sentiment score and a summary line.
func Parse(filename, text string) *model.ParsedReport {
	meta := ParseFilename(filename)

	score, pos, neg := sentimentScore(text)

	r := &model.ParsedReport{
		Filename:       filename,
		Company:        meta.Company,
		Code:           meta.Code,
		Date:           meta.Date,
		Broker:         meta.Broker,
		ReportID:       meta.ReportID,
		Opinion:        extractOpinion(text),
		TargetPrice:    extractTargetPrice(text),
		SentimentScore: score,
		Sentiment:      ClassifySentiment(score),
		PositiveCount:  pos,
		NegativeCount:  neg,
		Summary:        extractSummary(text),
	}
	return r
}

// extractOpinion scans the head of the document against the priority
// list; the first category with any keyword hit wins.
func extractOpinion(text string) model.Opinion {
	head := truncateRunes(text, opinionScanLimit)
	for _, cat := range opinionPriority {
		for _, kw := range cat.Keywords {
			if strings.Contains(head, kw) {
				return cat.Label
			}
		}
	}
	return model.OpinionUnknown
}

// extractTargetPrice tries each pattern in order against the document
// head; no match means no target price, not zero.
func extractTargetPrice(text string) *int {
	head := truncateRunes(text, targetPriceScanLimit)
	for _, re := range targetPricePatterns {
		m := re.FindStringSubmatch(head)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		return &v
	}
	return nil
}

// sentimentScore counts keyword occurrences over the full text and maps
// them to (pos-neg)/(pos+neg), rounded to 3 decimal places. Both counts
// zero means score 0.
func sentimentScore(text string) (score float64, positive, negative int) {
	for _, kw := range positiveKeywords {
		positive += strings.Count(text, kw)
	}
	for _, kw := range negativeKeywords {
		negative += strings.Count(text, kw)
	}
	total := positive + negative
	if total == 0 {
		return 0, positive, negative
	}
	score = round3(float64(positive-negative) / float64(total))
	return score, positive, negative
}

// ClassifySentiment maps a score in [-1, 1] to a label using the ±0.1
// thresholds shared by single reports and aggregated trends.
func ClassifySentiment(score float64) model.Sentiment {
	switch {
	case score > 0.1:
		return model.SentimentPositive
	case score < -0.1:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// extractSummary returns the first substantial line among the first 20,
// skipping image and table markup, truncated to 200 characters.
func extractSummary(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > summaryLineLimit {
		lines = lines[:summaryLineLimit]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(line, "!") || strings.HasPrefix(line, "|") {
			continue
		}
		if len([]rune(trimmed)) > 10 {
			return truncateRunes(trimmed, summaryMaxLen)
		}
	}
	return ""
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
