package report

import (
	"strings"
	"testing"

	"StockRadar/internal/model"
)

func TestParseFilename(t *testing.T) {
	meta := ParseFilename("삼성전자[005930]_20240115_NH_998.md")
	want := Metadata{
		Company:  "삼성전자",
		Code:     "005930",
		Date:     "20240115",
		Broker:   "NH",
		ReportID: "998",
	}
	if meta != want {
		t.Errorf("ParseFilename = %+v, want %+v", meta, want)
	}
}

func TestParseFilename_FullWidthBrackets(t *testing.T) {
	meta := ParseFilename("SK하이닉스（000660）_20240301_미래에셋_1201.md")
	if meta.Company != "SK하이닉스" || meta.Code != "000660" {
		t.Errorf("full-width brackets: got company=%q code=%q", meta.Company, meta.Code)
	}
	if meta.Broker != "미래에셋" {
		t.Errorf("broker = %q", meta.Broker)
	}
}

func TestParseFilename_TooFewSegments(t *testing.T) {
	meta := ParseFilename("이상한파일이름.md")
	if meta != (Metadata{}) {
		t.Errorf("malformed filename should yield empty metadata, got %+v", meta)
	}
}

func TestExtractOpinion_PriorityOrder(t *testing.T) {
	tests := []struct {
		text string
		want model.Opinion
	}{
		{"투자의견 매수 유지", model.OpinionBuy},
		{"투자의견 중립으로 하향", model.OpinionHold},
		{"Underweight 의견 제시", model.OpinionSell},
		{"아무 의견 없는 본문", model.OpinionUnknown},
		// Buy-category keywords outrank Hold-category keywords even when
		// both appear.
		{"기존 중립에서 매수로 상향", model.OpinionBuy},
	}
	for _, tt := range tests {
		if got := extractOpinion(tt.text); got != tt.want {
			t.Errorf("extractOpinion(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestExtractOpinion_ScanWindow(t *testing.T) {
	// A keyword beyond the first 2000 characters must not count.
	text := strings.Repeat("가", 2100) + "매수"
	if got := extractOpinion(text); got != model.OpinionUnknown {
		t.Errorf("opinion past scan window = %v, want Unknown", got)
	}
}

func TestExtractTargetPrice(t *testing.T) {
	tests := []struct {
		text string
		want int
		none bool
	}{
		{"목표주가: 95,000원으로 상향", 95000, false},
		{"적정주가 120000 원", 120000, false},
		{"Target Price: 88,500", 88500, false},
		{"목표가에 대한 언급 없음", 0, true},
	}
	for _, tt := range tests {
		got := extractTargetPrice(tt.text)
		if tt.none {
			if got != nil {
				t.Errorf("extractTargetPrice(%q) = %d, want absent", tt.text, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Errorf("extractTargetPrice(%q) = %v, want %d", tt.text, got, tt.want)
		}
	}
}

func TestSentimentScore(t *testing.T) {
	// 3 positive hits (상승, 성장, 개선) and 1 negative hit (부진).
	score, pos, neg := sentimentScore("상승 성장 개선 부진")
	if pos != 3 || neg != 1 {
		t.Fatalf("counts = %d/%d, want 3/1", pos, neg)
	}
	if score != 0.5 {
		t.Errorf("score = %v, want 0.5", score)
	}
	if ClassifySentiment(score) != model.SentimentPositive {
		t.Errorf("classification = %v, want Positive", ClassifySentiment(score))
	}

	score, pos, neg = sentimentScore("키워드가 전혀 없는 본문")
	if score != 0 || pos != 0 || neg != 0 {
		t.Errorf("neutral text: score=%v pos=%d neg=%d, want zeros", score, pos, neg)
	}
}

func TestClassifySentiment_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  model.Sentiment
	}{
		{0.5, model.SentimentPositive},
		{0.11, model.SentimentPositive},
		{0.1, model.SentimentNeutral},
		{0, model.SentimentNeutral},
		{-0.1, model.SentimentNeutral},
		{-0.11, model.SentimentNegative},
	}
	for _, tt := range tests {
		if got := ClassifySentiment(tt.score); got != tt.want {
			t.Errorf("ClassifySentiment(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestExtractSummary(t *testing.T) {
	text := "![그림](chart.png)\n| 표 | 헤더 |\n짧음\n메모리 업황 개선으로 실적 회복이 예상된다\n다음 줄"
	got := extractSummary(text)
	if got != "메모리 업황 개선으로 실적 회복이 예상된다" {
		t.Errorf("summary = %q", got)
	}

	long := strings.Repeat("가", 300)
	if got := extractSummary(long); len([]rune(got)) != 200 {
		t.Errorf("summary length = %d runes, want 200", len([]rune(got)))
	}

	if got := extractSummary("!image\n|table"); got != "" {
		t.Errorf("markup-only document summary = %q, want empty", got)
	}
}

func TestParse_EndToEnd(t *testing.T) {
	text := "# 삼성전자\n\n투자의견 매수, 목표주가: 95,000원 제시. 메모리 가격 상승과 수요 회복 기대.\n"
	r := Parse("삼성전자[005930]_20240115_NH_998.md", text)

	if r.Company != "삼성전자" || r.Code != "005930" {
		t.Errorf("metadata: %+v", r)
	}
	if r.Opinion != model.OpinionBuy {
		t.Errorf("opinion = %v", r.Opinion)
	}
	if r.TargetPrice == nil || *r.TargetPrice != 95000 {
		t.Errorf("target price = %v", r.TargetPrice)
	}
	if r.PositiveCount == 0 || r.Sentiment != model.SentimentPositive {
		t.Errorf("sentiment = %v (pos=%d neg=%d)", r.Sentiment, r.PositiveCount, r.NegativeCount)
	}
	if r.Summary == "" {
		t.Error("summary should not be empty")
	}
}
