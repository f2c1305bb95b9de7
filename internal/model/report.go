package model

// Opinion is an analyst investment opinion.
type Opinion string

const (
	OpinionBuy     Opinion = "Buy"
	OpinionHold    Opinion = "Hold"
	OpinionSell    Opinion = "Sell"
	OpinionUnknown Opinion = "Unknown"
)

// Sentiment classifies a sentiment score.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// ToneChange is the directional shift of report sentiment over time.
type ToneChange string

const (
	ToneImproving ToneChange = "Improving"
	ToneDeclining ToneChange = "Declining"
	ToneStable    ToneChange = "Stable"
	ToneUnknown   ToneChange = "Unknown"
)

// ParsedReport is one analyst report after metadata and sentiment extraction.
type ParsedReport struct {
	Filename string `json:"filename"`
	Company  string `json:"company"`
	Code     string `json:"code"`
	Date     string `json:"date"`
	Broker   string `json:"broker"`
	ReportID string `json:"report_id"`

	Opinion        Opinion   `json:"opinion"`
	TargetPrice    *int      `json:"target_price,omitempty"`
	SentimentScore float64   `json:"sentiment_score"`
	Sentiment      Sentiment `json:"sentiment"`
	PositiveCount  int       `json:"positive_count"`
	NegativeCount  int       `json:"negative_count"`
	Summary        string    `json:"summary"`
}

// ToneTrend aggregates a company's reports into an overall tone record.
type ToneTrend struct {
	Company          string         `json:"company"`
	Code             string         `json:"code"`
	HasReports       bool           `json:"has_reports"`
	ReportCount      int            `json:"report_count"`
	AverageSentiment float64        `json:"average_sentiment,omitempty"`
	OverallSentiment Sentiment      `json:"overall_sentiment,omitempty"`
	ToneChange       ToneChange     `json:"tone_change"`
	ChangeDesc       string         `json:"change_description,omitempty"`
	ScoreDiff        float64        `json:"score_diff"`
	LatestReport     *ParsedReport  `json:"latest_report,omitempty"`
	Reports          []ParsedReport `json:"reports,omitempty"`
	Message          string         `json:"message,omitempty"`
}
