package model

import "time"

// PriceSeries holds closing prices for one instrument, newest first.
// The ordering contract is owned by the store that produced the series;
// the analytics packages never re-sort.
type PriceSeries struct {
	Code      string
	Closes    []float64
	FetchedAt time.Time
}

// IndicatorSet holds the technical indicators computed for one instrument.
// CurrentPrice and ChangeRate are always defined (zero for degenerate
// input); window indicators are nil when the history is too short.
type IndicatorSet struct {
	CurrentPrice int     `json:"current_price"`
	ChangeRate   float64 `json:"change_rate"`

	SMA50       *float64 `json:"sma_50,omitempty"`
	SMA150      *float64 `json:"sma_150,omitempty"`
	SMA200      *float64 `json:"sma_200,omitempty"`
	SMA200Slope *float64 `json:"sma_200_slope,omitempty"`

	Week52High *int     `json:"week_52_high,omitempty"`
	Week52Low  *int     `json:"week_52_low,omitempty"`
	Position52 *float64 `json:"position_52w,omitempty"`
}
