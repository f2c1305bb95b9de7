package calculator

import (
	"math"

	"StockRadar/internal/model"
)

// Window lengths in trading days.
const (
	smaShort  = 50
	smaMid    = 150
	smaLong   = 200
	slopeLag  = 20
	yearCount = 252
)

// Calculate computes the indicator set from closing prices ordered newest
// first. Indicators whose window exceeds the available history are left
// nil. Degenerate denominators yield 0, never an error.
func Calculate(closes []float64) *model.IndicatorSet {
	ind := &model.IndicatorSet{}
	if len(closes) == 0 {
		return ind
	}

	current := closes[0]
	prev := current
	if len(closes) > 1 {
		prev = closes[1]
	}
	ind.CurrentPrice = int(current)
	if prev != 0 {
		ind.ChangeRate = round4((current - prev) / prev)
	}

	if len(closes) >= smaShort {
		ind.SMA50 = ptr(round2(mean(closes[:smaShort])))
	}
	if len(closes) >= smaMid {
		ind.SMA150 = ptr(round2(mean(closes[:smaMid])))
	}
	if len(closes) >= smaLong {
		ind.SMA200 = ptr(round2(mean(closes[:smaLong])))
		if len(closes) >= smaLong+slopeLag {
			now := mean(closes[:smaLong])
			past := mean(closes[slopeLag : smaLong+slopeLag])
			slope := 0.0
			if past != 0 {
				slope = round4((now - past) / past)
			}
			ind.SMA200Slope = ptr(slope)
		}
	}

	// 52-week extremes over up to the newest 252 points.
	n := len(closes)
	if n > yearCount {
		n = yearCount
	}
	high, low := closes[0], closes[0]
	for _, c := range closes[:n] {
		if c > high {
			high = c
		}
		if c < low {
			low = c
		}
	}
	ind.Week52High = ptrInt(int(high))
	ind.Week52Low = ptrInt(int(low))
	if r := float64(int(high) - int(low)); r > 0 {
		ind.Position52 = ptr(round2((current - float64(int(low))) / r))
	}

	return ind
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

func ptr(v float64) *float64 { return &v }
func ptrInt(v int) *int      { return &v }
