package calculator

import (
	"math"
	"testing"
)

func constantSeries(v float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestCalculate_ShortSeries(t *testing.T) {
	ind := Calculate([]float64{70000})
	if ind.ChangeRate != 0 {
		t.Errorf("change rate for single-point series = %v, want 0", ind.ChangeRate)
	}
	if ind.CurrentPrice != 70000 {
		t.Errorf("current price = %d, want 70000", ind.CurrentPrice)
	}
	if ind.SMA50 != nil {
		t.Error("sma_50 should be absent for short series")
	}

	empty := Calculate(nil)
	if empty.ChangeRate != 0 || empty.CurrentPrice != 0 {
		t.Errorf("empty series: got price=%d rate=%v, want zeros", empty.CurrentPrice, empty.ChangeRate)
	}
}

func TestCalculate_ChangeRate(t *testing.T) {
	ind := Calculate([]float64{71000, 70000})
	want := math.Round((71000.0-70000.0)/70000.0*10000) / 10000
	if ind.ChangeRate != want {
		t.Errorf("change rate = %v, want %v", ind.ChangeRate, want)
	}

	// Zero previous close degrades to 0, not an error.
	ind = Calculate([]float64{71000, 0})
	if ind.ChangeRate != 0 {
		t.Errorf("change rate with zero prev = %v, want 0", ind.ChangeRate)
	}
}

func TestCalculate_SMAThresholds(t *testing.T) {
	ind := Calculate(constantSeries(100, 49))
	if ind.SMA50 != nil {
		t.Error("sma_50 present with 49 points")
	}

	ind = Calculate(constantSeries(100, 50))
	if ind.SMA50 == nil || *ind.SMA50 != 100 {
		t.Fatalf("sma_50 = %v, want 100", ind.SMA50)
	}
	if ind.SMA150 != nil || ind.SMA200 != nil {
		t.Error("longer SMAs should be absent with 50 points")
	}

	ind = Calculate(constantSeries(100, 200))
	if ind.SMA200 == nil || *ind.SMA200 != 100 {
		t.Fatalf("sma_200 = %v, want 100", ind.SMA200)
	}
	if ind.SMA200Slope != nil {
		t.Error("sma_200_slope needs 220 points")
	}
}

func TestCalculate_SMA200Slope(t *testing.T) {
	// Linearly rising series (newest first): closes[i] = 1000 - i.
	closes := make([]float64, 220)
	for i := range closes {
		closes[i] = 1000 - float64(i)
	}
	ind := Calculate(closes)
	if ind.SMA200Slope == nil {
		t.Fatal("sma_200_slope absent with 220 points")
	}
	now := mean(closes[:200])
	past := mean(closes[20:220])
	want := round4((now - past) / past)
	if *ind.SMA200Slope != want {
		t.Errorf("slope = %v, want %v", *ind.SMA200Slope, want)
	}

	// Constant series: zero slope.
	ind = Calculate(constantSeries(500, 220))
	if ind.SMA200Slope == nil || *ind.SMA200Slope != 0 {
		t.Errorf("constant series slope = %v, want 0", ind.SMA200Slope)
	}
}

func TestCalculate_52WeekRange(t *testing.T) {
	closes := []float64{75000, 80000, 60000, 70000, 72000}
	ind := Calculate(closes)
	if ind.Week52High == nil || *ind.Week52High != 80000 {
		t.Errorf("52w high = %v, want 80000", ind.Week52High)
	}
	if ind.Week52Low == nil || *ind.Week52Low != 60000 {
		t.Errorf("52w low = %v, want 60000", ind.Week52Low)
	}
	if ind.Position52 == nil {
		t.Fatal("position_52w absent")
	}
	want := round2((75000.0 - 60000.0) / 20000.0)
	if *ind.Position52 != want {
		t.Errorf("position_52w = %v, want %v", *ind.Position52, want)
	}
}

func TestCalculate_FlatRangeOmitsPosition(t *testing.T) {
	ind := Calculate(constantSeries(70000, 10))
	if ind.Position52 != nil {
		t.Errorf("position_52w = %v, want absent when high == low", *ind.Position52)
	}
}

func TestCalculate_52WeekWindowCapped(t *testing.T) {
	// A spike beyond the 252-point window must not count.
	closes := constantSeries(100, 300)
	closes[260] = 9999
	ind := Calculate(closes)
	if ind.Week52High == nil || *ind.Week52High != 100 {
		t.Errorf("52w high = %v, want 100 (spike outside window)", ind.Week52High)
	}
}
