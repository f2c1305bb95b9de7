package correlation

import (
	"math"

	"StockRadar/internal/model"
)

// MinOverlap is the minimum number of overlapping points required before
// a pair gets a real coefficient. Shorter pairs are defined as 0.0.
const MinOverlap = 10

// Pearson computes the Pearson correlation coefficient of two close
// series aligned to their common length. Constant series and pairs with
// fewer than MinOverlap points yield exactly 0.0.
func Pearson(a, b []float64) float64 {
	if len(a) < MinOverlap || len(b) < MinOverlap {
		return 0.0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	a = a[:n]
	b = b[:n]

	meanA := mean(a)
	meanB := mean(b)

	var num, varA, varB float64
	for i := 0; i < n; i++ {
		num += (a[i] - meanA) * (b[i] - meanB)
		varA += (a[i] - meanA) * (a[i] - meanA)
		varB += (b[i] - meanB) * (b[i] - meanB)
	}

	if varA == 0 || varB == 0 {
		return 0.0
	}

	// Single-product denominator keeps the result bit-identical when the
	// arguments are swapped.
	return num / math.Sqrt(varA*varB)
}

// Matrix computes pairwise correlations for the given close series,
// rounded to 3 decimal places. Both directions are populated from a
// single computation; self-pairs are excluded. Codes without data are
// left out entirely.
func Matrix(series map[string][]float64, order []string) model.CorrelationMatrix {
	codes := make([]string, 0, len(order))
	for _, code := range order {
		if len(series[code]) > 0 {
			codes = append(codes, code)
		}
	}

	m := make(model.CorrelationMatrix, len(codes))
	for i, c1 := range codes {
		if _, ok := m[c1]; !ok {
			m[c1] = make(map[string]float64)
		}
		for _, c2 := range codes[i+1:] {
			corr := round3(Pearson(series[c1], series[c2]))
			m[c1][c2] = corr
			if _, ok := m[c2]; !ok {
				m[c2] = make(map[string]float64)
			}
			m[c2][c1] = corr
		}
	}
	return m
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
