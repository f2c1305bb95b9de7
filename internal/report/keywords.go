package report

import "StockRadar/internal/model"

// opinionPriority is the ordered (label, keywords) list used for opinion
// detection. The order is a contract: the first category with any match
// wins, so a report mentioning both 매수 and 중립 resolves to Buy.
var opinionPriority = []struct {
	Label    model.Opinion
	Keywords []string
}{
	{model.OpinionBuy, []string{"Buy", "매수", "Strong Buy", "적극 매수", "비중확대", "Overweight"}},
	{model.OpinionHold, []string{"Hold", "보유", "중립", "Neutral", "Market Perform", "시장수익률"}},
	{model.OpinionSell, []string{"Sell", "매도", "비중축소", "Underweight", "Reduce"}},
}

// Positive/negative keyword lists for Korean financial sentiment.
var positiveKeywords = []string{
	"호실적", "상승", "성장", "확대", "개선", "호조", "최대", "강세",
	"기대", "수혜", "매수", "목표주가 상향", "실적 서프라이즈",
	"초호황", "급등", "돌파", "사상 최고", "Top-pick", "상승여력",
	"흑자전환", "턴어라운드", "회복", "급증", "폭발적",
}

var negativeKeywords = []string{
	"부진", "하락", "감소", "악화", "둔화", "약세", "하향", "적자",
	"매도", "목표주가 하향", "실적 쇼크", "리스크", "우려",
	"급락", "적전", "손실", "부정적", "비관적", "어려움", "난관",
}
