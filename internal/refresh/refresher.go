package refresh

import (
	"context"
	"fmt"

	"StockRadar/internal/model"
)

// FileCounter reports how many price files a store currently holds.
type FileCounter interface {
	FileCount() int
}

// Refresher coordinates the price and news crawlers with the metadata
// bookkeeping: each data type refreshes at most once per day unless
// forced.
type Refresher struct {
	Meta       *Metadata
	Price      Crawler
	News       Crawler
	PriceFiles FileCounter
}

// NewRefresher wires crawlers and metadata together. priceFiles may be
// nil when no countable store backs the price data.
func NewRefresher(meta *Metadata, price, news Crawler, priceFiles FileCounter) *Refresher {
	return &Refresher{Meta: meta, Price: price, News: news, PriceFiles: priceFiles}
}

// RefreshPrices runs the price crawler and records the outcome.
func (r *Refresher) RefreshPrices(ctx context.Context) model.RefreshResult {
	result := r.Price.Run(ctx)
	if result.Success {
		count := 0
		if r.PriceFiles != nil {
			count = r.PriceFiles.FileCount()
		}
		result.UpdatedCount = count
		result.Message = fmt.Sprintf("successfully updated %d price files", count)
		r.Meta.MarkUpdated(KindPrice, count)
	}
	return result
}

// RefreshNews runs the news crawler and records the outcome.
func (r *Refresher) RefreshNews(ctx context.Context) model.RefreshResult {
	result := r.News.Run(ctx)
	if result.Success {
		result.Message = "successfully updated news data"
		r.Meta.MarkUpdated(KindNews, 0)
	}
	return result
}

// RefreshAll refreshes every stale data type, or all of them when
// forced, and buckets the outcomes.
func (r *Refresher) RefreshAll(ctx context.Context, force bool) model.RefreshSummary {
	summary := model.RefreshSummary{
		Refreshed: []string{},
		Skipped:   []string{},
		Errors:    []string{},
	}

	if force || r.Meta.ShouldRefresh(KindPrice) {
		res := r.RefreshPrices(ctx)
		if res.Success {
			summary.Refreshed = append(summary.Refreshed, KindPrice+": "+res.Message)
		} else {
			summary.Errors = append(summary.Errors, KindPrice+": "+res.Message)
		}
	} else {
		summary.Skipped = append(summary.Skipped, KindPrice+" (already updated today)")
	}

	if force || r.Meta.ShouldRefresh(KindNews) {
		res := r.RefreshNews(ctx)
		if res.Success {
			summary.Refreshed = append(summary.Refreshed, KindNews+": "+res.Message)
		} else {
			summary.Errors = append(summary.Errors, KindNews+": "+res.Message)
		}
	} else {
		summary.Skipped = append(summary.Skipped, KindNews+" (already updated today)")
	}

	return summary
}

// Status reports freshness for every tracked data type.
func (r *Refresher) Status() model.DataStatus {
	status := model.DataStatus{
		Today:     TodayKST(),
		DataTypes: make(map[string]model.DataFreshness, 3),
	}

	for _, kind := range []string{KindPrice, KindNews, KindFinancial} {
		last := r.Meta.LastUpdate(kind)
		if last == "" {
			last = "Never"
		}
		fresh := model.DataFreshness{
			LastUpdate:   last,
			NeedsRefresh: r.Meta.ShouldRefresh(kind),
		}
		if kind == KindPrice && r.PriceFiles != nil {
			fresh.FileCount = r.PriceFiles.FileCount()
		}
		status.DataTypes[kind] = fresh
	}
	return status
}
