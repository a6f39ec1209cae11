package usecase

import (
	"context"

	"market_gateway/internal/feature/marketdata/domain/entity"
)

// ForexUsecase exposes the forex operations of the upstream API.
// The free tier has no daily open/close for currency pairs.
type ForexUsecase struct {
	pipeline
}

// NewForexUsecase creates a ForexUsecase backed by market.
func NewForexUsecase(market MarketRepository) *ForexUsecase {
	return &ForexUsecase{pipeline{market: market, category: entity.Forex}}
}

// Aggregates returns the bars of pair over the window.
func (u *ForexUsecase) Aggregates(ctx context.Context, pair entity.CurrencyPair, w entity.Window) ([]entity.AggregateBar, error) {
	if err := checkPair(pair); err != nil {
		return nil, err
	}
	return u.aggregates(ctx, PairTicker(u.category, pair), w)
}

// GroupedDaily returns the daily bar of every currency pair on date.
func (u *ForexUsecase) GroupedDaily(ctx context.Context, date string, adjusted bool) ([]entity.GroupedDailyBar, error) {
	return u.groupedDaily(ctx, date, adjusted)
}

// PreviousClose returns the previous day's bar of pair, without a ticker.
func (u *ForexUsecase) PreviousClose(ctx context.Context, pair entity.CurrencyPair, adjusted bool) (entity.PreviousClose, error) {
	if err := checkPair(pair); err != nil {
		return entity.PreviousClose{}, err
	}
	return u.previousClose(ctx, PairTicker(u.category, pair), adjusted)
}
