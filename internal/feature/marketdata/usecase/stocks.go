package usecase

import (
	"context"

	"market_gateway/internal/feature/marketdata/domain/entity"
)

// StocksUsecase exposes the stock operations of the upstream API.
type StocksUsecase struct {
	pipeline
}

// NewStocksUsecase creates a StocksUsecase backed by market.
func NewStocksUsecase(market MarketRepository) *StocksUsecase {
	return &StocksUsecase{pipeline{market: market, category: entity.Stocks}}
}

// Aggregates returns the bars of ticker over the window.
func (u *StocksUsecase) Aggregates(ctx context.Context, ticker string, w entity.Window) ([]entity.AggregateBar, error) {
	if err := checkSymbol("ticker", ticker); err != nil {
		return nil, err
	}
	return u.aggregates(ctx, ticker, w)
}

// DailyOpenClose returns the open, close and extended-hours prices of ticker on date.
func (u *StocksUsecase) DailyOpenClose(ctx context.Context, ticker, date string, adjusted bool) (entity.OpenClose, error) {
	if err := checkSymbol("ticker", ticker); err != nil {
		return entity.OpenClose{}, err
	}
	return u.dailyOpenClose(ctx, ticker, date, adjusted)
}

// GroupedDaily returns the daily bar of every US stock on date.
func (u *StocksUsecase) GroupedDaily(ctx context.Context, date string, adjusted bool) ([]entity.GroupedDailyBar, error) {
	return u.groupedDaily(ctx, date, adjusted)
}

// PreviousClose returns the previous trading day's bar of ticker.
func (u *StocksUsecase) PreviousClose(ctx context.Context, ticker string, adjusted bool) (entity.PreviousClose, error) {
	if err := checkSymbol("ticker", ticker); err != nil {
		return entity.PreviousClose{}, err
	}
	return u.previousClose(ctx, ticker, adjusted)
}
