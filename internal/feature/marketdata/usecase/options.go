package usecase

import (
	"context"

	"market_gateway/internal/feature/marketdata/domain/entity"
)

// OptionsUsecase exposes the option operations of the upstream API.
// The upstream has no grouped-daily endpoint for options.
type OptionsUsecase struct {
	pipeline
}

// NewOptionsUsecase creates an OptionsUsecase backed by market.
func NewOptionsUsecase(market MarketRepository) *OptionsUsecase {
	return &OptionsUsecase{pipeline{market: market, category: entity.Options}}
}

// Aggregates returns the bars of contract over the window.
func (u *OptionsUsecase) Aggregates(ctx context.Context, contract entity.OptionContract, w entity.Window) ([]entity.AggregateBar, error) {
	if err := checkContract(contract); err != nil {
		return nil, err
	}
	return u.aggregates(ctx, OptionTicker(contract), w)
}

// DailyOpenClose returns the open and close prices of contract on date.
func (u *OptionsUsecase) DailyOpenClose(ctx context.Context, contract entity.OptionContract, date string, adjusted bool) (entity.OpenClose, error) {
	if err := checkContract(contract); err != nil {
		return entity.OpenClose{}, err
	}
	return u.dailyOpenClose(ctx, OptionTicker(contract), date, adjusted)
}

// PreviousClose returns the previous trading day's bar of contract, without a ticker.
func (u *OptionsUsecase) PreviousClose(ctx context.Context, contract entity.OptionContract, adjusted bool) (entity.PreviousClose, error) {
	if err := checkContract(contract); err != nil {
		return entity.PreviousClose{}, err
	}
	return u.previousClose(ctx, OptionTicker(contract), adjusted)
}
