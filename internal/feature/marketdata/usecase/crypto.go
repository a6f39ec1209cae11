package usecase

import (
	"context"

	"market_gateway/internal/feature/marketdata/domain/entity"
)

// CryptoUsecase exposes the crypto operations of the upstream API.
type CryptoUsecase struct {
	pipeline
}

// NewCryptoUsecase creates a CryptoUsecase backed by market.
func NewCryptoUsecase(market MarketRepository) *CryptoUsecase {
	return &CryptoUsecase{pipeline{market: market, category: entity.Crypto}}
}

// Aggregates returns the bars of pair over the window.
func (u *CryptoUsecase) Aggregates(ctx context.Context, pair entity.CurrencyPair, w entity.Window) ([]entity.AggregateBar, error) {
	if err := checkPair(pair); err != nil {
		return nil, err
	}
	return u.aggregates(ctx, PairTicker(u.category, pair), w)
}

// DailyOpenClose returns the open and close prices of pair on date together
// with the trades that set them.
func (u *CryptoUsecase) DailyOpenClose(ctx context.Context, pair entity.CurrencyPair, date string, adjusted bool) (entity.CryptoOpenClose, error) {
	if err := firstInvalid(checkPair(pair), checkDate("date", date)); err != nil {
		return entity.CryptoOpenClose{}, err
	}
	return u.market.CryptoDailyOpenClose(ctx, entity.CryptoOpenCloseQuery{
		Pair:     pair,
		Ticker:   PairTicker(u.category, pair),
		Date:     date,
		Adjusted: adjusted,
	})
}

// GroupedDaily returns the daily bar of every crypto pair on date.
func (u *CryptoUsecase) GroupedDaily(ctx context.Context, date string, adjusted bool) ([]entity.GroupedDailyBar, error) {
	return u.groupedDaily(ctx, date, adjusted)
}

// PreviousClose returns the previous day's bar of pair.
func (u *CryptoUsecase) PreviousClose(ctx context.Context, pair entity.CurrencyPair, adjusted bool) (entity.PreviousClose, error) {
	if err := checkPair(pair); err != nil {
		return entity.PreviousClose{}, err
	}
	return u.previousClose(ctx, PairTicker(u.category, pair), adjusted)
}
