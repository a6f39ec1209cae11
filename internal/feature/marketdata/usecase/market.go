// Package usecase implements the validation and composition logic of the marketdata feature.
package usecase

import (
	"context"

	"market_gateway/internal/feature/marketdata/domain/entity"
)

const (
	// DefaultLimit is the number of base aggregates requested when the caller does not say.
	DefaultLimit = 5000
	// DefaultMultiplier is the timespan multiplier used when the caller does not say.
	DefaultMultiplier = 1
)

// DefaultWindow returns the window defaults of the upstream API:
// one day bars, adjusted, oldest first, 5000 base aggregates.
func DefaultWindow(from, to string) entity.Window {
	return entity.Window{
		Multiplier: DefaultMultiplier,
		Timespan:   entity.TimespanDay,
		From:       from,
		To:         to,
		Adjusted:   true,
		Sort:       entity.Ascending,
		Limit:      DefaultLimit,
	}
}

// MarketRepository fetches and normalizes upstream market data.
// Queries reaching it are already validated and carry built identifiers.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform).
type MarketRepository interface {
	Aggregates(ctx context.Context, q entity.AggregatesQuery) ([]entity.AggregateBar, error)
	DailyOpenClose(ctx context.Context, q entity.OpenCloseQuery) (entity.OpenClose, error)
	CryptoDailyOpenClose(ctx context.Context, q entity.CryptoOpenCloseQuery) (entity.CryptoOpenClose, error)
	GroupedDaily(ctx context.Context, q entity.GroupedDailyQuery) ([]entity.GroupedDailyBar, error)
	PreviousClose(ctx context.Context, q entity.PreviousCloseQuery) (entity.PreviousClose, error)
}

// pipeline is the part of every operation that does not depend on how the
// category names its instruments: window/date checks, then the upstream call.
// Facades validate their identifier parameters and build the identifier first.
type pipeline struct {
	market   MarketRepository
	category entity.Category
}

func (p pipeline) aggregates(ctx context.Context, ticker string, w entity.Window) ([]entity.AggregateBar, error) {
	if err := checkWindow(w); err != nil {
		return nil, err
	}
	return p.market.Aggregates(ctx, entity.AggregatesQuery{
		Category: p.category,
		Ticker:   ticker,
		Window:   w,
	})
}

func (p pipeline) dailyOpenClose(ctx context.Context, ticker, date string, adjusted bool) (entity.OpenClose, error) {
	if err := checkDate("date", date); err != nil {
		return entity.OpenClose{}, err
	}
	return p.market.DailyOpenClose(ctx, entity.OpenCloseQuery{
		Category: p.category,
		Ticker:   ticker,
		Date:     date,
		Adjusted: adjusted,
	})
}

func (p pipeline) groupedDaily(ctx context.Context, date string, adjusted bool) ([]entity.GroupedDailyBar, error) {
	if err := checkDate("date", date); err != nil {
		return nil, err
	}
	return p.market.GroupedDaily(ctx, entity.GroupedDailyQuery{
		Category: p.category,
		Date:     date,
		Adjusted: adjusted,
	})
}

func (p pipeline) previousClose(ctx context.Context, ticker string, adjusted bool) (entity.PreviousClose, error) {
	return p.market.PreviousClose(ctx, entity.PreviousCloseQuery{
		Category: p.category,
		Ticker:   ticker,
		Adjusted: adjusted,
	})
}
