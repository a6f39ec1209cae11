package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/usecase"
)

var errUpstream = &domain.RateLimitError{Detail: "test"}

// mockMarket is a MarketRepository that records every query and counts calls.
type mockMarket struct {
	Calls int

	AggregatesQuery    entity.AggregatesQuery
	OpenCloseQuery     entity.OpenCloseQuery
	CryptoQuery        entity.CryptoOpenCloseQuery
	GroupedDailyQuery  entity.GroupedDailyQuery
	PreviousCloseQuery entity.PreviousCloseQuery

	Bars    []entity.AggregateBar
	Grouped []entity.GroupedDailyBar
	Prev    entity.PreviousClose
	OC      entity.OpenClose
	CryptoO entity.CryptoOpenClose
	Err     error
}

var _ usecase.MarketRepository = (*mockMarket)(nil)

func (m *mockMarket) Aggregates(_ context.Context, q entity.AggregatesQuery) ([]entity.AggregateBar, error) {
	m.Calls++
	m.AggregatesQuery = q
	return m.Bars, m.Err
}

func (m *mockMarket) DailyOpenClose(_ context.Context, q entity.OpenCloseQuery) (entity.OpenClose, error) {
	m.Calls++
	m.OpenCloseQuery = q
	return m.OC, m.Err
}

func (m *mockMarket) CryptoDailyOpenClose(_ context.Context, q entity.CryptoOpenCloseQuery) (entity.CryptoOpenClose, error) {
	m.Calls++
	m.CryptoQuery = q
	return m.CryptoO, m.Err
}

func (m *mockMarket) GroupedDaily(_ context.Context, q entity.GroupedDailyQuery) ([]entity.GroupedDailyBar, error) {
	m.Calls++
	m.GroupedDailyQuery = q
	return m.Grouped, m.Err
}

func (m *mockMarket) PreviousClose(_ context.Context, q entity.PreviousCloseQuery) (entity.PreviousClose, error) {
	m.Calls++
	m.PreviousCloseQuery = q
	return m.Prev, m.Err
}

func window() entity.Window {
	return usecase.DefaultWindow("2023-01-09", "2023-01-10")
}

func TestDefaultWindow(t *testing.T) {
	t.Parallel()

	w := window()
	assert.Equal(t, 1, w.Multiplier)
	assert.Equal(t, entity.TimespanDay, w.Timespan)
	assert.True(t, w.Adjusted)
	assert.True(t, w.Sort.IsAscending())
	assert.Equal(t, 5000, w.Limit)
}

func TestStocksUsecase_Aggregates(t *testing.T) {
	t.Parallel()

	bars := []entity.AggregateBar{{Open: decimal.NewFromInt(1), Transactions: entity.Unavailable}}
	market := &mockMarket{Bars: bars}
	uc := usecase.NewStocksUsecase(market)

	got, err := uc.Aggregates(context.Background(), "AAPL", window())

	require.NoError(t, err)
	assert.Equal(t, bars, got)
	assert.Equal(t, 1, market.Calls)
	assert.Equal(t, "AAPL", market.AggregatesQuery.Ticker)
	assert.Equal(t, entity.Stocks, market.AggregatesQuery.Category)
	assert.Equal(t, window(), market.AggregatesQuery.Window)
}

func TestAggregates_RejectsBeforeUpstream(t *testing.T) {
	t.Parallel()

	overLimit := window()
	overLimit.Limit = 50001

	tests := []struct {
		name      string
		call      func(uc *usecase.StocksUsecase) error
		wantField string
	}{
		{
			name: "limit over maximum",
			call: func(uc *usecase.StocksUsecase) error {
				_, err := uc.Aggregates(context.Background(), "AAPL", overLimit)
				return err
			},
			wantField: "limit",
		},
		{
			name: "ticker with slash",
			call: func(uc *usecase.StocksUsecase) error {
				_, err := uc.Aggregates(context.Background(), "BRK/B", window())
				return err
			},
			wantField: "ticker",
		},
		{
			name: "ticker checked before window",
			call: func(uc *usecase.StocksUsecase) error {
				_, err := uc.Aggregates(context.Background(), "", overLimit)
				return err
			},
			wantField: "ticker",
		},
		{
			name: "open close date",
			call: func(uc *usecase.StocksUsecase) error {
				_, err := uc.DailyOpenClose(context.Background(), "AAPL", "01/09/2023", true)
				return err
			},
			wantField: "date",
		},
		{
			name: "grouped daily date",
			call: func(uc *usecase.StocksUsecase) error {
				_, err := uc.GroupedDaily(context.Background(), "", true)
				return err
			},
			wantField: "date",
		},
		{
			name: "previous close ticker",
			call: func(uc *usecase.StocksUsecase) error {
				_, err := uc.PreviousClose(context.Background(), "", true)
				return err
			},
			wantField: "ticker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			market := &mockMarket{}
			err := tt.call(usecase.NewStocksUsecase(market))

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Zero(t, market.Calls, "no upstream call on invalid input")
		})
	}
}

func TestStocksUsecase_Operations(t *testing.T) {
	t.Parallel()

	market := &mockMarket{
		OC:   entity.OpenClose{Volume: 100},
		Prev: entity.PreviousClose{Ticker: "AAPL"},
	}
	uc := usecase.NewStocksUsecase(market)
	ctx := context.Background()

	oc, err := uc.DailyOpenClose(ctx, "AAPL", "2023-01-09", false)
	require.NoError(t, err)
	assert.Equal(t, int64(100), oc.Volume)
	assert.Equal(t, entity.OpenCloseQuery{Category: entity.Stocks, Ticker: "AAPL", Date: "2023-01-09", Adjusted: false}, market.OpenCloseQuery)

	_, err = uc.GroupedDaily(ctx, "2023-01-09", true)
	require.NoError(t, err)
	assert.Equal(t, entity.GroupedDailyQuery{Category: entity.Stocks, Date: "2023-01-09", Adjusted: true}, market.GroupedDailyQuery)

	pc, err := uc.PreviousClose(ctx, "AAPL", true)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", pc.Ticker)
	assert.Equal(t, "AAPL", market.PreviousCloseQuery.Ticker)

	assert.Equal(t, 3, market.Calls)
}

func TestOptionsUsecase(t *testing.T) {
	t.Parallel()

	contract := entity.OptionContract{Underlying: "AAPL", Expiration: "2024-06-21", Type: entity.Call, Strike: 150.5}
	market := &mockMarket{}
	uc := usecase.NewOptionsUsecase(market)
	ctx := context.Background()

	_, err := uc.Aggregates(ctx, contract, window())
	require.NoError(t, err)
	assert.Equal(t, "O:AAPL240621C00150500", market.AggregatesQuery.Ticker)
	assert.Equal(t, entity.Options, market.AggregatesQuery.Category)

	_, err = uc.DailyOpenClose(ctx, contract, "2024-06-20", true)
	require.NoError(t, err)
	assert.Equal(t, "O:AAPL240621C00150500", market.OpenCloseQuery.Ticker)

	_, err = uc.PreviousClose(ctx, contract, true)
	require.NoError(t, err)
	assert.Equal(t, "O:AAPL240621C00150500", market.PreviousCloseQuery.Ticker)

	bad := contract
	bad.Expiration = "1999-06-18"
	_, err = uc.PreviousClose(ctx, bad, true)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, 3, market.Calls)
}

func TestForexUsecase(t *testing.T) {
	t.Parallel()

	pair := entity.CurrencyPair{From: "USD", To: "EUR"}
	market := &mockMarket{}
	uc := usecase.NewForexUsecase(market)
	ctx := context.Background()

	_, err := uc.Aggregates(ctx, pair, window())
	require.NoError(t, err)
	assert.Equal(t, "C:EURUSD", market.AggregatesQuery.Ticker)

	_, err = uc.PreviousClose(ctx, pair, true)
	require.NoError(t, err)
	assert.Equal(t, "C:EURUSD", market.PreviousCloseQuery.Ticker)
	assert.Equal(t, entity.Forex, market.PreviousCloseQuery.Category)

	_, err = uc.GroupedDaily(ctx, "2023-01-09", true)
	require.NoError(t, err)
	assert.Equal(t, entity.Forex, market.GroupedDailyQuery.Category)

	_, err = uc.Aggregates(ctx, entity.CurrencyPair{From: "", To: "EUR"}, window())
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "currency_from", ve.Field)
	assert.Equal(t, 3, market.Calls)
}

func TestCryptoUsecase(t *testing.T) {
	t.Parallel()

	pair := entity.CurrencyPair{From: "USD", To: "BTC"}
	market := &mockMarket{CryptoO: entity.CryptoOpenClose{Open: decimal.NewFromInt(17000)}}
	uc := usecase.NewCryptoUsecase(market)
	ctx := context.Background()

	oc, err := uc.DailyOpenClose(ctx, pair, "2023-01-09", true)
	require.NoError(t, err)
	assert.True(t, oc.Open.Equal(decimal.NewFromInt(17000)))
	assert.Equal(t, entity.CryptoOpenCloseQuery{Pair: pair, Ticker: "X:BTCUSD", Date: "2023-01-09", Adjusted: true}, market.CryptoQuery)

	_, err = uc.Aggregates(ctx, pair, window())
	require.NoError(t, err)
	assert.Equal(t, "X:BTCUSD", market.AggregatesQuery.Ticker)

	_, err = uc.PreviousClose(ctx, pair, false)
	require.NoError(t, err)
	assert.Equal(t, entity.PreviousCloseQuery{Category: entity.Crypto, Ticker: "X:BTCUSD", Adjusted: false}, market.PreviousCloseQuery)

	_, err = uc.GroupedDaily(ctx, "2023-01-09", true)
	require.NoError(t, err)
	assert.Equal(t, entity.Crypto, market.GroupedDailyQuery.Category)

	// pair is checked before the date
	_, err = uc.DailyOpenClose(ctx, entity.CurrencyPair{From: "USD"}, "", true)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "currency_to", ve.Field)
	assert.Equal(t, 4, market.Calls)
}

func TestUsecase_PropagatesUpstreamErrors(t *testing.T) {
	t.Parallel()

	market := &mockMarket{Err: errUpstream}
	uc := usecase.NewCryptoUsecase(market)

	_, err := uc.Aggregates(context.Background(), entity.CurrencyPair{From: "USD", To: "BTC"}, window())

	assert.True(t, errors.Is(err, domain.ErrRateLimited))
	assert.Equal(t, 1, market.Calls)
}
