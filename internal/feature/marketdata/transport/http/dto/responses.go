// Package dto defines the JSON shapes of the marketdata HTTP API.
package dto

import (
	"time"

	"market_gateway/internal/feature/marketdata/domain/entity"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"` // invalid_argument, not_found, rate_limited, ...
}

// AggregateBarResponse is one OHLCV bar. Transactions and VWPrice are -1 when unavailable.
type AggregateBarResponse struct {
	Open         float64 `json:"open"`
	High         float64 `json:"high"`
	Low          float64 `json:"low"`
	Close        float64 `json:"close"`
	Volume       float64 `json:"volume"`
	Transactions int64   `json:"transactions"`
	Time         string  `json:"time"` // RFC 3339, UTC
	VWPrice      float64 `json:"vw_price"`
}

// GroupedDailyBarResponse is the bar of one ticker in a grouped-daily listing.
type GroupedDailyBarResponse struct {
	Ticker string `json:"ticker"`
	AggregateBarResponse
}

// PreviousCloseResponse is the previous day's bar. Ticker is omitted for
// options and forex.
type PreviousCloseResponse struct {
	Ticker string `json:"ticker,omitempty"`
	AggregateBarResponse
}

// OpenCloseResponse is a stock or option trading day summary.
type OpenCloseResponse struct {
	Open       float64 `json:"open"`
	High       float64 `json:"high"`
	Low        float64 `json:"low"`
	Close      float64 `json:"close"`
	AfterHours float64 `json:"after_hours"`
	PreMarket  float64 `json:"pre_market"`
	Volume     int64   `json:"volume"`
}

// CryptoTradeResponse is one opening or closing crypto trade.
type CryptoTradeResponse struct {
	Conditions []int   `json:"conditions"`
	Price      float64 `json:"price"`
	Volume     float64 `json:"volume"`
	Time       string  `json:"time"`
	ExchangeID string  `json:"exchange_id"`
}

// CryptoOpenCloseResponse is a crypto trading day summary.
type CryptoOpenCloseResponse struct {
	Open          float64               `json:"open"`
	Close         float64               `json:"close"`
	OpeningTrades []CryptoTradeResponse `json:"opening_trades"`
	ClosingTrades []CryptoTradeResponse `json:"closing_trades"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FromAggregateBar converts a domain bar.
func FromAggregateBar(b entity.AggregateBar) AggregateBarResponse {
	return AggregateBarResponse{
		Open:         b.Open.InexactFloat64(),
		High:         b.High.InexactFloat64(),
		Low:          b.Low.InexactFloat64(),
		Close:        b.Close.InexactFloat64(),
		Volume:       b.Volume.InexactFloat64(),
		Transactions: b.Transactions,
		Time:         formatTime(b.Time),
		VWPrice:      b.VWPrice.InexactFloat64(),
	}
}

// FromAggregateBars converts bars, preserving order. The result is never nil.
func FromAggregateBars(bars []entity.AggregateBar) []AggregateBarResponse {
	out := make([]AggregateBarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, FromAggregateBar(b))
	}
	return out
}

// FromGroupedDailyBars converts grouped-daily bars, preserving order.
func FromGroupedDailyBars(bars []entity.GroupedDailyBar) []GroupedDailyBarResponse {
	out := make([]GroupedDailyBarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, GroupedDailyBarResponse{Ticker: b.Ticker, AggregateBarResponse: FromAggregateBar(b.AggregateBar)})
	}
	return out
}

// FromPreviousClose converts a previous-close record.
func FromPreviousClose(pc entity.PreviousClose) PreviousCloseResponse {
	return PreviousCloseResponse{Ticker: pc.Ticker, AggregateBarResponse: FromAggregateBar(pc.AggregateBar)}
}

// FromOpenClose converts a stock or option daily summary.
func FromOpenClose(oc entity.OpenClose) OpenCloseResponse {
	return OpenCloseResponse{
		Open:       oc.Open.InexactFloat64(),
		High:       oc.High.InexactFloat64(),
		Low:        oc.Low.InexactFloat64(),
		Close:      oc.Close.InexactFloat64(),
		AfterHours: oc.AfterHours.InexactFloat64(),
		PreMarket:  oc.PreMarket.InexactFloat64(),
		Volume:     oc.Volume,
	}
}

func fromCryptoTrades(trades []entity.CryptoTrade) []CryptoTradeResponse {
	out := make([]CryptoTradeResponse, 0, len(trades))
	for _, t := range trades {
		conditions := t.Conditions
		if conditions == nil {
			conditions = []int{}
		}
		out = append(out, CryptoTradeResponse{
			Conditions: conditions,
			Price:      t.Price.InexactFloat64(),
			Volume:     t.Volume.InexactFloat64(),
			Time:       formatTime(t.Time),
			ExchangeID: t.ExchangeID,
		})
	}
	return out
}

// FromCryptoOpenClose converts a crypto daily summary.
func FromCryptoOpenClose(oc entity.CryptoOpenClose) CryptoOpenCloseResponse {
	return CryptoOpenCloseResponse{
		Open:          oc.Open.InexactFloat64(),
		Close:         oc.Close.InexactFloat64(),
		OpeningTrades: fromCryptoTrades(oc.OpeningTrades),
		ClosingTrades: fromCryptoTrades(oc.ClosingTrades),
	}
}
